package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/restaurant-finder/internal/usecase/dto"
)

// FormatList renders a search response as the plain-text block returned to
// tool callers and to HTTP clients asking for format=text.
func FormatList(resp *dto.RestaurantListResponse) string {
	place := resp.PlaceName()

	if len(resp.Restaurants) == 0 {
		switch {
		case resp.Query != "":
			return fmt.Sprintf("No %s restaurants found near %s.", resp.Query, place)
		case place != "":
			return fmt.Sprintf("No restaurants found near %s.", place)
		default:
			return "No restaurants found in the specified area."
		}
	}

	var b strings.Builder
	switch {
	case resp.Query != "":
		fmt.Fprintf(&b, "Found %d %s restaurants near %s:\n\n", len(resp.Restaurants), resp.Query, place)
	case place != "":
		fmt.Fprintf(&b, "Found %d restaurants near %s:\n\n", len(resp.Restaurants), place)
	default:
		fmt.Fprintf(&b, "Found %d restaurants:\n\n", len(resp.Restaurants))
	}

	for i, r := range resp.Restaurants {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Name)
		fmt.Fprintf(&b, "   Cuisine: %s\n", r.Cuisine)
		fmt.Fprintf(&b, "   Coordinates: %s, %s\n", formatFloat(r.Latitude), formatFloat(r.Longitude))
		fmt.Fprintf(&b, "   Phone: %s\n", r.Phone)
		fmt.Fprintf(&b, "   Website: %s\n", r.Website)
		fmt.Fprintf(&b, "   Hours: %s\n\n", r.OpeningHours)
	}

	return b.String()
}

// FormatDetails - текстовое представление подробностей о заведении
func FormatDetails(resp *dto.RestaurantDetailsResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant: %s\n", resp.Name)
	fmt.Fprintf(&b, "Coordinates: %s, %s\n", formatFloat(resp.Latitude), formatFloat(resp.Longitude))
	fmt.Fprintf(&b, "Address: %s\n", resp.Address)
	fmt.Fprintf(&b, "City: %s\n", resp.City)
	fmt.Fprintf(&b, "Country: %s\n", resp.Country)
	return b.String()
}

func LocationNotFound(address string) string {
	return "Could not find coordinates for address: " + address
}

func DetailsUnavailable(name string) string {
	return "Error retrieving details for " + name
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
