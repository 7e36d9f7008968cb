package dto

import (
	"github.com/restaurant-finder/internal/domain"
	"github.com/restaurant-finder/internal/pkg/utils"
)

// Restaurant - заведение в ответе API
type Restaurant struct {
	ID             int64   `json:"id"`
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Category       string  `json:"category"`
	Amenity        string  `json:"amenity"`
	Cuisine        string  `json:"cuisine"`
	Phone          string  `json:"phone"`
	Website        string  `json:"website"`
	OpeningHours   string  `json:"opening_hours"`
	DistanceMeters float64 `json:"distance_m"`
}

// ResolvedLocation - результат геокодирования адреса
type ResolvedLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// RestaurantListResponse - ответ на любой из поисковых запросов
type RestaurantListResponse struct {
	Location    *ResolvedLocation `json:"location,omitempty"`
	Address     string            `json:"address,omitempty"`
	Query       string            `json:"query,omitempty"`
	Restaurants []Restaurant      `json:"restaurants"`
	Total       int               `json:"total"`
}

// PlaceName returns the label used in messages: the resolved display name,
// or the address as typed when the geocoder returned none.
func (r *RestaurantListResponse) PlaceName() string {
	if r.Location != nil && r.Location.DisplayName != "" {
		return r.Location.DisplayName
	}
	return r.Address
}

// RestaurantDetailsResponse - подробности о заведении
type RestaurantDetailsResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

// NewRestaurantListResponse converts a pipeline result into the API shape.
func NewRestaurantListResponse(result *domain.SearchResult) *RestaurantListResponse {
	resp := &RestaurantListResponse{
		Restaurants: make([]Restaurant, 0, len(result.POIs)),
	}

	if result.Location != nil {
		resp.Location = &ResolvedLocation{
			Latitude:    result.Location.Lat,
			Longitude:   result.Location.Lon,
			DisplayName: result.Location.DisplayName,
		}
	}

	for _, poi := range result.POIs {
		resp.Restaurants = append(resp.Restaurants, Restaurant{
			ID:             poi.ID,
			Type:           string(poi.SourceType),
			Name:           poi.Name,
			Latitude:       poi.Coordinate.Lat,
			Longitude:      poi.Coordinate.Lon,
			Category:       string(poi.Category),
			Amenity:        poi.CategoryLabel,
			Cuisine:        poi.Cuisine,
			Phone:          poi.Phone,
			Website:        poi.Website,
			OpeningHours:   poi.OpeningHours,
			DistanceMeters: utils.HaversineDistance(result.Origin, poi.Coordinate),
		})
	}
	resp.Total = len(resp.Restaurants)

	return resp
}
