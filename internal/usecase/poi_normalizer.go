package usecase

import (
	"github.com/restaurant-finder/internal/domain"
)

// NormalizeElement converts a raw Overpass element into a POI. The boolean is
// false when the element has no resolvable coordinate and must be dropped.
func NormalizeElement(el domain.Element) (domain.POI, bool) {
	coord, ok := elementCoordinate(el)
	if !ok {
		return domain.POI{}, false
	}

	tags := el.Tags
	amenity, ok := tags["amenity"]
	if !ok {
		// the query selects on amenity, so this only happens with foreign payloads
		amenity = string(domain.CategoryRestaurant)
	}

	return domain.NewPOI(domain.POIParams{
		ID:           el.ID,
		SourceType:   el.Type,
		Coordinate:   coord,
		Amenity:      amenity,
		Name:         tag(tags, "name"),
		Cuisine:      tag(tags, "cuisine"),
		Phone:        tag(tags, "phone"),
		Website:      firstTag(tags, "website", "contact:website"),
		OpeningHours: tag(tags, "opening_hours"),
	}), true
}

// NormalizeElements применяет NormalizeElement ко всем элементам и
// возвращает POI вместе с числом отброшенных элементов
func NormalizeElements(elements []domain.Element) ([]domain.POI, int) {
	pois := make([]domain.POI, 0, len(elements))
	dropped := 0
	for _, el := range elements {
		poi, ok := NormalizeElement(el)
		if !ok {
			dropped++
			continue
		}
		pois = append(pois, poi)
	}
	return pois, dropped
}

func elementCoordinate(el domain.Element) (domain.Coordinate, bool) {
	switch el.Type {
	case domain.ElementTypeNode:
		if el.Lat == nil || el.Lon == nil {
			return domain.Coordinate{}, false
		}
		return domain.Coordinate{Lat: *el.Lat, Lon: *el.Lon}, true
	case domain.ElementTypeWay, domain.ElementTypeRelation:
		if el.Center == nil || el.Center.Lat == nil || el.Center.Lon == nil {
			return domain.Coordinate{}, false
		}
		return domain.Coordinate{Lat: *el.Center.Lat, Lon: *el.Center.Lon}, true
	default:
		return domain.Coordinate{}, false
	}
}

func tag(tags map[string]string, key string) *string {
	v, ok := tags[key]
	if !ok {
		return nil
	}
	return &v
}

func firstTag(tags map[string]string, keys ...string) *string {
	for _, key := range keys {
		if v := tag(tags, key); v != nil {
			return v
		}
	}
	return nil
}
