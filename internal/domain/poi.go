package domain

// Значения-заглушки для отсутствующих тегов
const (
	NotSpecified = "Not specified"
	NotAvailable = "Not available"
)

// Category - категория заведения, выводится из тега amenity
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryPub        Category = "pub"
	CategoryFastFood   Category = "fast_food"
	CategoryUnknown    Category = "unknown"
)

var categoryLabels = map[Category]string{
	CategoryRestaurant: "Restaurant",
	CategoryCafe:       "Café",
	CategoryPub:        "Pub",
	CategoryFastFood:   "Fast Food",
}

// SearchedCategories lists the amenity values requested from Overpass, in query order.
var SearchedCategories = []Category{
	CategoryRestaurant,
	CategoryCafe,
	CategoryPub,
	CategoryFastFood,
}

// CategoryFromAmenity maps an amenity tag value to a category and its display
// label. Unrecognized values map to CategoryUnknown labelled with the raw value.
func CategoryFromAmenity(amenity string) (Category, string) {
	c := Category(amenity)
	if label, ok := categoryLabels[c]; ok {
		return c, label
	}
	return CategoryUnknown, amenity
}

// POI - нормализованная точка интереса
type POI struct {
	ID            int64       `json:"id"`
	SourceType    ElementType `json:"source_type"`
	Name          string      `json:"name"`
	Coordinate    Coordinate  `json:"coordinate"`
	Category      Category    `json:"category"`
	CategoryLabel string      `json:"category_label"`
	Cuisine       string      `json:"cuisine"`
	Phone         string      `json:"phone"`
	Website       string      `json:"website"`
	OpeningHours  string      `json:"opening_hours"`
}

// POIParams carries raw attribute values into NewPOI. A nil pointer means the
// source tag was absent.
type POIParams struct {
	ID           int64
	SourceType   ElementType
	Coordinate   Coordinate
	Amenity      string
	Name         *string
	Cuisine      *string
	Phone        *string
	Website      *string
	OpeningHours *string
}

// NewPOI строит POI и подставляет заглушки для отсутствующих полей
func NewPOI(p POIParams) POI {
	category, label := CategoryFromAmenity(p.Amenity)

	return POI{
		ID:            p.ID,
		SourceType:    p.SourceType,
		Name:          valueOr(p.Name, "Unnamed "+label),
		Coordinate:    p.Coordinate,
		Category:      category,
		CategoryLabel: label,
		Cuisine:       valueOr(p.Cuisine, NotSpecified),
		Phone:         valueOr(p.Phone, NotAvailable),
		Website:       valueOr(p.Website, NotAvailable),
		OpeningHours:  valueOr(p.OpeningHours, NotSpecified),
	}
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
