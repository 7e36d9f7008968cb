package domain

// ElementType - тип элемента OSM
type ElementType string

const (
	ElementTypeNode     ElementType = "node"
	ElementTypeWay      ElementType = "way"
	ElementTypeRelation ElementType = "relation"
)

// ElementCenter is the computed center Overpass returns for ways and
// relations when the query ends with "out center".
type ElementCenter struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Element - сырой элемент ответа Overpass API
type Element struct {
	Type   ElementType       `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *ElementCenter    `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}
