package domain

// SearchRequest describes one pipeline invocation. Exactly one of Coordinate
// or Address is set as the origin.
type SearchRequest struct {
	Coordinate   *Coordinate
	Address      string
	RadiusMeters int
	Limit        int
	Query        string
}

// HasAddress reports whether the origin must be geocoded first.
func (r SearchRequest) HasAddress() bool {
	return r.Coordinate == nil
}

// SearchResult - результат работы конвейера поиска
type SearchResult struct {
	// Location is set only when the origin was an address.
	Location *Location
	Origin   Coordinate
	POIs     []POI
}
