package domain

import "fmt"

// Coordinate - точка в градусах WGS84
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate проверяет, что координата лежит в допустимых диапазонах
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lon)
	}
	return nil
}

// Location - результат геокодирования адреса
type Location struct {
	Coordinate
	DisplayName string `json:"display_name"`
}

// BoundingBox - прямоугольник в пространстве широта/долгота
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// ReverseAddress - адрес, полученный обратным геокодированием
type ReverseAddress struct {
	DisplayName string `json:"display_name"`
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Locality returns the city, falling back to the town.
func (a ReverseAddress) Locality() string {
	if a.City != "" {
		return a.City
	}
	return a.Town
}
