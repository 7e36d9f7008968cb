package domain

import "errors"

var (
	// ErrLocationNotFound is returned by the geocoder for every failed lookup:
	// no candidates, transport failure or an unreadable payload.
	ErrLocationNotFound = errors.New("location not found")

	// ErrReverseGeocodeFailed is returned when a reverse lookup cannot be completed.
	ErrReverseGeocodeFailed = errors.New("reverse geocoding failed")
)
