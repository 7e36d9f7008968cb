package repository

import (
	"context"

	"github.com/restaurant-finder/internal/domain"
)

// FeatureRepository определяет методы для пространственных запросов к OSM
type FeatureRepository interface {
	// QueryAmenities returns the raw food and drink elements inside box.
	// It never fails: an unrecoverable upstream error yields an empty slice,
	// so callers cannot tell a failed query from an empty area.
	QueryAmenities(ctx context.Context, box domain.BoundingBox) []domain.Element
}
