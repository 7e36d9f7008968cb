package repository

import (
	"context"

	"github.com/restaurant-finder/internal/domain"
)

// GeocoderRepository определяет методы для работы с сервисом геокодирования
type GeocoderRepository interface {
	// Geocode возвращает лучшее совпадение для адреса.
	// Любая неудача возвращается как domain.ErrLocationNotFound.
	Geocode(ctx context.Context, address string) (*domain.Location, error)

	// Reverse возвращает адрес для координаты
	Reverse(ctx context.Context, coord domain.Coordinate) (*domain.ReverseAddress, error)
}
