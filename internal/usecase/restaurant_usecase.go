package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/config"
	"github.com/restaurant-finder/internal/domain"
	"github.com/restaurant-finder/internal/domain/repository"
	apperrors "github.com/restaurant-finder/internal/pkg/errors"
	"github.com/restaurant-finder/internal/pkg/metrics"
	"github.com/restaurant-finder/internal/pkg/utils"
	"github.com/restaurant-finder/internal/usecase/dto"
)

// RestaurantUseCase - конвейер поиска заведений:
// геокодирование → bbox → Overpass → нормализация → фильтр/сортировка/лимит
type RestaurantUseCase struct {
	geocoder repository.GeocoderRepository
	features repository.FeatureRepository
	cfg      config.SearchConfig
	logger   *zap.Logger
}

// NewRestaurantUseCase - создание нового RestaurantUseCase
func NewRestaurantUseCase(
	geocoder repository.GeocoderRepository,
	features repository.FeatureRepository,
	cfg config.SearchConfig,
	logger *zap.Logger,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		geocoder: geocoder,
		features: features,
		cfg:      cfg,
		logger:   logger,
	}
}

// Search runs the pipeline for one request. An address that cannot be
// geocoded ends the search with ErrLocationNotFound before any feature query.
func (uc *RestaurantUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	log := uc.logger.With(zap.String("search_id", uuid.NewString()))

	if err := uc.validate(req); err != nil {
		return nil, err
	}

	result := &domain.SearchResult{}

	if req.HasAddress() {
		loc, err := uc.geocoder.Geocode(ctx, req.Address)
		if err != nil {
			log.Info("Location not resolved", zap.String("address", req.Address), zap.Error(err))
			return nil, apperrors.ErrLocationNotFound.WithDetails(map[string]interface{}{
				"address": req.Address,
			})
		}
		result.Location = loc
		result.Origin = loc.Coordinate
	} else {
		result.Origin = *req.Coordinate
	}

	box := utils.BoundingBoxAround(result.Origin, req.RadiusMeters)
	elements := uc.features.QueryAmenities(ctx, box)

	pois, dropped := NormalizeElements(elements)
	if dropped > 0 {
		metrics.DroppedFeatures.Add(float64(dropped))
		log.Debug("Dropped features without coordinates", zap.Int("dropped", dropped))
	}

	if strings.TrimSpace(req.Query) == "" {
		result.POIs = FilterAndRank(pois, "", req.Limit)
	} else {
		candidates := FilterAndRank(pois, "", req.Limit*uc.cfg.OverFetchFactor)
		result.POIs = FilterAndRank(candidates, req.Query, req.Limit)
	}

	metrics.SearchResults.Observe(float64(len(result.POIs)))
	log.Info("Search completed",
		zap.Float64("lat", result.Origin.Lat),
		zap.Float64("lon", result.Origin.Lon),
		zap.Int("radius", req.RadiusMeters),
		zap.Int("elements", len(elements)),
		zap.Int("results", len(result.POIs)))

	return result, nil
}

func (uc *RestaurantUseCase) validate(req domain.SearchRequest) error {
	if req.HasAddress() {
		if strings.TrimSpace(req.Address) == "" {
			return apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"address": "required",
			})
		}
	} else if err := req.Coordinate.Validate(); err != nil {
		return apperrors.ErrInvalidCoordinates
	}

	if !utils.ValidateRadius(req.RadiusMeters, uc.cfg.MaxRadius) {
		return apperrors.ErrInvalidRadius.WithDetails(map[string]interface{}{
			"max": uc.cfg.MaxRadius,
		})
	}

	if req.Limit <= 0 || req.Limit > uc.cfg.MaxLimit {
		return apperrors.ErrInvalidLimit.WithDetails(map[string]interface{}{
			"max": uc.cfg.MaxLimit,
		})
	}

	return nil
}

func (uc *RestaurantUseCase) withDefaults(radius, limit int) (int, int) {
	if radius == 0 {
		radius = uc.cfg.DefaultRadius
	}
	if limit == 0 {
		limit = uc.cfg.DefaultLimit
	}
	return radius, limit
}

// SearchByCoordinates - поиск вокруг заданной точки
func (uc *RestaurantUseCase) SearchByCoordinates(
	ctx context.Context,
	req dto.CoordinateSearchRequest,
) (*dto.RestaurantListResponse, error) {
	if req.Lat == nil || req.Lon == nil {
		return nil, apperrors.ErrInvalidCoordinates
	}

	radius, limit := uc.withDefaults(req.Radius, req.Limit)

	result, err := uc.Search(ctx, domain.SearchRequest{
		Coordinate:   &domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon},
		RadiusMeters: radius,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewRestaurantListResponse(result), nil
}

// SearchByAddress - поиск вокруг адреса или названия города
func (uc *RestaurantUseCase) SearchByAddress(
	ctx context.Context,
	req dto.AddressSearchRequest,
) (*dto.RestaurantListResponse, error) {
	radius, limit := uc.withDefaults(req.Radius, req.Limit)

	result, err := uc.Search(ctx, domain.SearchRequest{
		Address:      req.Address,
		RadiusMeters: radius,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewRestaurantListResponse(result)
	resp.Address = req.Address
	return resp, nil
}

// SearchByQuery - поиск по кухне или ключевому слову вокруг адреса
func (uc *RestaurantUseCase) SearchByQuery(
	ctx context.Context,
	req dto.QuerySearchRequest,
) (*dto.RestaurantListResponse, error) {
	radius, limit := uc.withDefaults(req.Radius, req.Limit)

	result, err := uc.Search(ctx, domain.SearchRequest{
		Address:      req.Address,
		RadiusMeters: radius,
		Limit:        limit,
		Query:        req.Query,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewRestaurantListResponse(result)
	resp.Address = req.Address
	resp.Query = strings.ToLower(req.Query)
	return resp, nil
}

// GetDetails - подробности о заведении через обратное геокодирование
func (uc *RestaurantUseCase) GetDetails(
	ctx context.Context,
	req dto.DetailsRequest,
) (*dto.RestaurantDetailsResponse, error) {
	if req.Lat == nil || req.Lon == nil {
		return nil, apperrors.ErrInvalidCoordinates
	}

	coord := domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	if err := coord.Validate(); err != nil {
		return nil, apperrors.ErrInvalidCoordinates
	}

	addr, err := uc.geocoder.Reverse(ctx, coord)
	if err != nil {
		uc.logger.Error("Failed to get restaurant details",
			zap.String("name", req.Name),
			zap.Error(err))
		return nil, apperrors.ErrDetailsUnavailable.WithDetails(map[string]interface{}{
			"name": req.Name,
		})
	}

	resp := &dto.RestaurantDetailsResponse{
		Name:      req.Name,
		Latitude:  coord.Lat,
		Longitude: coord.Lon,
		Address:   addr.DisplayName,
		City:      addr.Locality(),
		Country:   addr.Country,
	}

	if resp.Address == "" {
		resp.Address = domain.NotAvailable
	}
	if resp.City == "" {
		resp.City = "N/A"
	}
	if resp.Country == "" {
		resp.Country = "N/A"
	}

	return resp, nil
}
