package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/config"
	"github.com/restaurant-finder/internal/domain"
	apperrors "github.com/restaurant-finder/internal/pkg/errors"
	"github.com/restaurant-finder/internal/usecase"
	"github.com/restaurant-finder/internal/usecase/dto"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockGeocoderRepository) Reverse(ctx context.Context, coord domain.Coordinate) (*domain.ReverseAddress, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReverseAddress), args.Error(1)
}

// MockFeatureRepository is a mock of FeatureRepository
type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) QueryAmenities(ctx context.Context, box domain.BoundingBox) []domain.Element {
	args := m.Called(ctx, box)
	return args.Get(0).([]domain.Element)
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		DefaultRadius:   1000,
		DefaultLimit:    10,
		MaxRadius:       50000,
		MaxLimit:        100,
		OverFetchFactor: 2,
	}
}

func ptr(v float64) *float64 { return &v }

func restaurantNode(id int64, name, cuisine string, lat, lon float64) domain.Element {
	return domain.Element{
		Type: domain.ElementTypeNode,
		ID:   id,
		Lat:  ptr(lat),
		Lon:  ptr(lon),
		Tags: map[string]string{
			"amenity": "restaurant",
			"name":    name,
			"cuisine": cuisine,
		},
	}
}

func restaurantNames(resp *dto.RestaurantListResponse) []string {
	out := make([]string, 0, len(resp.Restaurants))
	for _, r := range resp.Restaurants {
		out = append(out, r.Name)
	}
	return out
}

func boxContains(origin domain.Coordinate) interface{} {
	return mock.MatchedBy(func(box domain.BoundingBox) bool {
		return box.MinLat < origin.Lat && origin.Lat < box.MaxLat &&
			box.MinLon < origin.Lon && origin.Lon < box.MaxLon
	})
}

var exampleCity = &domain.Location{
	Coordinate:  domain.Coordinate{Lat: 12.0, Lon: 77.0},
	DisplayName: "Example City, Country",
}

func TestRestaurantUseCase_SearchByAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("geocoded address returns sorted restaurants", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		geocoder.On("Geocode", ctx, "Example City").Return(exampleCity, nil).Once()
		features.On("QueryAmenities", ctx, boxContains(exampleCity.Coordinate)).Return([]domain.Element{
			restaurantNode(3, "Zeta Grill", "grill", 12.001, 77.001),
			restaurantNode(1, "Alpha Diner", "american", 12.002, 77.0),
			restaurantNode(2, "Mu Kitchen", "indian", 11.999, 76.999),
		}).Once()

		resp, err := uc.SearchByAddress(ctx, dto.AddressSearchRequest{Address: "Example City"})

		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, []string{"Alpha Diner", "Mu Kitchen", "Zeta Grill"}, restaurantNames(resp))
		for _, r := range resp.Restaurants {
			assert.Equal(t, "Restaurant", r.Amenity)
			assert.Equal(t, "node", r.Type)
			assert.Greater(t, r.DistanceMeters, 0.0)
		}
		require.NotNil(t, resp.Location)
		assert.Equal(t, "Example City, Country", resp.PlaceName())
		assert.Equal(t, "Example City", resp.Address)

		geocoder.AssertExpectations(t)
		features.AssertExpectations(t)
	})

	t.Run("unknown address skips feature query", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		geocoder.On("Geocode", ctx, "Nowhere").
			Return(nil, fmt.Errorf("%w: Nowhere", domain.ErrLocationNotFound)).Once()

		resp, err := uc.SearchByAddress(ctx, dto.AddressSearchRequest{Address: "Nowhere"})

		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, apperrors.ErrLocationNotFound))
		features.AssertNotCalled(t, "QueryAmenities", mock.Anything, mock.Anything)
	})

	t.Run("empty feature result is not an error", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		geocoder.On("Geocode", ctx, "Example City").Return(exampleCity, nil).Once()
		features.On("QueryAmenities", ctx, mock.Anything).Return([]domain.Element{}).Once()

		resp, err := uc.SearchByAddress(ctx, dto.AddressSearchRequest{Address: "Example City"})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Restaurants)
	})
}

func TestRestaurantUseCase_SearchByCoordinates(t *testing.T) {
	ctx := context.Background()
	origin := domain.Coordinate{Lat: 48.8566, Lon: 2.3522}

	t.Run("applies defaults and drops features without coordinates", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		elements := []domain.Element{
			restaurantNode(1, "Chez Paul", "french", 48.857, 2.353),
			{Type: domain.ElementTypeWay, ID: 2, Tags: map[string]string{"name": "No Center"}},
			{
				Type:   domain.ElementTypeWay,
				ID:     3,
				Center: &domain.ElementCenter{Lat: ptr(48.856), Lon: ptr(2.352)},
				Tags:   map[string]string{"amenity": "cafe", "name": "Café de Flore"},
			},
		}
		features.On("QueryAmenities", ctx, mock.MatchedBy(func(box domain.BoundingBox) bool {
			// default radius 1000 m is about 0.009 degrees of latitude
			return box.MaxLat-box.MinLat > 0.017 && box.MaxLat-box.MinLat < 0.019
		})).Return(elements).Once()

		resp, err := uc.SearchByCoordinates(ctx, dto.CoordinateSearchRequest{
			Lat: ptr(origin.Lat),
			Lon: ptr(origin.Lon),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Café de Flore", "Chez Paul"}, restaurantNames(resp))
		assert.Equal(t, "way", resp.Restaurants[0].Type)
		assert.Equal(t, "Café", resp.Restaurants[0].Amenity)
		assert.Nil(t, resp.Location)
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		features.AssertExpectations(t)
	})

	t.Run("limit truncates result", func(t *testing.T) {
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(&MockGeocoderRepository{}, features, testSearchConfig(), zap.NewNop())

		features.On("QueryAmenities", ctx, boxContains(origin)).Return([]domain.Element{
			restaurantNode(1, "C", "", 48.857, 2.353),
			restaurantNode(2, "A", "", 48.857, 2.353),
			restaurantNode(3, "B", "", 48.857, 2.353),
		}).Once()

		resp, err := uc.SearchByCoordinates(ctx, dto.CoordinateSearchRequest{
			Lat:    ptr(origin.Lat),
			Lon:    ptr(origin.Lon),
			Radius: 500,
			Limit:  2,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, restaurantNames(resp))
	})

	t.Run("invalid input rejected before any query", func(t *testing.T) {
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(&MockGeocoderRepository{}, features, testSearchConfig(), zap.NewNop())

		cases := []struct {
			name string
			req  dto.CoordinateSearchRequest
			want *apperrors.AppError
		}{
			{"missing lat", dto.CoordinateSearchRequest{Lon: ptr(1)}, apperrors.ErrInvalidCoordinates},
			{"lat out of range", dto.CoordinateSearchRequest{Lat: ptr(91), Lon: ptr(1)}, apperrors.ErrInvalidCoordinates},
			{"lon out of range", dto.CoordinateSearchRequest{Lat: ptr(1), Lon: ptr(-181)}, apperrors.ErrInvalidCoordinates},
			{"radius too large", dto.CoordinateSearchRequest{Lat: ptr(1), Lon: ptr(1), Radius: 50001}, apperrors.ErrInvalidRadius},
			{"negative radius", dto.CoordinateSearchRequest{Lat: ptr(1), Lon: ptr(1), Radius: -5}, apperrors.ErrInvalidRadius},
			{"limit too large", dto.CoordinateSearchRequest{Lat: ptr(1), Lon: ptr(1), Limit: 101}, apperrors.ErrInvalidLimit},
			{"negative limit", dto.CoordinateSearchRequest{Lat: ptr(1), Lon: ptr(1), Limit: -1}, apperrors.ErrInvalidLimit},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.SearchByCoordinates(ctx, tc.req)
				assert.True(t, errors.Is(err, tc.want), "got %v", err)
			})
		}
		features.AssertNotCalled(t, "QueryAmenities", mock.Anything, mock.Anything)
	})
}

func TestRestaurantUseCase_SearchByQuery(t *testing.T) {
	ctx := context.Background()

	fivePlaces := []domain.Element{
		restaurantNode(1, "Pizza Hut", "pizza", 12.001, 77.0),
		restaurantNode(2, "Bella Napoli", "italian;pizza", 12.001, 77.0),
		restaurantNode(3, "Dosa Plaza", "indian", 12.001, 77.0),
		restaurantNode(4, "Curry House", "indian", 12.001, 77.0),
		restaurantNode(5, "Burger Barn", "american", 12.001, 77.0),
	}

	t.Run("filters by cuisine in name order", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		geocoder.On("Geocode", ctx, "Example City").Return(exampleCity, nil).Once()
		features.On("QueryAmenities", ctx, mock.Anything).Return(fivePlaces).Once()

		resp, err := uc.SearchByQuery(ctx, dto.QuerySearchRequest{Query: "Pizza", Address: "Example City"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Bella Napoli", "Pizza Hut"}, restaurantNames(resp))
		assert.Equal(t, "pizza", resp.Query)
		assert.Equal(t, "Example City", resp.Address)
	})

	t.Run("filter runs over capped candidates", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		geocoder.On("Geocode", ctx, "Example City").Return(exampleCity, nil).Once()
		features.On("QueryAmenities", ctx, mock.Anything).Return(fivePlaces).Once()

		// limit 1 with factor 2 keeps Bella Napoli and Burger Barn as candidates
		resp, err := uc.SearchByQuery(ctx, dto.QuerySearchRequest{Query: "indian", Address: "Example City", Limit: 1})

		require.NoError(t, err)
		assert.Empty(t, resp.Restaurants)
	})

	t.Run("blank query keeps everything", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		features := &MockFeatureRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, features, testSearchConfig(), zap.NewNop())

		geocoder.On("Geocode", ctx, "Example City").Return(exampleCity, nil).Once()
		features.On("QueryAmenities", ctx, mock.Anything).Return(fivePlaces).Once()

		resp, err := uc.SearchByQuery(ctx, dto.QuerySearchRequest{Query: "  ", Address: "Example City"})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.Total)
	})

	t.Run("blank address is invalid", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, &MockFeatureRepository{}, testSearchConfig(), zap.NewNop())

		_, err := uc.SearchByQuery(ctx, dto.QuerySearchRequest{Query: "pizza", Address: "   "})

		assert.True(t, errors.Is(err, apperrors.ErrInvalidRequest))
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})
}

func TestRestaurantUseCase_GetDetails(t *testing.T) {
	ctx := context.Background()
	coord := domain.Coordinate{Lat: 40.7128, Lon: -74.006}

	t.Run("fills missing parts", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, &MockFeatureRepository{}, testSearchConfig(), zap.NewNop())

		geocoder.On("Reverse", ctx, coord).Return(&domain.ReverseAddress{
			DisplayName: "1 Main St, Smallville",
			Town:        "Smallville",
		}, nil).Once()

		resp, err := uc.GetDetails(ctx, dto.DetailsRequest{Lat: ptr(coord.Lat), Lon: ptr(coord.Lon), Name: "Joe's"})

		require.NoError(t, err)
		assert.Equal(t, "Joe's", resp.Name)
		assert.Equal(t, "1 Main St, Smallville", resp.Address)
		assert.Equal(t, "Smallville", resp.City)
		assert.Equal(t, "N/A", resp.Country)
		assert.Equal(t, coord.Lat, resp.Latitude)
	})

	t.Run("empty display name", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, &MockFeatureRepository{}, testSearchConfig(), zap.NewNop())

		geocoder.On("Reverse", ctx, coord).Return(&domain.ReverseAddress{City: "New York", Country: "USA"}, nil).Once()

		resp, err := uc.GetDetails(ctx, dto.DetailsRequest{Lat: ptr(coord.Lat), Lon: ptr(coord.Lon), Name: "Joe's"})

		require.NoError(t, err)
		assert.Equal(t, domain.NotAvailable, resp.Address)
		assert.Equal(t, "New York", resp.City)
		assert.Equal(t, "USA", resp.Country)
	})

	t.Run("reverse failure", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, &MockFeatureRepository{}, testSearchConfig(), zap.NewNop())

		geocoder.On("Reverse", ctx, coord).Return(nil, domain.ErrReverseGeocodeFailed).Once()

		resp, err := uc.GetDetails(ctx, dto.DetailsRequest{Lat: ptr(coord.Lat), Lon: ptr(coord.Lon), Name: "Joe's"})

		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, apperrors.ErrDetailsUnavailable))
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewRestaurantUseCase(geocoder, &MockFeatureRepository{}, testSearchConfig(), zap.NewNop())

		_, err := uc.GetDetails(ctx, dto.DetailsRequest{Lat: ptr(100), Lon: ptr(0), Name: "x"})

		assert.True(t, errors.Is(err, apperrors.ErrInvalidCoordinates))
		geocoder.AssertNotCalled(t, "Reverse", mock.Anything, mock.Anything)
	})
}
