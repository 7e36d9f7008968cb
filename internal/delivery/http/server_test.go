package http

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/config"
	"github.com/restaurant-finder/internal/delivery/http/handler"
	"github.com/restaurant-finder/internal/delivery/http/middleware"
	"github.com/restaurant-finder/internal/usecase"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Nominatim: config.NominatimConfig{Timeout: time.Second},
		Overpass:  config.OverpassConfig{Timeout: time.Second, RetryDelay: time.Millisecond},
		Search:    config.SearchConfig{DefaultRadius: 1000, DefaultLimit: 10, MaxRadius: 50000, MaxLimit: 100, OverFetchFactor: 2},
	}
	uc := usecase.NewRestaurantUseCase(nil, nil, cfg.Search, zap.NewNop())
	return NewServer(cfg, zap.NewNop(), handler.NewRestaurantHandler(uc, zap.NewNop()))
}

func TestServer_Health(t *testing.T) {
	s := newTestServer()

	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"healthy"`)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer()

	_, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)

	resp, err := s.App().Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "http_requests_total")
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer()

	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/nope", nil))
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestServer_InvalidSearchRejectedBeforeUpstream(t *testing.T) {
	s := newTestServer()

	// nil repositories: reaching them would panic and return 500
	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/restaurants/nearby?lat=200&lon=0", nil))
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
}
