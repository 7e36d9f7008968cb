package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/config"
	"github.com/restaurant-finder/internal/domain"
	"github.com/restaurant-finder/internal/domain/repository"
	"github.com/restaurant-finder/internal/pkg/metrics"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewNominatimClient создает новый клиент для Nominatim API
func NewNominatimClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger.Named("nominatim"),
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Country string `json:"country"`
	} `json:"address"`
}

// Geocode возвращает координаты первого кандидата для адреса.
// Любая ошибка превращается в domain.ErrLocationNotFound.
func (c *client) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	started := time.Now()

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeError, started)
		c.logger.Error("Geocoding error", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, address)
	}

	if len(results) == 0 {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeNotFound, started)
		c.logger.Info("Address not found", zap.String("address", address))
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, address)
	}

	first := results[0]
	lat, errLat := strconv.ParseFloat(first.Lat, 64)
	lon, errLon := strconv.ParseFloat(first.Lon, 64)
	if errLat != nil || errLon != nil {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeError, started)
		c.logger.Error("Geocoding returned unparsable coordinates",
			zap.String("address", address),
			zap.String("lat", first.Lat),
			zap.String("lon", first.Lon))
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, address)
	}

	metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeOK, started)
	c.logger.Debug("Address geocoded",
		zap.String("address", address),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return &domain.Location{
		Coordinate:  domain.Coordinate{Lat: lat, Lon: lon},
		DisplayName: first.DisplayName,
	}, nil
}

// Reverse выполняет обратное геокодирование с детализацией адреса
func (c *client) Reverse(ctx context.Context, coord domain.Coordinate) (*domain.ReverseAddress, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	started := time.Now()

	var result reverseResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeError, started)
		c.logger.Error("Reverse geocoding error",
			zap.Float64("lat", coord.Lat),
			zap.Float64("lon", coord.Lon),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrReverseGeocodeFailed, err)
	}

	// Nominatim отвечает 200 с полем error, если по точке ничего нет
	if result.Error != "" {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeNotFound, started)
		return nil, fmt.Errorf("%w: %s", domain.ErrReverseGeocodeFailed, result.Error)
	}

	metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeOK, started)

	return &domain.ReverseAddress{
		DisplayName: result.DisplayName,
		City:        result.Address.City,
		Town:        result.Address.Town,
		Country:     result.Address.Country,
	}, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling Nominatim API", zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nominatim API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
