package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/config"
	"github.com/restaurant-finder/internal/domain"
	"github.com/restaurant-finder/internal/domain/repository"
	"github.com/restaurant-finder/internal/pkg/metrics"
)

type client struct {
	httpClient   *http.Client
	url          string
	userAgent    string
	queryTimeout int
	retry        retryPolicy
	logger       *zap.Logger
}

type response struct {
	Elements []domain.Element `json:"elements"`
}

// NewOverpassClient создает новый клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.FeatureRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:          cfg.URL,
		userAgent:    cfg.UserAgent,
		queryTimeout: cfg.QueryTimeout,
		retry:        newRetryPolicy(cfg.RetryDelay),
		logger:       logger.Named("overpass"),
	}
}

// QueryAmenities выполняет запрос с одним повтором. При исчерпании попыток
// возвращает пустой срез: для вызывающего это неотличимо от пустого района.
func (c *client) QueryAmenities(ctx context.Context, box domain.BoundingBox) []domain.Element {
	query := BuildAmenityQuery(box, c.queryTimeout)

	var elements []domain.Element
	state, err := c.retry.run(ctx, func(ctx context.Context, attempt int) error {
		result, err := c.execute(ctx, query)
		if err != nil {
			metrics.OverpassAttempts.WithLabelValues(strconv.Itoa(attempt), "error").Inc()
			if attempt == 1 {
				c.logger.Warn("Overpass attempt failed, retrying",
					zap.Int("attempt", attempt),
					zap.Duration("delay", c.retry.delay),
					zap.Error(err))
			}
			return err
		}
		metrics.OverpassAttempts.WithLabelValues(strconv.Itoa(attempt), "ok").Inc()
		elements = result
		return nil
	})

	if state != stateDone {
		metrics.UpstreamRequests.WithLabelValues(metrics.ServiceOverpass, metrics.OutcomeGaveUp).Inc()
		c.logger.Error("Overpass query gave up", zap.Error(err))
		return []domain.Element{}
	}

	c.logger.Info("Overpass query completed", zap.Int("elements", len(elements)))
	if elements == nil {
		return []domain.Element{}
	}
	return elements
}

func (c *client) execute(ctx context.Context, query string) ([]domain.Element, error) {
	started := time.Now()

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(metrics.ServiceOverpass, metrics.OutcomeError, started)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(metrics.ServiceOverpass, metrics.OutcomeError, started)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("overpass API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.ObserveUpstream(metrics.ServiceOverpass, metrics.OutcomeError, started)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	outcome := metrics.OutcomeOK
	if len(result.Elements) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.ObserveUpstream(metrics.ServiceOverpass, outcome, started)

	return result.Elements, nil
}
