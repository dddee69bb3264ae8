package client

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Doer is the minimal HTTP surface the client needs, swappable in tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config tunes timeouts, retries and the circuit breaker of an API client.
type Config struct {
	Timeout         time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	RetryMultiplier float64
	BreakerTimeout  time.Duration
}

// apiClient wraps an HTTP client with exponential-backoff retries and a
// circuit breaker. Concrete API clients build on top of it.
type apiClient struct {
	httpClient Doer
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger

	maxRetries int
	retryDelay time.Duration
	multiplier float64
}

func newAPIClient(name string, cfg Config, logger *zap.Logger) *apiClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &apiClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		multiplier: cfg.RetryMultiplier,
	}
}

// get fetches the URL through the circuit breaker, retrying transient
// failures, and returns the response body.
func (c *apiClient) get(ctx context.Context, url string) ([]byte, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.getWithRetry(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *apiClient) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(c.retryDelay) * math.Pow(c.multiplier, float64(attempt-1)))
			c.logger.Debug("retrying request",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn("request failed",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				lastErr = err
				continue
			}
			return body, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)

		// 4xx responses will not get better on retry, except 429.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			break
		}
	}

	return nil, fmt.Errorf("request failed: %w", lastErr)
}
