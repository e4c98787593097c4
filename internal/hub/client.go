// Package hub implements a client for the hub search API.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hfsearch/internal/config"
	"hfsearch/internal/logger"

	"github.com/tidwall/gjson"
)

// Request errors surfaced by the client.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrRateLimited          = errors.New("rate limited")
)

// Hub search endpoints.
const (
	modelsPath   = "/api/models"
	datasetsPath = "/api/datasets"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 16 << 20

// Client performs search requests against the hub API with config-driven
// retry logic.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	token       string
	userAgent   string
	retryPolicy *config.RetryPolicy
	logger      *logger.Logger
}

// NewClient creates a hub client from configuration.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	retry := cfg.Retry

	return &Client{
		httpClient: &http.Client{
			Timeout: retry.GetTimeout(),
		},
		endpoint:    cfg.Hub.Endpoint,
		token:       cfg.Hub.Token,
		userAgent:   cfg.Hub.UserAgent,
		retryPolicy: &retry,
		logger:      log,
	}
}

// SearchModels queries the hub for models matching the query.
func (c *Client) SearchModels(ctx context.Context, q Query) ([]ModelInfo, error) {
	body, err := c.get(ctx, modelsPath, q.Encode(true))
	if err != nil {
		return nil, fmt.Errorf("failed to search models: %w", err)
	}

	var results []ModelInfo
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse models response: %w", err)
	}

	return results, nil
}

// SearchDatasets queries the hub for datasets matching the query.
func (c *Client) SearchDatasets(ctx context.Context, q Query) ([]DatasetInfo, error) {
	body, err := c.get(ctx, datasetsPath, q.Encode(false))
	if err != nil {
		return nil, fmt.Errorf("failed to search datasets: %w", err)
	}

	var results []DatasetInfo
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse datasets response: %w", err)
	}

	return results, nil
}

// get fetches path with the given parameters, retrying transient failures
// according to the retry policy.
func (c *Client) get(ctx context.Context, path string, vals url.Values) ([]byte, error) {
	requestURL := c.endpoint + path
	if encoded := vals.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	var lastErr error

	for attempt := 1; attempt <= c.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.retryPolicy.GetRetryDelay(attempt)
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
		}

		startTime := time.Now()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, c.retryPolicy.MaxAttempts, err)
			c.logger.Debug("hub request failed", "url", requestURL, "attempt", attempt, "error", err)

			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		closeErr := resp.Body.Close()

		c.logger.Debug("hub request",
			"url", requestURL,
			"status", resp.StatusCode,
			"duration", time.Since(startTime),
			"attempt", attempt,
		)

		if resp.StatusCode != http.StatusOK {
			lastErr = apiError(resp.StatusCode, body)

			if !isRetryableStatus(resp.StatusCode) {
				return nil, lastErr
			}

			continue
		}

		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)

			continue
		}

		if closeErr != nil {
			return nil, fmt.Errorf("failed to close response body: %w", closeErr)
		}

		return body, nil
	}

	return nil, lastErr
}

// apiError converts a non-200 response into an error carrying the hub's
// message when one is present. Error bodies look like {"error": "..."}.
func apiError(statusCode int, body []byte) error {
	msg := gjson.GetBytes(body, "error").String()
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (%d): %s", ErrUnauthorized, statusCode, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	}

	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatusCode, statusCode, msg)
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable: // 503
		return true
	case http.StatusGatewayTimeout: // 504
		return true
	case http.StatusTooManyRequests: // 429
		return true
	case http.StatusRequestTimeout: // 408
		return true
	}

	return false
}
