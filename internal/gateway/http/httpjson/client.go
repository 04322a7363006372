package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/gateway/metrics"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	maxBodySize = 1 << 20
)

// StatusError - ответ с неуспешным HTTP-кодом.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.Code)
}

// Client выполняет GET-запросы с JSON-ответом, ретраями и метриками шлюза.
type Client struct {
	http    *http.Client
	retrier retrierconfig.Retrier
	service string
	headers http.Header
}

func New(service string, timeout time.Duration, headers http.Header) *Client {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     IsRetryable,
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		retrier: backoff_adapter.New(retryConfig),
		service: service,
		headers: headers,
	}
}

// GetJSON декодирует тело 2xx-ответа в out. Неуспешный код возвращается как
// *StatusError.
func (c *Client) GetJSON(ctx context.Context, method, url string, out any) error {
	var attempt uint64
	start := time.Now()

	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return c.get(ctx, url, out)
	})

	metrics.Observe(c.service, method, statusLabel(err), start, attempt)
	return err
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsRetryable: 429, 5xx и транспортные ошибки.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= http.StatusInternalServerError
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "transport"
}
