package chains

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"ChainLens/pkg/config"
)

// httpBase is the shared transport of the per-chain data clients: a resty
// client with exponential-backoff retries behind a per-chain circuit
// breaker. Chain clients only describe WHAT to fetch; retry and tripping
// policy live here.
type httpBase struct {
	client     *resty.Client
	breaker    *gobreaker.CircuitBreaker
	maxRetries uint64
}

func newHTTPBase(name string, ep config.ChainEndpoint) *httpBase {
	timeout := ep.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	retries := ep.MaxRetries
	if retries <= 0 {
		retries = 3
	}

	client := resty.New().
		SetBaseURL(ep.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if ep.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+ep.APIKey)
	}

	breakerName := ep.BreakerName
	if breakerName == "" {
		breakerName = name + "-data"
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &httpBase{client: client, breaker: breaker, maxRetries: uint64(retries)}
}

// getJSON fetches path and decodes the JSON body into dest, retrying
// transient failures with exponential backoff inside one breaker execution.
func (b *httpBase) getJSON(ctx context.Context, path string, dest interface{}) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		op := func() error {
			resp, err := b.client.R().
				SetContext(ctx).
				SetResult(dest).
				Get(path)
			if err != nil {
				return fmt.Errorf("get %s: %w", path, err)
			}
			if resp.IsError() {
				if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
					// client-side errors will not heal on retry
					return backoff.Permanent(fmt.Errorf("get %s: status %d", path, resp.StatusCode()))
				}
				return fmt.Errorf("get %s: status %d", path, resp.StatusCode())
			}
			return nil
		}

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = 100 * time.Millisecond
		bo.MaxInterval = 2 * time.Second
		return nil, backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, b.maxRetries), ctx))
	})
	return err
}

// tokenDataResponse is the wire shape served by a chain data endpoint.
type tokenDataResponse struct {
	Metadata      map[string]interface{} `json:"metadata"`
	PriceHistory  []float64              `json:"price_history"`
	VolumeHistory []float64              `json:"volume_history"`
	LiquidityData []float64              `json:"liquidity_data"`
}
