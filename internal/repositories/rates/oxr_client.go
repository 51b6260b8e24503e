package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
)

// DefaultBaseURL is the production endpoint of the historical rate service.
const DefaultBaseURL = "https://openexchangerates.org/api"

// OXRClient fetches historical exchange rate snapshots from an
// openexchangerates-compatible service. Snapshots are immutable per calendar
// date, so the client caches them indefinitely; concurrent first requests for
// the same date collapse into a single upstream fetch.
type OXRClient struct {
	appID      string
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	cache map[string]*domain.RateSnapshot
	group singleflight.Group
}

var _ portsrepo.HistoricalRateSource = (*OXRClient)(nil)

// NewOXRClient creates a rate client. The app id is the service credential,
// configured once at process start. fetchTimeout bounds each upstream call so
// a stalled rate service cannot hang the posting pipeline.
func NewOXRClient(appID, baseURL string, fetchTimeout time.Duration) *OXRClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OXRClient{
		appID:      appID,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
		cache:      make(map[string]*domain.RateSnapshot),
	}
}

// historicalResponse mirrors the service's historical endpoint payload.
type historicalResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RatesFor returns the rate snapshot for the given calendar date, fetching it
// from the rate service on first use.
func (c *OXRClient) RatesFor(ctx context.Context, date time.Time) (*domain.RateSnapshot, error) {
	key := date.UTC().Format(domain.RateDateLayout)

	c.mu.RLock()
	snapshot, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return snapshot, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the group: a previous flight may have filled the cache.
		c.mu.RLock()
		cached, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fetched, err := c.fetch(ctx, key)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[key] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.RateSnapshot), nil
}

func (c *OXRClient) fetch(ctx context.Context, dateKey string) (*domain.RateSnapshot, error) {
	endpoint := fmt.Sprintf("%s/historical/%s.json?app_id=%s", c.baseURL, dateKey, url.QueryEscape(c.appID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching rates for %s: %v", apperrors.ErrRateUnavailable, dateKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate service returned status %d for %s", apperrors.ErrRateUnavailable, resp.StatusCode, dateKey)
	}

	var payload historicalResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding rates for %s: %v", apperrors.ErrRateUnavailable, dateKey, err)
	}

	date, err := time.ParseInLocation(domain.RateDateLayout, dateKey, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}

	return &domain.RateSnapshot{
		Date:  date,
		Base:  payload.Base,
		Rates: payload.Rates,
	}, nil
}
