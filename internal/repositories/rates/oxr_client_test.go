package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/repositories/rates"
)

func TestRatesFor_FetchesAndParsesSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/historical/2022-01-01.json", r.URL.Path)
		assert.Equal(t, "test-app-id", r.URL.Query().Get("app_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"USD":1,"EUR":0.8791,"GBP":0.7389}}`))
	}))
	defer server.Close()

	client := rates.NewOXRClient("test-app-id", server.URL, 5*time.Second)

	snapshot, err := client.RatesFor(context.Background(), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "USD", snapshot.Base)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), snapshot.Date)

	rate, ok := snapshot.RateFor("EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.8791)))

	_, ok = snapshot.RateFor("JPY")
	assert.False(t, ok)
}

func TestRatesFor_CachesPerDate(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"base":"USD","rates":{"USD":1}}`))
	}))
	defer server.Close()

	client := rates.NewOXRClient("test-app-id", server.URL, 5*time.Second)
	ctx := context.Background()
	date := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := client.RatesFor(ctx, date)
	require.NoError(t, err)
	second, err := client.RatesFor(ctx, date)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), hits.Load(), "same date must hit upstream once")

	// A different date is a separate snapshot.
	_, err = client.RatesFor(ctx, time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRatesFor_ConcurrentRequestsCollapse(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte(`{"base":"USD","rates":{"USD":1}}`))
	}))
	defer server.Close()

	client := rates.NewOXRClient("test-app-id", server.URL, 5*time.Second)
	ctx := context.Background()
	date := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.RatesFor(ctx, date)
		}(i)
	}

	// Let the goroutines pile up on the in-flight fetch, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), hits.Load(), "concurrent first requests must share one fetch")
}

func TestRatesFor_UpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"message":"invalid_app_id"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := rates.NewOXRClient("bad-app-id", server.URL, 5*time.Second)

	snapshot, err := client.RatesFor(context.Background(), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}

func TestRatesFor_ErrorIsNotCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"base":"USD","rates":{"USD":1}}`))
	}))
	defer server.Close()

	client := rates.NewOXRClient("test-app-id", server.URL, 5*time.Second)
	ctx := context.Background()
	date := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := client.RatesFor(ctx, date)
	require.ErrorIs(t, err, apperrors.ErrRateUnavailable)

	snapshot, err := client.RatesFor(ctx, date)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRatesFor_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := rates.NewOXRClient("test-app-id", server.URL, 5*time.Second)

	snapshot, err := client.RatesFor(context.Background(), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}
