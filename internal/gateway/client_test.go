package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fakeProvider is a minimal stand-in for the payment API: an OAuth
// token endpoint plus session init/verify.
type fakeProvider struct {
	t            *testing.T
	tokenCalls   atomic.Int64
	verifyStatus string
	failSessions bool
}

func (p *fakeProvider) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		p.tokenCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "expires_in": 3600})
	})
	mux.HandleFunc("POST /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if p.failSessions {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var req map[string]any
		require.NoError(p.t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]any{
			"reference":  "ref-abc",
			"access_url": "https://pay.example/ref-abc",
		})
	})
	mux.HandleFunc("GET /v1/sessions/{ref}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("ref") == "unknown" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":   p.verifyStatus,
			"amount":   15000,
			"currency": "NGN",
			"channel":  "card",
		})
	})
	return mux
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(Config{
		BaseURL:      baseURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}, newTestLogger(t), nil)
}

func TestClient_Initiate(t *testing.T) {
	provider := &fakeProvider{t: t}
	srv := httptest.NewServer(provider.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	session, err := c.Initiate(context.Background(), ports.InitiatePayment{
		BookingID:   "b1",
		AmountMinor: 15000,
		Currency:    "NGN",
		PayerEmail:  "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "ref-abc", session.Reference)
	assert.Equal(t, "https://pay.example/ref-abc", session.AccessURL)
	assert.Equal(t, int64(15000), session.AmountMinor)
}

func TestClient_TokenIsCached(t *testing.T) {
	provider := &fakeProvider{t: t}
	srv := httptest.NewServer(provider.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	in := ports.InitiatePayment{BookingID: "b1", AmountMinor: 100, Currency: "NGN", PayerEmail: "a@b.com"}

	_, err := c.Initiate(context.Background(), in)
	require.NoError(t, err)
	_, err = c.Initiate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), provider.tokenCalls.Load(), "second call reuses the cached token")
}

func TestClient_Verify_Outcomes(t *testing.T) {
	for status, want := range map[string]domain.Outcome{
		"success":     domain.OutcomeSuccess,
		"failed":      domain.OutcomeFailure,
		"abandoned":   domain.OutcomeFailure,
		"initialized": domain.OutcomePending,
	} {
		provider := &fakeProvider{t: t, verifyStatus: status}
		srv := httptest.NewServer(provider.handler())

		c := newTestClient(t, srv.URL)
		res, err := c.Verify(context.Background(), "ref-abc")

		require.NoError(t, err)
		assert.Equal(t, want, res.Outcome, "status %q", status)
		assert.Equal(t, int64(15000), res.AmountMinor)

		srv.Close()
	}
}

func TestClient_Verify_UnknownReference(t *testing.T) {
	provider := &fakeProvider{t: t}
	srv := httptest.NewServer(provider.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Verify(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrReferenceMismatch)
}

// Provider 5xx and an unreachable provider both surface as
// ErrGatewayUnavailable, never as a failed payment.
func TestClient_ProviderFaultIsUnavailable(t *testing.T) {
	provider := &fakeProvider{t: t, failSessions: true}
	srv := httptest.NewServer(provider.handler())

	c := newTestClient(t, srv.URL)
	in := ports.InitiatePayment{BookingID: "b1", AmountMinor: 100, Currency: "NGN", PayerEmail: "a@b.com"}

	_, err := c.Initiate(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)

	srv.Close() // now nothing is listening

	down := newTestClient(t, srv.URL)
	_, err = down.Initiate(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestTokenCache_Expiry(t *testing.T) {
	current := time.Now()
	cache := newTokenCache(func() time.Time { return current })

	cache.set("tok", time.Minute)
	assert.Equal(t, "tok", cache.get())

	current = current.Add(2 * time.Minute)
	assert.Empty(t, cache.get(), "expired token is not served")

	cache.set("tok2", time.Minute)
	cache.clear()
	assert.Empty(t, cache.get())
}
