// Package gateway wraps the external payment provider. The rest of the
// system only sees ports.PaymentGateway: open a session, verify a
// reference. Provider faults are reported as
// domain.ErrGatewayUnavailable and never as a payment failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type Client struct {
	cfg    Config
	httpc  *http.Client
	tokens *tokenCache
	log    logger.Logger
}

// NewClient builds the adapter. now may be nil outside tests.
func NewClient(cfg Config, log logger.Logger, now func() time.Time) *Client {
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: 15 * time.Second},
		tokens: newTokenCache(now),
		log:    log,
	}
}

type sessionRequest struct {
	AmountMinor int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Email       string            `json:"email"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type sessionResponse struct {
	Reference string `json:"reference"`
	AccessURL string `json:"access_url"`
}

type verifyResponse struct {
	Status      string    `json:"status"`
	AmountMinor int64     `json:"amount"`
	Currency    string    `json:"currency"`
	PaidAt      time.Time `json:"paid_at"`
	Channel     string    `json:"channel"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *Client) Initiate(ctx context.Context, in ports.InitiatePayment) (*domain.PaymentSession, error) {
	body := sessionRequest{
		AmountMinor: in.AmountMinor,
		Currency:    in.Currency,
		Email:       in.PayerEmail,
		Metadata:    map[string]string{"booking_id": in.BookingID},
	}

	var resp sessionResponse
	if err := c.call(ctx, http.MethodPost, "/v1/sessions", body, &resp); err != nil {
		return nil, fmt.Errorf("initiate session: %w", err)
	}

	return &domain.PaymentSession{
		Reference:   resp.Reference,
		AccessURL:   resp.AccessURL,
		AmountMinor: in.AmountMinor,
		Currency:    in.Currency,
	}, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (*domain.GatewayOutcome, error) {
	var resp verifyResponse
	path := "/v1/sessions/" + url.PathEscape(reference)
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}

	out := domain.OutcomePending
	switch resp.Status {
	case "success":
		out = domain.OutcomeSuccess
	case "failed", "abandoned":
		out = domain.OutcomeFailure
	}

	return &domain.GatewayOutcome{
		Outcome:     out,
		AmountMinor: resp.AmountMinor,
		Currency:    resp.Currency,
		PaidAt:      resp.PaidAt,
		Channel:     resp.Channel,
	}, nil
}

// call performs one authenticated request, refreshing the bearer token
// once if the provider rejects it.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.bearer(ctx)
		if err != nil {
			return err
		}

		status, err := c.do(ctx, method, path, token, body, out)
		if err != nil {
			return err
		}

		switch {
		case status == http.StatusUnauthorized:
			c.tokens.clear()
			continue
		case status == http.StatusNotFound:
			return domain.ErrReferenceMismatch
		case status >= 500:
			return fmt.Errorf("%w: provider returned %d", domain.ErrGatewayUnavailable, status)
		case status >= 400:
			return fmt.Errorf("provider rejected request: %d", status)
		}

		return nil
	}

	return fmt.Errorf("%w: authentication kept failing", domain.ErrGatewayUnavailable)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, rd)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, fmt.Errorf("%w: decode response: %v", domain.ErrGatewayUnavailable, err)
		}
	}

	return resp.StatusCode, nil
}

func (c *Client) bearer(ctx context.Context) (string, error) {
	if token := c.tokens.get(); token != "" {
		return token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.cfg.BaseURL+"/oauth/token",
		bytes.NewBufferString(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decode token: %v", domain.ErrGatewayUnavailable, err)
	}

	ttl := time.Duration(tr.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	c.tokens.set(tr.AccessToken, ttl)

	return tr.AccessToken, nil
}
