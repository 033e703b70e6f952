package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

// SignatureHeader carries the keyed hash of the raw webhook body.
const SignatureHeader = "X-Gateway-Signature"

// WebhookEvent is the provider's asynchronous notification.
type WebhookEvent struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

type WebhookData struct {
	Reference   string    `json:"reference"`
	BookingID   string    `json:"booking_id"`
	AmountMinor int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paid_at"`
	Channel     string    `json:"channel"`
}

// Outcome maps the provider's status string onto the settlement
// outcome. Anything unrecognized counts as still pending.
func (d WebhookData) Outcome() domain.Outcome {
	switch d.Status {
	case "success":
		return domain.OutcomeSuccess
	case "failed", "abandoned":
		return domain.OutcomeFailure
	default:
		return domain.OutcomePending
	}
}

// Webhook authenticates and decodes provider notifications.
type Webhook struct {
	secret []byte
}

func NewWebhook(secret string) *Webhook {
	return &Webhook{secret: []byte(secret)}
}

// VerifySignature checks the HMAC-SHA512 hex digest of the raw body.
func (w *Webhook) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, w.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the digest a provider would send; used by tests.
func (w *Webhook) Sign(body []byte) string {
	mac := hmac.New(sha512.New, w.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (w *Webhook) Parse(body []byte) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("decode webhook: %w", err)
	}
	if ev.Data.Reference == "" {
		return nil, fmt.Errorf("webhook without reference")
	}
	return &ev, nil
}
