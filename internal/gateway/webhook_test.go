package gateway

import (
	"testing"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhook_VerifySignature(t *testing.T) {
	w := NewWebhook("s3cret")
	body := []byte(`{"event":"charge.completed","data":{"reference":"ref-1"}}`)

	assert.True(t, w.VerifySignature(body, w.Sign(body)))
	assert.False(t, w.VerifySignature(body, "forged"))
	assert.False(t, w.VerifySignature([]byte(`tampered`), w.Sign(body)))

	other := NewWebhook("different-secret")
	assert.False(t, w.VerifySignature(body, other.Sign(body)))
}

func TestWebhook_Parse(t *testing.T) {
	w := NewWebhook("s3cret")

	ev, err := w.Parse([]byte(`{"event":"charge.completed","data":{"reference":"ref-1","booking_id":"b1","amount":15000,"currency":"NGN","status":"success"}}`))
	require.NoError(t, err)
	assert.Equal(t, "ref-1", ev.Data.Reference)
	assert.Equal(t, "b1", ev.Data.BookingID)
	assert.Equal(t, int64(15000), ev.Data.AmountMinor)

	_, err = w.Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = w.Parse([]byte(`{"event":"charge.completed","data":{"status":"success"}}`))
	assert.Error(t, err, "a webhook without a reference is rejected")
}

func TestWebhookData_Outcome(t *testing.T) {
	for status, want := range map[string]domain.Outcome{
		"success":     domain.OutcomeSuccess,
		"failed":      domain.OutcomeFailure,
		"abandoned":   domain.OutcomeFailure,
		"pending":     domain.OutcomePending,
		"initialized": domain.OutcomePending,
		"":            domain.OutcomePending,
	} {
		assert.Equal(t, want, WebhookData{Status: status}.Outcome(), "status %q", status)
	}
}
