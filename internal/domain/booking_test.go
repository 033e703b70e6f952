package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_AmountMinor(t *testing.T) {
	b := &Booking{TotalPrice: 249.99}
	assert.Equal(t, int64(24999), b.AmountMinor())

	// 0.1+0.2 style float noise must not shift the amount by a cent.
	b = &Booking{TotalPrice: 120.30000000000001}
	assert.Equal(t, int64(12030), b.AmountMinor())

	b = &Booking{TotalPrice: 0}
	assert.Equal(t, int64(0), b.AmountMinor())
}

func TestBooking_Holding(t *testing.T) {
	for status, want := range map[BookingStatus]bool{
		BookingStatusPending:   true,
		BookingStatusConfirmed: true,
		BookingStatusCompleted: true,
		BookingStatusCancelled: false,
	} {
		b := &Booking{BookingStatus: status}
		assert.Equal(t, want, b.Holding(), "status %s", status)
	}
}

func TestItinerary_OneWay(t *testing.T) {
	it := OneWay("u1")

	assert.Equal(t, "u1", it.Outbound())
	assert.False(t, it.IsRoundTrip())
	_, ok := it.Return()
	assert.False(t, ok)
	assert.Equal(t, []string{"u1"}, it.UnitIDs())
}

func TestItinerary_RoundTrip(t *testing.T) {
	it := RoundTrip("out", "back")

	assert.Equal(t, "out", it.Outbound())
	assert.True(t, it.IsRoundTrip())
	ret, ok := it.Return()
	assert.True(t, ok)
	assert.Equal(t, "back", ret)
	assert.Equal(t, []string{"out", "back"}, it.UnitIDs())
}

func TestPrincipal_MayManage(t *testing.T) {
	booking := &Booking{UserID: "owner"}

	assert.True(t, Principal{UserID: "owner", Role: RoleUser}.MayManage(booking))
	assert.False(t, Principal{UserID: "other", Role: RoleUser}.MayManage(booking))
	assert.True(t, Principal{UserID: "other", Role: RoleAdmin}.MayManage(booking))
}
