package domain

// ApplySettlement is the settlement state reducer. It is invoked from
// two independent triggers (client verification and provider webhook)
// for the same booking, so it must give the same final state whatever
// the arrival order:
//
//   - a completed payment is sticky: neither a repeated success nor a
//     late failure changes anything;
//   - success moves the pair to confirmed/completed in one step;
//   - failure marks the payment failed and leaves the booking status
//     alone (the reservation keeps holding its units until cancelled).
//
// The returned bool reports whether a transition actually happened.
func ApplySettlement(bs BookingStatus, ps PaymentStatus, out Outcome) (BookingStatus, PaymentStatus, bool) {
	if ps == PaymentStatusCompleted {
		return bs, ps, false
	}

	switch out {
	case OutcomeSuccess:
		return BookingStatusConfirmed, PaymentStatusCompleted, true
	case OutcomeFailure:
		if ps == PaymentStatusFailed {
			return bs, ps, false
		}
		return bs, PaymentStatusFailed, true
	default:
		return bs, ps, false
	}
}
