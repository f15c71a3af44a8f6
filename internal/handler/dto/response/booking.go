package response

import "pontomais/internal/usecase/queries"

// BookingConfirmation is the receipt returned by POST /api/bookings
type BookingConfirmation struct {
	*queries.BookingView
	Replayed bool `json:"replayed"`
}
