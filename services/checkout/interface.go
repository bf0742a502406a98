package checkout

import (
	"context"

	"islandstay/models"
)

// ProviderGateway is the slice of the provider gateway the checkout flow
// drives. Prebook and CreateBooking never substitute fixture data.
type ProviderGateway interface {
	Prebook(ctx context.Context, params models.PrebookParams) (*models.PrebookResult, error)
	CreateBooking(ctx context.Context, params models.BookingParams) (*models.Booking, error)
}

// SessionStore persists checkout sessions between navigation steps. Sessions
// are single-writer: one flow instance owns one session.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, session *models.CheckoutSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RateSelection is the user's chosen rate plus the stay context carried into
// the session.
type RateSelection struct {
	HotelID       string `json:"hotelId"`
	OfferID       string `json:"offerId"`
	Checkin       string `json:"checkin"`
	Checkout      string `json:"checkout"`
	Guests        int    `json:"guests"`
	UsePaymentSdk bool   `json:"usePaymentSdk"`
	VoucherCode   string `json:"voucherCode,omitempty"`
}

// CheckoutService is the ordered state machine driving a user from room
// selection through payment to a confirmed booking.
type CheckoutService interface {
	Start(ctx context.Context, sel RateSelection) (*models.CheckoutSession, error)
	SubmitGuestInfo(ctx context.Context, sessionID string, guest models.GuestInfo) (*models.CheckoutSession, error)
	CompletePayment(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	FailPayment(ctx context.Context, sessionID, message string) (*models.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Abandon(ctx context.Context, sessionID string) error
}
