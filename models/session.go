package models

import "time"

// CheckoutState is the checkout flow's position between room selection and a
// confirmed booking.
type CheckoutState string

const (
	StateSelectingRoom   CheckoutState = "selecting_room"
	StateAwaitingPrebook CheckoutState = "awaiting_prebook"
	StateGuestInfo       CheckoutState = "guest_info"
	StatePayment         CheckoutState = "payment"
	StateProcessing      CheckoutState = "processing"
	StateConfirmed       CheckoutState = "confirmed"
)

// PaymentHandle identifies a mounted payment collection attempt.
type PaymentHandle struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId,omitempty"`
	SecretKey     string `json:"secretKey,omitempty"`
	Provider      string `json:"provider,omitempty"`
}

// CheckoutSession is the ephemeral state of one in-progress booking. It is
// created when a room is selected, populated by prebook, and cleared exactly
// once: on a successful booking or an explicit abandon.
type CheckoutSession struct {
	SessionID string        `json:"sessionId"`
	State     CheckoutState `json:"state"`

	HotelID   string `json:"hotelId,omitempty"`
	OfferID   string `json:"offerId,omitempty"`
	PrebookID string `json:"prebookId,omitempty"`
	Checkin   string `json:"checkin,omitempty"`
	Checkout  string `json:"checkout,omitempty"`
	Guests    int    `json:"guests,omitempty"`

	Price PrebookPrice `json:"price,omitempty"`

	// Payment handoff fields issued at prebook time (payment-SDK mode) or by
	// the card payment adapter.
	TransactionID  string         `json:"transactionId,omitempty"`
	SecretKey      string         `json:"secretKey,omitempty"`
	WantsCardSDK   bool           `json:"wantsCardSdk,omitempty"`
	PaymentHandle  *PaymentHandle `json:"paymentHandle,omitempty"`
	PaymentMounted bool           `json:"paymentMounted,omitempty"`

	Guest *GuestInfo `json:"guest,omitempty"`

	// BookingID is the sole required handoff value once confirmed.
	BookingID string `json:"bookingId,omitempty"`
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentSDKEnabled reports whether the session carries the transaction/secret
// pair required to enter the payment step.
func (s *CheckoutSession) PaymentSDKEnabled() bool {
	return s.TransactionID != "" && s.SecretKey != ""
}
