package models

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// GuestInfo is the holder data captured once per booking attempt.
type GuestInfo struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Validate checks the required holder fields.
func (g GuestInfo) Validate() error {
	if strings.TrimSpace(g.FirstName) == "" {
		return &ValidationError{Field: "firstName", Message: "first name is required"}
	}
	if strings.TrimSpace(g.LastName) == "" {
		return &ValidationError{Field: "lastName", Message: "last name is required"}
	}
	if !emailPattern.MatchString(g.Email) {
		return &ValidationError{Field: "email", Message: "a valid email is required"}
	}
	return nil
}

// BookingHolder is the reservation holder as the provider expects it.
type BookingHolder struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// PaymentInfo is the payment proof attached to a booking request.
type PaymentInfo struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId,omitempty"`
}

// BookingParams is the final booking request keyed by a prebookId.
type BookingParams struct {
	PrebookID       string          `json:"prebookId"`
	Holder          BookingHolder   `json:"holder"`
	Payment         PaymentInfo     `json:"payment"`
	Guests          []BookingHolder `json:"guests,omitempty"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
}

// BookingStatus is the provider-driven lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// BookedHotel is the hotel snapshot frozen into a booking.
type BookedHotel struct {
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// BookedRoom is the room snapshot frozen into a booking.
type BookedRoom struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// BookedGuest is the holder snapshot frozen into a booking.
type BookedGuest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// BookingPrice is the total charged for a booking.
type BookingPrice struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}

// Booking is the confirmed reservation. Immutable once created except for
// provider-driven status transitions.
type Booking struct {
	BookingID             string             `json:"bookingId"`
	Status                BookingStatus      `json:"status"`
	HotelConfirmationCode string             `json:"hotelConfirmationCode,omitempty"`
	Checkin               string             `json:"checkin"`
	Checkout              string             `json:"checkout"`
	Hotel                 BookedHotel        `json:"hotel"`
	Rooms                 []BookedRoom       `json:"rooms"`
	GuestInfo             BookedGuest        `json:"guestInfo"`
	Price                 BookingPrice       `json:"price"`
	CancellationPolicies  CancellationPolicy `json:"cancellationPolicies"`
}
