package models

// PrebookParams is the price-lock request for a selected offer.
type PrebookParams struct {
	OfferID       string `json:"offerId"`
	UsePaymentSdk bool   `json:"usePaymentSdk,omitempty"`
	VoucherCode   string `json:"voucherCode,omitempty"`
}

// PrebookRoom is one room held by a prebook.
type PrebookRoom struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// PrebookPrice is the resolved price breakdown returned by prebook.
type PrebookPrice struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
	BaseFare float64 `json:"baseFare"`
	Tax      float64 `json:"tax"`
}

// PrebookResult confirms a rate is still available and price-locked. The
// prebookId is single-use and time-limited by the provider; TransactionID and
// SecretKey are only present when payment-SDK mode was requested.
type PrebookResult struct {
	PrebookID            string             `json:"prebookId"`
	HotelID              string             `json:"hotelId"`
	Hotel                string             `json:"hotel"`
	OfferID              string             `json:"offerId"`
	RoomTypeID           string             `json:"roomTypeId"`
	Rooms                []PrebookRoom      `json:"rooms"`
	Price                PrebookPrice       `json:"price"`
	BoardType            BoardType          `json:"boardType"`
	BoardName            string             `json:"boardName"`
	CancellationPolicies CancellationPolicy `json:"cancellationPolicies"`
	PaymentTypes         []string           `json:"paymentTypes"`
	TransactionID        string             `json:"transactionId,omitempty"`
	SecretKey            string             `json:"secretKey,omitempty"`
}
