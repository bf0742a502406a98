package models

// BoardType is the meal-plan category attached to a rate.
type BoardType string

const (
	BoardRoomOnly     BoardType = "RO"
	BoardBreakfast    BoardType = "BB"
	BoardHalfBoard    BoardType = "HB"
	BoardFullBoard    BoardType = "FB"
	BoardAllInclusive BoardType = "AI"
	BoardBedOnly      BoardType = "BD"
	BoardBreakfastLunch BoardType = "BL"
	BoardDinner       BoardType = "DI"
)

// Refundable tag values carried by a rate's cancellation policy.
const (
	RefundableTagRefundable    = "refundable"
	RefundableTagNonRefundable = "non_refundable"
)

// Price is an amount in a given currency.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// FeeItem is a supplemental charge attached to a retail rate.
type FeeItem struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// TaxItem is a tax line attached to a retail rate.
type TaxItem struct {
	Included bool    `json:"included"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// RetailRate is the priced portion of a rate. The first entry of Total is the
// authoritative displayed price.
type RetailRate struct {
	Total []Price   `json:"total"`
	Fees  []FeeItem `json:"fees,omitempty"`
	Taxes []TaxItem `json:"taxes,omitempty"`
}

// DisplayedTotal returns the authoritative total amount, or zero when the
// provider sent an empty total list.
func (r RetailRate) DisplayedTotal() float64 {
	if len(r.Total) == 0 {
		return 0
	}
	return r.Total[0].Amount
}

// CancelPolicyInfo is one time-windowed penalty rule.
type CancelPolicyInfo struct {
	FromDate    string  `json:"fromDate"`
	ToDate      string  `json:"toDate"`
	PenaltyType string  `json:"penaltyType"`
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
}

// HotelRemark is free-form policy text supplied by the hotel.
type HotelRemark struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CancellationPolicy groups the penalty windows and the binary refundable tag.
type CancellationPolicy struct {
	CancelPolicyInfos []CancelPolicyInfo `json:"cancelPolicyInfos"`
	HotelRemarks      []HotelRemark      `json:"hotelRemarks,omitempty"`
	RefundableTag     string             `json:"refundableTag"`
}

// Refundable reports whether the policy carries the refundable tag.
func (p CancellationPolicy) Refundable() bool {
	return p.RefundableTag == RefundableTagRefundable
}

// Rate is one priced room/board combination within an offer.
type Rate struct {
	RateID               string             `json:"rateId"`
	OccupancyNumber      int                `json:"occupancyNumber"`
	Name                 string             `json:"name"`
	MaxOccupancy         int                `json:"maxOccupancy"`
	AdultCount           int                `json:"adultCount"`
	ChildCount           int                `json:"childCount"`
	BoardType            BoardType          `json:"boardType"`
	BoardName            string             `json:"boardName"`
	PriceType            string             `json:"priceType"`
	RetailRate           RetailRate         `json:"retailRate"`
	CancellationPolicies CancellationPolicy `json:"cancellationPolicies"`
	Amenities            []string           `json:"amenities,omitempty"`
}

// RoomType groups the rates sold under one offer. The offerId is the handle
// passed to prebook.
type RoomType struct {
	OfferID    string `json:"offerId"`
	Supplier   string `json:"supplier"`
	SupplierID int    `json:"supplierId"`
	Rates      []Rate `json:"rates"`
}

// HotelOffer is a hotel's bookable room-rate bundle returned from search.
type HotelOffer struct {
	HotelID   string     `json:"hotelId"`
	RoomTypes []RoomType `json:"roomTypes"`
}

// AllRates flattens the rates across the offer's room types.
func (o HotelOffer) AllRates() []Rate {
	var rates []Rate
	for _, rt := range o.RoomTypes {
		rates = append(rates, rt.Rates...)
	}
	return rates
}

// EnrichedOffer is a HotelOffer with the derived fields the search results
// view filters and sorts on.
type EnrichedOffer struct {
	HotelOffer
	HotelName     string  `json:"hotelName,omitempty"`
	MinPrice      float64 `json:"minPrice"`
	MaxRating     float64 `json:"maxRating"`
	HasRefundable bool    `json:"hasRefundable"`
}
