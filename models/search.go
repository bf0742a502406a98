package models

import "fmt"

// Occupancy describes one room's guest makeup in a search request.
type Occupancy struct {
	Rooms    int   `json:"rooms"`
	Adults   int   `json:"adults"`
	Children []int `json:"children,omitempty"`
}

// HotelSearchParams is the rate-search request forwarded to the provider.
type HotelSearchParams struct {
	CityName         string      `json:"cityName,omitempty"`
	CountryCode      string      `json:"countryCode,omitempty"`
	Checkin          string      `json:"checkin"`
	Checkout         string      `json:"checkout"`
	Currency         string      `json:"currency,omitempty"`
	GuestNationality string      `json:"guestNationality,omitempty"`
	Occupancies      []Occupancy `json:"occupancies"`
	HotelIDs         []string    `json:"hotelIds,omitempty"`
	CityID           string      `json:"cityId,omitempty"`
	IataCode         string      `json:"iataCode,omitempty"`
	Latitude         float64     `json:"latitude,omitempty"`
	Longitude        float64     `json:"longitude,omitempty"`
	Radius           int         `json:"radius,omitempty"`
	MinRating        float64     `json:"minRating,omitempty"`
	StarRating       []int       `json:"starRating,omitempty"`
	Timeout          int         `json:"timeout,omitempty"`
}

// Validate checks the fields the provider requires. The gateway is never
// invoked when this fails.
func (p HotelSearchParams) Validate() error {
	if p.Checkin == "" {
		return &ValidationError{Field: "checkin", Message: "checkin is required"}
	}
	if p.Checkout == "" {
		return &ValidationError{Field: "checkout", Message: "checkout is required"}
	}
	if len(p.Occupancies) == 0 {
		return &ValidationError{Field: "occupancies", Message: "at least one occupancy is required"}
	}
	return nil
}

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// SortKey selects the ordering of a filtered result set.
type SortKey string

const (
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
	SortByName   SortKey = "name"
)

// FilterOptions are the AND-combined predicates applied to enriched offers.
// A zero PriceMax means no upper bound.
type FilterOptions struct {
	PriceMin     float64     `json:"priceMin"`
	PriceMax     float64     `json:"priceMax"`
	BoardTypes   []BoardType `json:"boardTypes,omitempty"`
	IsRefundable bool        `json:"isRefundable"`
}
