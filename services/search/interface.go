package search

import (
	"context"

	"islandstay/models"
)

// OfferGateway is the slice of the provider gateway the search engine uses.
type OfferGateway interface {
	SearchHotels(ctx context.Context, params models.HotelSearchParams) ([]models.HotelOffer, string, error)
	GetHotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, string, error)
	GetHotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, string, error)
}

// HotelCache joins hotel names and ratings onto offers and absorbs repeated
// detail lookups.
type HotelCache interface {
	GetDetails(ctx context.Context, hotelID, currency string) *models.HotelDetails
	SetDetails(ctx context.Context, currency string, details *models.HotelDetails)
	Summaries(ctx context.Context, hotelIDs []string, currency string) map[string]models.HotelSummary
}

// Result is a filtered, ordered offer list plus the data source that produced
// it. Source is never a mix: a response is entirely live or entirely fixture.
type Result struct {
	Offers []models.EnrichedOffer `json:"offers"`
	Source string                 `json:"source"`
}

// SearchService validates search input, queries the gateway and applies the
// filter engine.
type SearchService interface {
	Search(ctx context.Context, params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*Result, error)
	HotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, string, error)
	HotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) (*Result, error)
}
