package liteapi

import (
	"context"

	"islandstay/models"

	"go.uber.org/zap"
)

// Data source labels attached to read results so fixture data is never
// mistaken for live inventory.
const (
	SourceLive    = "live"
	SourceFixture = "fixture"
)

// Gateway fronts the live data source with a fallback policy: read operations
// may substitute the fixture catalogue when the provider fails, logged and
// labelled, and never mixed with live data in the same response. Prebook,
// booking and cancellation always propagate provider errors.
type Gateway struct {
	live     DataSource
	fixture  DataSource
	fallback bool
	logger   *zap.Logger
}

// NewGateway builds a gateway. With fallback disabled, read failures propagate
// like any other provider error.
func NewGateway(live, fixture DataSource, fallback bool, logger *zap.Logger) *Gateway {
	return &Gateway{live: live, fixture: fixture, fallback: fallback, logger: logger}
}

// SearchHotels returns offers and the source that produced them.
func (g *Gateway) SearchHotels(ctx context.Context, params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
	offers, err := g.live.SearchHotels(ctx, params)
	if err == nil {
		return offers, SourceLive, nil
	}
	if !g.fallback {
		return nil, "", err
	}
	g.logger.Warn("provider search failed, serving fixture data",
		zap.String("provider", g.live.Name()), zap.Error(err))
	offers, ferr := g.fixture.SearchHotels(ctx, params)
	if ferr != nil {
		return nil, "", err
	}
	return offers, SourceFixture, nil
}

// GetHotelDetails returns the hotel record and the source that produced it.
func (g *Gateway) GetHotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, string, error) {
	details, err := g.live.GetHotelDetails(ctx, hotelID, currency)
	if err == nil {
		return details, SourceLive, nil
	}
	if !g.fallback {
		return nil, "", err
	}
	g.logger.Warn("provider hotel details failed, serving fixture data",
		zap.String("hotelId", hotelID), zap.Error(err))
	details, ferr := g.fixture.GetHotelDetails(ctx, hotelID, currency)
	if ferr != nil {
		return nil, "", err
	}
	return details, SourceFixture, nil
}

// GetHotelRates returns a single hotel's offers and the producing source.
func (g *Gateway) GetHotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
	offers, err := g.live.GetHotelRates(ctx, hotelID, params)
	if err == nil {
		return offers, SourceLive, nil
	}
	if !g.fallback {
		return nil, "", err
	}
	g.logger.Warn("provider hotel rates failed, serving fixture data",
		zap.String("hotelId", hotelID), zap.Error(err))
	offers, ferr := g.fixture.GetHotelRates(ctx, hotelID, params)
	if ferr != nil {
		return nil, "", err
	}
	return offers, SourceFixture, nil
}

// Prebook never falls back: a fixture cannot price-lock real inventory.
func (g *Gateway) Prebook(ctx context.Context, params models.PrebookParams) (*models.PrebookResult, error) {
	return g.live.Prebook(ctx, params)
}

// CreateBooking never falls back.
func (g *Gateway) CreateBooking(ctx context.Context, params models.BookingParams) (*models.Booking, error) {
	return g.live.CreateBooking(ctx, params)
}

// GetBooking never falls back: the provider is the single source of truth for
// booking state.
func (g *Gateway) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return g.live.GetBooking(ctx, bookingID)
}

// CancelBooking never falls back.
func (g *Gateway) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return g.live.CancelBooking(ctx, bookingID)
}
