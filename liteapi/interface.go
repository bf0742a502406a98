package liteapi

import (
	"context"

	"islandstay/models"
)

// DataSource is the set of provider operations the site depends on. The live
// client and the deterministic fixture source both implement it, so the
// gateway's fallback policy can be forced either way in tests.
type DataSource interface {
	SearchHotels(ctx context.Context, params models.HotelSearchParams) ([]models.HotelOffer, error)
	GetHotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, error)
	GetHotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, error)
	Prebook(ctx context.Context, params models.PrebookParams) (*models.PrebookResult, error)
	CreateBooking(ctx context.Context, params models.BookingParams) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	Name() string
}
