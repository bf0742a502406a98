package liteapi

import (
	"context"
	"net/http"

	"islandstay/models"
)

// FixtureSource is the deterministic offline data source. It serves a fixed
// catalogue for the read operations so search and hotel pages keep working
// when the provider is unreachable. Financial operations always fail: a
// fixture must never fake a prebook or booking success.
type FixtureSource struct{}

func NewFixtureSource() *FixtureSource { return &FixtureSource{} }

func (f *FixtureSource) Name() string { return "fixture" }

func (f *FixtureSource) SearchHotels(ctx context.Context, params models.HotelSearchParams) ([]models.HotelOffer, error) {
	return fixtureOffers(), nil
}

func (f *FixtureSource) GetHotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, error) {
	d := fixtureHotelDetails(hotelID)
	return &d, nil
}

func (f *FixtureSource) GetHotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, error) {
	for _, offer := range fixtureOffers() {
		if offer.HotelID == hotelID {
			return []models.HotelOffer{offer}, nil
		}
	}
	return nil, nil
}

func (f *FixtureSource) Prebook(ctx context.Context, params models.PrebookParams) (*models.PrebookResult, error) {
	return nil, &ProviderError{Status: http.StatusServiceUnavailable, Message: "fixture data source cannot prebook"}
}

func (f *FixtureSource) CreateBooking(ctx context.Context, params models.BookingParams) (*models.Booking, error) {
	return nil, &ProviderError{Status: http.StatusServiceUnavailable, Message: "fixture data source cannot create bookings"}
}

func (f *FixtureSource) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, &ProviderError{Status: http.StatusServiceUnavailable, Message: "fixture data source holds no bookings"}
}

func (f *FixtureSource) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, &ProviderError{Status: http.StatusServiceUnavailable, Message: "fixture data source holds no bookings"}
}

func refundablePolicy() models.CancellationPolicy {
	return models.CancellationPolicy{
		CancelPolicyInfos: []models.CancelPolicyInfo{
			{FromDate: "2025-12-10", ToDate: "2025-12-14", PenaltyType: "amount", Currency: "USD", Amount: 0},
		},
		RefundableTag: models.RefundableTagRefundable,
	}
}

func fixtureOffers() []models.HotelOffer {
	return []models.HotelOffer{
		{
			HotelID: "lp3a56d",
			RoomTypes: []models.RoomType{{
				OfferID:    "offer_123456",
				Supplier:   "Nuitee",
				SupplierID: 2,
				Rates: []models.Rate{
					{
						RateID:          "rate_001",
						OccupancyNumber: 1,
						Name:            "Deluxe Water Villa – Ocean View",
						MaxOccupancy:    3,
						AdultCount:      2,
						BoardType:       models.BoardBreakfast,
						BoardName:       "Bed and Breakfast",
						PriceType:       "commission",
						RetailRate: models.RetailRate{
							Total: []models.Price{{Amount: 1250, Currency: "USD"}},
							Taxes: []models.TaxItem{{Included: true, Amount: 125, Currency: "USD"}},
						},
						CancellationPolicies: refundablePolicy(),
						Amenities:            []string{"WiFi", "Air Conditioning", "Minibar"},
					},
					{
						RateID:          "rate_002",
						OccupancyNumber: 1,
						Name:            "Deluxe Water Villa – All Inclusive",
						MaxOccupancy:    3,
						AdultCount:      2,
						BoardType:       models.BoardAllInclusive,
						BoardName:       "All Inclusive",
						PriceType:       "commission",
						RetailRate: models.RetailRate{
							Total: []models.Price{{Amount: 1850, Currency: "USD"}},
							Taxes: []models.TaxItem{{Included: true, Amount: 185, Currency: "USD"}},
						},
						CancellationPolicies: refundablePolicy(),
						Amenities:            []string{"WiFi", "Air Conditioning", "Minibar", "All Meals"},
					},
				},
			}},
		},
		{
			HotelID: "lp4b67e",
			RoomTypes: []models.RoomType{{
				OfferID:    "offer_234567",
				Supplier:   "Nuitee",
				SupplierID: 2,
				Rates: []models.Rate{{
					RateID:          "rate_003",
					OccupancyNumber: 1,
					Name:            "Beach Villa – Garden View",
					MaxOccupancy:    2,
					AdultCount:      2,
					BoardType:       models.BoardHalfBoard,
					BoardName:       "Half Board",
					PriceType:       "commission",
					RetailRate: models.RetailRate{
						Total: []models.Price{{Amount: 980, Currency: "USD"}},
						Taxes: []models.TaxItem{{Included: true, Amount: 98, Currency: "USD"}},
					},
					CancellationPolicies: refundablePolicy(),
					Amenities:            []string{"WiFi", "Balcony", "Beach Access"},
				}},
			}},
		},
		{
			HotelID: "lp5c78f",
			RoomTypes: []models.RoomType{{
				OfferID:    "offer_345678",
				Supplier:   "Nuitee",
				SupplierID: 2,
				Rates: []models.Rate{{
					RateID:          "rate_004",
					OccupancyNumber: 1,
					Name:            "Overwater Bungalow – Sunset View",
					MaxOccupancy:    4,
					AdultCount:      2,
					ChildCount:      1,
					BoardType:       models.BoardFullBoard,
					BoardName:       "Full Board",
					PriceType:       "commission",
					RetailRate: models.RetailRate{
						Total: []models.Price{{Amount: 2100, Currency: "USD"}},
						Taxes: []models.TaxItem{{Included: true, Amount: 210, Currency: "USD"}},
					},
					CancellationPolicies: models.CancellationPolicy{
						RefundableTag: models.RefundableTagNonRefundable,
					},
					Amenities: []string{"WiFi", "Private Pool", "Butler Service"},
				}},
			}},
		},
	}
}

var fixtureHotelNames = map[string]string{
	"lp3a56d": "Paradise Island Resort & Spa",
	"lp4b67e": "Coral Beach Hotel Maldives",
	"lp5c78f": "Sunset Overwater Villas",
}

func fixtureHotelDetails(hotelID string) models.HotelDetails {
	name, ok := fixtureHotelNames[hotelID]
	if !ok {
		name = "Sunset Overwater Villas"
	}
	return models.HotelDetails{
		ID:   hotelID,
		Name: name,
		HotelDescription: "Experience luxury in the heart of the Maldives. Our resort offers stunning overwater villas, " +
			"pristine beaches, and world-class amenities. Indulge in spa treatments, water sports, and exquisite dining " +
			"while surrounded by crystal-clear turquoise waters.",
		CheckinCheckoutTimes: models.CheckinCheckoutTimes{Checkin: "14:00", Checkout: "12:00"},
		Images: []models.HotelImage{
			{URL: "https://images.unsplash.com/photo-1582880421648-a7154a8c99c7?w=800", ThumbnailURL: "https://images.unsplash.com/photo-1582880421648-a7154a8c99c7?w=200"},
			{URL: "https://images.unsplash.com/photo-1573843981267-be1999ff37cd?w=800", ThumbnailURL: "https://images.unsplash.com/photo-1573843981267-be1999ff37cd?w=200"},
			{URL: "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800", ThumbnailURL: "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=200"},
		},
		Address: models.HotelAddress{
			Line1:      "North Male Atoll",
			City:       "Male",
			State:      "Male Atoll",
			Country:    "Maldives",
			PostalCode: "20026",
			Latitude:   4.1755,
			Longitude:  73.5093,
		},
		Rating: 9.2,
		Star:   5,
		Facilities: []models.HotelFacility{
			{ID: "pool", Name: "Outdoor Pool", Category: "Recreation"},
			{ID: "spa", Name: "Spa & Wellness Center", Category: "Wellness"},
			{ID: "wifi", Name: "Free WiFi", Category: "Internet"},
			{ID: "restaurant", Name: "On-site Restaurant", Category: "Dining"},
			{ID: "bar", Name: "Pool Bar", Category: "Dining"},
			{ID: "beach", Name: "Private Beach", Category: "Recreation"},
			{ID: "diving", Name: "Diving Center", Category: "Water Sports"},
			{ID: "gym", Name: "Fitness Center", Category: "Recreation"},
		},
		HotelPolicy: "Check-in time is from 2:00 PM. Check-out time is until 12:00 PM. Children of all ages are welcome. " +
			"Free cancellation up to 48 hours before arrival. Valid credit card required for booking.",
	}
}
