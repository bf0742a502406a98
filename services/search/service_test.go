package search

import (
	"context"
	"errors"
	"testing"

	"islandstay/models"

	"go.uber.org/zap"
)

type mockOfferGateway struct {
	searchFn    func(params models.HotelSearchParams) ([]models.HotelOffer, string, error)
	detailsFn   func(hotelID, currency string) (*models.HotelDetails, string, error)
	ratesFn     func(hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, string, error)
	searchCalls int
	detailCalls int
}

func (m *mockOfferGateway) SearchHotels(ctx context.Context, params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
	m.searchCalls++
	return m.searchFn(params)
}

func (m *mockOfferGateway) GetHotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, string, error) {
	m.detailCalls++
	return m.detailsFn(hotelID, currency)
}

func (m *mockOfferGateway) GetHotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
	return m.ratesFn(hotelID, params)
}

type mockHotelCache struct {
	details   map[string]*models.HotelDetails
	summaries map[string]models.HotelSummary
	sets      int
}

func (m *mockHotelCache) GetDetails(ctx context.Context, hotelID, currency string) *models.HotelDetails {
	return m.details[hotelID]
}

func (m *mockHotelCache) SetDetails(ctx context.Context, currency string, details *models.HotelDetails) {
	m.sets++
}

func (m *mockHotelCache) Summaries(ctx context.Context, hotelIDs []string, currency string) map[string]models.HotelSummary {
	return m.summaries
}

func validParams() models.HotelSearchParams {
	return models.HotelSearchParams{
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-14",
		Occupancies: []models.Occupancy{{Rooms: 1, Adults: 2}},
	}
}

func TestSearchRejectsInvalidInputBeforeGateway(t *testing.T) {
	gw := &mockOfferGateway{}
	svc := &DefaultSearchService{Gateway: gw, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	cases := []models.HotelSearchParams{
		{Checkout: "2026-09-14", Occupancies: []models.Occupancy{{Adults: 2}}},
		{Checkin: "2026-09-10", Occupancies: []models.Occupancy{{Adults: 2}}},
		{Checkin: "2026-09-10", Checkout: "2026-09-14"},
	}
	for _, params := range cases {
		_, err := svc.Search(context.Background(), params, nil, "")
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("expected validation error for %+v, got %v", params, err)
		}
	}
	if gw.searchCalls != 0 {
		t.Errorf("gateway must not be called for invalid input, got %d calls", gw.searchCalls)
	}
}

func TestSearchDefaultsCurrency(t *testing.T) {
	var gotCurrency string
	gw := &mockOfferGateway{
		searchFn: func(params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
			gotCurrency = params.Currency
			return nil, "live", nil
		},
	}
	svc := &DefaultSearchService{Gateway: gw, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	if _, err := svc.Search(context.Background(), validParams(), nil, ""); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if gotCurrency != "USD" {
		t.Errorf("expected default currency USD, got %q", gotCurrency)
	}
}

func TestSearchCarriesSourceLabel(t *testing.T) {
	gw := &mockOfferGateway{
		searchFn: func(params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
			return []models.HotelOffer{{HotelID: "lp3a56d"}}, "fixture", nil
		},
	}
	svc := &DefaultSearchService{Gateway: gw, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	result, err := svc.Search(context.Background(), validParams(), nil, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Source != "fixture" {
		t.Errorf("expected source fixture, got %q", result.Source)
	}
}

func TestSearchAppliesFiltersAndSort(t *testing.T) {
	gw := &mockOfferGateway{
		searchFn: func(params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
			return []models.HotelOffer{
				offerWithRate("lp3a56d", 1250, models.BoardBreakfast, models.RefundableTagRefundable),
				offerWithRate("lp4b67e", 980, models.BoardHalfBoard, models.RefundableTagRefundable),
				offerWithRate("lp5c78f", 2100, models.BoardFullBoard, models.RefundableTagNonRefundable),
			}, "live", nil
		},
	}
	svc := &DefaultSearchService{Gateway: gw, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	result, err := svc.Search(context.Background(), validParams(), &models.FilterOptions{IsRefundable: true}, models.SortByPrice)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !equalIDs(hotelIDs(result.Offers), []string{"lp4b67e", "lp3a56d"}) {
		t.Errorf("unexpected result %v", hotelIDs(result.Offers))
	}
}

func TestHotelDetailsServedFromCache(t *testing.T) {
	gw := &mockOfferGateway{
		detailsFn: func(hotelID, currency string) (*models.HotelDetails, string, error) {
			t.Fatal("gateway must not be called on a cache hit")
			return nil, "", nil
		},
	}
	cache := &mockHotelCache{details: map[string]*models.HotelDetails{
		"lp3a56d": {ID: "lp3a56d", Name: "Grand Palm Resort"},
	}}
	svc := &DefaultSearchService{Gateway: gw, Cache: cache, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	details, source, err := svc.HotelDetails(context.Background(), "lp3a56d", "USD")
	if err != nil {
		t.Fatalf("HotelDetails returned error: %v", err)
	}
	if source != SourceCache {
		t.Errorf("expected source %q, got %q", SourceCache, source)
	}
	if details.Name != "Grand Palm Resort" {
		t.Errorf("unexpected details %+v", details)
	}
}

func TestHotelDetailsMissPopulatesCache(t *testing.T) {
	gw := &mockOfferGateway{
		detailsFn: func(hotelID, currency string) (*models.HotelDetails, string, error) {
			return &models.HotelDetails{ID: hotelID, Name: "Azure Bay Hotel"}, "live", nil
		},
	}
	cache := &mockHotelCache{details: map[string]*models.HotelDetails{}}
	svc := &DefaultSearchService{Gateway: gw, Cache: cache, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	_, source, err := svc.HotelDetails(context.Background(), "lp4b67e", "")
	if err != nil {
		t.Fatalf("HotelDetails returned error: %v", err)
	}
	if source != "live" {
		t.Errorf("expected source live, got %q", source)
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}
}

func TestSearchJoinsNamesFromSummaries(t *testing.T) {
	gw := &mockOfferGateway{
		searchFn: func(params models.HotelSearchParams) ([]models.HotelOffer, string, error) {
			return []models.HotelOffer{offerWithRate("lp3a56d", 1250, models.BoardBreakfast, models.RefundableTagRefundable)}, "live", nil
		},
	}
	cache := &mockHotelCache{summaries: map[string]models.HotelSummary{
		"lp3a56d": {HotelID: "lp3a56d", Name: "Grand Palm Resort", Rating: 8.7},
	}}
	svc := &DefaultSearchService{Gateway: gw, Cache: cache, Logger: zap.NewNop(), DefaultCurrency: "USD"}

	result, err := svc.Search(context.Background(), validParams(), nil, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Offers[0].HotelName != "Grand Palm Resort" {
		t.Errorf("expected joined name, got %q", result.Offers[0].HotelName)
	}
	if result.Offers[0].MaxRating != 8.7 {
		t.Errorf("expected joined rating, got %v", result.Offers[0].MaxRating)
	}
}
