package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"islandstay/models"
	"islandstay/services/search"
)

type mockSearchService struct {
	searchFn    func(params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*search.Result, error)
	detailsFn   func(hotelID, currency string) (*models.HotelDetails, string, error)
	ratesFn     func(hotelID string, params models.HotelSearchParams) (*search.Result, error)
	searchCalls int
}

func (m *mockSearchService) Search(ctx context.Context, params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*search.Result, error) {
	m.searchCalls++
	return m.searchFn(params, filters, sortBy)
}

func (m *mockSearchService) HotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, string, error) {
	return m.detailsFn(hotelID, currency)
}

func (m *mockSearchService) HotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) (*search.Result, error) {
	return m.ratesFn(hotelID, params)
}

func searchRouter(svc search.SearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sh := &SearchHandler{Service: svc}
	hh := &HotelHandler{Service: svc}
	r.POST("/api/search", sh.Search)
	r.GET("/api/hotels/:id", hh.GetHotelDetails)
	r.POST("/api/hotels/rates", hh.GetHotelRates)
	return r
}

func TestSearchEndpointReturnsOffersWithSource(t *testing.T) {
	svc := &mockSearchService{
		searchFn: func(params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*search.Result, error) {
			return &search.Result{
				Offers: []models.EnrichedOffer{{HotelOffer: models.HotelOffer{HotelID: "lp3a56d"}, MinPrice: 1250}},
				Source: "live",
			}, nil
		},
	}
	router := searchRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"checkin":     "2026-09-10",
		"checkout":    "2026-09-14",
		"occupancies": []map[string]int{{"rooms": 1, "adults": 2}},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Source string `json:"source"`
		Count  int    `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Source != "live" || resp.Count != 1 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestSearchEndpointRejectsInvalidInputBeforeService(t *testing.T) {
	svc := &mockSearchService{
		searchFn: func(params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*search.Result, error) {
			return nil, &models.ValidationError{Field: "checkin", Message: "checkin is required"}
		},
	}
	router := searchRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader([]byte(`{}`)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSearchEndpointForwardsFiltersAndSort(t *testing.T) {
	var gotFilters *models.FilterOptions
	var gotSort models.SortKey
	svc := &mockSearchService{
		searchFn: func(params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*search.Result, error) {
			gotFilters = filters
			gotSort = sortBy
			return &search.Result{Source: "live"}, nil
		},
	}
	router := searchRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"checkin":     "2026-09-10",
		"checkout":    "2026-09-14",
		"occupancies": []map[string]int{{"adults": 2}},
		"filters":     map[string]any{"priceMax": 1500, "isRefundable": true},
		"sortBy":      "price",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotFilters == nil || gotFilters.PriceMax != 1500 || !gotFilters.IsRefundable {
		t.Errorf("filters not forwarded: %+v", gotFilters)
	}
	if gotSort != models.SortByPrice {
		t.Errorf("sort key not forwarded: %q", gotSort)
	}
}

func TestHotelDetailsEndpoint(t *testing.T) {
	svc := &mockSearchService{
		detailsFn: func(hotelID, currency string) (*models.HotelDetails, string, error) {
			return &models.HotelDetails{ID: hotelID, Name: "Grand Palm Resort"}, "cache", nil
		},
	}
	router := searchRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels/lp3a56d", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Source string `json:"source"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Source != "cache" {
		t.Errorf("expected source cache, got %q", resp.Source)
	}
}

func TestHotelRatesEndpointRequiresHotelID(t *testing.T) {
	svc := &mockSearchService{
		ratesFn: func(hotelID string, params models.HotelSearchParams) (*search.Result, error) {
			t.Fatal("service must not be called without a hotel id")
			return nil, nil
		},
	}
	router := searchRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/rates", bytes.NewReader([]byte(`{"checkin":"2026-09-10"}`)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
