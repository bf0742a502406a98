package liteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"islandstay/models"

	"go.uber.org/zap"
)

// Client is the live LiteAPI data source. It forwards typed requests, sets the
// API key header, and normalizes failures into ProviderError. It performs no
// retries and keeps no local state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a live client. A missing API key is a warning, not a hard
// failure: requests will be rejected by the provider at call time instead.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if apiKey == "" {
		logger.Warn("LiteAPI key not configured; provider calls will fail at call time")
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) Name() string { return "liteapi" }

// do issues one request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{Status: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ProviderError{Status: resp.StatusCode, Message: fmt.Sprintf("malformed response: %v", err)}
		}
	}
	return nil
}

type offersEnvelope struct {
	Data []models.HotelOffer `json:"data"`
}

type hotelDetailsEnvelope struct {
	Data models.HotelDetails `json:"data"`
}

type prebookEnvelope struct {
	Data models.PrebookResult `json:"data"`
}

type bookingEnvelope struct {
	Data models.Booking `json:"data"`
}

// SearchHotels runs a rate search across hotels.
func (c *Client) SearchHotels(ctx context.Context, params models.HotelSearchParams) ([]models.HotelOffer, error) {
	var env offersEnvelope
	if err := c.do(ctx, http.MethodPost, "/hotels/rates", params, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetHotelDetails fetches the full hotel record.
func (c *Client) GetHotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, error) {
	path := fmt.Sprintf("/hotels/%s?currency=%s", url.PathEscape(hotelID), url.QueryEscape(currency))
	var env hotelDetailsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetHotelRates runs a rate search scoped to a single hotel.
func (c *Client) GetHotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) ([]models.HotelOffer, error) {
	params.HotelIDs = []string{hotelID}
	return c.SearchHotels(ctx, params)
}

// Prebook price-locks an offer and confirms availability.
func (c *Client) Prebook(ctx context.Context, params models.PrebookParams) (*models.PrebookResult, error) {
	var env prebookEnvelope
	if err := c.do(ctx, http.MethodPost, "/rates/prebook", params, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CreateBooking finalizes a booking against a prebookId.
func (c *Client) CreateBooking(ctx context.Context, params models.BookingParams) (*models.Booking, error) {
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings", params, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetBooking retrieves a booking by its identifier.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(bookingID), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CancelBooking requests cancellation of a booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(bookingID)+"/cancel", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
