package search

import (
	"context"

	"islandstay/models"

	"go.uber.org/zap"
)

// SourceCache labels hotel details served from the summary cache.
const SourceCache = "cache"

// DefaultSearchService implements SearchService.
type DefaultSearchService struct {
	Gateway         OfferGateway
	Cache           HotelCache
	Logger          *zap.Logger
	DefaultCurrency string
}

// Search validates the request, fetches offers and returns them enriched,
// filtered and sorted. The gateway is never called for invalid input.
func (s *DefaultSearchService) Search(ctx context.Context, params models.HotelSearchParams, filters *models.FilterOptions, sortBy models.SortKey) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = s.DefaultCurrency
	}

	offers, source, err := s.Gateway.SearchHotels(ctx, params)
	if err != nil {
		return nil, err
	}

	summaries := s.summaries(ctx, offers, params.Currency)
	enriched := Enrich(offers, summaries)
	if filters != nil {
		enriched = FilterAndSort(enriched, *filters, sortBy)
	} else if sortBy != "" {
		enriched = FilterAndSort(enriched, models.FilterOptions{}, sortBy)
	}

	s.Logger.Info("search completed",
		zap.String("source", source),
		zap.Int("offers", len(enriched)))
	return &Result{Offers: enriched, Source: source}, nil
}

// HotelDetails returns the hotel record, serving from cache when possible.
func (s *DefaultSearchService) HotelDetails(ctx context.Context, hotelID, currency string) (*models.HotelDetails, string, error) {
	if currency == "" {
		currency = s.DefaultCurrency
	}
	if s.Cache != nil {
		if cached := s.Cache.GetDetails(ctx, hotelID, currency); cached != nil {
			return cached, SourceCache, nil
		}
	}
	details, source, err := s.Gateway.GetHotelDetails(ctx, hotelID, currency)
	if err != nil {
		return nil, "", err
	}
	if s.Cache != nil {
		s.Cache.SetDetails(ctx, currency, details)
	}
	return details, source, nil
}

// HotelRates returns one hotel's offers, enriched but unfiltered.
func (s *DefaultSearchService) HotelRates(ctx context.Context, hotelID string, params models.HotelSearchParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = s.DefaultCurrency
	}
	offers, source, err := s.Gateway.GetHotelRates(ctx, hotelID, params)
	if err != nil {
		return nil, err
	}
	enriched := Enrich(offers, s.summaries(ctx, offers, params.Currency))
	return &Result{Offers: enriched, Source: source}, nil
}

func (s *DefaultSearchService) summaries(ctx context.Context, offers []models.HotelOffer, currency string) map[string]models.HotelSummary {
	if s.Cache == nil || len(offers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(offers))
	for _, offer := range offers {
		ids = append(ids, offer.HotelID)
	}
	return s.Cache.Summaries(ctx, ids, currency)
}
