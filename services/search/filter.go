package search

import (
	"sort"

	"islandstay/models"
)

// Enrich derives the fields the results view filters and sorts on: the lowest
// displayed total across the offer's rates, the best known hotel rating, and
// whether any rate is refundable. Hotel names and ratings are joined from the
// summaries map; offers for unknown hotels keep empty name and zero rating.
func Enrich(offers []models.HotelOffer, summaries map[string]models.HotelSummary) []models.EnrichedOffer {
	enriched := make([]models.EnrichedOffer, 0, len(offers))
	for _, offer := range offers {
		e := models.EnrichedOffer{HotelOffer: offer}
		for i, rate := range offer.AllRates() {
			total := rate.RetailRate.DisplayedTotal()
			if i == 0 || total < e.MinPrice {
				e.MinPrice = total
			}
			if rate.CancellationPolicies.Refundable() {
				e.HasRefundable = true
			}
		}
		if s, ok := summaries[offer.HotelID]; ok {
			e.HotelName = s.Name
			e.MaxRating = s.Rating
		}
		enriched = append(enriched, e)
	}
	return enriched
}

// FilterAndSort applies the AND-combined predicates and orders the result.
// Pure: the input slice is not mutated.
func FilterAndSort(offers []models.EnrichedOffer, filters models.FilterOptions, sortBy models.SortKey) []models.EnrichedOffer {
	filtered := make([]models.EnrichedOffer, 0, len(offers))
	for _, offer := range offers {
		if !matches(offer, filters) {
			continue
		}
		filtered = append(filtered, offer)
	}

	switch sortBy {
	case models.SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].MinPrice < filtered[j].MinPrice
		})
	case models.SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].MaxRating > filtered[j].MaxRating
		})
	case models.SortByName:
		// Offers whose hotel name is unknown sort last, then by hotel ID so
		// the order stays deterministic.
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i], filtered[j]
			if (a.HotelName == "") != (b.HotelName == "") {
				return b.HotelName == ""
			}
			if a.HotelName != b.HotelName {
				return a.HotelName < b.HotelName
			}
			return a.HotelID < b.HotelID
		})
	}
	return filtered
}

func matches(offer models.EnrichedOffer, filters models.FilterOptions) bool {
	if offer.MinPrice < filters.PriceMin {
		return false
	}
	if filters.PriceMax > 0 && offer.MinPrice > filters.PriceMax {
		return false
	}
	if filters.IsRefundable && !offer.HasRefundable {
		return false
	}
	if len(filters.BoardTypes) > 0 && !hasBoardType(offer, filters.BoardTypes) {
		return false
	}
	return true
}

func hasBoardType(offer models.EnrichedOffer, boardTypes []models.BoardType) bool {
	for _, rate := range offer.AllRates() {
		for _, bt := range boardTypes {
			if rate.BoardType == bt {
				return true
			}
		}
	}
	return false
}
