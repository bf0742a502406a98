package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"islandstay/models"

	"github.com/go-redis/redis/v8"
)

// SummaryCache keeps hotel detail records in Redis so repeated detail lookups
// and the name-sort join do not hammer the provider.
type SummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{Client: client, TTL: ttl}
}

func detailsKey(hotelID, currency string) string {
	return fmt.Sprintf("hotel:%s:%s", hotelID, currency)
}

// GetDetails returns the cached details record, or nil on a miss.
func (c *SummaryCache) GetDetails(ctx context.Context, hotelID, currency string) *models.HotelDetails {
	data, err := c.Client.Get(ctx, detailsKey(hotelID, currency)).Result()
	if err != nil {
		return nil
	}
	var details models.HotelDetails
	if err := json.Unmarshal([]byte(data), &details); err != nil {
		return nil
	}
	return &details
}

// SetDetails stores a details record with the cache TTL. Cache write failures
// are ignored; the cache is best effort.
func (c *SummaryCache) SetDetails(ctx context.Context, currency string, details *models.HotelDetails) {
	data, err := json.Marshal(details)
	if err != nil {
		return
	}
	c.Client.Set(ctx, detailsKey(details.ID, currency), data, c.TTL)
}

// Summaries returns the known hotel summaries for the given IDs. Hotels with
// no cached details are simply absent from the map.
func (c *SummaryCache) Summaries(ctx context.Context, hotelIDs []string, currency string) map[string]models.HotelSummary {
	summaries := make(map[string]models.HotelSummary, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return summaries
	}
	keys := make([]string, len(hotelIDs))
	for i, id := range hotelIDs {
		keys[i] = detailsKey(id, currency)
	}
	values, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return summaries
	}
	for _, v := range values {
		data, ok := v.(string)
		if !ok {
			continue
		}
		var details models.HotelDetails
		if err := json.Unmarshal([]byte(data), &details); err != nil {
			continue
		}
		summaries[details.ID] = details.Summary()
	}
	return summaries
}
