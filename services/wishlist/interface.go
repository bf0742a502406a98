package wishlist

import (
	"context"

	"islandstay/models"
)

// WishlistService manages a client's saved hotels across reloads. Clients are
// anonymous; the client ID is an opaque handle minted by the browser.
type WishlistService interface {
	Add(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error)
	List(ctx context.Context, clientID string) ([]models.WishlistItem, error)
	Remove(ctx context.Context, clientID, hotelID string) error
	Clear(ctx context.Context, clientID string) error
}
