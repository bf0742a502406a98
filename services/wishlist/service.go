package wishlist

import (
	"context"

	"islandstay/models"

	"go.uber.org/zap"
)

// Repository is the persistence boundary for wishlist items.
type Repository interface {
	Add(ctx context.Context, item models.WishlistItem) (string, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.WishlistItem, error)
	Remove(ctx context.Context, clientID, hotelID string) error
	Clear(ctx context.Context, clientID string) error
}

// DefaultWishlistService implements WishlistService.
type DefaultWishlistService struct {
	Repo   Repository
	Logger *zap.Logger
}

func (s *DefaultWishlistService) Add(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error) {
	if item.ClientID == "" {
		return nil, &models.ValidationError{Field: "clientId", Message: "client id is required"}
	}
	if item.HotelID == "" {
		return nil, &models.ValidationError{Field: "hotelId", Message: "hotel id is required"}
	}
	id, err := s.Repo.Add(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	s.Logger.Debug("wishlist item saved",
		zap.String("clientId", item.ClientID),
		zap.String("hotelId", item.HotelID))
	return &item, nil
}

func (s *DefaultWishlistService) List(ctx context.Context, clientID string) ([]models.WishlistItem, error) {
	if clientID == "" {
		return nil, &models.ValidationError{Field: "clientId", Message: "client id is required"}
	}
	return s.Repo.GetByClientID(ctx, clientID)
}

func (s *DefaultWishlistService) Remove(ctx context.Context, clientID, hotelID string) error {
	if clientID == "" || hotelID == "" {
		return &models.ValidationError{Field: "clientId", Message: "client id and hotel id are required"}
	}
	return s.Repo.Remove(ctx, clientID, hotelID)
}

func (s *DefaultWishlistService) Clear(ctx context.Context, clientID string) error {
	if clientID == "" {
		return &models.ValidationError{Field: "clientId", Message: "client id is required"}
	}
	return s.Repo.Clear(ctx, clientID)
}
