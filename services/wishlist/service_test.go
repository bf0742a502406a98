package wishlist

import (
	"context"
	"errors"
	"testing"

	"islandstay/models"

	"go.uber.org/zap"
)

type mockRepo struct {
	addFn    func(item models.WishlistItem) (string, error)
	getFn    func(clientID string) ([]models.WishlistItem, error)
	removeFn func(clientID, hotelID string) error
	clearFn  func(clientID string) error
}

func (m *mockRepo) Add(ctx context.Context, item models.WishlistItem) (string, error) {
	return m.addFn(item)
}

func (m *mockRepo) GetByClientID(ctx context.Context, clientID string) ([]models.WishlistItem, error) {
	return m.getFn(clientID)
}

func (m *mockRepo) Remove(ctx context.Context, clientID, hotelID string) error {
	return m.removeFn(clientID, hotelID)
}

func (m *mockRepo) Clear(ctx context.Context, clientID string) error {
	return m.clearFn(clientID)
}

func TestAddAssignsRepositoryID(t *testing.T) {
	repo := &mockRepo{
		addFn: func(item models.WishlistItem) (string, error) { return "w_1", nil },
	}
	svc := &DefaultWishlistService{Repo: repo, Logger: zap.NewNop()}

	saved, err := svc.Add(context.Background(), models.WishlistItem{
		ClientID:  "client-1",
		HotelID:   "lp3a56d",
		HotelName: "Grand Palm Resort",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if saved.ID != "w_1" {
		t.Errorf("expected id w_1, got %q", saved.ID)
	}
}

func TestAddRequiresClientAndHotel(t *testing.T) {
	called := false
	repo := &mockRepo{
		addFn: func(item models.WishlistItem) (string, error) {
			called = true
			return "", nil
		},
	}
	svc := &DefaultWishlistService{Repo: repo, Logger: zap.NewNop()}

	cases := []models.WishlistItem{
		{HotelID: "lp3a56d"},
		{ClientID: "client-1"},
	}
	for _, item := range cases {
		_, err := svc.Add(context.Background(), item)
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("expected validation error for %+v, got %v", item, err)
		}
	}
	if called {
		t.Error("repository must not be called for invalid items")
	}
}

func TestListRequiresClientID(t *testing.T) {
	svc := &DefaultWishlistService{Repo: &mockRepo{}, Logger: zap.NewNop()}
	if _, err := svc.List(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty client id")
	}
}

func TestRemovePassesThroughToRepo(t *testing.T) {
	var gotClient, gotHotel string
	repo := &mockRepo{
		removeFn: func(clientID, hotelID string) error {
			gotClient, gotHotel = clientID, hotelID
			return nil
		},
	}
	svc := &DefaultWishlistService{Repo: repo, Logger: zap.NewNop()}

	if err := svc.Remove(context.Background(), "client-1", "lp3a56d"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if gotClient != "client-1" || gotHotel != "lp3a56d" {
		t.Errorf("unexpected arguments %q %q", gotClient, gotHotel)
	}
}
