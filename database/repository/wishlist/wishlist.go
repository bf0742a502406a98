package wishlistRepo

import (
	"context"
	"time"

	"islandstay/config"
	"islandstay/database"
	"islandstay/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WishlistRepository persists saved hotels keyed by an opaque client ID.
type WishlistRepository interface {
	Add(ctx context.Context, item models.WishlistItem) (string, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.WishlistItem, error)
	Remove(ctx context.Context, clientID, hotelID string) error
	Clear(ctx context.Context, clientID string) error
}

type mongoWishlistRepo struct {
	coll *mongo.Collection
}

// NewMongoWishlistRepo returns a new WishlistRepository instance using MongoDB.
func NewMongoWishlistRepo() WishlistRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoWishlistRepo{
		coll: db.Collection("wishlist_items"),
	}
}

// Add upserts an item; saving the same hotel twice keeps a single entry.
func (r *mongoWishlistRepo) Add(ctx context.Context, item models.WishlistItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.AddedAt = time.Now()

	filter := bson.M{"client_id": item.ClientID, "hotel_id": item.HotelID}
	update := bson.M{"$setOnInsert": item}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *mongoWishlistRepo) GetByClientID(ctx context.Context, clientID string) ([]models.WishlistItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.WishlistItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoWishlistRepo) Remove(ctx context.Context, clientID, hotelID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"client_id": clientID, "hotel_id": hotelID})
	return err
}

func (r *mongoWishlistRepo) Clear(ctx context.Context, clientID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"client_id": clientID})
	return err
}
