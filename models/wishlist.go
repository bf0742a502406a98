package models

import "time"

// WishlistItem is one saved hotel in a client's wishlist. Wishlists are keyed
// by an opaque client identifier; there are no user accounts.
type WishlistItem struct {
	ID         string    `bson:"id" json:"id"`
	ClientID   string    `bson:"client_id" json:"clientId"`
	HotelID    string    `bson:"hotel_id" json:"hotelId"`
	HotelName  string    `bson:"hotel_name" json:"hotelName"`
	HotelImage string    `bson:"hotel_image,omitempty" json:"hotelImage,omitempty"`
	Rating     float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Price      *Price    `bson:"price,omitempty" json:"price,omitempty"`
	AddedAt    time.Time `bson:"added_at" json:"addedAt"`
}
