package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Search   *SearchHandler
	Hotels   *HotelHandler
	Checkout *CheckoutHandler
	Bookings *BookingHandler
	Wishlist *WishlistHandler
}
