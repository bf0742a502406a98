package models

// HotelImage is one gallery entry for a hotel.
type HotelImage struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// HotelAddress is the hotel's postal address and coordinates.
type HotelAddress struct {
	Line1      string  `json:"line1"`
	Line2      string  `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// HotelFacility is one amenity entry from the provider's facility catalogue.
type HotelFacility struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// CheckinCheckoutTimes holds the hotel's standard check-in/check-out hours.
type CheckinCheckoutTimes struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// HotelDetails is the full hotel record behind a search result.
type HotelDetails struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	HotelDescription     string               `json:"hotelDescription"`
	CheckinCheckoutTimes CheckinCheckoutTimes `json:"checkinCheckoutTimes"`
	Images               []HotelImage         `json:"images"`
	Address              HotelAddress         `json:"address"`
	Rating               float64              `json:"rating"`
	Star                 int                  `json:"star"`
	Facilities           []HotelFacility      `json:"facilities"`
	HotelPolicy          string               `json:"hotelPolicy,omitempty"`
}

// HotelSummary is the slim projection of HotelDetails kept in the hotel cache
// for joining names and ratings onto search results.
type HotelSummary struct {
	HotelID  string  `json:"hotelId"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Star     int     `json:"star"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// Summary projects the details record down to its cacheable summary.
func (d HotelDetails) Summary() HotelSummary {
	s := HotelSummary{
		HotelID: d.ID,
		Name:    d.Name,
		Rating:  d.Rating,
		Star:    d.Star,
	}
	if len(d.Images) > 0 {
		s.ImageURL = d.Images[0].URL
	}
	return s
}
