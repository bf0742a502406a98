package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"islandstay/models"
	"islandstay/utils"
)

// BookingGateway is the slice of the provider gateway the direct booking
// endpoints use. None of these operations ever serve fixture data.
type BookingGateway interface {
	Prebook(ctx context.Context, params models.PrebookParams) (*models.PrebookResult, error)
	CreateBooking(ctx context.Context, params models.BookingParams) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// BookingHandler exposes prebook and booking operations directly, for clients
// that manage their own flow instead of using checkout sessions.
type BookingHandler struct {
	Gateway BookingGateway
}

// Prebook handles POST /api/prebook.
func (h *BookingHandler) Prebook(c *gin.Context) {
	var params models.PrebookParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid prebook request", err.Error())
		return
	}
	if params.OfferID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid prebook request", "offerId is required")
		return
	}

	result, err := h.Gateway.Prebook(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, statusForError(err), "prebook failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// CreateBooking handles POST /api/booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var params models.BookingParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}
	if params.PrebookID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", "prebookId is required")
		return
	}
	if params.Holder.FirstName == "" || params.Holder.LastName == "" || params.Holder.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", "holder name and email are required")
		return
	}

	booking, err := h.Gateway.CreateBooking(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, statusForError(err), "booking failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// GetBooking handles GET /api/booking/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Gateway.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// CancelBooking handles PUT /api/booking/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.Gateway.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "cancellation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}
