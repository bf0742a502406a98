package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"islandstay/models"
	"islandstay/services/search"
	"islandstay/utils"
)

// HotelHandler serves hotel detail and per-hotel rate endpoints.
type HotelHandler struct {
	Service search.SearchService
}

// GetHotelDetails handles GET /api/hotels/:id.
func (h *HotelHandler) GetHotelDetails(c *gin.Context) {
	hotelID := c.Param("id")
	if hotelID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "hotel id is required")
		return
	}

	details, source, err := h.Service.HotelDetails(c.Request.Context(), hotelID, c.Query("currency"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to fetch hotel details", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": details, "source": source})
}

type hotelRatesRequest struct {
	HotelID string `json:"hotelId"`
	models.HotelSearchParams
}

// GetHotelRates handles POST /api/hotels/rates. The stay parameters mirror the
// search request but are scoped to a single hotel.
func (h *HotelHandler) GetHotelRates(c *gin.Context) {
	var req hotelRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rates request", err.Error())
		return
	}
	if req.HotelID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid rates request", "hotelId is required")
		return
	}

	result, err := h.Service.HotelRates(c.Request.Context(), req.HotelID, req.HotelSearchParams)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to fetch hotel rates", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   result.Offers,
		"source": result.Source,
		"count":  len(result.Offers),
	})
}
