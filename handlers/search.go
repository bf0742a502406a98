package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"islandstay/models"
	"islandstay/services/search"
	"islandstay/utils"
)

// SearchHandler serves the hotel search endpoint.
type SearchHandler struct {
	Service search.SearchService
}

type searchRequest struct {
	models.HotelSearchParams
	Filters *models.FilterOptions `json:"filters,omitempty"`
	SortBy  models.SortKey        `json:"sortBy,omitempty"`
}

// Search handles POST /api/search. Filters and sort are applied server-side so
// the client renders the list as delivered.
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search request", err.Error())
		return
	}

	result, err := h.Service.Search(c.Request.Context(), req.HotelSearchParams, req.Filters, req.SortBy)
	if err != nil {
		utils.JSONError(c, statusForError(err), "search failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   result.Offers,
		"source": result.Source,
		"count":  len(result.Offers),
	})
}
