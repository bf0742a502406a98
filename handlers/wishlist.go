package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"islandstay/models"
	"islandstay/services/wishlist"
	"islandstay/utils"
)

// WishlistHandler serves the saved-hotels endpoints. The client ID in the path
// is an opaque handle the browser mints and keeps.
type WishlistHandler struct {
	Service wishlist.WishlistService
}

// List handles GET /api/wishlist/:clientID.
func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to fetch wishlist", err.Error())
		return
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
}

// Add handles POST /api/wishlist/:clientID. Saving the same hotel twice is a
// no-op.
func (h *WishlistHandler) Add(c *gin.Context) {
	var item models.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid wishlist item", err.Error())
		return
	}
	item.ClientID = c.Param("clientID")

	saved, err := h.Service.Add(c.Request.Context(), item)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to save wishlist item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": saved})
}

// Remove handles DELETE /api/wishlist/:clientID/:hotelId.
func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.Service.Remove(c.Request.Context(), c.Param("clientID"), c.Param("hotelId")); err != nil {
		utils.JSONError(c, statusForError(err), "failed to remove wishlist item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// Clear handles DELETE /api/wishlist/:clientID.
func (h *WishlistHandler) Clear(c *gin.Context) {
	if err := h.Service.Clear(c.Request.Context(), c.Param("clientID")); err != nil {
		utils.JSONError(c, statusForError(err), "failed to clear wishlist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
