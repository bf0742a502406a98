package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"islandstay/models"
	"islandstay/services/checkout"
	"islandstay/utils"
)

// CheckoutHandler exposes the checkout session state machine over HTTP. Each
// response carries the session snapshot so the client can render the current
// step without guessing.
type CheckoutHandler struct {
	Service checkout.CheckoutService
}

// respondSession reports the flow outcome. Errors that leave the session alive
// still return the snapshot; the client decides how to re-enter the flow.
func (h *CheckoutHandler) respondSession(c *gin.Context, session *models.CheckoutSession, err error) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"session": session})
		return
	}
	status := statusForError(err)
	if session != nil {
		c.JSON(status, gin.H{"error": err.Error(), "session": session})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// StartSession handles POST /api/checkout/session.
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var sel checkout.RateSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkout request", err.Error())
		return
	}
	session, err := h.Service.Start(c.Request.Context(), sel)
	h.respondSession(c, session, err)
}

// SubmitGuestInfo handles POST /api/checkout/session/:sessionID/guest.
func (h *CheckoutHandler) SubmitGuestInfo(c *gin.Context) {
	var guest models.GuestInfo
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest info", err.Error())
		return
	}
	session, err := h.Service.SubmitGuestInfo(c.Request.Context(), c.Param("sessionID"), guest)
	h.respondSession(c, session, err)
}

// CompletePayment handles POST /api/checkout/session/:sessionID/payment/complete.
func (h *CheckoutHandler) CompletePayment(c *gin.Context) {
	session, err := h.Service.CompletePayment(c.Request.Context(), c.Param("sessionID"))
	h.respondSession(c, session, err)
}

// FailPayment handles POST /api/checkout/session/:sessionID/payment/fail.
func (h *CheckoutHandler) FailPayment(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
	}
	// The body is optional; an empty message gets a generic one.
	_ = c.ShouldBindJSON(&input)
	session, err := h.Service.FailPayment(c.Request.Context(), c.Param("sessionID"), input.Message)
	h.respondSession(c, session, err)
}

// GetSession handles GET /api/checkout/session/:sessionID.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to fetch session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AbandonSession handles DELETE /api/checkout/session/:sessionID.
func (h *CheckoutHandler) AbandonSession(c *gin.Context) {
	if err := h.Service.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, statusForError(err), "failed to abandon session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "abandoned"})
}
