package handlers

import (
	"errors"
	"net/http"

	"islandstay/liteapi"
	"islandstay/models"
	"islandstay/services/checkout"
)

// statusForError maps service errors onto HTTP statuses. Provider failures are
// reported as bad gateway so clients can tell upstream trouble from their own
// bad input.
func statusForError(err error) int {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	if errors.Is(err, checkout.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	var fe *checkout.FlowError
	if errors.As(err, &fe) {
		switch fe.Code {
		case "invalidSelection":
			return http.StatusBadRequest
		case "paymentError":
			return http.StatusPaymentRequired
		default:
			return http.StatusConflict
		}
	}
	if _, ok := liteapi.AsProviderError(err); ok {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
