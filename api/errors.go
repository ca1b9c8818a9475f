package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtereshin/skyfare/internal/domain"
	"github.com/mtereshin/skyfare/internal/service/booking"
)

const (
	codeValidationError   = "validation_error"
	codeNotFound          = "not_found"
	codeInsufficientSeats = "insufficient_seats"
	codePaymentFailed     = "payment_failed"
	codeConflict          = "conflict"
	codeInternalError     = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, errorResponse{Error: msg, Code: code})
}

// writeDomainError maps service errors onto the HTTP taxonomy. Unrecognized
// errors are logged and reported as a generic internal error; internal
// detail is never relayed to the caller.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSeatsRequired), errors.Is(err, booking.ErrPassengerRequired):
		writeError(c, http.StatusBadRequest, codeValidationError, err.Error())
	case errors.Is(err, domain.ErrInvalidSortField), errors.Is(err, domain.ErrInvalidSortOrder):
		writeError(c, http.StatusBadRequest, codeValidationError, err.Error())
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrBookingNotFound):
		writeError(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientSeats):
		writeError(c, http.StatusBadRequest, codeInsufficientSeats, err.Error())
	case errors.Is(err, domain.ErrPaymentDeclined):
		writeError(c, http.StatusBadRequest, codePaymentFailed, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(c, http.StatusConflict, codeConflict, err.Error())
	default:
		log.Printf("api: internal error: %v", err)
		writeError(c, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
