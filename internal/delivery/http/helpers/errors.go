package helpers

import (
	"errors"
	"net/http"

	"partyplanner/internal/domain"
)

// ErrorStatus maps a service error to its HTTP status and error code.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMalformedModelOutput), errors.Is(err, domain.ErrUnsafeQuery):
		return http.StatusBadGateway, ErrCodeBadModelOutput
	case errors.Is(err, domain.ErrNoInvitationsSent), errors.Is(err, domain.ErrMailDelivery):
		return http.StatusBadGateway, ErrCodeDeliveryFailed
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, ErrCodeUpstream
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
