package http

import (
	"errors"
	"net/http"

	"github.com/fintest/plaidbox/internal/adapter"
	"github.com/fintest/plaidbox/internal/crypto"
	"github.com/fintest/plaidbox/internal/service"
	"github.com/fintest/plaidbox/internal/session"
)

// 422 for unknown items: the payload is well-formed, the source is trusted,
// but the entity it names is not processable by this deployment.
var errorStatusMap = map[error]int{
	service.ErrForbiddenSource:       http.StatusForbidden,
	service.ErrMalformedPayload:      http.StatusBadRequest,
	service.ErrUnknownItem:           http.StatusUnprocessableEntity,
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	adapter.ErrVendor: http.StatusBadGateway,

	crypto.ErrDecryption:       http.StatusUnauthorized,
	session.ErrNoCredentials:   http.StatusUnauthorized,
	session.ErrSessionNotFound: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the user-facing message: the sentinel's own text,
// which is deliberately generic. Wrapped detail (cipher internals, vendor
// payloads) never reaches a production response body.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "internal server error"
}
