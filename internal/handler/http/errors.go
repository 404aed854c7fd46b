package http

import (
	"fmt"

	"github.com/fintest/plaidbox/internal/service"
)

// badQueryParam wraps a query-parameter parse failure so the error mapper
// turns it into a 400.
func badQueryParam(name string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: invalid %q query parameter", service.ErrValidation, name)
	}
	return fmt.Errorf("%w: invalid %q query parameter: %v", service.ErrValidation, name, err)
}
