// Package validation contains the logic for binding and validating
// request data.
//
// Binding failures are normalized into gateway errors; the global error
// handler decides how they surface to the client. This API
// deliberately performs almost no request validation of its own: the
// database schema is the authority on required fields.
package validation

import (
	"github.com/edukit/teachers-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types. Most payloads in
// this API return nil from Validate, keeping the schema as the single
// enforcement point, but the hook exists for payloads that need it.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path, query, and body data into payload and
// then validates it. payload must be a pointer so Echo's Bind can
// populate it.
//
// Bind failures (non-numeric path ids, malformed JSON) are reported as
// gateway errors, not 400s: malformed input is treated the same as any
// other failure to produce a row.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Internal != nil {
			err = echoErr.Internal
		}
		return errs.NewGatewayError(err)
	}
	return payload.Validate()
}
