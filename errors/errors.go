// Package errors defines the error tiers of the service and the fiber
// helpers that render them at the HTTP boundary.
//
// Three tiers exist: validation errors (rejected before any store access),
// unauthenticated errors (absent or expired session), and faults (store or
// data failures that should never happen in normal circumstances). Expected
// business outcomes such as a wrong password or a blocked counterpart are not
// errors at all; they travel as failed result envelopes.
package errors

import (
	Errors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"messenger/schemas"
)

// ErrUnauthenticated marks a request whose sessionId is missing, expired or
// unknown.
var ErrUnauthenticated = Errors.New("sessionId provided has expired or is not valid")

// Validation is a missing or ill-shaped request field, detected before any
// store access.
type Validation struct {
	Field string
	Tag   string
}

func (e *Validation) Error() string {
	return "invalid request field " + e.Field + " (" + e.Tag + ")"
}

// Fault wraps an unexpected failure (store unreachable, malformed stored
// data) with the operation that hit it.
type Fault struct {
	Problem string
	Err     error
}

func (e *Fault) Error() string {
	return "internal error on " + e.Problem + ": " + e.Err.Error()
}

func (e *Fault) Unwrap() error { return e.Err }

// NewFault wraps cause as a fault of the named operation.
func NewFault(problem string, cause error) error {
	return &Fault{Problem: problem, Err: cause}
}

// HandleValidatorError renders the first validator violation as a bad request.
func HandleValidatorError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if Errors.As(err, &verrs) && len(verrs) > 0 {
		return HandleBadRequestError(c, verrs[0].StructField(), verrs[0].Tag())
	}
	return HandleBadRequestError(c, "Request", "invalid")
}

// HandleBadJsonError handles json request parser errors
func HandleBadJsonError(c *fiber.Ctx) error {
	return HandleBadRequestError(c, "JSON body", "invalid")
}

// HandleBadRequestError handles bad request errors (client error that is
// harmless to server and state)
func HandleBadRequestError(c *fiber.Ctx, field string, tag string) error {
	return c.Status(fiber.StatusBadRequest).JSON(schemas.Result{
		Status:  schemas.StatusErrored,
		Message: "invalid request field " + field + " (" + tag + ")",
	})
}

// HandleUnauthorizedError handles requests without a resolvable session.
func HandleUnauthorizedError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(schemas.Result{
		Status:  schemas.StatusErrored,
		Message: ErrUnauthenticated.Error(),
	})
}

// HandleInternalError handles faults; the cause is logged by the caller, the
// client only learns that the server errored.
func HandleInternalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(schemas.Result{
		Status:  schemas.StatusErrored,
		Message: "internal server error",
	})
}
