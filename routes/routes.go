// Package routes maps the HTTP surface onto the action set. Handlers stay
// thin: parse the body, prefer the session cookie over a body-supplied
// sessionId, invoke the action, render the envelope. Error tiers map to
// status codes here and nowhere else.
package routes

import (
	Errors "errors"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"messenger/actions"
	"messenger/errors"
	"messenger/schemas"
)

const sessionCookie = "sessionId"

// Router wires the action set into a fiber app.
type Router struct {
	actions        *actions.Actions
	log            zerolog.Logger
	cookieMaxAge int
}

// New builds a router; cookieMaxAge is the sessionId cookie lifetime in
// seconds and should match the store's session TTL.
func New(a *actions.Actions, log zerolog.Logger, cookieMaxAge int) *Router {
	return &Router{actions: a, log: log, cookieMaxAge: cookieMaxAge}
}

// SetRoutes sets all routes of server
func (r *Router) SetRoutes(app *fiber.App) {
	r.authRoutes(app)
	r.chatRoutes(app)
	r.userRoutes(app)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// sessionID returns the cookie value when present, else the body-supplied
// token.
func sessionID(c *fiber.Ctx, fromBody string) string {
	if cookie := c.Cookies(sessionCookie); cookie != "" {
		return cookie
	}
	return fromBody
}

// respond renders an action outcome: envelopes pass through as 200, the
// error tiers become 400/401/500.
func (r *Router) respond(c *fiber.Ctx, result schemas.Result, err error) error {
	if err == nil {
		return c.JSON(result)
	}

	var verr *errors.Validation
	if Errors.As(err, &verr) {
		// an absent session token is "not signed in", not a malformed request
		if verr.Field == "SessionID" {
			return errors.HandleUnauthorizedError(c)
		}
		return errors.HandleBadRequestError(c, verr.Field, verr.Tag)
	}
	if Errors.Is(err, errors.ErrUnauthenticated) {
		return errors.HandleUnauthorizedError(c)
	}

	r.log.Error().Err(err).Str("path", c.Path()).Msg("internal error")
	return errors.HandleInternalError(c)
}
