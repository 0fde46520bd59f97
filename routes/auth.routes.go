package routes

import (
	"github.com/gofiber/fiber/v2"

	"messenger/errors"
	"messenger/schemas"
)

func (r *Router) authRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/signup", r.signup)
	auth.Post("/signin", r.signin)
	auth.Post("/signout", r.signout)

	app.Post("/activity/get", r.getActivity)
}

func (r *Router) signup(c *fiber.Ctx) error {
	req := new(schemas.SignupSchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	result, err := r.actions.CreateAccount(c.Context(), *req)
	return r.respond(c, result, err)
}

func (r *Router) signin(c *fiber.Ctx) error {
	req := new(schemas.SigninSchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	result, err := r.actions.Authenticate(c.Context(), *req)
	if err == nil && result.Status == schemas.StatusSucceeded {
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    result.Data.(string),
			MaxAge:   r.cookieMaxAge,
			HTTPOnly: true,
		})
	}
	return r.respond(c, result, err)
}

func (r *Router) signout(c *fiber.Ctx) error {
	req := new(schemas.SignoutSchema)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return errors.HandleBadJsonError(c)
		}
	}
	req.SessionID = sessionID(c, req.SessionID)

	result, err := r.actions.Deauthenticate(c.Context(), *req)
	if err == nil {
		c.ClearCookie(sessionCookie)
	}
	return r.respond(c, result, err)
}

func (r *Router) getActivity(c *fiber.Ctx) error {
	req := new(schemas.ActivitySchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}
	req.SessionID = sessionID(c, req.SessionID)

	result, err := r.actions.GetActivity(c.Context(), *req)
	return r.respond(c, result, err)
}
