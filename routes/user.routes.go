package routes

import (
	"github.com/gofiber/fiber/v2"

	"messenger/errors"
	"messenger/schemas"
)

func (r *Router) userRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Post("/block", r.blockUser)
	users.Get("/me", r.getProfile)
}

func (r *Router) blockUser(c *fiber.Ctx) error {
	req := new(schemas.BlockSchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}
	req.SessionID = sessionID(c, req.SessionID)

	result, err := r.actions.Block(c.Context(), *req)
	return r.respond(c, result, err)
}

func (r *Router) getProfile(c *fiber.Ctx) error {
	result, err := r.actions.GetProfile(c.Context(), sessionID(c, ""))
	return r.respond(c, result, err)
}
