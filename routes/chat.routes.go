package routes

import (
	"github.com/gofiber/fiber/v2"

	"messenger/errors"
	"messenger/schemas"
)

func (r *Router) chatRoutes(app *fiber.App) {
	chat := app.Group("/chat")
	chat.Post("/messages/send", r.sendMessage)
	chat.Post("/messages/get", r.getMessages)

	app.Post("/chats/get", r.getChats)
}

func (r *Router) sendMessage(c *fiber.Ctx) error {
	req := new(schemas.SendMessageSchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}
	req.SessionID = sessionID(c, req.SessionID)

	result, err := r.actions.SendMessage(c.Context(), *req)
	return r.respond(c, result, err)
}

func (r *Router) getMessages(c *fiber.Ctx) error {
	req := new(schemas.GetMessagesSchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}
	req.SessionID = sessionID(c, req.SessionID)

	result, err := r.actions.GetMessages(c.Context(), *req)
	return r.respond(c, result, err)
}

func (r *Router) getChats(c *fiber.Ctx) error {
	req := new(schemas.GetChatsSchema)
	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}
	req.SessionID = sessionID(c, req.SessionID)

	result, err := r.actions.GetChats(c.Context(), *req)
	return r.respond(c, result, err)
}
