package handlers

import (
	"time"

	"messageboard/internal/models"
	"messageboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles HTTP requests for messages.
type MessageHandler struct {
	service *services.MessageService
	timeout time.Duration
}

// NewMessageHandler creates a new MessageHandler. Each request's store
// calls are bounded by timeout.
func NewMessageHandler(service *services.MessageService, timeout time.Duration) *MessageHandler {
	return &MessageHandler{
		service: service,
		timeout: timeout,
	}
}

// RegisterRoutes registers the message routes on router.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Get("/", h.HandleGetMessages)
	messageRoutes.Get("/:id", h.HandleGetMessageByID)
	messageRoutes.Post("/", h.HandleCreateMessage)
	messageRoutes.Put("/:id", h.HandleUpdateMessage)
	messageRoutes.Delete("/:id", h.HandleDeleteMessage)
}

// HandleGetMessages lists every message.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	messages, err := h.service.GetAllMessages(ctx)
	if err != nil {
		return respondError(c, err, "Message", "", "retrieve messages")
	}
	return c.JSON(fiber.Map{"messages": messages})
}

// HandleGetMessageByID retrieves a single message by its ID.
func (h *MessageHandler) HandleGetMessageByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	id := c.Params("id")
	message, err := h.service.GetMessageByID(ctx, id)
	if err != nil {
		return respondError(c, err, "Message", id, "retrieve message")
	}
	return c.JSON(message)
}

type createMessageRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

// HandleCreateMessage creates a new message and returns it with its ID.
func (h *MessageHandler) HandleCreateMessage(c *fiber.Ctx) error {
	var req createMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	message := &models.Message{
		Title:  req.Title,
		Body:   req.Body,
		Author: req.Author,
	}
	if err := h.service.CreateMessage(ctx, message); err != nil {
		return respondError(c, err, "Author", req.Author, "create message")
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleUpdateMessage updates the title and/or body of a message.
func (h *MessageHandler) HandleUpdateMessage(c *fiber.Ctx) error {
	var update models.MessageUpdate
	if err := c.BodyParser(&update); err != nil {
		return badBody(c, err)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	id := c.Params("id")
	message, err := h.service.UpdateMessage(ctx, id, update)
	if err != nil {
		return respondError(c, err, "Message", id, "update message")
	}
	return c.JSON(message)
}

// HandleDeleteMessage deletes a message. Deleting an absent message is a 404.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	id := c.Params("id")
	if err := h.service.DeleteMessage(ctx, id); err != nil {
		return respondError(c, err, "Message", id, "delete message")
	}
	return c.JSON(fiber.Map{"message": "Successfully deleted."})
}
