package handlers

import (
	"time"

	"messageboard/internal/models"
	"messageboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
	timeout time.Duration
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, timeout time.Duration) *UserHandler {
	return &UserHandler{
		service: service,
		timeout: timeout,
	}
}

// RegisterRoutes registers the user routes on router.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleCreateUser creates a user. The response never includes the password.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	user := &models.User{Username: req.Username, Password: req.Password}
	if err := h.service.CreateUser(ctx, user); err != nil {
		return respondError(c, err, "User", "", "create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleGetUserByID retrieves a user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	id := c.Params("id")
	user, err := h.service.GetUserByID(ctx, id)
	if err != nil {
		return respondError(c, err, "User", id, "retrieve user")
	}
	return c.JSON(user)
}
