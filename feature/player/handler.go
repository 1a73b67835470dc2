package player

import (
	"errors"

	"unique-checker/core/logger"
	"unique-checker/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Identity reads and changes the active username.
type Identity interface {
	Username() (string, error)
	SetUsername(username string) error
}

// Handler handles HTTP requests for the player identity.
type Handler struct {
	identity Identity
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(identity Identity, logger *zap.Logger) *Handler {
	return &Handler{identity: identity, logger: logger}
}

// RegisterRoutes registers the player routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/player")
	group.Get("/", h.HandleGetPlayer)
	group.Put("/", h.HandlePutPlayer)
}

type playerBody struct {
	Username string `json:"username"`
}

// HandleGetPlayer returns the configured username.
// @Summary Get Player
// @Description Get the username whose items are checked.
// @Tags player
// @Produce json
// @Success 200 {object} map[string]string "Player"
// @Failure 404 {object} map[string]string "Username is not set"
// @Router /player [get]
func (h *Handler) HandleGetPlayer(c *fiber.Ctx) error {
	username, err := h.identity.Username()
	if errors.Is(err, session.ErrNoIdentity) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(playerBody{Username: username})
}

// HandlePutPlayer saves a new username.
// @Summary Set Player
// @Description Set and persist the username whose items are checked.
// @Tags player
// @Accept json
// @Produce json
// @Param body body playerBody true "Player"
// @Success 200 {object} map[string]string "Player"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /player [put]
func (h *Handler) HandlePutPlayer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var body playerBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := h.identity.SetUsername(body.Username); err != nil {
		if errors.Is(err, ErrEmptyUsername) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to save username", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Username changed", zap.String("username", body.Username))
	username, _ := h.identity.Username()
	return c.JSON(playerBody{Username: username})
}
