package backup

import (
	"errors"

	"unique-checker/core/logger"
	"unique-checker/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backup")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleList)
	group.Post("/restore", h.HandleRestore)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNoIdentity), errors.Is(err, session.ErrBusy):
		status = fiber.StatusConflict
	case errors.Is(err, ErrForeignSnapshot):
		status = fiber.StatusForbidden
	default:
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleExport writes a new snapshot.
// @Summary Export Snapshot
// @Description Export every stored unique of the player to object storage.
// @Tags backup
// @Produce json
// @Success 201 {object} Object "Snapshot"
// @Failure 409 {object} map[string]string "Username is not set"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backup [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	obj, err := h.service.Export(c.Context())
	if err != nil {
		return h.fail(c, "Snapshot export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(obj)
}

// HandleList lists snapshots.
// @Summary List Snapshots
// @Description List the player's snapshots, oldest first.
// @Tags backup
// @Produce json
// @Success 200 {array} Object "Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backup [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	objects, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "Snapshot listing failed", err)
	}
	return c.JSON(objects)
}

type restoreBody struct {
	Object string `json:"object"`
}

// HandleRestore restores a snapshot.
// @Summary Restore Snapshot
// @Description Reconcile a snapshot into the store; better stored items are kept.
// @Tags backup
// @Accept json
// @Produce json
// @Param body body restoreBody true "Snapshot key"
// @Success 200 {object} reconcile.Summary "Summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Foreign snapshot"
// @Failure 409 {object} map[string]string "Checker is busy"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backup/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	var body restoreBody
	if err := c.BodyParser(&body); err != nil || body.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object is required"})
	}

	summary, err := h.service.Restore(c.Context(), body.Object)
	if err != nil {
		return h.fail(c, "Snapshot restore failed", err)
	}
	return c.JSON(summary)
}
