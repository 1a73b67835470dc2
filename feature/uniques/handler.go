package uniques

import (
	"context"
	"errors"
	"net/url"

	"unique-checker/core/logger"
	"unique-checker/core/reconcile"
	"unique-checker/core/session"
	"unique-checker/feature/uniques/mods"
	ureconcile "unique-checker/feature/uniques/reconcile"
	"unique-checker/feature/uniques/score"
	"unique-checker/feature/uniques/store"
	"unique-checker/feature/uniques/trade"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for unique items.
type Handler struct {
	service *Service
	// syncCtx bounds background syncs started over HTTP.
	syncCtx context.Context
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, syncCtx context.Context) *Handler {
	if syncCtx == nil {
		syncCtx = context.Background()
	}
	return &Handler{service: service, syncCtx: syncCtx}
}

// RegisterRoutes registers the unique item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/uniques")
	group.Get("/categories", h.HandleCategories)
	group.Get("/items", h.HandleListItems)
	group.Get("/items/:name", h.HandleGetItem)
	group.Post("/check", h.HandleCheck)
	group.Post("/sync", h.HandleSync)
	group.Get("/status", h.HandleStatus)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNoIdentity), errors.Is(err, ErrBusy):
		status = fiber.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, mods.ErrNotUnique), errors.Is(err, mods.ErrStructuralParse):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, score.ErrShapeMismatch):
		status = fiber.StatusConflict
	default:
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleCategories lists the synced categories.
// @Summary List Categories
// @Description List the trade categories in sync order.
// @Tags uniques
// @Produce json
// @Success 200 {array} trade.Category "Categories"
// @Router /uniques/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON(trade.Categories())
}

// HandleListItems lists the stored items of the player.
// @Summary List Items
// @Description List the best known sighting of every unique of the player.
// @Tags uniques
// @Produce json
// @Success 200 {array} models.ValueRecord "Items"
// @Failure 409 {object} map[string]string "Username is not set"
// @Router /uniques/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	records, err := h.service.Entries(c.Context())
	if err != nil {
		return h.fail(c, "Listing items failed", err)
	}
	return c.JSON(records)
}

// HandleGetItem returns one stored item.
// @Summary Get Item
// @Description Get the stored sighting of a unique by full name.
// @Tags uniques
// @Produce json
// @Param name path string true "Item name (e.g. 'Tabula Rasa Simple Robe')"
// @Success 200 {object} models.ValueRecord "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /uniques/items/{name} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}

	rec, err := h.service.Entry(c.Context(), name)
	if err != nil {
		return h.fail(c, "Item lookup failed", err)
	}
	return c.JSON(rec)
}

type checkResponse struct {
	Outcome ureconcile.Outcome `json:"outcome"`
	Message string             `json:"message"`
}

// HandleCheck checks raw item text.
// @Summary Check Item
// @Description Check copied item text against the stored sighting. Use dry_run=true to only report.
// @Tags uniques
// @Accept plain
// @Produce json
// @Param dry_run query bool false "Do not write"
// @Success 200 {object} checkResponse "Outcome"
// @Failure 409 {object} map[string]string "Busy or username not set"
// @Failure 422 {object} map[string]string "Not a unique"
// @Router /uniques/check [post]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	opts := reconcile.ReconcileOptions{DryRun: c.QueryBool("dry_run", false)}

	outcome, err := h.service.Check(c.Context(), string(c.Body()), opts)
	if err != nil {
		return h.fail(c, "Item check failed", err)
	}
	return c.JSON(checkResponse{Outcome: outcome, Message: outcome.Message()})
}

// HandleSync starts a background sync.
// @Summary Start Sync
// @Description Start syncing every category from the trade website.
// @Tags uniques
// @Produce json
// @Success 202 {object} map[string]string "Started"
// @Failure 409 {object} map[string]string "Busy or username not set"
// @Router /uniques/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	started, err := h.service.StartSync(h.syncCtx)
	if err != nil {
		return h.fail(c, "Sync failed to start", err)
	}
	if !started {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": ErrBusy.Error()})
	}

	logger.WithRayID(h.service.logger, c).Info("Sync started")
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "started"})
}

// HandleStatus reports the checker state.
// @Summary Status
// @Description Busy flag, sync progress and the last sync results.
// @Tags uniques
// @Produce json
// @Success 200 {object} Status "Status"
// @Router /uniques/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}
