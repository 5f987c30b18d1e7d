package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"inventory-tracker/core/logger"
	"inventory-tracker/core/reconcile"
	"inventory-tracker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/export", h.HandleExport)
	group.Post("/import", h.HandleImport)
	group.Post("/bulk/delete", h.HandleBulkDelete)
	group.Post("/bulk/status", h.HandleBulkStatus)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Patch("/:id", h.HandleQuickEdit)
	group.Delete("/:id", h.HandleDelete)
}

// BulkRequest is the body of the bulk endpoints.
type BulkRequest struct {
	IDs    []uint `json:"ids"`
	Status string `json:"status,omitempty" example:"checked"`
}

// ImportResponse is returned by a successful import.
type ImportResponse struct {
	Message string             `json:"message" example:"Import successful"`
	Count   int                `json:"count" example:"2"`
	Created int                `json:"created" example:"1"`
	Updated int                `json:"updated" example:"1"`
	Skipped int                `json:"skipped" example:"0"`
	DryRun  bool               `json:"dry_run"`
	Actions []reconcile.Action `json:"actions,omitempty"`
}

// HandleList returns a sorted page of items.
// @Summary List Items
// @Description List inventory items, optionally sorted and paginated.
// @Tags inventory
// @Produce json
// @Param sort query string false "Sort key (e.g. 'item_name', 'expiry_date')"
// @Param order query string false "Sort order: 'asc', 'desc' or empty"
// @Param page query int false "Page number, 1-based"
// @Param limit query int false "Page size; 0 returns everything"
// @Success 200 {object} Page
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	dir, err := ParseDirection(c.Query("order"))
	if err != nil {
		return h.fail(c, err)
	}
	page, err := h.service.List(c.Context(), ListQuery{
		SortKey:   c.Query("sort"),
		Direction: dir,
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("limit", 0),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(page)
}

// HandleGet returns a single item.
// @Summary Get Item
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	item, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleCreate adds an item.
// @Summary Create Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body ItemInput true "Item"
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in ItemInput
	if err := c.BodyParser(&in); err != nil {
		return h.badRequest(c, err)
	}
	item, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate replaces the editable fields of an item.
// @Summary Update Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemInput true "Item"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var in ItemInput
	if err := c.BodyParser(&in); err != nil {
		return h.badRequest(c, err)
	}
	item, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleQuickEdit updates some fields of an item.
// @Summary Quick Edit Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param patch body ItemPatch true "Fields to change"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [patch]
func (h *Handler) HandleQuickEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return h.badRequest(c, err)
	}
	item, err := h.service.QuickEdit(c.Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleDelete removes an item.
// @Summary Delete Item
// @Tags inventory
// @Param id path int true "Item ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBulkDelete removes several items.
// @Summary Bulk Delete Items
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body BulkRequest true "IDs to delete"
// @Success 200 {object} map[string]int64 "Deleted count"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /inventory/bulk/delete [post]
func (h *Handler) HandleBulkDelete(c *fiber.Ctx) error {
	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, err)
	}
	n, err := h.service.BulkDelete(c.Context(), req.IDs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// HandleBulkStatus sets the status of several items.
// @Summary Bulk Status Update
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body BulkRequest true "IDs and status"
// @Success 200 {object} map[string]int64 "Updated count"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /inventory/bulk/status [post]
func (h *Handler) HandleBulkStatus(c *fiber.Ctx) error {
	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, err)
	}
	n, err := h.service.BulkStatus(c.Context(), req.IDs, req.Status)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}

// HandleImport reconciles an uploaded sheet into the inventory.
// @Summary Import Sheet
// @Description Create or update items from the first sheet of an uploaded workbook (or CSV).
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook"
// @Param dry_run query bool false "Decide every row without writing"
// @Param plan query bool false "Include per-row decisions in the response"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} map[string]string "No file or unreadable workbook"
// @Failure 500 {object} map[string]interface{} "Row failure; count holds the rows committed"
// @Failure 503 {object} map[string]interface{} "Store unavailable"
// @Router /inventory/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		l.Warn("Import without file", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrNoFileProvided.Error(),
		})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrNoFileProvided.Error(),
		})
	}
	defer f.Close()

	opts := reconcile.Options{
		DryRun: utils.ToBool(c.Query("dry_run")),
		Plan:   utils.ToBool(c.Query("plan")),
	}
	report, err := h.service.Import(c.Context(), f, fh.Filename, opts)
	if err != nil {
		l.Error("Import failed", zap.String("file", fh.Filename), zap.Error(err))
		count := 0
		if report != nil {
			count = report.Processed
		}
		switch {
		case errors.Is(err, ErrNoFileProvided), errors.Is(err, ErrUnparsableWorkbook):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error(), "count": count})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "count": count})
		}
	}

	message := "Import successful"
	if report.DryRun {
		message = "Dry run complete"
	}
	return c.JSON(ImportResponse{
		Message: message,
		Count:   report.Processed,
		Created: report.Created,
		Updated: report.Updated,
		Skipped: report.Skipped,
		DryRun:  report.DryRun,
		Actions: report.Actions,
	})
}

// HandleExport downloads the inventory as a workbook.
// @Summary Export Inventory
// @Tags inventory
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.Export(c.Context(), &buf); err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, ExportContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.service.ExportFilename()+`"`)
	return c.Send(buf.Bytes())
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

var errInvalidID = fmt.Errorf("%w: id must be a positive integer", ErrInvalidInput)

func (h *Handler) badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// fail maps service errors onto HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Inventory request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
