// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/app/service"
	"content-service/internal/domain"
	"content-service/internal/transport/httpserver/dto"
	"content-service/internal/validator"
)

// ContentHandler handles content retrieval and counter HTTP requests for
// every content type.
type ContentHandler struct {
	service   *service.ContentService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *service.ContentService, v *validator.Validator, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// contentType reads the :type path parameter, reporting whether it names
// a known content type.
func (h *ContentHandler) contentType(c *fiber.Ctx) (domain.ContentType, bool) {
	contentType := domain.ContentType(c.Params("type"))

	return contentType, contentType.Valid()
}

// itemID parses the :id path parameter.
func (h *ContentHandler) itemID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)

	return id, err == nil
}

func badRequest(c *fiber.Ctx, message, code string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// GetList handles GET /api/v1/:type/contents
func (h *ContentHandler) GetList(c *fiber.Ctx) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}

	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	items, err := h.service.GetList(c.Context(), contentType, req.ToListParams())
	if err != nil {
		h.logger.Error("list failed", zap.String("type", string(contentType)), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to list contents",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDomainItems(items))
}

// GetDetail handles GET /api/v1/:type/contents/:id
func (h *ContentHandler) GetDetail(c *fiber.Ctx) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}
	id, ok := h.itemID(c)
	if !ok {
		return badRequest(c, "id must be an integer", "INVALID_ID")
	}

	item, err := h.service.GetDetail(c.Context(), contentType, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "content not found",
				Code:  "NOT_FOUND",
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to get content",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDomainItem(item))
}

// GetMore handles GET /api/v1/:type/contents/:id/more
func (h *ContentHandler) GetMore(c *fiber.Ctx) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}
	id, ok := h.itemID(c)
	if !ok {
		return badRequest(c, "id must be an integer", "INVALID_ID")
	}

	items, err := h.service.GetMore(c.Context(), contentType, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to get related contents",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDomainItems(items))
}

// HotSearch handles GET /api/v1/:type/hot
func (h *ContentHandler) HotSearch(c *fiber.Ctx) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}

	var req dto.HotSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	items, err := h.service.HotSearch(c.Context(), contentType, req.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to get hot contents",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDomainItems(items))
}

// Exists handles GET /api/v1/:type/contents/:id/exists
func (h *ContentHandler) Exists(c *fiber.Ctx) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}
	id, ok := h.itemID(c)
	if !ok {
		return badRequest(c, "id must be an integer", "INVALID_ID")
	}

	exists, err := h.service.IsExist(c.Context(), contentType, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to check content existence",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.ExistsResponse{Exists: exists})
}

// Search handles GET /api/v1/:type/search
func (h *ContentHandler) Search(c *fiber.Ctx) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}

	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	items, err := h.service.Search(c.Context(), contentType, req.Title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "search failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDomainItems(items))
}

// UpdateClicks handles PATCH /api/v1/:type/contents/:id/clicks
func (h *ContentHandler) UpdateClicks(c *fiber.Ctx) error {
	return h.updateCounter(c, h.service.UpdateClicks)
}

// UpdateLikes handles PATCH /api/v1/:type/contents/:id/likes
func (h *ContentHandler) UpdateLikes(c *fiber.Ctx) error {
	return h.updateCounter(c, h.service.UpdateLikes)
}

func (h *ContentHandler) updateCounter(
	c *fiber.Ctx,
	update func(ctx context.Context, contentType domain.ContentType, id int64) (*domain.ContentItem, int64, error),
) error {
	contentType, ok := h.contentType(c)
	if !ok {
		return badRequest(c, "unknown content type", "INVALID_TYPE")
	}
	id, ok := h.itemID(c)
	if !ok {
		return badRequest(c, "id must be an integer", "INVALID_ID")
	}

	item, affected, err := update(c.Context(), contentType, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "content not found",
				Code:  "NOT_FOUND",
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to update counter",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromCounterUpdate(item, affected))
}
