package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/app/service"
	"content-service/internal/domain"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	contentService *service.ContentService
	logger         *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.ContentService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		contentService: svc,
		logger:         logger,
	}
}

// Render handles GET /dashboard
// Renders the dashboard HTML page using Fiber's template engine.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	// Per-type item counts for stats
	counts := make(map[string]int64, len(domain.ContentTypes()))
	var total int64
	for _, contentType := range domain.ContentTypes() {
		count, _ := h.contentService.CountByType(c.Context(), contentType)
		counts[string(contentType)] = count
		total += count
	}

	// Top clicked items across the busiest kind for the hot list
	hot, _ := h.contentService.HotSearch(c.Context(), domain.ContentTypeVideo, 5)

	return c.Render("pages/dashboard", fiber.Map{
		"Title":      "Content Service Dashboard",
		"TotalCount": total,
		"Counts":     counts,
		"HotItems":   hot,
	}, "layouts/base")
}
