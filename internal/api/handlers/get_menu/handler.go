package get_menu

import (
	"net/http"

	"github.com/m04kA/Restaurant-BookingService/internal/api/handlers"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/menu
// Query params: includeUnavailable (optional, "true" показывает скрытые позиции)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("includeUnavailable") != "true"

	menu, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("GET /menu - Failed to get menu: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /menu - Menu retrieved successfully: items_count=%d", len(menu.Items))
	handlers.RespondJSON(w, http.StatusOK, menu)
}
