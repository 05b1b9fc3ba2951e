package get_catalog

import (
	"net/http"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
)

const msgMissingToken = "отсутствует токен авторизации"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services      []handlers.ServiceView      `json:"services"`
	Professionals []handlers.ProfessionalView `json:"professionals"`
	Categories    []handlers.CategoryView     `json:"categories"`
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("GET /catalog - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.service.Snapshot(r.Context(), token)
	if err != nil {
		h.logger.Error("GET /catalog - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := CatalogResponse{
		Services:      handlers.FromDomainServices(result.Services),
		Professionals: handlers.FromDomainProfessionals(result.Professionals),
		Categories:    handlers.FromDomainCategories(result.Categories),
	}

	h.logger.Info("GET /catalog - Retrieved: services=%d, professionals=%d, categories=%d",
		len(response.Services), len(response.Professionals), len(response.Categories))
	handlers.RespondJSON(w, http.StatusOK, response)
}
