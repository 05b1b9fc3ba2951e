package delete_professional

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/catalog"
)

const (
	msgMissingToken         = "отсутствует токен авторизации"
	msgProfessionalNotFound = "мастер не найден"
	msgTokenRejected        = "токен авторизации отклонен"
)

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

// Handle DELETE /api/v1/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("DELETE /professionals/{id} - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.DeleteProfessional(r.Context(), token, professionalID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			h.logger.Warn("DELETE /professionals/{id} - Not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("DELETE /professionals/{id} - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		default:
			h.logger.Error("DELETE /professionals/{id} - Failed: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id} - Deleted: professional_id=%s", professionalID)
	w.WriteHeader(http.StatusNoContent)
}
