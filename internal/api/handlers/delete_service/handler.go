package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/catalog"
)

const (
	msgMissingToken    = "отсутствует токен авторизации"
	msgServiceNotFound = "услуга не найдена"
	msgTokenRejected   = "токен авторизации отклонен"
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

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("DELETE /services/{id} - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.DeleteService(r.Context(), token, serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			h.logger.Warn("DELETE /services/{id} - Not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("DELETE /services/{id} - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		default:
			h.logger.Error("DELETE /services/{id} - Failed: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Deleted: service_id=%s", serviceID)
	w.WriteHeader(http.StatusNoContent)
}
