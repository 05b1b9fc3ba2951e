package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/catalog"
)

const (
	msgMissingToken       = "отсутствует токен авторизации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
	msgServiceNotFound    = "услуга не найдена"
	msgTokenRejected      = "токен авторизации отклонен"
	msgBackendRejected    = "backend отклонил запрос"
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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PUT /services/{id} - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), token, serviceID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			h.logger.Warn("PUT /services/{id} - Not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid service data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("PUT /services/{id} - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, catalog.ErrBackendRejected):
			h.logger.Warn("PUT /services/{id} - Backend rejected: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBackendRejected)

		default:
			h.logger.Error("PUT /services/{id} - Failed: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Updated: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainService(result))
}
