package create_service

import (
	"errors"
	"net/http"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/catalog"
)

const (
	msgMissingToken       = "отсутствует токен авторизации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), token, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid service data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("POST /services - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, catalog.ErrBackendRejected):
			h.logger.Warn("POST /services - Backend rejected: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBackendRejected)

		default:
			h.logger.Error("POST /services - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Created: service_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainService(result))
}
