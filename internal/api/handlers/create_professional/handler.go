package create_professional

import (
	"errors"
	"net/http"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/catalog"
)

const (
	msgMissingToken        = "отсутствует токен авторизации"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidProfessional = "некорректные данные мастера"
	msgTokenRejected       = "токен авторизации отклонен"
	msgBackendRejected     = "backend отклонил запрос"
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

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /professionals - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	input, err := ParseProfessionalInput(r)
	if err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateProfessional(r.Context(), token, input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Invalid professional data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessional)

		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("POST /professionals - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, catalog.ErrBackendRejected):
			h.logger.Warn("POST /professionals - Backend rejected: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBackendRejected)

		default:
			h.logger.Error("POST /professionals - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Created: professional_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainProfessional(result))
}
