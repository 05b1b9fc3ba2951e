package update_professional

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidProfessional  = "некорректные данные мастера"
	msgProfessionalNotFound = "мастер не найден"
	msgTokenRejected        = "токен авторизации отклонен"
	msgBackendRejected      = "backend отклонил запрос"
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

// Handle PUT /api/v1/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id} - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	input, err := ParseProfessionalInput(r)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfessional(r.Context(), token, professionalID, input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			h.logger.Warn("PUT /professionals/{id} - Not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id} - Invalid professional data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessional)

		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("PUT /professionals/{id} - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, catalog.ErrBackendRejected):
			h.logger.Warn("PUT /professionals/{id} - Backend rejected: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBackendRejected)

		default:
			h.logger.Error("PUT /professionals/{id} - Failed: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id} - Updated: professional_id=%s", professionalID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainProfessional(result))
}
