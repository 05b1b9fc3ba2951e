package list_history

import (
	"net/http"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
)

const (
	msgMissingToken  = "отсутствует токен авторизации"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/history
// Query params: date, service, professional, missed, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("GET /dashboard/history - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		query.Get("date"),
		query.Get("service"),
		query.Get("professional"),
		query.Get("missed"),
		query.Get("limit"),
	)
	if err != nil {
		h.logger.Warn("GET /dashboard/history - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.History(r.Context(), token, serviceReq)
	if err != nil {
		h.logger.Error("GET /dashboard/history - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/history - Retrieved: count=%d, total=%d",
		len(result.Appointments), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
