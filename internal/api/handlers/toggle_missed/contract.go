package toggle_missed

import (
	"context"

	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

type AppointmentsService interface {
	ToggleMissed(ctx context.Context, token string, req *appointmentsModels.ToggleMissedRequest) (*appointmentsModels.MissedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
