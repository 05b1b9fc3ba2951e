package select_service

import (
	"context"

	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
)

type WizardService interface {
	SelectService(ctx context.Context, sessionID, serviceID string) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
