package select_professional

import (
	"context"

	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
)

type WizardService interface {
	SelectProfessional(ctx context.Context, sessionID, professionalID string) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
