package start_wizard

import (
	"context"

	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
)

type WizardService interface {
	Start(ctx context.Context) (*wizardModels.StartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
