package get_wizard_times

import (
	"context"

	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
)

type WizardService interface {
	AvailableTimes(ctx context.Context, sessionID, date string) (*wizardModels.TimesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
