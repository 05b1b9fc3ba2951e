package select_datetime

import (
	"context"

	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
	"github.com/sattis-studio/booking-web/pkg/types"
)

type WizardService interface {
	SelectDateTime(ctx context.Context, sessionID, date string, slot types.TimeString) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
