package get_available_times

import (
	"fmt"
	"time"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	return nil
}
