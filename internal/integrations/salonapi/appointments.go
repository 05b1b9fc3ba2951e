package salonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// ListAppointments выполняет GET /appointments с фильтром в query-параметрах.
// Параметр status обязателен для backend, поэтому пустой список статусов
// заменяется на CONFIRMED (поведение исходного приложения).
func (c *Client) ListAppointments(ctx context.Context, token string, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = []domain.AppointmentStatus{domain.StatusConfirmed}
	}

	params := url.Values{}
	statusParam := ""
	for i, s := range statuses {
		if i > 0 {
			statusParam += ","
		}
		statusParam += string(s)
	}
	params.Set("status", statusParam)

	if filter.Date != nil {
		params.Set("date", *filter.Date)
	}
	if filter.ServiceID != nil {
		params.Set("service", *filter.ServiceID)
	}
	if filter.ProfessionalID != nil {
		params.Set("professional", *filter.ProfessionalID)
	}

	req, err := c.newJSONRequest(ctx, http.MethodGet, "/appointments?"+params.Encode(), token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("list_appointments", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dtos []appointmentDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode appointments: %v", ErrInvalidResponse, err)
	}

	return appointmentsToDomain(dtos), nil
}

// CreateAppointment выполняет POST /appointment/create (публичная операция мастера записи)
func (c *Client) CreateAppointment(ctx context.Context, create *CreateAppointmentRequest) (*domain.Appointment, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/appointment/create", "", create)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("create_appointment", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, backendMessage(resp))
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var dto appointmentDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode created appointment: %v", ErrInvalidResponse, err)
	}

	appointment := dto.toDomain()
	return &appointment, nil
}

// UpdateAppointmentStatus выполняет PATCH /appointment/{id} со сменой статуса
func (c *Client) UpdateAppointmentStatus(ctx context.Context, token, id string, status domain.AppointmentStatus) error {
	payload := map[string]string{"status": string(status)}

	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/appointment/"+url.PathEscape(id), token, payload)
	if err != nil {
		return err
	}

	resp, err := c.do("update_appointment_status", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return authStatusError(resp)
}

// ToggleMissed выполняет PATCH /appointment/toggle-missed/{id}
func (c *Client) ToggleMissed(ctx context.Context, token, id string) error {
	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/appointment/toggle-missed/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	resp, err := c.do("toggle_missed", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return authStatusError(resp)
}

// GetCustomerMissed выполняет GET /appointments/missed/{email} и возвращает
// агрегат "клиент пропускал хотя бы одну запись"
func (c *Client) GetCustomerMissed(ctx context.Context, token, email string) (bool, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/appointments/missed/"+url.PathEscape(email), token, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.do("get_customer_missed", req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return false, err
	}

	var dto missedStatusDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return false, fmt.Errorf("%w: failed to decode missed status: %v", ErrInvalidResponse, err)
	}

	return dto.IsMissed, nil
}

// ResetMissedCount выполняет PATCH /appointments/reset-missed-count/{email},
// сбрасывая флаг пропуска на всех записях клиента
func (c *Client) ResetMissedCount(ctx context.Context, token, email string) error {
	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/appointments/reset-missed-count/"+url.PathEscape(email), token, nil)
	if err != nil {
		return err
	}

	resp, err := c.do("reset_missed_count", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return authStatusError(resp)
}

// GetAvailableServices выполняет GET /services/available?date=YYYY-MM-DD —
// услуги с актуальными на дату наборами слотов
func (c *Client) GetAvailableServices(ctx context.Context, date string) ([]domain.Service, error) {
	params := url.Values{}
	params.Set("date", date)

	req, err := c.newJSONRequest(ctx, http.MethodGet, "/services/available?"+params.Encode(), "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("get_available_services", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dtos []serviceDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode available services: %v", ErrInvalidResponse, err)
	}

	return servicesToDomain(dtos), nil
}
