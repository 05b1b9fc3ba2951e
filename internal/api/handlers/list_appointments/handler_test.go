package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/domain"
	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	lastToken string
	lastReq   *appointmentsModels.ListRequest
	resp      *appointmentsModels.ListResponse
	err       error
}

func (f *fakeService) List(_ context.Context, token string, req *appointmentsModels.ListRequest) (*appointmentsModels.ListResponse, error) {
	f.lastToken = token
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRequest(target, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func serve(service *fakeService, req *http.Request) *httptest.ResponseRecorder {
	handler := NewHandler(service, nopLogger{})
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_List(t *testing.T) {
	service := &fakeService{
		resp: &appointmentsModels.ListResponse{
			Appointments: []domain.Appointment{
				{
					ID:            "a1",
					Date:          "2026-09-01",
					Time:          "10:00",
					Status:        domain.StatusConfirmed,
					CustomerName:  "Анна",
					CustomerEmail: "anna@example.com",
				},
			},
			Total:          1,
			Limit:          20,
			CustomerMissed: map[string]bool{"anna@example.com": true},
		},
	}

	rec := serve(service, newRequest(
		"/api/v1/dashboard/appointments?date=2026-09-01&service=svc-1&missed=true&limit=5",
		"admin-token"))

	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "admin-token", service.lastToken)
	assert.Equal(t, "2026-09-01", service.lastReq.Date)
	assert.Equal(t, "svc-1", service.lastReq.ServiceID)
	require.NotNil(t, service.lastReq.Missed)
	assert.True(t, *service.lastReq.Missed)
	assert.Equal(t, 5, service.lastReq.Limit)

	var body ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Appointments, 1)
	assert.Equal(t, "a1", body.Appointments[0].ID)
	assert.True(t, body.Appointments[0].CustomerMissed)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, 20, body.Limit)
}

func TestHandler_List_MissingToken(t *testing.T) {
	service := &fakeService{}

	rec := serve(service, newRequest("/api/v1/dashboard/appointments", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, service.lastReq)
}

func TestHandler_List_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"bad missed", "/api/v1/dashboard/appointments?missed=maybe"},
		{"bad limit", "/api/v1/dashboard/appointments?limit=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{}, newRequest(tt.target, "token"))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_List_ServiceFailure(t *testing.T) {
	service := &fakeService{err: context.DeadlineExceeded}

	rec := serve(service, newRequest("/api/v1/dashboard/appointments", "token"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
