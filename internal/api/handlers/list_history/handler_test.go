package list_history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattis-studio/booking-web/internal/api/middleware"
	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	lastReq *appointmentsModels.ListRequest
}

func (f *fakeService) History(_ context.Context, _ string, req *appointmentsModels.ListRequest) (*appointmentsModels.ListResponse, error) {
	f.lastReq = req
	return &appointmentsModels.ListResponse{}, nil
}

func serve(service *fakeService, target string) *httptest.ResponseRecorder {
	handler := NewHandler(service, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_History_MissedFilter(t *testing.T) {
	service := &fakeService{}

	rec := serve(service, "/api/v1/dashboard/history?date=2026-08-01&missed=true&limit=10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-08-01", service.lastReq.Date)
	require.NotNil(t, service.lastReq.Missed)
	assert.True(t, *service.lastReq.Missed)
	assert.Equal(t, 10, service.lastReq.Limit)
}

func TestHandler_History_InvalidMissed(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/dashboard/history?missed=maybe")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
