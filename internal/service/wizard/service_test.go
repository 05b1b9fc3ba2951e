package wizard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/infra/sessions"
	getAvailableTimes "github.com/sattis-studio/booking-web/internal/usecase/get_available_times"
	"github.com/sattis-studio/booking-web/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	services      []domain.Service
	professionals []domain.Professional
}

func (f *fakeCatalog) Services() []domain.Service           { return f.services }
func (f *fakeCatalog) Professionals() []domain.Professional { return f.professionals }
func (f *fakeCatalog) FetchServicesAndProfessionals(context.Context, string) error {
	return nil
}

// coldCatalog отдаёт данные только после вызова FetchServicesAndProfessionals,
// как разделяемое хранилище до первого обращения к backend
type coldCatalog struct {
	warm     *fakeCatalog
	fetchErr error
	fetched  bool
}

func (c *coldCatalog) Services() []domain.Service {
	if !c.fetched {
		return nil
	}
	return c.warm.Services()
}

func (c *coldCatalog) Professionals() []domain.Professional {
	if !c.fetched {
		return nil
	}
	return c.warm.Professionals()
}

func (c *coldCatalog) FetchServicesAndProfessionals(context.Context, string) error {
	if c.fetchErr != nil {
		return c.fetchErr
	}
	c.fetched = true
	return nil
}

type fakeTimesUseCase struct {
	times []types.TimeString
	err   error
}

func (f *fakeTimesUseCase) Execute(_ context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableTimes.Response{
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Times:          f.times,
	}, nil
}

func testCatalog() *fakeCatalog {
	manicure := domain.Service{ID: "svc-1", Name: "Маникюр"}
	haircut := domain.Service{ID: "svc-2", Name: "Стрижка"}

	return &fakeCatalog{
		services: []domain.Service{manicure, haircut},
		professionals: []domain.Professional{
			{ID: "pro-1", Name: "Мария", Services: []domain.Service{manicure}},
			{ID: "pro-2", Name: "Ольга", Services: []domain.Service{manicure, haircut}},
		},
	}
}

func newTestService(times *fakeTimesUseCase) (*Service, *sessions.Repository) {
	repo := sessions.NewRepository(time.Hour)
	svc := NewService(repo, testCatalog(), times, nopLogger{})
	return svc, repo
}

func startSession(t *testing.T, svc *Service) string {
	t.Helper()
	resp, err := svc.Start(context.Background())
	require.NoError(t, err)
	return resp.Session.ID
}

func TestService_Start(t *testing.T) {
	svc, repo := newTestService(&fakeTimesUseCase{})

	resp, err := svc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Session.ID)
	assert.Equal(t, domain.StepChooseService, resp.Session.Step)
	assert.Len(t, resp.Services, 2)
	assert.Equal(t, 1, repo.Len())
}

func TestService_Start_FetchesColdCatalog(t *testing.T) {
	catalog := &coldCatalog{warm: testCatalog()}
	repo := sessions.NewRepository(time.Hour)
	svc := NewService(repo, catalog, &fakeTimesUseCase{}, nopLogger{})

	resp, err := svc.Start(context.Background())
	require.NoError(t, err)

	assert.True(t, catalog.fetched)
	assert.Len(t, resp.Services, 2)

	_, err = svc.SelectService(context.Background(), resp.Session.ID, "svc-1")
	require.NoError(t, err)
}

func TestService_Start_CatalogFetchFailure(t *testing.T) {
	catalog := &coldCatalog{warm: testCatalog(), fetchErr: fmt.Errorf("backend down")}
	repo := sessions.NewRepository(time.Hour)
	svc := NewService(repo, catalog, &fakeTimesUseCase{}, nopLogger{})

	// отказ backend не блокирует создание сессии, список услуг пуст
	resp, err := svc.Start(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
}

func TestService_SelectService_FiltersProfessionals(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	resp, err := svc.SelectService(context.Background(), id, "svc-2")
	require.NoError(t, err)

	assert.Equal(t, domain.StepChooseProfessional, resp.Session.Step)
	// стрижку делает только Ольга
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, "pro-2", resp.Professionals[0].ID)
}

func TestService_SelectService_Unknown(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "svc-missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_SelectProfessional(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "svc-1")
	require.NoError(t, err)

	resp, err := svc.SelectProfessional(context.Background(), id, "pro-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepChooseDateTime, resp.Session.Step)
}

func TestService_SelectProfessional_NotOffering(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "svc-2")
	require.NoError(t, err)

	// Мария не делает стрижку
	_, err = svc.SelectProfessional(context.Background(), id, "pro-1")
	assert.ErrorIs(t, err, ErrProfessionalUnavailable)
}

func TestService_SelectProfessional_BeforeService(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	_, err := svc.SelectProfessional(context.Background(), id, "pro-1")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestService_AvailableTimes(t *testing.T) {
	times := &fakeTimesUseCase{times: []types.TimeString{"10:00", "11:00"}}
	svc, _ := newTestService(times)
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "svc-1")
	require.NoError(t, err)
	_, err = svc.SelectProfessional(context.Background(), id, "pro-1")
	require.NoError(t, err)

	resp, err := svc.AvailableTimes(context.Background(), id, "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, resp.Times)
}

func TestService_AvailableTimes_RequiresSelections(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	_, err := svc.AvailableTimes(context.Background(), id, "2026-09-15")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestService_SelectDateTime(t *testing.T) {
	times := &fakeTimesUseCase{times: []types.TimeString{"10:00"}}
	svc, _ := newTestService(times)
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "svc-1")
	require.NoError(t, err)
	_, err = svc.SelectProfessional(context.Background(), id, "pro-1")
	require.NoError(t, err)

	resp, err := svc.SelectDateTime(context.Background(), id, "2026-09-15", "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StepCustomerDetails, resp.Session.Step)
	assert.Equal(t, "2026-09-15", resp.Session.Date)
}

func TestService_SelectDateTime_SlotTaken(t *testing.T) {
	// слот пересчитывается на момент выбора: "10:00" уже занят
	times := &fakeTimesUseCase{times: []types.TimeString{"11:00"}}
	svc, _ := newTestService(times)
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "svc-1")
	require.NoError(t, err)
	_, err = svc.SelectProfessional(context.Background(), id, "pro-1")
	require.NoError(t, err)

	_, err = svc.SelectDateTime(context.Background(), id, "2026-09-15", "10:00")
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
}

func TestService_SelectDateTime_InvalidSlotFormat(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	_, err := svc.SelectDateTime(context.Background(), id, "2026-09-15", "25:99")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Back(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})
	id := startSession(t, svc)

	// с первого шага возврата нет
	_, err := svc.Back(context.Background(), id)
	assert.ErrorIs(t, err, ErrCannotGoBack)

	_, err = svc.SelectService(context.Background(), id, "svc-1")
	require.NoError(t, err)

	resp, err := svc.Back(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepChooseService, resp.Session.Step)
}

func TestService_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeTimesUseCase{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
