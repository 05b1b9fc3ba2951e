package refresher

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// TokenSource выдает токен сервисного аккаунта для фоновых запросов
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// Store разделяемое хранилище, которое пополняет фоновое обновление
type Store interface {
	FetchAppointments(ctx context.Context, token string, filter domain.AppointmentsFilter) error
	FetchServices(ctx context.Context, token string) error
	FetchProfessionals(ctx context.Context, token string) error
	FetchCategories(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const refreshTimeout = 30 * time.Second

// Refresher периодически прогревает хранилище под сервисным аккаунтом:
// мастер записи считает занятость слотов по данным хранилища,
// поэтому подтвержденные записи должны подтягиваться и без запросов дашборда
type Refresher struct {
	cron   *cron.Cron
	tokens TokenSource
	store  Store
	logger Logger
}

// New создает фоновое обновление с расписанием в формате cron
func New(tokens TokenSource, store Store, logger Logger) *Refresher {
	return &Refresher{
		cron:   cron.New(),
		tokens: tokens,
		store:  store,
		logger: logger,
	}
}

// Start регистрирует задачу по расписанию и запускает планировщик.
// Первое обновление выполняется сразу, не дожидаясь расписания.
func (r *Refresher) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.refresh); err != nil {
		return err
	}

	go r.refresh()

	r.cron.Start()
	r.logger.Info("Refresher: started with schedule %q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущей задачи
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("Refresher: stopped")
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	token, err := r.tokens.Token(ctx)
	if err != nil {
		r.logger.Error("Refresher: failed to obtain service token: %v", err)
		return
	}

	failures := 0
	if err := r.store.FetchAppointments(ctx, token, domain.AppointmentsFilter{
		Statuses: domain.ActiveStatuses,
	}); err != nil {
		r.logger.Error("Refresher: appointments refresh failed: %v", err)
		failures++
	}
	if err := r.store.FetchServices(ctx, token); err != nil {
		r.logger.Error("Refresher: services refresh failed: %v", err)
		failures++
	}
	if err := r.store.FetchProfessionals(ctx, token); err != nil {
		r.logger.Error("Refresher: professionals refresh failed: %v", err)
		failures++
	}
	if err := r.store.FetchCategories(ctx, token); err != nil {
		r.logger.Error("Refresher: categories refresh failed: %v", err)
		failures++
	}

	// Протухший токен сбрасываем, следующий запуск залогинится заново
	if failures == 4 {
		r.tokens.Invalidate()
		r.logger.Warn("Refresher: all collections failed, service token invalidated")
		return
	}

	r.logger.Info("Refresher: store refreshed")
}
