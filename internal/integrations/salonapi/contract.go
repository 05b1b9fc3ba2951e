package salonapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик запросов к backend
// Может быть nil-обёрткой, когда метрики выключены
type MetricsRecorder interface {
	ObserveBackendRequest(operation string, status int, duration time.Duration)
}
