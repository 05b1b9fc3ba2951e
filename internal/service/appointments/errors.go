package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена в хранилище
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrTransitionNotAllowed возвращается при недопустимом переходе статуса:
	// закрытые записи (FINISHED, CANCELED) не меняются
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendRejected возвращается, когда backend отклонил мутацию
	ErrBackendRejected = errors.New("backend rejected the request")

	// ErrUnauthorized возвращается, когда backend не принял токен администратора
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
