package catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotFound возвращается, когда backend не нашел услугу или мастера
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized возвращается, когда backend не принял токен администратора
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendRejected возвращается, когда backend отклонил мутацию
	ErrBackendRejected = errors.New("backend rejected the request")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
