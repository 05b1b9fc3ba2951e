package salonapi

import "errors"

var (
	// ErrUnauthorized возвращается, когда backend отклонил токен (401)
	ErrUnauthorized = errors.New("salonapi client: unauthorized")

	// ErrForbidden возвращается, когда у токена нет прав на операцию (403)
	ErrForbidden = errors.New("salonapi client: forbidden")

	// ErrNotFound возвращается, когда запрошенная сущность не найдена (404)
	ErrNotFound = errors.New("salonapi client: not found")

	// ErrBadRequest возвращается, когда backend отклонил данные запроса (400/422)
	ErrBadRequest = errors.New("salonapi client: bad request")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("salonapi client: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе backend
	ErrInvalidResponse = errors.New("salonapi client: invalid response")
)
