package create_appointment

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена или истекла
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrWrongStep возвращается, когда сессия не на шаге данных клиента
	ErrWrongStep = errors.New("session is not on the customer details step")

	// ErrInvalidInput возвращается при некорректных данных клиента
	ErrInvalidInput = errors.New("invalid input data")

	// ErrIncompleteSession возвращается, когда в сессии не хватает выбора
	// услуги, мастера, даты или времени
	ErrIncompleteSession = errors.New("wizard session is incomplete")

	// ErrCreateRejected возвращается, когда backend отклонил создание записи
	ErrCreateRejected = errors.New("backend rejected appointment creation")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
