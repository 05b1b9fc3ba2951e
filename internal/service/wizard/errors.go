package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrServiceNotFound возвращается, когда выбранной услуги нет в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotFound возвращается, когда выбранного мастера нет в каталоге
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrProfessionalUnavailable возвращается, когда мастер не оказывает выбранную услугу
	ErrProfessionalUnavailable = errors.New("professional does not offer this service")

	// ErrWrongStep возвращается, когда текущий шаг сессии не допускает операцию
	ErrWrongStep = errors.New("operation not allowed on current wizard step")

	// ErrCannotGoBack возвращается при попытке вернуться с первого или финального шага
	ErrCannotGoBack = errors.New("cannot go back from this step")

	// ErrTimeNotAvailable возвращается, когда выбранный слот не входит в свободные
	ErrTimeNotAvailable = errors.New("time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
