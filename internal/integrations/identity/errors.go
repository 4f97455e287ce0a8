package identity

import "errors"

var (
	// ErrUnauthenticated возвращается, когда токен не распознан провайдером
	ErrUnauthenticated = errors.New("identity client: unauthenticated")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
