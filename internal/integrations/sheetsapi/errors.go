package sheetsapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheetsapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе веб-приложения
	ErrInvalidResponse = errors.New("sheetsapi client: invalid response")

	// ErrNotConfigured возвращается, когда URL веб-приложения не задан
	// Вызывающая сторона трактует это как отсутствие данных (fail-open)
	ErrNotConfigured = errors.New("sheetsapi client: web app url is not configured")
)
