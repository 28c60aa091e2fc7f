package bookingrequests

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена в архиве
	ErrRequestNotFound = errors.New("booking request not found")

	// ErrInvalidInput возвращается при некорректных параметрах фильтрации
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
