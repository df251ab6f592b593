package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный логин/токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда действие запрещено текущим состоянием
	// (экзамен уже сдан, не все видео просмотрены).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов уникальности
	// (повторный код доступа, повторный табельный номер).
	ErrConflict = errors.New("resource state conflict")
)
