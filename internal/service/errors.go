package service

import (
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
// Fields заполняется для ошибок валидации: имя поля -> список проблем.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
	Fields  map[string][]string
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrValidation конструирует AppError с ошибками по полям.
func ErrValidation(fields map[string][]string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "request validation failed",
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrUnauthorized: запрос без валидной аутентификации.
func ErrUnauthorized(msg string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrForbidden: у пользователя нет прав на операцию.
func ErrForbidden(msg string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (ALREADY_MEMBER, COMPLETION_IN_PROGRESS).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

// ErrInternal оборачивает непредвиденную ошибку инфраструктуры.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if app, ok := err.(*AppError); ok {
		return app.Status == http.StatusNotFound
	}
	return false
}
