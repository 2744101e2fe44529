package domain

import (
	"errors"
	"fmt"
)

// Ошибки, которые могут быть возвращены из Use Cases.
var (
	// ErrListingNotFound - slug не резолвится ни в один документ.
	ErrListingNotFound = errors.New("listing not found")

	// ErrStoreUnavailable - контент-хранилище недоступно или вернуло ошибку.
	// На путях чтения поглощается на границе страницы (пустая выборка),
	// на пути записи всплывает пользователю.
	ErrStoreUnavailable = errors.New("content store unavailable")
)

// ValidationError - некорректный пользовательский ввод (контактная форма).
// Всегда превращается в HTTP 400 с конкретным сообщением.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// AsValidationError возвращает *ValidationError, если err им является.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
