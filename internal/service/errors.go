package service

import "errors"

// Типовые ошибки ядра. Конкретика добавляется оберткой через fmt.Errorf
// с %w, обработчики различают их через errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("version conflict")
)
