package service

import (
	"errors"
	"strings"
)

// Ошибки бизнес-логики. HTTP-слой переводит их в статусы ответа.
var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrTitleTaken         = errors.New("movie with this title already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError несёт полный список нарушенных ограничений,
// а не только первое из них.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// newValidationError возвращает nil, если нарушений нет.
func newValidationError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
