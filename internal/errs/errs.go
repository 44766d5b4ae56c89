package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrValidation        = errors.New("validation failed")
	ErrAlreadyExists     = errors.New("already exists")
)

func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func PermissionDenied(action string) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, action)
}

func InvalidTransition(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

func Validation(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

func AlreadyExists(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrAlreadyExists)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
