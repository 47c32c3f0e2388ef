package errors

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoCategories     = errors.New("no categories available")
	ErrNoQuestions      = errors.New("no questions found")
	ErrBadRequest       = errors.New("bad request")
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// StorageError wraps any failure reported by the underlying database driver.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func IsStorageError(err error) bool {
	var storageError *StorageError
	ok := errors.As(err, &storageError)
	return ok
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrNoCategories) ||
		errors.Is(err, ErrNoQuestions)
}
