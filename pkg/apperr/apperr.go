package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and the client-side catalog store.
// Controllers map them onto HTTP status codes.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrReferenceInUse = errors.New("reference in use")
)

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// ReferenceInUse reports how many menu items still point at the entity
// that was about to be deleted.
type ReferenceInUse struct {
	Kind  string // "category" or "department"
	Name  string
	Count int64
}

func (e *ReferenceInUse) Error() string {
	return fmt.Sprintf("%s %q is referenced by %d menu item(s)", e.Kind, e.Name, e.Count)
}

func (e *ReferenceInUse) Unwrap() error { return ErrReferenceInUse }
