package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every domain error unwraps to exactly one of these so the
// transport layer can map it to a status code with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvariant       = errors.New("invariant violation")
)

// Error is a categorised domain error with a human-readable message.
type Error struct {
	Kind    error
	Message string
	// Count is the number of blocking records for in-use rejections.
	Count int
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Invalid builds a validation error.
func Invalid(format string, args ...any) error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}

var (
	ErrNotAuthenticated   = newError(ErrUnauthenticated, "not authenticated")
	ErrInvalidCredentials = newError(ErrUnauthenticated, "invalid credentials")
	ErrInvalidToken       = newError(ErrUnauthenticated, "could not validate credentials")
	ErrWrongPassword      = newError(ErrValidation, "current password is incorrect")

	ErrStaffOnly           = newError(ErrForbidden, "staff privileges required")
	ErrPermissionDenied    = newError(ErrForbidden, "missing required permission")
	ErrNotPostAuthor       = newError(ErrForbidden, "you are not allowed to modify this post")
	ErrUsernameTaken       = newError(ErrConflict, "username already exists")
	ErrRoleExists          = newError(ErrConflict, "a role with this name already exists")
	ErrDuplicateSubmission = newError(ErrConflict, "duplicate submission")

	ErrMemberNotFound  = newError(ErrNotFound, "user not found")
	ErrStaffNotFound   = newError(ErrNotFound, "staff member not found")
	ErrPostNotFound    = newError(ErrNotFound, "post not found")
	ErrProductNotFound = newError(ErrNotFound, "product not found")
	ErrRoleNotFound    = newError(ErrNotFound, "role not found")

	ErrOwnerUndeletable = newError(ErrInvariant, "the bootstrap owner cannot be deleted")
	ErrSystemRole       = newError(ErrInvariant, "system roles cannot be modified or deleted")
)

// ErrRoleInUse reports that n staff accounts still reference a role.
func ErrRoleInUse(n int) error {
	return &Error{
		Kind:    ErrInvariant,
		Message: fmt.Sprintf("cannot delete role: %d staff members have this role", n),
		Count:   n,
	}
}
