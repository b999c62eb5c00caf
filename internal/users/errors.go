package users

import "errors"

var (
	ErrMissingName          = errors.New("name is required")
	ErrMissingUsername      = errors.New("username is required")
	ErrMissingPassword      = errors.New("password is required")
	ErrInvalidRole          = errors.New("role must be ADMIN, SECRETARY or DOCTOR")
	ErrUsernameTaken        = errors.New("username is already taken")
	ErrUserNotFound         = errors.New("user not found")
	ErrLastAdmin            = errors.New("cannot delete the only administrator account")
	ErrConfirmationRequired = errors.New("deleting a user requires confirmation")
)
