package lab

import "errors"

var (
	ErrRequestNotFound      = errors.New("lab request not found")
	ErrTestNotFound         = errors.New("catalog test not found")
	ErrInvalidStatus        = errors.New("invalid lab request status")
	ErrConfirmationRequired = errors.New("removing a catalog test requires confirmation")
)
