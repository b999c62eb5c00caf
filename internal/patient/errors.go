package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrEmptyNote       = errors.New("note is required")
)
