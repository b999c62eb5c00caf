package doctor

import "errors"

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrMissingDocumentName  = errors.New("document name is required")
	ErrConfirmationRequired = errors.New("removing a doctor requires confirmation")
)
