package appointment

import (
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

type draft struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	DateTime  string `json:"dateTime" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled Pending"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// Builder assembles a booking and checks it is complete.
type Builder struct {
	d draft
}

func NewBuilder() *Builder {
	return &Builder{d: draft{Status: StatusScheduled}}
}

func (b *Builder) FromRequest(req BookRequest) *Builder {
	b.d.PatientID = req.PatientID
	b.d.DoctorID = req.DoctorID
	b.d.DateTime = strings.TrimSpace(req.DateTime)
	b.d.Reason = strings.TrimSpace(req.Reason)
	b.d.Notes = req.Notes
	if req.Status != "" {
		b.d.Status = req.Status
	}
	return b
}

func (b *Builder) For(patientID, doctorID string) *Builder {
	b.d.PatientID = patientID
	b.d.DoctorID = doctorID
	return b
}

func (b *Builder) At(dateTime string) *Builder {
	b.d.DateTime = dateTime
	return b
}

func (b *Builder) Because(reason string) *Builder {
	b.d.Reason = reason
	return b
}

func (b *Builder) Build(id string) (Appointment, error) {
	if err := validation.Struct(b.d); err != nil {
		return Appointment{}, err
	}
	if _, err := ParseDateTime(b.d.DateTime); err != nil {
		return Appointment{}, &validation.Error{Fields: []string{"dateTime must be YYYY-MM-DDTHH:MM[:SS]"}}
	}
	reason := b.d.Reason
	if reason == "" {
		reason = DefaultReason
	}
	return Appointment{
		ID:        id,
		PatientID: b.d.PatientID,
		DoctorID:  b.d.DoctorID,
		DateTime:  b.d.DateTime,
		Status:    b.d.Status,
		Reason:    reason,
		Notes:     b.d.Notes,
	}, nil
}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusPending:
		return true
	}
	return false
}
