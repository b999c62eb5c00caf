package lab

import (
	"strings"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

type draft struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Tests     []Test `json:"tests" validate:"required,min=1,dive"`
}

// RequestBuilder collects the tests of a lab order and totals them on Build.
type RequestBuilder struct {
	d draft
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{d: draft{DoctorID: External}}
}

func (b *RequestBuilder) Patient(id string) *RequestBuilder {
	b.d.PatientID = id
	return b
}

// Doctor sets the referring doctor. Blank keeps EXTERNAL.
func (b *RequestBuilder) Doctor(id string) *RequestBuilder {
	if id = strings.TrimSpace(id); id != "" {
		b.d.DoctorID = id
	}
	return b
}

func (b *RequestBuilder) Test(name string, cost float64) *RequestBuilder {
	b.d.Tests = append(b.d.Tests, Test{Name: strings.TrimSpace(name), Cost: cost})
	return b
}

func (b *RequestBuilder) Build(id string, at time.Time) (Request, error) {
	if err := validation.Struct(b.d); err != nil {
		return Request{}, err
	}
	var total float64
	for _, t := range b.d.Tests {
		total += t.Cost
	}
	return Request{
		ID:        id,
		PatientID: b.d.PatientID,
		DoctorID:  b.d.DoctorID,
		Date:      at.UTC().Format(time.RFC3339),
		Status:    StatusPending,
		Tests:     append([]Test(nil), b.d.Tests...),
		TotalCost: total,
	}, nil
}

// ValidStatus reports whether s is a known lab request status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCollected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
