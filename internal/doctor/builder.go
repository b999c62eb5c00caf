package doctor

import (
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

type draft struct {
	Name             string  `json:"name" validate:"required"`
	Specialty        string  `json:"specialty" validate:"required"`
	Email            string  `json:"email" validate:"omitempty,email"`
	Phone            string  `json:"phone"`
	Bio              string  `json:"bio"`
	DetailedSchedule []Shift `json:"detailedSchedule" validate:"dive"`
	PhotoURL         string  `json:"photoUrl"`
	ConsultationFee  float64 `json:"consultationFee" validate:"gte=0"`
}

// Builder collects roster form fields and derives the working days on Build.
type Builder struct {
	d         draft
	documents []Document
}

func NewBuilder() *Builder {
	return &Builder{d: draft{ConsultationFee: DefaultFee}}
}

// FromRequest loads a form submission. A missing fee keeps the default.
func (b *Builder) FromRequest(req DoctorRequest) *Builder {
	b.d.Name = strings.TrimSpace(req.Name)
	b.d.Specialty = strings.TrimSpace(req.Specialty)
	b.d.Email = strings.TrimSpace(req.Email)
	b.d.Phone = strings.TrimSpace(req.Phone)
	b.d.Bio = req.Bio
	b.d.PhotoURL = req.PhotoURL
	b.d.DetailedSchedule = append([]Shift(nil), req.DetailedSchedule...)
	if req.ConsultationFee != nil {
		b.d.ConsultationFee = *req.ConsultationFee
	}
	return b
}

// FromDoctor starts from a stored record, documents included.
func (b *Builder) FromDoctor(d Doctor) *Builder {
	b.d = draft{
		Name:             d.Name,
		Specialty:        d.Specialty,
		Email:            d.Email,
		Phone:            d.Phone,
		Bio:              d.Bio,
		DetailedSchedule: append([]Shift(nil), d.DetailedSchedule...),
		PhotoURL:         d.PhotoURL,
		ConsultationFee:  d.ConsultationFee,
	}
	b.documents = d.Documents
	return b
}

// Apply overwrites only the fields present in req. A present but empty
// schedule clears every shift.
func (b *Builder) Apply(req UpdateDoctorRequest) *Builder {
	trimmed := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	trimmed(&b.d.Name, req.Name)
	trimmed(&b.d.Specialty, req.Specialty)
	trimmed(&b.d.Email, req.Email)
	trimmed(&b.d.Phone, req.Phone)
	if req.Bio != nil {
		b.d.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		b.d.PhotoURL = *req.PhotoURL
	}
	if req.DetailedSchedule != nil {
		b.d.DetailedSchedule = append([]Shift{}, req.DetailedSchedule...)
	}
	if req.ConsultationFee != nil {
		b.d.ConsultationFee = *req.ConsultationFee
	}
	return b
}

func (b *Builder) Shift(day, start, end string) *Builder {
	b.d.DetailedSchedule = append(b.d.DetailedSchedule, Shift{Day: day, StartTime: start, EndTime: end})
	return b
}

func (b *Builder) Build(id string) (Doctor, error) {
	if err := validation.Struct(b.d); err != nil {
		return Doctor{}, err
	}
	shifts := b.d.DetailedSchedule
	if shifts == nil {
		shifts = []Shift{}
	}
	docs := b.documents
	if docs == nil {
		docs = []Document{}
	}
	return Doctor{
		ID:               id,
		Name:             b.d.Name,
		Specialty:        b.d.Specialty,
		Email:            b.d.Email,
		Phone:            b.d.Phone,
		Bio:              b.d.Bio,
		DetailedSchedule: shifts,
		Documents:        docs,
		PhotoURL:         b.d.PhotoURL,
		Schedule:         DeriveDays(shifts),
		ConsultationFee:  b.d.ConsultationFee,
	}, nil
}
