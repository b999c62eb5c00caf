package patient

import (
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

type draft struct {
	FirstName      string   `json:"firstName" validate:"required"`
	LastName       string   `json:"lastName" validate:"required"`
	DOB            string   `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender         string   `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone          string   `json:"phone" validate:"required"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medicalHistory"`
	BloodType      string   `json:"bloodType"`
}

// Builder accumulates registration fields and checks completeness before
// producing a Patient.
type Builder struct {
	d draft
}

func NewBuilder() *Builder {
	return &Builder{d: draft{Gender: GenderMale, BloodType: "O+"}}
}

// FromRequest loads every field of a form submission.
func (b *Builder) FromRequest(req CreatePatientRequest) *Builder {
	b.Name(req.FirstName, req.LastName).
		BornOn(req.DOB).
		Contact(req.Phone, req.Email, req.Address).
		History(req.MedicalHistory...)
	if req.Gender != "" {
		b.d.Gender = req.Gender
	}
	if req.BloodType != "" {
		b.d.BloodType = req.BloodType
	}
	return b
}

// FromPatient starts from a stored record, history included.
func (b *Builder) FromPatient(p Patient) *Builder {
	b.d = draft{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DOB:            p.DOB,
		Gender:         p.Gender,
		Phone:          p.Phone,
		Email:          p.Email,
		Address:        p.Address,
		MedicalHistory: append([]string(nil), p.MedicalHistory...),
		BloodType:      p.BloodType,
	}
	return b
}

// Apply overwrites only the fields present in req.
func (b *Builder) Apply(req UpdatePatientRequest) *Builder {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&b.d.FirstName, req.FirstName)
	set(&b.d.LastName, req.LastName)
	set(&b.d.DOB, req.DOB)
	set(&b.d.Gender, req.Gender)
	set(&b.d.Phone, req.Phone)
	set(&b.d.Email, req.Email)
	set(&b.d.BloodType, req.BloodType)
	if req.Address != nil {
		b.d.Address = *req.Address
	}
	return b
}

func (b *Builder) Name(first, last string) *Builder {
	b.d.FirstName = strings.TrimSpace(first)
	b.d.LastName = strings.TrimSpace(last)
	return b
}

func (b *Builder) BornOn(dob string) *Builder {
	b.d.DOB = strings.TrimSpace(dob)
	return b
}

func (b *Builder) Gender(g string) *Builder {
	b.d.Gender = g
	return b
}

func (b *Builder) BloodType(bt string) *Builder {
	b.d.BloodType = bt
	return b
}

func (b *Builder) Contact(phone, email, address string) *Builder {
	b.d.Phone = strings.TrimSpace(phone)
	b.d.Email = strings.TrimSpace(email)
	b.d.Address = address
	return b
}

func (b *Builder) History(entries ...string) *Builder {
	b.d.MedicalHistory = append(b.d.MedicalHistory, entries...)
	return b
}

// Build validates the accumulated fields and returns the record with id.
func (b *Builder) Build(id string) (Patient, error) {
	if err := validation.Struct(b.d); err != nil {
		return Patient{}, err
	}
	history := make([]string, len(b.d.MedicalHistory))
	copy(history, b.d.MedicalHistory)
	return Patient{
		ID:             id,
		FirstName:      b.d.FirstName,
		LastName:       b.d.LastName,
		DOB:            b.d.DOB,
		Gender:         b.d.Gender,
		Phone:          b.d.Phone,
		Email:          b.d.Email,
		Address:        b.d.Address,
		MedicalHistory: history,
		BloodType:      b.d.BloodType,
	}, nil
}
