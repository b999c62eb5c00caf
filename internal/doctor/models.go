package doctor

import (
	"sort"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

// DefaultFee prefills the consultation fee of a new practitioner.
const DefaultFee = 450

// UnknownName labels a reference to a doctor that no longer exists.
const UnknownName = "Unknown Doctor"

// DefaultDocumentType is recorded when an upload does not name its mime type.
const DefaultDocumentType = "application/pdf"

// Shift is one weekly availability window.
type Shift struct {
	Day       string `json:"day" validate:"daycode"`
	StartTime string `json:"startTime" validate:"hhmm"`
	EndTime   string `json:"endTime" validate:"hhmm"`
}

// Document is metadata for a credential kept on file.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FileType   string `json:"fileType"`
	UploadDate string `json:"uploadDate"`
	URL        string `json:"url,omitempty"`
}

// Doctor is a practitioner on the clinic roster. Schedule is derived from
// DetailedSchedule and is never set directly.
type Doctor struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Specialty        string     `json:"specialty"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Bio              string     `json:"bio,omitempty"`
	DetailedSchedule []Shift    `json:"detailedSchedule"`
	Documents        []Document `json:"documents"`
	PhotoURL         string     `json:"photoUrl"`
	Schedule         []string   `json:"schedule"`
	ConsultationFee  float64    `json:"consultationFee"`
}

// WorksOn reports whether day (MON..SUN) is one of the doctor's working days.
func (d Doctor) WorksOn(day string) bool {
	for _, s := range d.Schedule {
		if s == day {
			return true
		}
	}
	return false
}

// DeriveDays returns the distinct days covered by shifts in week order.
func DeriveDays(shifts []Shift) []string {
	seen := map[string]bool{}
	days := []string{}
	for _, s := range shifts {
		if !seen[s.Day] {
			seen[s.Day] = true
			days = append(days, s.Day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		a, _ := validation.DayIndex(days[i])
		b, _ := validation.DayIndex(days[j])
		return a < b
	})
	return days
}

// DoctorRequest is the roster registration form.
type DoctorRequest struct {
	Name             string   `json:"name"`
	Specialty        string   `json:"specialty"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Bio              string   `json:"bio"`
	DetailedSchedule []Shift  `json:"detailedSchedule"`
	PhotoURL         string   `json:"photoUrl"`
	ConsultationFee  *float64 `json:"consultationFee"`
}

// UpdateDoctorRequest edits a practitioner. Absent fields keep their stored
// value; documents are managed through their own endpoints.
type UpdateDoctorRequest struct {
	Name             *string  `json:"name"`
	Specialty        *string  `json:"specialty"`
	Email            *string  `json:"email"`
	Phone            *string  `json:"phone"`
	Bio              *string  `json:"bio"`
	DetailedSchedule []Shift  `json:"detailedSchedule"`
	PhotoURL         *string  `json:"photoUrl"`
	ConsultationFee  *float64 `json:"consultationFee"`
}

// AddDocumentRequest registers a document on file.
type AddDocumentRequest struct {
	Name     string `json:"name"`
	FileType string `json:"fileType"`
	URL      string `json:"url"`
}

// Validate validates the document request
func (r *AddDocumentRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingDocumentName
	}
	return nil
}

// Specialties is the suggestion list offered by the roster form.
var Specialties = []string{
	"Anesthesiology",
	"Cardiology",
	"Dentistry (Oral Health)",
	"Dermatology",
	"Diagnostics",
	"Emergency Medicine",
	"Endocrinology",
	"Family Medicine",
	"Gastroenterology",
	"General Surgery",
	"Internal Medicine",
	"Neurology",
	"Obstetrics and Gynecology",
	"Oncology",
	"Ophthalmology",
	"Orthopedics",
	"Otolaryngology (ENT)",
	"Pediatrics",
	"Psychiatry",
	"Radiology",
	"Urology",
}

// Seed returns the roster written on first start.
func Seed() []Doctor {
	return []Doctor{
		{
			ID:               "d1",
			Name:             "Dr. John House",
			Specialty:        "Diagnostics",
			Email:            "house@medcore.com",
			Phone:            "+20 100 000 0002",
			DetailedSchedule: []Shift{{Day: "MON", StartTime: "09:00", EndTime: "17:00"}},
			Documents:        []Document{},
			Schedule:         []string{"MON"},
			ConsultationFee:  450,
		},
	}
}
