package patient

import (
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/pagination"
)

// Gender values accepted by the registration form
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// UnknownName labels a reference to a patient that no longer exists.
const UnknownName = "Unknown Patient"

// Patient is one entry of the patient directory.
type Patient struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	DOB            string   `json:"dob"`
	Gender         string   `json:"gender"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medicalHistory"`
	BloodType      string   `json:"bloodType"`
}

// FullName joins first and last name with a single space.
func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Matches reports whether term appears in the full name (case-insensitive) or the phone number.
func (p Patient) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.FullName()), strings.ToLower(term)) ||
		strings.Contains(p.Phone, term)
}

// CreatePatientRequest represents the registration form
type CreatePatientRequest struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	DOB            string   `json:"dob"`
	Gender         string   `json:"gender"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medicalHistory"`
	BloodType      string   `json:"bloodType"`
}

// UpdatePatientRequest edits a patient. Absent fields keep their stored
// value; the medical history only grows through notes.
type UpdatePatientRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	DOB       *string `json:"dob"`
	Gender    *string `json:"gender"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	BloodType *string `json:"bloodType"`
}

// AddNoteRequest appends a free-text clinical note to the history.
type AddNoteRequest struct {
	Note string `json:"note"`
}

// Validate validates the note request
func (r *AddNoteRequest) Validate() error {
	if strings.TrimSpace(r.Note) == "" {
		return ErrEmptyNote
	}
	return nil
}

// SummaryResponse carries the AI history summary. Available is false when
// the advisor could not be reached.
type SummaryResponse struct {
	PatientID string `json:"patientId"`
	Summary   string `json:"summary"`
	Available bool   `json:"available"`
}

// PaginatedPatientListResponse represents a paginated list of patients
type PaginatedPatientListResponse struct {
	Patients   []Patient       `json:"patients"`
	Pagination pagination.Meta `json:"pagination"`
}

// Seed returns the directory written on first start.
func Seed() []Patient {
	return []Patient{
		{
			ID:             "1",
			FirstName:      "Alice",
			LastName:       "Smith",
			DOB:            "1985-05-12",
			Gender:         GenderFemale,
			Phone:          "+20 100 000 0001",
			Email:          "alice@example.com",
			Address:        "Cairo, Egypt",
			MedicalHistory: []string{"Hypertension"},
			BloodType:      "A+",
		},
	}
}
