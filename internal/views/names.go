// Package views joins collections by id into display and export rows.
// Nothing here fails on a dangling reference: a fallback label is used.
package views

import (
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
)

// ExternalDoctor labels a lab request with no referring clinic doctor.
const ExternalDoctor = "None/External"

func PatientName(patients []patient.Patient, id string) string {
	for _, p := range patients {
		if p.ID == id {
			return p.FullName()
		}
	}
	return patient.UnknownName
}

func DoctorName(doctors []doctor.Doctor, id string) string {
	for _, d := range doctors {
		if d.ID == id {
			return d.Name
		}
	}
	return doctor.UnknownName
}

// LabDoctorName is DoctorName, except external referrals read "None/External".
func LabDoctorName(doctors []doctor.Doctor, id string) string {
	if id == lab.External || id == "" {
		return ExternalDoctor
	}
	return DoctorName(doctors, id)
}
