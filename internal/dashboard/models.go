package dashboard

import (
	"errors"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
)

var ErrInvalidRange = errors.New("from and to must be YYYY-MM-DD dates with from <= to")

// DoctorOnDuty is a roster entry for today's working doctors.
type DoctorOnDuty struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Specialty string         `json:"specialty"`
	PhotoURL  string         `json:"photoUrl"`
	Shifts    []doctor.Shift `json:"shifts"`
}

// Overview is the landing page summary. Revenue is only filled in for
// callers allowed to see billing.
type Overview struct {
	Date          string           `json:"date"`
	Day           string           `json:"day"`
	TotalPatients int              `json:"totalPatients"`
	TodaysVisits  int              `json:"todaysVisits"`
	DoctorsOnDuty []DoctorOnDuty   `json:"doctorsOnDuty"`
	Revenue       *billing.Summary `json:"revenue,omitempty"`
}

// Performance is one doctor's activity over an inclusive date range.
type Performance struct {
	DoctorID         string                    `json:"doctorId"`
	DoctorName       string                    `json:"doctorName"`
	From             string                    `json:"from"`
	To               string                    `json:"to"`
	Appointments     []appointment.Appointment `json:"appointments"`
	VisitCount       int                       `json:"visitCount"`
	CompletedCount   int                       `json:"completedCount"`
	TotalPatients    int                       `json:"totalPatients"`
	EstimatedRevenue float64                   `json:"estimatedRevenue"`
}
