package appointment

import (
	"fmt"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
)

// Appointment statuses
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusPending   = "Pending"
)

// DefaultReason is stored when a booking leaves the reason blank.
const DefaultReason = "No reason provided"

// NoConflict is the advisor's answer when a booking does not clash.
const NoConflict = "NO_CONFLICT"

// Reminder channels
const (
	ChannelSMS      = "SMS"
	ChannelWhatsApp = "WhatsApp"
)

// Appointment links a patient to a doctor at a point in time. Both ids are
// plain strings; the referenced records may no longer exist.
type Appointment struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	DoctorID   string `json:"doctorId"`
	DateTime   string `json:"dateTime"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Notes      string `json:"notes,omitempty"`
	AIInsights string `json:"aiInsights,omitempty"`
}

// Date returns the YYYY-MM-DD prefix of DateTime.
func (a Appointment) Date() string {
	if len(a.DateTime) < 10 {
		return a.DateTime
	}
	return a.DateTime[:10]
}

// OnDate reports whether the appointment falls on day (YYYY-MM-DD).
func (a Appointment) OnDate(day string) bool {
	return a.Date() == day
}

// Billable reports whether the visit can be settled at checkout.
func (a Appointment) Billable() bool {
	return a.Status == StatusCompleted || a.Status == StatusScheduled
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime accepts the booking form's local timestamp with or without
// seconds, or a full RFC 3339 value.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date time %q", s)
}

// InRange reports whether the appointment falls between from and to
// (both YYYY-MM-DD, inclusive).
func (a Appointment) InRange(from, to string) bool {
	t, err := ParseDateTime(a.DateTime)
	if err != nil {
		return false
	}
	d := clock.Date(t)
	return d >= from && d <= to
}

// BookRequest is the booking form. Force saves despite an advisor warning.
type BookRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	DateTime  string `json:"dateTime"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
	Force     bool   `json:"force"`
}

// StatusRequest changes an appointment's status.
type StatusRequest struct {
	Status string `json:"status"`
}

// ReminderRequest asks for a reminder on the given channel.
type ReminderRequest struct {
	Channel string `json:"channel"`
}

// ReminderResponse reports what was dispatched. Drafted is false when the
// advisor was unavailable and the fixed template was used.
type ReminderResponse struct {
	AppointmentID string `json:"appointmentId"`
	Channel       string `json:"channel"`
	Recipient     string `json:"recipient"`
	Message       string `json:"message"`
	Drafted       bool   `json:"drafted"`
}

// Visit is one row of a patient's visit history.
type Visit struct {
	AppointmentID string `json:"appointmentId"`
	DateTime      string `json:"dateTime"`
	Doctor        string `json:"doctor"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
}

// Seed returns the schedule written on first start.
func Seed() []Appointment {
	return []Appointment{}
}
