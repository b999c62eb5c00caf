package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/settings"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
)

// Backup is the full database document. Users never carry passwords.
type Backup struct {
	Patients     []patient.Patient         `json:"patients"`
	Doctors      []doctor.Doctor           `json:"doctors"`
	Appointments []appointment.Appointment `json:"appointments"`
	Labs         []lab.Request             `json:"labs"`
	Invoices     []billing.Invoice         `json:"invoices"`
	Settings     settings.Settings         `json:"settings"`
	Users        []users.User              `json:"users"`
	Timestamp    string                    `json:"timestamp"`
}

// TimestampLayout matches a JavaScript ISO string.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// BackupFileName returns MedCore_Full_Backup_<YYYY-MM-DD>.json.
func BackupFileName(at time.Time) string {
	return FileName("MedCore_Full_Backup", at, "json")
}

// Encode renders the backup with two-space indentation.
func (b Backup) Encode() ([]byte, error) {
	safe := make([]users.User, len(b.Users))
	for i, u := range b.Users {
		safe[i] = u.Sanitized()
	}
	b.Users = safe
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return out, nil
}
