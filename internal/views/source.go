package views

import (
	"context"
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/export"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/settings"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
)

// Lister reads a whole collection.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// SettingsReader reads the clinic settings.
type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Collections bundles the repositories read by exports and backups.
type Collections struct {
	Patients     Lister[patient.Patient]
	Doctors      Lister[doctor.Doctor]
	Appointments Lister[appointment.Appointment]
	Labs         Lister[lab.Request]
	Invoices     Lister[billing.Invoice]
	Users        Lister[users.User]
	Settings     SettingsReader
}

var _ export.Source = (*Source)(nil)

// Source serves export rows and the backup document from the repositories.
type Source struct {
	c Collections
}

func NewSource(c Collections) *Source {
	return &Source{c: c}
}

func (s *Source) Records(ctx context.Context, collection string) ([]export.Record, error) {
	switch collection {
	case "patients":
		patients, err := s.c.Patients.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list patients: %w", err)
		}
		return records(PatientRows(patients)), nil

	case "doctors":
		doctors, err := s.c.Doctors.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list doctors: %w", err)
		}
		return records(DoctorRows(doctors)), nil

	case "appointments":
		appts, err := s.c.Appointments.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments: %w", err)
		}
		patients, doctors, err := s.people(ctx)
		if err != nil {
			return nil, err
		}
		return records(AppointmentRows(appts, patients, doctors)), nil

	case "labs", "lab-revenue":
		labs, err := s.c.Labs.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list lab requests: %w", err)
		}
		patients, doctors, err := s.people(ctx)
		if err != nil {
			return nil, err
		}
		rows := LabRequestRows(labs, patients, doctors)
		if collection == "labs" {
			return records(rows), nil
		}
		out := make([]export.Record, len(rows))
		for i, r := range rows {
			out[i] = r.RevenueRecord()
		}
		return out, nil

	case "invoices":
		invoices, err := s.c.Invoices.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list invoices: %w", err)
		}
		return records(InvoiceRows(invoices)), nil
	}
	return nil, export.ErrUnknownCollection
}

func (s *Source) people(ctx context.Context) ([]patient.Patient, []doctor.Doctor, error) {
	patients, err := s.c.Patients.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list patients: %w", err)
	}
	doctors, err := s.c.Doctors.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return patients, doctors, nil
}

// Backup reads every collection. The timestamp is left to the caller.
func (s *Source) Backup(ctx context.Context) (*export.Backup, error) {
	var (
		b   export.Backup
		err error
	)
	if b.Patients, err = s.c.Patients.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if b.Doctors, err = s.c.Doctors.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if b.Appointments, err = s.c.Appointments.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if b.Labs, err = s.c.Labs.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to list lab requests: %w", err)
	}
	if b.Invoices, err = s.c.Invoices.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if b.Users, err = s.c.Users.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if b.Settings, err = s.c.Settings.Get(ctx); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &b, nil
}
