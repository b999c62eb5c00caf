package views

import (
	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/export"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
)

type AppointmentRow struct {
	ID       string `json:"id"`
	DateTime string `json:"dateTime"`
	Patient  string `json:"patient"`
	Doctor   string `json:"doctor"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
}

func (r AppointmentRow) Record() export.Record {
	return export.R("ID", r.ID, "Date", r.DateTime, "Patient", r.Patient, "Doctor", r.Doctor, "Reason", r.Reason, "Status", r.Status)
}

func AppointmentRows(appts []appointment.Appointment, patients []patient.Patient, doctors []doctor.Doctor) []AppointmentRow {
	rows := make([]AppointmentRow, len(appts))
	for i, a := range appts {
		rows[i] = AppointmentRow{
			ID:       a.ID,
			DateTime: a.DateTime,
			Patient:  PatientName(patients, a.PatientID),
			Doctor:   DoctorName(doctors, a.DoctorID),
			Reason:   a.Reason,
			Status:   a.Status,
		}
	}
	return rows
}

type LabRequestRow struct {
	RequestID string  `json:"requestId"`
	Date      string  `json:"date"`
	Patient   string  `json:"patient"`
	Doctor    string  `json:"doctor"`
	Tests     string  `json:"tests"`
	TotalCost float64 `json:"totalCost"`
	Status    string  `json:"status"`
}

func (r LabRequestRow) Record() export.Record {
	return export.R("RequestID", r.RequestID, "Date", r.Date, "Patient", r.Patient, "Doctor", r.Doctor,
		"Tests", r.Tests, "TotalCost", r.TotalCost, "Status", r.Status)
}

// RevenueRecord is the shorter row of the lab revenue log.
func (r LabRequestRow) RevenueRecord() export.Record {
	return export.R("ID", r.RequestID, "Date", r.Date, "Patient", r.Patient, "Amount", r.TotalCost, "Status", r.Status)
}

func LabRequestRows(labs []lab.Request, patients []patient.Patient, doctors []doctor.Doctor) []LabRequestRow {
	rows := make([]LabRequestRow, len(labs))
	for i, l := range labs {
		rows[i] = LabRequestRow{
			RequestID: l.ID,
			Date:      l.Date,
			Patient:   PatientName(patients, l.PatientID),
			Doctor:    LabDoctorName(doctors, l.DoctorID),
			Tests:     l.TestNames(),
			TotalCost: l.TotalCost,
			Status:    l.Status,
		}
	}
	return rows
}

// InvoiceRow is an invoice as stored; names were resolved at checkout.
type InvoiceRow billing.Invoice

func (r InvoiceRow) Record() export.Record {
	return export.R("id", r.ID, "patient", r.Patient, "doctor", r.Doctor, "date", r.Date, "amount", r.Amount,
		"status", r.Status, "method", r.Method, "type", r.Type)
}

func InvoiceRows(invoices []billing.Invoice) []InvoiceRow {
	rows := make([]InvoiceRow, len(invoices))
	for i, inv := range invoices {
		rows[i] = InvoiceRow(inv)
	}
	return rows
}

// PatientRow exports the directory entry field for field.
type PatientRow patient.Patient

func (r PatientRow) Record() export.Record {
	return export.R("id", r.ID, "firstName", r.FirstName, "lastName", r.LastName, "dob", r.DOB, "gender", r.Gender,
		"phone", r.Phone, "email", r.Email, "address", r.Address, "medicalHistory", r.MedicalHistory, "bloodType", r.BloodType)
}

func PatientRows(patients []patient.Patient) []PatientRow {
	rows := make([]PatientRow, len(patients))
	for i, p := range patients {
		rows[i] = PatientRow(p)
	}
	return rows
}

// DoctorRow exports the roster entry. Photos and document contents are left out.
type DoctorRow doctor.Doctor

func (r DoctorRow) Record() export.Record {
	return export.R("id", r.ID, "name", r.Name, "specialty", r.Specialty, "email", r.Email, "phone", r.Phone,
		"detailedSchedule", r.DetailedSchedule, "consultationFee", r.ConsultationFee, "schedule", r.Schedule,
		"documents", len(r.Documents))
}

func DoctorRows(doctors []doctor.Doctor) []DoctorRow {
	rows := make([]DoctorRow, len(doctors))
	for i, d := range doctors {
		rows[i] = DoctorRow(d)
	}
	return rows
}

// recorder is any row that can be exported.
type recorder interface {
	Record() export.Record
}

func records[T recorder](rows []T) []export.Record {
	out := make([]export.Record, len(rows))
	for i, r := range rows {
		out[i] = r.Record()
	}
	return out
}
