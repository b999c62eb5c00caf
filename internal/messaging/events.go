package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	EventPatientCreated   = "patient.created"
	EventPatientUpdated   = "patient.updated"
	EventPatientNoteAdded = "patient.note_added"

	EventDoctorCreated = "doctor.created"
	EventDoctorUpdated = "doctor.updated"
	EventDoctorDeleted = "doctor.deleted"

	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventAppointmentDeleted       = "appointment.deleted"
	EventAppointmentReminder      = "appointment.reminder"

	EventLabRequested     = "lab.requested"
	EventLabStatusChanged = "lab.status_changed"

	EventInvoiceCreated = "invoice.created"

	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"

	EventSettingsUpdated = "settings.updated"
)

const serviceName = "clinic-service"

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// Event is the envelope published for every routing key. Data carries the
// record (or the relevant subset of it) that changed.
type Event struct {
	BaseEvent
	Data interface{} `json:"data"`
}

func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: serviceName,
	}
}

// NewEvent wraps data in an envelope for eventType.
func NewEvent(eventType string, data interface{}) Event {
	return Event{BaseEvent: NewBaseEvent(eventType), Data: data}
}

// StatusChangedData is published for appointment and lab status transitions.
type StatusChangedData struct {
	ID        string    `json:"id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

// DeletedData is published when a record is removed.
type DeletedData struct {
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// ReminderData is the payload handed to the SMS / WhatsApp gateway.
type ReminderData struct {
	AppointmentID string `json:"appointment_id"`
	Channel       string `json:"channel"`
	Recipient     string `json:"recipient"`
	Message       string `json:"message"`
}
