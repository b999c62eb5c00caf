package billing

// Invoice values
const (
	StatusPaid       = "Paid"
	TypeConsultation = "Consultation"
)

// Payment methods offered at checkout. Any other tag is accepted.
var PaymentMethods = []string{"Cash", "Card", "Insurance", "Wallet"}

// Invoice is an immutable settlement record. Patient and Doctor are the
// names at checkout time.
type Invoice struct {
	ID            string  `json:"id"`
	Patient       string  `json:"patient"`
	Doctor        string  `json:"doctor"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	Type          string  `json:"type"`
	AppointmentID string  `json:"appointmentId,omitempty"`
}

// CheckoutRequest settles an appointment.
type CheckoutRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	Method        string `json:"method" validate:"required"`
}

// Summary is the revenue dashboard.
type Summary struct {
	Total        float64 `json:"total"`
	Consultation float64 `json:"consultation"`
	Labs         float64 `json:"labs"`
	Daily        float64 `json:"daily"`
	Monthly      float64 `json:"monthly"`
}

// InvoiceListResponse wraps the invoice log.
type InvoiceListResponse struct {
	Invoices []Invoice `json:"invoices"`
	Total    int       `json:"total"`
}

// Seed returns the invoice log written on first start, dated today.
func Seed(today string) []Invoice {
	return []Invoice{
		{
			ID:      "INV-4021",
			Patient: "Alice Smith",
			Doctor:  "Dr. John House",
			Date:    today,
			Amount:  450,
			Status:  StatusPaid,
			Method:  "Cash",
			Type:    TypeConsultation,
		},
	}
}
