package lab

import "strings"

// Request statuses
const (
	StatusPending   = "PENDING"
	StatusCollected = "COLLECTED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// External marks a request that was not referred by a clinic doctor.
const External = "EXTERNAL"

// Test is one line of a lab request.
type Test struct {
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost" validate:"gte=0"`
}

// Request is a lab order. TotalCost is captured when the request is
// submitted and never recomputed.
type Request struct {
	ID        string  `json:"id"`
	PatientID string  `json:"patientId"`
	DoctorID  string  `json:"doctorId"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Tests     []Test  `json:"tests"`
	TotalCost float64 `json:"totalCost"`
}

// Billable reports whether the request counts towards lab revenue.
func (r Request) Billable() bool {
	return r.Status == StatusCompleted || r.Status == StatusCollected
}

// TestNames joins the test names for display.
func (r Request) TestNames() string {
	names := make([]string, len(r.Tests))
	for i, t := range r.Tests {
		names[i] = t.Name
	}
	return strings.Join(names, " | ")
}

// MasterTest is a catalog entry used to prefill test costs.
type MasterTest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DefaultCost float64 `json:"defaultCost"`
}

// TestLine is a test on the request form. A nil Cost is prefilled from the catalog.
type TestLine struct {
	Name string   `json:"name"`
	Cost *float64 `json:"cost"`
}

// CreateRequest is the lab request form.
type CreateRequest struct {
	PatientID string     `json:"patientId"`
	DoctorID  string     `json:"doctorId"`
	Tests     []TestLine `json:"tests"`
}

// StatusRequest changes a lab request's status.
type StatusRequest struct {
	Status string `json:"status"`
}

// CatalogRequest creates or edits a catalog entry.
type CatalogRequest struct {
	Name        string  `json:"name" validate:"required"`
	DefaultCost float64 `json:"defaultCost" validate:"gte=0"`
}

// ListResponse wraps a list of lab requests.
type ListResponse struct {
	Requests []Request `json:"requests"`
	Total    int       `json:"total"`
}

// SeedRequests returns the lab log written on first start.
func SeedRequests() []Request {
	return []Request{}
}

// SeedCatalog returns the catalog written on first start.
func SeedCatalog() []MasterTest {
	return []MasterTest{
		{ID: "1", Name: "Complete Blood Count (CBC)", DefaultCost: 150},
		{ID: "2", Name: "Lipid Profile", DefaultCost: 350},
		{ID: "3", Name: "HbA1c", DefaultCost: 200},
		{ID: "4", Name: "Liver Function Test (LFT)", DefaultCost: 400},
		{ID: "5", Name: "Thyroid Profile (T3, T4, TSH)", DefaultCost: 550},
		{ID: "6", Name: "Vitamin D", DefaultCost: 800},
		{ID: "7", Name: "Urine Analysis", DefaultCost: 80},
	}
}
