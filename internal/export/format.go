package export

import (
	"bytes"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnknownFormat     = errors.New("unknown export format")
	ErrUnknownCollection = errors.New("unknown export collection")
	ErrNothingToExport   = errors.New("nothing to export")
)

// Format is a tabular output type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts csv, xlsx (or excel) and pdf, case-insensitively.
// An empty value means csv.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", ErrUnknownFormat
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "text/csv"
}

// Collections maps an export collection to the base of its file name.
var Collections = map[string]string{
	"patients":     "Patients_Directory",
	"doctors":      "Practitioners_Directory",
	"appointments": "Appointments_Schedule",
	"labs":         "Laboratory_Requests",
	"invoices":     "Financial_Invoices",
	"lab-revenue":  "Lab_Revenue_Log",
}

// File is a rendered export ready for download or disk.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Render turns records into a named file in the given format.
func Render(name string, format Format, at time.Time, records []Record) (*File, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		buf.Write(CSV(records))
	case FormatXLSX:
		if err := XLSX(&buf, records); err != nil {
			return nil, err
		}
	case FormatPDF:
		base := strings.TrimSuffix(FileName(name, at, "pdf"), ".pdf")
		if err := PDF(&buf, base, at, records); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}

	return &File{
		Name:        FileName(name, at, string(format)),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}
