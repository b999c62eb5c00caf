package billing

import (
	"strings"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
)

// Summarize totals consultation and lab revenue. Only COMPLETED and
// COLLECTED lab requests count. Daily and monthly figures compare UTC date
// prefixes.
func Summarize(invoices []Invoice, labs []lab.Request, now time.Time) Summary {
	today := clock.Date(now)
	month := clock.Month(now)

	var s Summary
	for _, inv := range invoices {
		if inv.Type == TypeConsultation {
			s.Consultation += inv.Amount
		}
		if inv.Date == today {
			s.Daily += inv.Amount
		}
		if strings.HasPrefix(inv.Date, month) {
			s.Monthly += inv.Amount
		}
	}
	for _, l := range labs {
		if !l.Billable() {
			continue
		}
		s.Labs += l.TotalCost
		if strings.HasPrefix(l.Date, today) {
			s.Daily += l.TotalCost
		}
		if strings.HasPrefix(l.Date, month) {
			s.Monthly += l.TotalCost
		}
	}
	s.Total = s.Consultation + s.Labs
	return s
}
