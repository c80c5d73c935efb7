package service

import (
	"time"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// ComputeAge returns the calendar-aware elapsed age between the filing date
// and asOf. When asOf's day of month precedes the filing day the final month
// has not fully elapsed, so months is decremented; a negative month count
// borrows a year. Exact on anniversaries and leap-day filings.
func ComputeAge(filingDate, asOf time.Time) models.PatentAge {
	years := asOf.Year() - filingDate.Year()
	months := int(asOf.Month()) - int(filingDate.Month())
	days := asOf.Day() - filingDate.Day()

	if days < 0 {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	return models.PatentAge{Years: years, Months: months}
}
