package extrato

import "time"

// Period identifies one calendar month to archive.
type Period struct {
	Month int
	Year  int
}

// Start returns the first instant of the period's month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month. Records belong to
// the period when their date falls in [Start, End).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// ResolvePeriod validates an explicit (month, year) pair, or computes the
// previous calendar month relative to now when both are zero. January wraps
// to December of the previous year.
func ResolvePeriod(month, year int, now time.Time) (Period, error) {
	if month == 0 && year == 0 {
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		prev := firstOfMonth.AddDate(0, 0, -1)

		return Period{Month: int(prev.Month()), Year: prev.Year()}, nil
	}

	if month < 1 || month > 12 {
		return Period{}, ErrInvalidMonth
	}

	if year < 2000 {
		return Period{}, ErrInvalidYear
	}

	return Period{Month: month, Year: year}, nil
}
