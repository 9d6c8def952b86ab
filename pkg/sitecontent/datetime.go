package sitecontent

import (
	"time"
)

// FormatReadableTime renders a timestamp as "dd/mm/yyyy hh:mm" for response
// payloads. A nil timestamp yields the empty string.
func FormatReadableTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

// DateRange is a half-open [Start, End) interval covering whole days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// parseDay parses a "yyyy-mm-dd" date string.
func parseDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date format %q, expected 'yyyy-mm-dd'", s)
	}
	return day, nil
}

// resolveOptionalRange handles the optional day-pair query parameters of the
// list endpoints: both empty means no constraint, a lone half is rejected.
func resolveOptionalRange(detail, startDay, endDay string) (*DateRange, error) {
	if startDay == "" && endDay == "" {
		return nil, nil
	}
	if startDay == "" || endDay == "" {
		return nil, NewValidationError("%s date range requires both a start and an end date", detail)
	}
	r, err := ResolveDateRange(detail, startDay, endDay)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ResolveDateRange validates a start/end day pair and expands it to a
// half-open UTC interval covering both days. The detail string names the
// range in validation messages ("Created", "Updated").
func ResolveDateRange(detail, startDay, endDay string) (DateRange, error) {
	start, err := parseDay(startDay)
	if err != nil {
		return DateRange{}, err
	}
	end, err := parseDay(endDay)
	if err != nil {
		return DateRange{}, err
	}
	if start.After(end) {
		return DateRange{}, NewValidationError("%s start date cannot exceed %s end date", detail, detail)
	}
	return DateRange{
		Start: start.UTC(),
		End:   end.UTC().Add(24 * time.Hour),
	}, nil
}
