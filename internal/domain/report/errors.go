package report

import "errors"

var (
	ErrInvalidDateRange   = errors.New("end_date must not be before start_date")
	ErrInvalidGranularity = errors.New("granularity must be one of: day, hour")
)
