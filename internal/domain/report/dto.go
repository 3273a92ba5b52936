package report

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/validator"
)

const (
	// MaxStatsDays bounds the statistics window and the absent-without-shift
	// scan.
	MaxStatsDays = 30

	// DefaultEmployeeLimit applies when employee_limit is not a number.
	DefaultEmployeeLimit = 10
)

type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityHour Granularity = "hour"
)

// ========================================
// REQUESTS
// ========================================

type StatsRequest struct {
	BusinessID string  `json:"-"`
	OutletID   *string `json:"-"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors
	validateRange(&errs, r.StartDate, r.EndDate)
	validateUserID(&errs, r.UserID)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportRequest struct {
	BusinessID    string  `json:"-"`
	OutletID      *string `json:"-"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	UserID        *string `json:"user_id,omitempty"`
	EmployeeLimit string  `json:"employee_limit,omitempty"`
	Granularity   string  `json:"granularity,omitempty"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors
	validateRange(&errs, r.StartDate, r.EndDate)
	validateUserID(&errs, r.UserID)

	if r.Granularity == "" {
		r.Granularity = string(GranularityDay)
	}
	if !validator.IsInSlice(r.Granularity, []string{string(GranularityDay), string(GranularityHour)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "granularity",
			Message: ErrInvalidGranularity.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Limit returns the employee performance row limit, zero meaning no limit.
// "all" or an empty value lifts the limit; anything else that is not a
// positive number falls back to DefaultEmployeeLimit.
func (r ReportRequest) Limit() int {
	v := strings.TrimSpace(r.EmployeeLimit)
	if v == "" || strings.EqualFold(v, "all") {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return DefaultEmployeeLimit
	}
	return n
}

func validateRange(errs *validator.ValidationErrors, startDate, endDate *string) {
	var start, end civil.Date
	var hasStart, hasEnd bool

	if startDate != nil && *startDate != "" {
		if start, hasStart = validator.IsValidDate(*startDate); !hasStart {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if endDate != nil && *endDate != "" {
		if end, hasEnd = validator.IsValidDate(*endDate); !hasEnd {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if hasStart && hasEnd && end.Before(start) {
		errs.Add("end_date", ErrInvalidDateRange.Error())
	}
}

func validateUserID(errs *validator.ValidationErrors, userID *string) {
	if userID != nil && *userID != "" && !validator.IsValidUUID(*userID) {
		errs.Add("user_id", "user_id must be a valid UUID")
	}
}

// ========================================
// RESPONSES
// ========================================

type Stats struct {
	TotalShifts        int     `json:"total_shifts"`
	Completed          int     `json:"completed"`
	Ongoing            int     `json:"ongoing"`
	Late               int     `json:"late"`
	Absent             int     `json:"absent"`
	AbsentFromShifts   int     `json:"absent_from_shifts"`
	AbsentWithoutShift int     `json:"absent_without_shift"`
	Present            int     `json:"present"`
	TotalWorkingHours  float64 `json:"total_working_hours"`
}

type StatsResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Stats
}

type TrendPoint struct {
	Date      string `json:"date,omitempty"`
	Hour      *int   `json:"hour,omitempty"`
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Late      int    `json:"late"`
	Absent    int    `json:"absent"`
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type EmployeePerformance struct {
	UserID            string  `json:"user_id"`
	UserName          string  `json:"user_name"`
	TotalShifts       int     `json:"total_shifts"`
	Completed         int     `json:"completed"`
	Late              int     `json:"late"`
	Absent            int     `json:"absent"`
	AttendanceRate    float64 `json:"attendance_rate"`
	TotalWorkingHours float64 `json:"total_working_hours"`
}

type ReportResponse struct {
	StartDate           string                `json:"start_date"`
	EndDate             string                `json:"end_date"`
	Granularity         Granularity           `json:"granularity"`
	Stats               Stats                 `json:"stats"`
	Trends              []TrendPoint          `json:"daily_trends"`
	StatusDistribution  []StatusSlice         `json:"status_distribution"`
	EmployeePerformance []EmployeePerformance `json:"employee_performance"`
}
