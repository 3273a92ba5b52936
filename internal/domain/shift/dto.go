package shift

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/storage"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/validator"
)

const (
	DefaultListLimit  = 20
	MaxListLimit      = 100
	DefaultListWindow = 7 // days
)

// ========================================
// CLOCK IN / CLOCK OUT
// ========================================

type ClockInRequest struct {
	BusinessID          string   `json:"-"`
	OutletID            string   `json:"-"`
	ShiftDate           string   `json:"shift_date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Notes               *string  `json:"notes"`
	ClockInPhoto        *string  `json:"clock_in_photo"`
	FaceMatchConfidence *float64 `json:"face_match_confidence"`

	date  civil.Date
	start civil.TimeOfDay
	end   civil.TimeOfDay
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if date, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be in YYYY-MM-DD format",
		})
	} else {
		r.date = date
	}

	start, startOK := validator.IsValidTimeOfDay(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	end, endOK := validator.IsValidTimeOfDay(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if startOK && endOK {
		if start == end {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: ErrInvalidShiftSchedule.Error(),
			})
		}
		r.start, r.end = start, end
	}

	validateFix(&errs, r.Latitude, r.Longitude)
	validateConfidence(&errs, r.FaceMatchConfidence)
	validatePhoto(&errs, "clock_in_photo", r.ClockInPhoto)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Date, Start and End return the schedule parsed by Validate.
func (r ClockInRequest) Date() civil.Date { return r.date }

func (r ClockInRequest) Start() civil.TimeOfDay { return r.start }

func (r ClockInRequest) End() civil.TimeOfDay { return r.end }

func (r ClockInRequest) Fix() geofence.Fix {
	return geofence.Fix{Latitude: r.Latitude, Longitude: r.Longitude}
}

type ClockOutRequest struct {
	ShiftID             string   `json:"-"`
	BusinessID          string   `json:"-"`
	OutletID            string   `json:"-"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Notes               *string  `json:"notes"`
	ClockOutPhoto       *string  `json:"clock_out_photo"`
	FaceMatchConfidence *float64 `json:"face_match_confidence"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id must be a valid UUID",
		})
	}

	validateFix(&errs, r.Latitude, r.Longitude)
	validateConfidence(&errs, r.FaceMatchConfidence)
	validatePhoto(&errs, "clock_out_photo", r.ClockOutPhoto)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r ClockOutRequest) Fix() geofence.Fix {
	return geofence.Fix{Latitude: r.Latitude, Longitude: r.Longitude}
}

func validateFix(errs *validator.ValidationErrors, lat, lon *float64) {
	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs.Add("latitude", "latitude must be between -90 and 90")
	}
	if lon != nil && !validator.IsValidLongitude(*lon) {
		errs.Add("longitude", "longitude must be between -180 and 180")
	}
}

func validateConfidence(errs *validator.ValidationErrors, c *float64) {
	if c != nil && !validator.IsInRange(*c, 0, 100) {
		errs.Add("face_match_confidence", "face_match_confidence must be between 0 and 100")
	}
}

func validatePhoto(errs *validator.ValidationErrors, field string, photo *string) {
	if photo == nil || strings.TrimSpace(*photo) == "" {
		return
	}
	if _, err := storage.DecodeBase64Image(*photo); err != nil {
		errs.Add(field, field+" must be a valid base64 encoded image")
	}
}

// ========================================
// QUERIES
// ========================================

type TodayRequest struct {
	BusinessID string
	OutletID   *string
}

type ListShiftsRequest struct {
	BusinessID string  `json:"-"`
	OutletID   *string `json:"-"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     *string `json:"status,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
	Limit      int     `json:"limit"`
}

func (f *ListShiftsRequest) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, Statuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: " + strings.Join(Statuses, ", "),
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.UserID != nil && *f.UserID != "" && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter scopes a repository read of shifts. A nil OutletID or UserID
// means all outlets or all users of the business.
type ListFilter struct {
	BusinessID string
	OutletID   *string
	UserID     *string
	StartDate  civil.Date
	EndDate    civil.Date
}

// ResolveWindow applies the list window rules: a missing bound is derived
// from the other one and the span never exceeds maxDays.
func ResolveWindow(startDate, endDate *string, today civil.Date, maxDays int) (civil.Date, civil.Date) {
	start, hasStart := parseOptionalDate(startDate)
	end, hasEnd := parseOptionalDate(endDate)

	switch {
	case !hasStart && !hasEnd:
		end = today
		start = today.AddDays(-maxDays)
	case hasStart && !hasEnd:
		end = start.AddDays(maxDays)
	case !hasStart && hasEnd:
		start = end.AddDays(-maxDays)
	}

	if end.DaysSince(start) > maxDays {
		end = start.AddDays(maxDays)
	}
	return start, end
}

func parseOptionalDate(s *string) (civil.Date, bool) {
	if s == nil || *s == "" {
		return civil.Date{}, false
	}
	return validator.IsValidDate(*s)
}

// ========================================
// RESPONSES
// ========================================

type ShiftResponse struct {
	ID                  string   `json:"id"`
	BusinessID          string   `json:"business_id"`
	OutletID            string   `json:"outlet_id"`
	OutletName          *string  `json:"outlet_name,omitempty"`
	UserID              string   `json:"user_id"`
	UserName            *string  `json:"user_name,omitempty"`
	ShiftDate           string   `json:"shift_date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	ClockIn             *string  `json:"clock_in"`
	ClockOut            *string  `json:"clock_out"`
	ClockInLatitude     *float64 `json:"clock_in_latitude"`
	ClockInLongitude    *float64 `json:"clock_in_longitude"`
	ClockOutLatitude    *float64 `json:"clock_out_latitude"`
	ClockOutLongitude   *float64 `json:"clock_out_longitude"`
	ClockInPhoto        *string  `json:"clock_in_photo"`
	ClockInPhotoURL     *string  `json:"clock_in_photo_url,omitempty"`
	ClockOutPhoto       *string  `json:"clock_out_photo"`
	ClockOutPhotoURL    *string  `json:"clock_out_photo_url,omitempty"`
	FaceMatchConfidence *float64 `json:"face_match_confidence"`
	Status              Status   `json:"status"`
	IsOvernight         bool     `json:"is_overnight"`
	WorkingHours        *float64 `json:"working_hours"`
	Notes               *string  `json:"notes"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// NewShiftResponse maps s with its status evaluated at now.
func NewShiftResponse(s Shift, now time.Time, loc *time.Location) ShiftResponse {
	resp := ShiftResponse{
		ID:                  s.ID,
		BusinessID:          s.BusinessID,
		OutletID:            s.OutletID,
		OutletName:          s.OutletName,
		UserID:              s.UserID,
		UserName:            s.UserName,
		ShiftDate:           s.ShiftDate.String(),
		StartTime:           s.ScheduledStart.String(),
		EndTime:             s.ScheduledEnd.String(),
		ClockInPhoto:        s.ClockInPhotoRef,
		ClockOutPhoto:       s.ClockOutPhotoRef,
		FaceMatchConfidence: s.FaceMatchConfidence,
		Status:              EffectiveStatus(s, now, loc),
		IsOvernight:         IsOvernight(s.ScheduledStart, s.ScheduledEnd),
		CreatedAt:           s.CreatedAt.In(loc).Format(time.RFC3339),
		UpdatedAt:           s.UpdatedAt.In(loc).Format(time.RFC3339),
	}

	if s.ClockIn != nil {
		v := s.ClockIn.String()
		resp.ClockIn = &v
	}
	if s.ClockOut != nil {
		v := s.ClockOut.String()
		resp.ClockOut = &v
	}
	if s.ClockInLocation != nil {
		resp.ClockInLatitude = &s.ClockInLocation.Latitude
		resp.ClockInLongitude = &s.ClockInLocation.Longitude
	}
	if s.ClockOutLocation != nil {
		resp.ClockOutLatitude = &s.ClockOutLocation.Latitude
		resp.ClockOutLongitude = &s.ClockOutLocation.Longitude
	}
	if s.ClockIn != nil && s.ClockOut != nil {
		h := s.WorkedHours()
		resp.WorkingHours = &h
	}
	if s.Notes != "" {
		notes := s.Notes
		resp.Notes = &notes
	}
	return resp
}

type ClockInResponse struct {
	Shift              ShiftResponse   `json:"shift"`
	LocationValidation geofence.Result `json:"location_validation"`
}

type ClockOutResponse struct {
	Shift              ShiftResponse   `json:"shift"`
	WorkingHours       float64         `json:"working_hours"`
	LocationValidation geofence.Result `json:"location_validation"`
}

type TodayResponse struct {
	Shift *ShiftResponse `json:"shift"`
}

type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Limit     int             `json:"limit"`
	Count     int             `json:"count"`
}
