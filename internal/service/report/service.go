package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/cmlabs-hris/pos-attendance-go/internal/service/report"

// Status distribution slices, in display order.
var distribution = []struct {
	name  string
	color string
}{
	{"Selesai", "#10b981"},
	{"Berlangsung", "#3b82f6"},
	{"Terlambat", "#f59e0b"},
	{"Tidak Hadir", "#ef4444"},
}

// noonCutoff separates shift ends that fall on the next morning.
var noonCutoff = civil.TimeOfDay{Hour: 12}

type ReportServiceImpl struct {
	shifts    shift.ShiftRepository
	employees employee.Repository
	outlets   outlet.Repository
	clock     clock.Clock
	loc       *time.Location
	metrics   *metrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewReportService(
	shifts shift.ShiftRepository,
	employees employee.Repository,
	outlets outlet.Repository,
	clk clock.Clock,
	loc *time.Location,
	m *metrics.Metrics,
	logger *slog.Logger,
) report.AttendanceReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		shifts:    shifts,
		employees: employees,
		outlets:   outlets,
		clock:     clk,
		loc:       loc,
		metrics:   m,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

// scope is a resolved aggregation request.
type scope struct {
	businessID string
	outletID   *string
	userID     *string
	start      civil.Date
	end        civil.Date
	now        time.Time
}

// dataset is what one aggregation reads from storage.
type dataset struct {
	shifts             []shift.Shift
	employees          []employee.Employee
	absentWithoutShift int
	absentByDate       map[civil.Date]int
}

// Stats implements report.AttendanceReportService.
func (s *ReportServiceImpl) Stats(ctx context.Context, req report.StatsRequest) (report.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return report.StatsResponse{}, err
	}

	userID, err := s.resolveUser(ctx, req.UserID)
	if err != nil {
		return report.StatsResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	today := civil.DateOf(now)

	end := today
	if d, ok := parseDate(req.EndDate); ok {
		end = d
	}
	start := end.AddDays(-report.MaxStatsDays)
	if d, ok := parseDate(req.StartDate); ok {
		start = d
	}
	if end.DaysSince(start) > report.MaxStatsDays {
		start = end.AddDays(-report.MaxStatsDays)
	}

	sc := scope{
		businessID: req.BusinessID,
		outletID:   req.OutletID,
		userID:     userID,
		start:      start,
		end:        end,
		now:        now,
	}
	data, err := s.load(ctx, sc)
	if err != nil {
		return report.StatsResponse{}, err
	}

	return report.StatsResponse{
		StartDate: start.String(),
		EndDate:   end.String(),
		Stats:     s.stats(data, now),
	}, nil
}

// Report implements report.AttendanceReportService.
func (s *ReportServiceImpl) Report(ctx context.Context, req report.ReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	userID, err := s.resolveUser(ctx, req.UserID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	today := civil.DateOf(now)

	start := civil.Date{Year: today.Year, Month: today.Month, Day: 1}
	end := today
	if d, ok := parseDate(req.StartDate); ok {
		start = d
	}
	if d, ok := parseDate(req.EndDate); ok {
		end = d
	}
	if end.Before(start) {
		return report.ReportResponse{}, report.ErrInvalidDateRange
	}

	sc := scope{
		businessID: req.BusinessID,
		outletID:   req.OutletID,
		userID:     userID,
		start:      start,
		end:        end,
		now:        now,
	}
	data, err := s.load(ctx, sc)
	if err != nil {
		return report.ReportResponse{}, err
	}

	stats := s.stats(data, now)
	granularity := report.Granularity(req.Granularity)

	var trends []report.TrendPoint
	if granularity == report.GranularityHour {
		trends = s.hourlyTrends(data, now)
	} else {
		trends = s.dailyTrends(data, sc)
	}

	return report.ReportResponse{
		StartDate:           start.String(),
		EndDate:             end.String(),
		Granularity:         granularity,
		Stats:               stats,
		Trends:              trends,
		StatusDistribution:  statusDistribution(stats),
		EmployeePerformance: s.employeePerformance(data, now, req.Limit()),
	}, nil
}

// resolveUser applies the caller's visibility: staff only ever see their
// own attendance.
func (s *ReportServiceImpl) resolveUser(ctx context.Context, requested *string) (*string, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionReportsViewOwn) {
		return nil, user.ErrInsufficientPermissions
	}
	if !user.HasPermission(claims.Role, user.PermissionReportsViewAll) {
		return &claims.UserID, nil
	}
	if requested != nil && *requested != "" {
		return requested, nil
	}
	return nil, nil
}

// load runs the independent reads of an aggregation in parallel.
func (s *ReportServiceImpl) load(ctx context.Context, sc scope) (dataset, error) {
	ctx, span := s.tracer.Start(ctx, "report.load", trace.WithAttributes(
		attribute.String("business.id", sc.businessID),
		attribute.String("range.start", sc.start.String()),
		attribute.String("range.end", sc.end.String()),
	))
	defer span.End()

	var (
		data  dataset
		store outlet.Outlet
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		started := time.Now()
		defer func() { s.metrics.ObserveAggregation("shifts", time.Since(started)) }()

		shifts, err := s.shifts.List(gctx, shift.ListFilter{
			BusinessID: sc.businessID,
			OutletID:   sc.outletID,
			UserID:     sc.userID,
			StartDate:  sc.start,
			EndDate:    sc.end,
		})
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}
		data.shifts = shifts
		return nil
	})

	g.Go(func() error {
		started := time.Now()
		defer func() { s.metrics.ObserveAggregation("employees", time.Since(started)) }()

		employees, err := s.employees.ListActive(gctx, employee.Scope{
			BusinessID: sc.businessID,
			OutletID:   sc.outletID,
			UserID:     sc.userID,
		})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		data.employees = employees
		return nil
	})

	if sc.outletID != nil {
		g.Go(func() error {
			o, err := s.outlets.Get(gctx, sc.businessID, *sc.outletID)
			if err != nil {
				return err
			}
			store = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation read failed")
		s.logger.ErrorContext(ctx, "attendance aggregation failed",
			slog.String("business_id", sc.businessID),
			slog.Any("error", err),
		)
		return dataset{}, err
	}

	data.absentByDate = s.absentWithoutShift(data, store.ShiftEnds(), sc)
	for _, n := range data.absentByDate {
		data.absentWithoutShift += n
	}
	span.SetAttributes(
		attribute.Int("shifts", len(data.shifts)),
		attribute.Int("employees", len(data.employees)),
	)
	return data, nil
}

// absentWithoutShift counts, per date, active employees with no shift at
// all. Only weekdays up to today whose latest configured shift end has passed
// are counted, reaching back at most MaxStatsDays days before the last one.
func (s *ReportServiceImpl) absentWithoutShift(data dataset, ends []civil.TimeOfDay, sc scope) map[civil.Date]int {
	counts := map[civil.Date]int{}
	if len(data.employees) == 0 {
		return counts
	}

	today := civil.DateOf(sc.now)
	last := sc.end
	if today.Before(last) {
		last = today
	}
	first := sc.start
	if last.DaysSince(first) > report.MaxStatsDays {
		first = last.AddDays(-report.MaxStatsDays)
	}

	worked := map[civil.Date]map[string]bool{}
	for _, sh := range data.shifts {
		if worked[sh.ShiftDate] == nil {
			worked[sh.ShiftDate] = map[string]bool{}
		}
		worked[sh.ShiftDate][sh.UserID] = true
	}

	for d := first; !d.After(last); d = d.AddDays(1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if sc.now.Before(s.latestEnd(d, ends)) {
			continue
		}
		n := 0
		for _, e := range data.employees {
			if !worked[d][e.UserID] {
				n++
			}
		}
		if n > 0 {
			counts[d] = n
		}
	}
	return counts
}

// latestEnd returns the last configured shift end of date. An end before
// noon closes a shift that started the previous evening.
func (s *ReportServiceImpl) latestEnd(date civil.Date, ends []civil.TimeOfDay) time.Time {
	var latest time.Time
	for _, end := range ends {
		t := civil.Combine(date, end, s.loc)
		if end.Before(noonCutoff) {
			t = civil.Combine(date.AddDays(1), end, s.loc)
		}
		if t.After(latest) {
			latest = t
		}
	}
	return latest
}

func (s *ReportServiceImpl) stats(data dataset, now time.Time) report.Stats {
	var st report.Stats
	for _, sh := range data.shifts {
		st.TotalShifts++
		switch shift.EffectiveStatus(sh, now, s.loc) {
		case shift.StatusCompleted:
			st.Completed++
		case shift.StatusOngoing:
			st.Ongoing++
		case shift.StatusLate:
			st.Late++
		case shift.StatusAbsent:
			st.AbsentFromShifts++
		}
		if sh.ClockIn != nil {
			st.Present++
		}
		st.TotalWorkingHours += sh.WorkedHours()
	}
	st.AbsentWithoutShift = data.absentWithoutShift
	st.Absent = st.AbsentFromShifts + st.AbsentWithoutShift
	st.TotalWorkingHours = shift.Round2(st.TotalWorkingHours)
	return st
}

func (s *ReportServiceImpl) dailyTrends(data dataset, sc scope) []report.TrendPoint {
	index := map[civil.Date]int{}
	var points []report.TrendPoint
	for d := sc.start; !d.After(sc.end); d = d.AddDays(1) {
		index[d] = len(points)
		points = append(points, report.TrendPoint{
			Date:   d.String(),
			Label:  d.In(s.loc).Format("02 Jan"),
			Absent: data.absentByDate[d],
		})
	}

	for _, sh := range data.shifts {
		i, ok := index[sh.ShiftDate]
		if !ok {
			continue
		}
		countTrend(&points[i], shift.EffectiveStatus(sh, sc.now, s.loc))
	}
	return points
}

// hourlyTrends buckets shifts by clock-in hour. Shifts never clocked into
// fall in the hour of their scheduled start.
func (s *ReportServiceImpl) hourlyTrends(data dataset, now time.Time) []report.TrendPoint {
	points := make([]report.TrendPoint, 24)
	for h := range points {
		hour := h
		points[h] = report.TrendPoint{
			Hour:  &hour,
			Label: fmt.Sprintf("%02d:00", h),
		}
	}

	for _, sh := range data.shifts {
		hour := sh.ScheduledStart.Hour
		if sh.ClockIn != nil {
			hour = sh.ClockIn.Hour
		}
		countTrend(&points[hour], shift.EffectiveStatus(sh, now, s.loc))
	}
	return points
}

func countTrend(p *report.TrendPoint, status shift.Status) {
	p.Total++
	switch status {
	case shift.StatusCompleted:
		p.Completed++
	case shift.StatusLate:
		p.Late++
	case shift.StatusAbsent:
		p.Absent++
	}
}

func statusDistribution(st report.Stats) []report.StatusSlice {
	values := []int{st.Completed, st.Ongoing, st.Late, st.Absent}
	slices := make([]report.StatusSlice, len(distribution))
	for i, d := range distribution {
		slices[i] = report.StatusSlice{Name: d.name, Value: values[i], Color: d.color}
	}
	return slices
}

func (s *ReportServiceImpl) employeePerformance(data dataset, now time.Time, limit int) []report.EmployeePerformance {
	names := make(map[string]string, len(data.employees))
	for _, e := range data.employees {
		names[e.UserID] = e.Name
	}

	rows := map[string]*report.EmployeePerformance{}
	var order []string
	for _, sh := range data.shifts {
		row, ok := rows[sh.UserID]
		if !ok {
			name := names[sh.UserID]
			if sh.UserName != nil && *sh.UserName != "" {
				name = *sh.UserName
			}
			row = &report.EmployeePerformance{UserID: sh.UserID, UserName: name}
			rows[sh.UserID] = row
			order = append(order, sh.UserID)
		}

		row.TotalShifts++
		switch shift.EffectiveStatus(sh, now, s.loc) {
		case shift.StatusCompleted:
			row.Completed++
		case shift.StatusLate:
			row.Late++
		case shift.StatusAbsent:
			row.Absent++
		}
		row.TotalWorkingHours += sh.WorkedHours()
	}

	out := make([]report.EmployeePerformance, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.TotalShifts > 0 {
			row.AttendanceRate = shift.Round2(float64(row.Completed+row.Late) / float64(row.TotalShifts) * 100)
		}
		row.TotalWorkingHours = shift.Round2(row.TotalWorkingHours)
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalShifts > out[j].TotalShifts
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func parseDate(s *string) (civil.Date, bool) {
	if s == nil || *s == "" {
		return civil.Date{}, false
	}
	d, err := civil.ParseDate(*s)
	if err != nil {
		return civil.Date{}, false
	}
	return d, true
}
