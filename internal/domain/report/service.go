package report

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AttendanceReportService

import "context"

// AttendanceReportService aggregates shifts into statistics and reports.
type AttendanceReportService interface {
	Stats(ctx context.Context, req StatsRequest) (StatsResponse, error)

	Report(ctx context.Context, req ReportRequest) (ReportResponse, error)
}
