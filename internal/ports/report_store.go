package ports

import "github.com/aalvaropc/svgstore/internal/domain"

// ReportStore persists build reports.
type ReportStore interface {
	SaveReport(report domain.BuildReport) (id string, err error)
	LoadReport(id string) (domain.BuildReport, error)
	LatestReport() (domain.BuildReport, error)
	ListReports() ([]domain.ReportRef, error)
}
