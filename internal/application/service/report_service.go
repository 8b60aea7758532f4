package service

import (
	"time"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/report"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
)

// ReportService derives the analytics dashboard from the bill list.
// Nothing here is cached or stored; every call recomputes from the
// current aggregate.
type ReportService struct {
	store *store.Store
	now   func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st, now: time.Now}
}

// Dashboard bundles every derived view for one reporting window.
type Dashboard struct {
	Range      report.Range          `json:"range"`
	Summary    report.Summary        `json:"summary"`
	Trend      []report.TrendPoint   `json:"trend"`
	PeakHours  []report.HourPoint    `json:"peak_hours"`
	Categories []report.CategoryPoint `json:"categories"`
	Items      []report.ItemStat     `json:"items"`
}

// GetDashboard computes the dashboard for a date range.
func (s *ReportService) GetDashboard(r report.Range) *Dashboard {
	now := s.now()
	active := report.Active(report.Filter(s.store.State().Bills, r, now))

	return &Dashboard{
		Range:      r,
		Summary:    report.Summarize(active),
		Trend:      report.Trend(active, r),
		PeakHours:  report.PeakHours(active),
		Categories: report.Categories(active),
		Items:      report.ItemPerformance(active),
	}
}

// WindowBills returns all bills in the window (canceled included) and
// the active subset, for the exporters.
func (s *ReportService) WindowBills(r report.Range) (all, active []entity.Bill) {
	now := s.now()
	all = report.Filter(s.store.State().Bills, r, now)
	return all, report.Active(all)
}
