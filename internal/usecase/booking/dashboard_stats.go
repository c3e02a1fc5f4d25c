package booking

import (
	"context"
	"time"

	domain "github.com/saltain/randevux/internal/domain/booking"
)

type Stats struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Total int64 `json:"total"`
}

type DashboardStats struct {
	repo domain.Repository
}

func NewDashboardStats(repo domain.Repository) *DashboardStats {
	return &DashboardStats{repo: repo}
}

// Execute counts today's, this week's and all appointments. The week starts
// on Sunday, matching what the dashboard has always shown.
func (uc *DashboardStats) Execute(ctx context.Context) (*Stats, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	weekStart := now.AddDate(0, 0, -int(now.Weekday())).Format("2006-01-02")

	todayCount, err := uc.repo.CountAppointmentsOnDate(ctx, today)
	if err != nil {
		return nil, err
	}

	weekCount, err := uc.repo.CountAppointmentsSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	total, err := uc.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Today: todayCount,
		Week:  weekCount,
		Total: total,
	}, nil
}
