package booking

import (
	"context"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
)

type ListSlots struct {
	repo domain.Repository
}

func NewListSlots(repo domain.Repository) *ListSlots {
	return &ListSlots{repo: repo}
}

// Execute returns the full 30-minute grid for the doctor and date, computed
// fresh on every call. Holiday or unconfigured weekday means an empty grid.
func (uc *ListSlots) Execute(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]domain.TimeSlot, error) {

	dayIdx, err := domain.DayIndexOf(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	wh, err := uc.repo.GetWorkingHours(ctx, doctorID, dayIdx)
	if err != nil {
		return nil, err
	}

	day, ok := domain.ResolveWorkingDay(wh)
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	times, err := uc.repo.ListTakenTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(times))
	for _, t := range times {
		taken[t] = true
	}

	return domain.GenerateSlots(day, taken), nil
}
