package service

import (
	"context"
	"time"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/repository"
)

// DateOnly truncates a timestamp to its calendar day in UTC. All window and
// selectability comparisons happen at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthsInWindow returns the ordered first-of-month sequence spanning the
// inclusive range. A window inside a single month yields exactly that month.
// A degenerate stored window (start after end) yields nothing rather than
// an error.
func MonthsInWindow(start, end time.Time) []time.Time {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		return nil
	}

	var months []time.Time
	m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !m.After(last) {
		months = append(months, m)
		m = m.AddDate(0, 1, 0)
	}
	return months
}

// IsSelectable reports whether d may be picked: inside [start, end] and not
// strictly before today. Today itself is selectable.
func IsSelectable(d, start, end, today time.Time) bool {
	d, start, end, today = DateOnly(d), DateOnly(start), DateOnly(end), DateOnly(today)
	if d.Before(start) || d.After(end) {
		return false
	}
	return !d.Before(today)
}

// SelectableDates lists every selectable date in the window, ascending.
// A window entirely in the past yields an empty list; that is the intended
// "all days disabled" rendering, not an error.
func SelectableDates(start, end, today time.Time) []time.Time {
	start, end, today = DateOnly(start), DateOnly(end), DateOnly(today)
	if start.After(end) {
		return nil
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !d.Before(today) {
			dates = append(dates, d)
		}
	}
	return dates
}

// WindowService reads and replaces the singleton voting window.
type WindowService struct {
	repo *repository.ConfigRepo

	// now drives the "not before today" rule for the calendar view.
	// Overridable in tests.
	now func() time.Time
}

func NewWindowService(repo *repository.ConfigRepo) *WindowService {
	return &WindowService{repo: repo, now: time.Now}
}

func (s *WindowService) Get(ctx context.Context) (*model.VotingWindow, error) {
	return s.repo.GetWindow(ctx)
}

// Calendar returns the window's months with their selectable dates, for
// the client's date picker. No window means no months at all; a window in
// the past means months whose date lists are empty.
func (s *WindowService) Calendar(ctx context.Context) ([]model.MonthDates, error) {
	window, err := s.repo.GetWindow(ctx)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return []model.MonthDates{}, nil
	}

	return BuildCalendar(window, DateOnly(s.now())), nil
}

// BuildCalendar lays the window out month by month, each month carrying
// only its still-selectable dates. Pure: the clock comes in as today.
func BuildCalendar(window *model.VotingWindow, today time.Time) []model.MonthDates {
	windowStart, windowEnd := DateOnly(window.StartDate), DateOnly(window.EndDate)
	months := MonthsInWindow(windowStart, windowEnd)
	out := make([]model.MonthDates, 0, len(months))
	for _, m := range months {
		md := model.MonthDates{
			Month: m.Format("2006-01"),
			Dates: []string{},
		}
		start, end := m, m.AddDate(0, 1, -1)
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		for _, d := range SelectableDates(start, end, today) {
			md.Dates = append(md.Dates, d.Format(time.DateOnly))
		}
		out = append(out, md)
	}
	return out
}

// Set validates and replaces the window. Both boundaries change together
// (single upsert) so no reader ever sees a half-updated window.
func (s *WindowService) Set(ctx context.Context, req model.WindowRequest) error {
	start, err := time.ParseInLocation(time.DateOnly, req.StartDate, time.UTC)
	if err != nil {
		return model.Validationf("invalid start date %q", req.StartDate)
	}
	end, err := time.ParseInLocation(time.DateOnly, req.EndDate, time.UTC)
	if err != nil {
		return model.Validationf("invalid end date %q", req.EndDate)
	}
	if start.After(end) {
		return model.Validationf("start date %s is after end date %s", req.StartDate, req.EndDate)
	}
	return s.repo.SetWindow(ctx, start, end)
}
