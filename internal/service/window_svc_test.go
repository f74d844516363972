package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsInWindow_SingleMonth(t *testing.T) {
	months := MonthsInWindow(date(2024, 3, 1), date(2024, 3, 31))
	if len(months) != 1 {
		t.Fatalf("got %d months, want 1", len(months))
	}
	if !months[0].Equal(date(2024, 3, 1)) {
		t.Errorf("month = %v, want 2024-03-01", months[0])
	}
}

func TestMonthsInWindow_ZeroLength(t *testing.T) {
	// Same day start and end still yields that day's month.
	months := MonthsInWindow(date(2024, 3, 15), date(2024, 3, 15))
	if len(months) != 1 {
		t.Fatalf("got %d months, want 1", len(months))
	}
}

func TestMonthsInWindow_SpansMonths(t *testing.T) {
	months := MonthsInWindow(date(2024, 3, 20), date(2024, 5, 2))
	if len(months) != 3 {
		t.Fatalf("got %d months, want 3", len(months))
	}
	want := []time.Time{date(2024, 3, 1), date(2024, 4, 1), date(2024, 5, 1)}
	for i, m := range months {
		if !m.Equal(want[i]) {
			t.Errorf("months[%d] = %v, want %v", i, m, want[i])
		}
	}
}

func TestMonthsInWindow_CrossesYear(t *testing.T) {
	months := MonthsInWindow(date(2024, 11, 15), date(2025, 2, 10))
	if len(months) != 4 {
		t.Fatalf("got %d months, want 4", len(months))
	}
	if !months[3].Equal(date(2025, 2, 1)) {
		t.Errorf("last month = %v, want 2025-02-01", months[3])
	}
}

func TestMonthsInWindow_DegenerateWindow(t *testing.T) {
	// A stored window with start after end is treated as empty, not an error.
	months := MonthsInWindow(date(2024, 5, 1), date(2024, 3, 1))
	if len(months) != 0 {
		t.Fatalf("got %d months, want 0", len(months))
	}
}

func TestIsSelectable_TodayIsSelectable(t *testing.T) {
	today := date(2024, 3, 10)
	if !IsSelectable(today, date(2024, 3, 1), date(2024, 3, 31), today) {
		t.Error("today should be selectable")
	}
}

func TestIsSelectable_PastDateNeverSelectable(t *testing.T) {
	today := date(2024, 3, 10)
	// 2024-03-09 is inside the window but before today.
	if IsSelectable(date(2024, 3, 9), date(2024, 3, 1), date(2024, 3, 31), today) {
		t.Error("yesterday should not be selectable even inside the window")
	}
}

func TestIsSelectable_OutsideWindow(t *testing.T) {
	today := date(2024, 3, 10)
	if IsSelectable(date(2024, 2, 28), date(2024, 3, 1), date(2024, 3, 31), today) {
		t.Error("date before window start should not be selectable")
	}
	if IsSelectable(date(2024, 4, 1), date(2024, 3, 1), date(2024, 3, 31), today) {
		t.Error("date after window end should not be selectable")
	}
}

func TestIsSelectable_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	d := time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC)
	if !IsSelectable(d, date(2024, 3, 1), date(2024, 3, 31), today) {
		t.Error("same calendar day should be selectable regardless of time of day")
	}
}

func TestSelectableDates_WindowEntirelyPast(t *testing.T) {
	// Intentional: the months render, every day disabled.
	dates := SelectableDates(date(2024, 1, 1), date(2024, 1, 31), date(2024, 3, 10))
	if len(dates) != 0 {
		t.Fatalf("got %d selectable dates, want 0", len(dates))
	}
}

func TestSelectableDates_StartsAtToday(t *testing.T) {
	dates := SelectableDates(date(2024, 3, 1), date(2024, 3, 31), date(2024, 3, 29))
	if len(dates) != 3 {
		t.Fatalf("got %d selectable dates, want 3 (29th..31st)", len(dates))
	}
	if !dates[0].Equal(date(2024, 3, 29)) {
		t.Errorf("first selectable = %v, want today", dates[0])
	}
}

func TestSelectableDates_DegenerateWindow(t *testing.T) {
	if dates := SelectableDates(date(2024, 5, 1), date(2024, 3, 1), date(2024, 1, 1)); len(dates) != 0 {
		t.Fatalf("degenerate window should yield no dates, got %d", len(dates))
	}
}

func TestWindowSet_RejectsBeforeStorage(t *testing.T) {
	// Validation fires before any repository access, so a service with no
	// repository wired is enough to exercise the rejects.
	svc := NewWindowService(nil)
	ctx := context.Background()

	cases := []model.WindowRequest{
		{StartDate: "2024-03-31", EndDate: "2024-03-01"}, // start after end
		{StartDate: "bad", EndDate: "2024-03-01"},
		{StartDate: "2024-03-01", EndDate: "31.03.2024"},
		{StartDate: "", EndDate: ""},
	}
	for _, req := range cases {
		if err := svc.Set(ctx, req); !errors.Is(err, model.ErrValidation) {
			t.Errorf("Set(%q..%q) err = %v, want ErrValidation", req.StartDate, req.EndDate, err)
		}
	}
}

func TestBuildCalendar_ClampsMonthEdges(t *testing.T) {
	window := &model.VotingWindow{
		StartDate: date(2024, 3, 28),
		EndDate:   date(2024, 4, 3),
	}
	months := BuildCalendar(window, date(2024, 3, 1))

	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}
	if months[0].Month != "2024-03" || months[1].Month != "2024-04" {
		t.Errorf("months = %s, %s", months[0].Month, months[1].Month)
	}
	// March holds only the 28th..31st, April only the 1st..3rd.
	if len(months[0].Dates) != 4 {
		t.Errorf("march has %d dates, want 4", len(months[0].Dates))
	}
	if len(months[1].Dates) != 3 {
		t.Errorf("april has %d dates, want 3", len(months[1].Dates))
	}
	if months[0].Dates[0] != "2024-03-28" {
		t.Errorf("first march date = %s, want 2024-03-28", months[0].Dates[0])
	}
}

func TestBuildCalendar_PastMonthsKeptEmpty(t *testing.T) {
	window := &model.VotingWindow{
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 2, 29),
	}
	months := BuildCalendar(window, date(2024, 2, 28))

	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}
	// January renders with every day disabled.
	if len(months[0].Dates) != 0 {
		t.Errorf("january has %d selectable dates, want 0", len(months[0].Dates))
	}
	// February keeps today and the day after.
	if len(months[1].Dates) != 2 {
		t.Errorf("february has %d selectable dates, want 2", len(months[1].Dates))
	}
}
