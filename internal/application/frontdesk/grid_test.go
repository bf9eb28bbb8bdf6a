package frontdesk_test

import (
	"testing"
	"time"

	"frontdesk/internal/application/frontdesk"
)

// TestMonthGrid_ShapeAndAlignment checks every month of several years for the
// fixed 42-cell shape, day consecutiveness, and weekday alignment of the 1st.
func TestMonthGrid_ShapeAndAlignment(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2026} {
		for m := time.January; m <= time.December; m++ {
			days := frontdesk.MonthGrid(year, m)
			if len(days) != frontdesk.MonthGridSize {
				t.Fatalf("%d-%02d: got %d cells, want 42", year, m, len(days))
			}
			if days[0].Date.Weekday() != time.Sunday {
				t.Errorf("%d-%02d: grid starts on %s, want Sunday", year, m, days[0].Date.Weekday())
			}
			for i := 1; i < len(days); i++ {
				if !days[i].Date.Equal(days[i-1].Date.AddDate(0, 0, 1)) {
					t.Fatalf("%d-%02d: cell %d (%s) not consecutive after %s",
						year, m, i, days[i].Canonical, days[i-1].Canonical)
				}
			}

			// The 1st of the target month must sit at the index matching its weekday.
			first := time.Date(year, m, 1, 0, 0, 0, 0, time.Local)
			idx := int(first.Weekday())
			if days[idx].Canonical != frontdesk.Canonical(first) {
				t.Errorf("%d-%02d: 1st at index %d is %s, want %s",
					year, m, idx, days[idx].Canonical, frontdesk.Canonical(first))
			}
			if !days[idx].InPeriod {
				t.Errorf("%d-%02d: 1st flagged outside period", year, m)
			}
			if idx > 0 && days[idx-1].InPeriod {
				t.Errorf("%d-%02d: padding day before the 1st flagged in-period", year, m)
			}
		}
	}
}

// TestMonthGrid_FebruaryLeapYear pins the leap-day cell.
func TestMonthGrid_FebruaryLeapYear(t *testing.T) {
	days := frontdesk.MonthGrid(2024, time.February)
	found := false
	for _, d := range days {
		if d.Canonical == "2024-02-29" {
			found = true
			if !d.InPeriod {
				t.Error("2024-02-29 flagged outside period")
			}
		}
	}
	if !found {
		t.Error("2024-02-29 missing from February 2024 grid")
	}
}

// TestWeekGrid_StartsSunday checks 7 consecutive days from the week's Sunday
// for anchors on every weekday.
func TestWeekGrid_StartsSunday(t *testing.T) {
	// 2024-01-14 is a Sunday.
	for offset := 0; offset < 7; offset++ {
		anchor := time.Date(2024, 1, 14+offset, 10, 30, 0, 0, time.Local)
		days := frontdesk.WeekGrid(anchor)
		if len(days) != 7 {
			t.Fatalf("anchor %s: got %d cells, want 7", anchor.Format("2006-01-02"), len(days))
		}
		if days[0].Canonical != "2024-01-14" {
			t.Errorf("anchor %s: week starts %s, want 2024-01-14",
				anchor.Format("2006-01-02"), days[0].Canonical)
		}
		for i := 1; i < 7; i++ {
			if !days[i].Date.Equal(days[i-1].Date.AddDate(0, 0, 1)) {
				t.Fatalf("anchor day %d: non-consecutive week cells", offset)
			}
		}
	}
}

// TestWeekGrid_CrossesMonthBoundary verifies a week spanning two months.
func TestWeekGrid_CrossesMonthBoundary(t *testing.T) {
	// 2024-01-31 is a Wednesday; its week runs Jan 28 .. Feb 3.
	days := frontdesk.WeekGrid(time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local))
	if days[0].Canonical != "2024-01-28" || days[6].Canonical != "2024-02-03" {
		t.Errorf("week = %s..%s, want 2024-01-28..2024-02-03", days[0].Canonical, days[6].Canonical)
	}
}

// TestNewViewState_Defaults checks fallback behaviour for bad query input.
func TestNewViewState_Defaults(t *testing.T) {
	today := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)

	vs := frontdesk.NewViewState("", "", today)
	if vs.Granularity != frontdesk.GranularityMonth {
		t.Errorf("granularity = %q, want month", vs.Granularity)
	}
	if len(vs.Days) != 42 {
		t.Errorf("default view has %d cells, want 42", len(vs.Days))
	}

	vs = frontdesk.NewViewState("fortnight", "not-a-date", today)
	if vs.Granularity != frontdesk.GranularityMonth {
		t.Errorf("bad granularity = %q, want month fallback", vs.Granularity)
	}
	if frontdesk.Canonical(vs.Anchor) != "2024-03-15" {
		t.Errorf("bad date anchored on %s, want today", frontdesk.Canonical(vs.Anchor))
	}

	vs = frontdesk.NewViewState("week", "2024-01-17", today)
	if vs.Granularity != frontdesk.GranularityWeek || len(vs.Days) != 7 {
		t.Errorf("week view: granularity=%q cells=%d", vs.Granularity, len(vs.Days))
	}
	if vs.RangeStart() != "2024-01-14" || vs.RangeEnd() != "2024-01-20" {
		t.Errorf("week range %s..%s, want 2024-01-14..2024-01-20", vs.RangeStart(), vs.RangeEnd())
	}
}

// TestViewState_Navigation checks prev/next anchors for both granularities.
func TestViewState_Navigation(t *testing.T) {
	today := time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local)

	vs := frontdesk.NewViewState("month", "2024-03-31", today)
	if got := vs.PrevAnchor(); got != "2024-02-01" {
		t.Errorf("month PrevAnchor = %s, want 2024-02-01", got)
	}
	if got := vs.NextAnchor(); got != "2024-04-01" {
		t.Errorf("month NextAnchor = %s, want 2024-04-01", got)
	}

	vs = frontdesk.NewViewState("week", "2024-03-13", today)
	if got := vs.PrevAnchor(); got != "2024-03-06" {
		t.Errorf("week PrevAnchor = %s, want 2024-03-06", got)
	}
	if got := vs.NextAnchor(); got != "2024-03-20" {
		t.Errorf("week NextAnchor = %s, want 2024-03-20", got)
	}
}

// TestViewState_Weeks checks the template row split.
func TestViewState_Weeks(t *testing.T) {
	vs := frontdesk.NewViewState("month", "2024-01-15", time.Now())
	weeks := vs.Weeks()
	if len(weeks) != 6 {
		t.Fatalf("month view rows = %d, want 6", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Errorf("row %d has %d cells, want 7", i, len(w))
		}
	}
}
