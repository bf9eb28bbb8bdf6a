package frontdesk

import "time"

// Granularity is the calendar display mode.
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// MonthGridSize is the fixed cell count of a month grid: six whole weeks.
const MonthGridSize = 42

// DaysPerWeek is the cell count of a week grid.
const DaysPerWeek = 7

// Day is one concrete cell of the calendar grid.
type Day struct {
	Date      time.Time
	Canonical string
	InPeriod  bool // false for adjacent-month padding days on a month grid
}

// MonthGrid returns the 42-cell grid for the given month: the full month plus
// leading and trailing days from adjacent months to complete whole weeks,
// week starting on Sunday.
// PRE: month is a valid time.Month
// POST: exactly 42 consecutive days; cell 0 is a Sunday
func MonthGrid(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]Day, 0, MonthGridSize)
	for i := 0; i < MonthGridSize; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Date:      d,
			Canonical: Canonical(d),
			InPeriod:  d.Month() == month && d.Year() == year,
		})
	}
	return days
}

// WeekGrid returns the 7-day grid for the week containing anchor, starting on
// that week's Sunday. Every cell belongs to the displayed period.
// PRE: none
// POST: exactly 7 consecutive days; cell 0 is a Sunday
func WeekGrid(anchor time.Time) []Day {
	anchor = anchor.In(time.Local)
	start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)

	days := make([]Day, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{Date: d, Canonical: Canonical(d), InPeriod: true})
	}
	return days
}

// ViewState is the derived calendar view for one anchor date and granularity.
type ViewState struct {
	Anchor      time.Time
	Granularity Granularity
	Days        []Day
}

// NewViewState derives a ViewState from raw `view` and `date` query values.
// Unrecognised granularity falls back to month; an unparseable or missing
// date anchors on today.
// PRE: today is the caller's notion of the current day (explicit, not ambient)
// POST: Days holds 42 cells for month granularity, 7 for week
func NewViewState(viewParam, dateParam string, today time.Time) ViewState {
	g := Granularity(viewParam)
	if g != GranularityWeek && g != GranularityMonth {
		g = GranularityMonth
	}

	anchor := today.In(time.Local)
	if dateParam != "" {
		if t, err := ParseCanonical(dateParam); err == nil {
			anchor = t
		}
	}

	vs := ViewState{Anchor: anchor, Granularity: g}
	if g == GranularityWeek {
		vs.Days = WeekGrid(anchor)
	} else {
		vs.Days = MonthGrid(anchor.Year(), anchor.Month())
	}
	return vs
}

// AnchorDate returns the anchor as a canonical date for links.
func (v ViewState) AnchorDate() string {
	return Canonical(v.Anchor)
}

// RangeStart returns the canonical date of the first visible cell.
func (v ViewState) RangeStart() string {
	return v.Days[0].Canonical
}

// RangeEnd returns the canonical date of the last visible cell.
func (v ViewState) RangeEnd() string {
	return v.Days[len(v.Days)-1].Canonical
}

// PrevAnchor returns the anchor for the previous period as a canonical date.
func (v ViewState) PrevAnchor() string {
	if v.Granularity == GranularityWeek {
		return Canonical(v.Anchor.AddDate(0, 0, -DaysPerWeek))
	}
	// First of the previous month, so repeated navigation never skips a month
	// when the anchor day-of-month exceeds the target month's length.
	first := time.Date(v.Anchor.Year(), v.Anchor.Month(), 1, 0, 0, 0, 0, time.Local)
	return Canonical(first.AddDate(0, -1, 0))
}

// NextAnchor returns the anchor for the next period as a canonical date.
func (v ViewState) NextAnchor() string {
	if v.Granularity == GranularityWeek {
		return Canonical(v.Anchor.AddDate(0, 0, DaysPerWeek))
	}
	first := time.Date(v.Anchor.Year(), v.Anchor.Month(), 1, 0, 0, 0, 0, time.Local)
	return Canonical(first.AddDate(0, 1, 0))
}

// Weeks splits the grid into rows of seven for template rendering.
func (v ViewState) Weeks() [][]Day {
	var weeks [][]Day
	for i := 0; i+DaysPerWeek <= len(v.Days); i += DaysPerWeek {
		weeks = append(weeks, v.Days[i:i+DaysPerWeek])
	}
	return weeks
}
