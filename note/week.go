package note

import (
	"fmt"
	"sort"
	"time"
)

// Week is one calendar week's note list, keyed by ISO week-based year and
// 1-based week number.
type Week struct {
	Year       int    `json:"year"`
	WeekNumber int    `json:"weekNumber"`
	Notes      []Note `json:"notes"`
}

// NewWeek constructs an empty week for the given key.
func NewWeek(year, weekNumber int) Week {
	return Week{Year: year, WeekNumber: weekNumber, Notes: []Note{}}
}

// StartDate returns the Monday of the week.
func (w Week) StartDate() Date {
	return StartDate(w.Year, w.WeekNumber)
}

// EndDate returns the Sunday of the week.
func (w Week) EndDate() Date {
	return w.StartDate().AddDays(6)
}

// Title returns the display title, e.g. "2025 week 10".
func (w Week) Title() string {
	return fmt.Sprintf("%d week %d", w.Year, w.WeekNumber)
}

// Key returns the week key in "2025-W10" form.
func (w Week) Key() string {
	return fmt.Sprintf("%d-W%d", w.Year, w.WeekNumber)
}

// SortNotes sorts the week's notes by order. The sort is stable so notes
// sharing an order value keep their relative positions.
func (w *Week) SortNotes() {
	sort.SliceStable(w.Notes, func(i, j int) bool {
		return w.Notes[i].Order < w.Notes[j].Order
	})
}

// CurrentWeek returns the ISO week key for today.
func CurrentWeek() (year, weekNumber int) {
	return WeekOf(time.Now())
}

// WeekOf returns the ISO week key containing the given date. Weeks start
// on Monday; week 1 is the week containing the year's first Thursday.
func WeekOf(t time.Time) (year, weekNumber int) {
	return t.ISOWeek()
}

// StartDate returns the Monday of the given ISO week. Out-of-range week
// numbers are not validated; callers pass plausible values.
func StartDate(year, weekNumber int) Date {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := jan4.AddDate(0, 0, -(weekday - 1))
	return DateOf(monday.AddDate(0, 0, (weekNumber-1)*7))
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in the given
// week-based year. December 28th is always inside the year's last week.
func WeeksInYear(year int) int {
	dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, week := dec28.ISOWeek()
	return week
}

// NextWeek returns the key of the week after (year, weekNumber), rolling
// into week 1 of the next year past the year's final week.
func NextWeek(year, weekNumber int) (int, int) {
	if weekNumber < WeeksInYear(year) {
		return year, weekNumber + 1
	}
	return year + 1, 1
}

// PreviousWeek returns the key of the week before (year, weekNumber),
// rolling back into the final week of the previous year from week 1.
func PreviousWeek(year, weekNumber int) (int, int) {
	if weekNumber > 1 {
		return year, weekNumber - 1
	}
	return year - 1, WeeksInYear(year - 1)
}

// ParseKey parses a week key in "2025-W10" form.
func ParseKey(key string) (year, weekNumber int, err error) {
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &weekNumber); err != nil {
		return 0, 0, fmt.Errorf("invalid week key %q: expected a form like 2025-W10", key)
	}
	if weekNumber < 1 || weekNumber > 53 {
		return 0, 0, fmt.Errorf("invalid week key %q: week number out of range", key)
	}
	return year, weekNumber, nil
}
