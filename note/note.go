// Package note implements the weekly-notes domain model: notes, their
// status cycle, weeks keyed by ISO year and week number, and the week
// date arithmetic.
//
// A week's start and end dates and its title are always derived from the
// (year, weekNumber) key; they are never persisted, so a change to the
// week math cannot drift from stored data.
package note

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a single line item within a week.
type Note struct {
	// ID is a unique identifier assigned at creation, immutable.
	ID string `json:"id"`

	// Content is the free-text body of the note.
	Content string `json:"content"`

	// Status is the current marker on the note.
	Status Status `json:"status"`

	// Date is the calendar date the note belongs to. When a note is
	// carried to another week it is set to that week's start date.
	Date Date `json:"date"`

	// Order is the note's position within its week's list. Order values
	// only determine relative sort; gaps are tolerated.
	Order int `json:"order"`
}

// New creates a note dated today with the given content, status, and order.
func New(content string, status Status, order int) Note {
	return Note{
		ID:      uuid.NewString(),
		Content: content,
		Status:  status,
		Date:    Today(),
		Order:   order,
	}
}

// Date is a calendar date that marshals to JSON as "YYYY-MM-DD".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate constructs a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
