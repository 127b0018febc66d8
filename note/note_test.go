package note

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	n := New("buy milk", StatusInfo, 3)

	if n.ID == "" {
		t.Error("expected a generated id")
	}
	if n.Content != "buy milk" {
		t.Errorf("unexpected content %q", n.Content)
	}
	if n.Status != StatusInfo {
		t.Errorf("unexpected status %s", n.Status)
	}
	if n.Order != 3 {
		t.Errorf("unexpected order %d", n.Order)
	}

	other := New("", StatusBlank, 0)
	if other.ID == n.ID {
		t.Error("expected distinct ids for distinct notes")
	}
}

func TestNoteJSONShape(t *testing.T) {
	n := Note{
		ID:      "abc",
		Content: "water plants",
		Status:  StatusDone,
		Date:    NewDate(2025, time.March, 3),
		Order:   1,
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal note: %v", err)
	}

	want := `{"id":"abc","content":"water plants","status":"DONE","date":"2025-03-03","order":1}`
	if string(data) != want {
		t.Errorf("unexpected JSON %s", data)
	}

	var decoded Note
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal note: %v", err)
	}
	if decoded != n {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, n)
	}
}

func TestDateParseAndFormat(t *testing.T) {
	d, err := ParseDate("2025-03-03")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.String() != "2025-03-03" {
		t.Errorf("unexpected string %q", d.String())
	}
	if d.Weekday() != time.Monday {
		t.Errorf("expected Monday, got %s", d.Weekday())
	}

	if _, err := ParseDate("03/03/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, time.March, 3)
	if got := d.AddDays(6).String(); got != "2025-03-09" {
		t.Errorf("expected 2025-03-09, got %s", got)
	}
	// Crosses a month boundary.
	if got := d.AddDays(31).String(); got != "2025-04-03" {
		t.Errorf("expected 2025-04-03, got %s", got)
	}
}

func TestDateOfTruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2025, time.March, 3, 23, 59, 1, 0, time.UTC))
	if d.String() != "2025-03-03" {
		t.Errorf("unexpected date %s", d)
	}
	if d.Hour() != 0 {
		t.Errorf("expected midnight, got hour %d", d.Hour())
	}
}
