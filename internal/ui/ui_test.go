package ui

import (
	"strings"
	"testing"

	"github.com/snils/weeklynotes/note"
)

func TestUniqueIDPrefixLengths(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}

	lengths := UniqueIDPrefixLengths(ids)

	if lengths["abc123"] != 3 {
		t.Errorf("expected prefix length 3 for abc123, got %d", lengths["abc123"])
	}
	if lengths["abd456"] != 3 {
		t.Errorf("expected prefix length 3 for abd456, got %d", lengths["abd456"])
	}
	if lengths["xyz789"] != 1 {
		t.Errorf("expected prefix length 1 for xyz789, got %d", lengths["xyz789"])
	}
}

func TestUniqueIDPrefixLengthsSkipsDuplicates(t *testing.T) {
	lengths := UniqueIDPrefixLengths([]string{"aaa", "aaa", ""})
	if len(lengths) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(lengths))
	}
	if lengths["aaa"] != 1 {
		t.Errorf("expected prefix length 1, got %d", lengths["aaa"])
	}
}

func TestStatusGlyphWithoutANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cases := []struct {
		status note.Status
		want   string
	}{
		{note.StatusBlank, "[ ]"},
		{note.StatusDone, "[V]"},
		{note.StatusCancelled, "[X]"},
		{note.StatusMoved, "[>]"},
		{note.StatusInfo, "[-]"},
	}
	for _, tc := range cases {
		if got := StatusGlyph(tc.status); got != tc.want {
			t.Errorf("StatusGlyph(%s) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestFormatTable(t *testing.T) {
	got := FormatTable([]string{"ID", "CONTENT"}, [][]string{
		{"a1", "buy milk"},
		{"b2", "call"},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "ID  CONTENT" {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if lines[1] != "a1  buy milk" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestFormatTableIgnoresANSIWidths(t *testing.T) {
	got := FormatTable([]string{"ID"}, [][]string{
		{"\x1b[1ma1\x1b[0m"},
	})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if displayWidth(lines[1]) != 2 {
		t.Errorf("expected display width 2, got %d", displayWidth(lines[1]))
	}
}
