package main

import "testing"

func TestParseARGB(t *testing.T) {
	tests := []struct {
		input   string
		want    uint32
		wantErr bool
	}{
		{input: "#FF000000", want: 0xFF000000},
		{input: "FF000000", want: 0xFF000000},
		{input: "#336699", want: 0xFF336699},
		{input: "336699", want: 0xFF336699},
		{input: "#00abcdef", want: 0x00ABCDEF},
		{input: "  #336699  ", want: 0xFF336699},
		{input: "", wantErr: true},
		{input: "#12345", wantErr: true},
		{input: "#123456789", wantErr: true},
		{input: "zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseARGB(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseARGB(%q): expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseARGB(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseARGB(%q) = %#x, want %#x", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveNoteIDPrefixes(t *testing.T) {
	controller := newTestController(t)

	first := controller.AddNote()
	controller.UpdateContent(first.ID, "one")
	second := controller.AddNote()
	controller.UpdateContent(second.ID, "two")

	// Full ids always resolve.
	got, err := resolveNoteID(controller, first.ID)
	if err != nil || got != first.ID {
		t.Errorf("full id: got %q, %v", got, err)
	}

	// A prefix resolves when it is unambiguous.
	prefix := uniquePrefixFor(first.ID, second.ID)
	got, err = resolveNoteID(controller, prefix)
	if err != nil || got != first.ID {
		t.Errorf("prefix %q: got %q, %v", prefix, got, err)
	}

	if _, err := resolveNoteID(controller, "zzzz-not-here"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func uniquePrefixFor(id, other string) string {
	for i := 1; i <= len(id); i++ {
		if i > len(other) || id[:i] != other[:i] {
			return id[:i]
		}
	}
	return id
}
