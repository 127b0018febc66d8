package strings

import "testing"

func TestIsBlank(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: true},
		{name: "spaces", input: "   ", want: true},
		{name: "tabs and newlines", input: "\t\n\r ", want: true},
		{name: "text", input: "buy milk", want: false},
		{name: "text with padding", input: "  x  ", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBlank(tc.input); got != tc.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "crlf", input: "a\r\nb", want: "a\nb"},
		{name: "bare cr", input: "a\rb", want: "a\nb"},
		{name: "already lf", input: "a\nb", want: "a\nb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeNewlines(tc.input); got != tc.want {
				t.Errorf("NormalizeNewlines(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	if got := TrimTrailingWhitespace("note  \t\n"); got != "note" {
		t.Errorf("expected %q, got %q", "note", got)
	}
}
