package note

// Status represents the marker on a note.
type Status string

const (
	// StatusBlank indicates an unmarked note.
	StatusBlank Status = "BLANK"

	// StatusDone indicates the note's task was completed.
	StatusDone Status = "DONE"

	// StatusCancelled indicates the note's task was abandoned.
	StatusCancelled Status = "CANCELLED"

	// StatusMoved indicates the note was carried to another week.
	StatusMoved Status = "MOVED"

	// StatusInfo indicates a plain informational note.
	StatusInfo Status = "INFO"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusBlank, StatusDone, StatusCancelled, StatusMoved, StatusInfo}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in the marking cycle:
// blank, done, cancelled, moved, info, and back to blank.
func (s Status) Next() Status {
	switch s {
	case StatusBlank:
		return StatusDone
	case StatusDone:
		return StatusCancelled
	case StatusCancelled:
		return StatusMoved
	case StatusMoved:
		return StatusInfo
	case StatusInfo:
		return StatusBlank
	default:
		return StatusBlank
	}
}

// Symbol returns the one-character glyph displayed for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusDone:
		return "V"
	case StatusCancelled:
		return "X"
	case StatusMoved:
		return ">"
	case StatusInfo:
		return "-"
	default:
		return ""
	}
}

// IsClosed returns true for statuses that count as closed notes:
// done, cancelled, and moved. Closed notes can be hidden from view.
func (s Status) IsClosed() bool {
	switch s {
	case StatusDone, StatusCancelled, StatusMoved:
		return true
	default:
		return false
	}
}
