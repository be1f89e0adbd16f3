package model

import "time"

// Flashcard is a question/answer pair saved for revision.
type Flashcard struct {
	ID        string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// AttendanceStatus is the outcome recorded for a day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Valid reports whether s is a known status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// AttendanceRecord is the single attendance entry for a calendar day.
type AttendanceRecord struct {
	ID        string
	Date      string // YYYY-MM-DD, unique
	Status    AttendanceStatus
	Notes     string
	CreatedAt time.Time
}
