package models

import "time"

type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Valid reports whether the status is one of the known attendance states.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// Attendance records one student's attendance for one calendar day. There is
// at most one record per student and date; writes replace the existing status.
type Attendance struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
