package attendance

import "time"

// Status is the day classification of an attendance record. "present" and
// "late" are derived at punch-in; the remaining values are assigned by
// external payroll/leave processes.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusOnLeave Status = "on-leave"
	StatusHalfDay Status = "half-day"
	StatusHoliday Status = "holiday"
)

var validStatuses = []Status{
	StatusPresent, StatusAbsent, StatusLate, StatusOnLeave, StatusHalfDay, StatusHoliday,
}

// IsValidStatus reports whether s names a known attendance status.
func IsValidStatus(s string) bool {
	for _, status := range validStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Record is one user's attendance for one calendar day. At most one record
// exists per (UserID, Date). PunchIn is set once and never changes; PunchOut
// is only ever set after PunchIn. TotalHours, LateMinutes and OvertimeMinutes
// are always recomputed from the punch times, never edited independently.
type Record struct {
	ID              string
	UserID          string
	Date            time.Time // calendar day, no time component
	PunchIn         *time.Time
	PunchOut        *time.Time
	Status          Status
	LateMinutes     int
	OvertimeMinutes int
	TotalHours      float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
