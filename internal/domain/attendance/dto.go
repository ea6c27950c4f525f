package attendance

import (
	"github.com/sssms/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MyAttendanceFilter filters the authenticated user's own records.
type MyAttendanceFilter struct {
	Status *string `json:"status,omitempty"`

	// Pagination, 1-indexed
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be 1 or greater",
		})
	}

	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if f.Status != nil && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, on-leave, half-day, holiday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter filters the cross-user listing available to admins.
type ListFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination, 1-indexed
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be 1 or greater",
		})
	}

	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if f.Status != nil && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, on-leave, half-day, holiday",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResponse is the wire form of one attendance record. Field names
// follow the client contract: times are "HH:MM:SS" local wall clock and
// absent punches are omitted rather than sent as empty strings.
type RecordResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Date            string  `json:"date"` // YYYY-MM-DD
	PunchIn         *string `json:"punch_in,omitempty"`
	PunchOut        *string `json:"punch_out,omitempty"`
	TotalHours      float64 `json:"total_hours"`
	Status          string  `json:"status"`
	LateMinutes     int     `json:"late_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
}

// MyAttendanceResponse carries one page of records plus the punch-state
// flags the client uses to enable its punch buttons. The uppercase keys are
// part of the established client contract.
type MyAttendanceResponse struct {
	Items         []RecordResponse `json:"items"`
	Total         int64            `json:"total"`
	TotalPages    int              `json:"total_pages"`
	TodayPunchIn  bool             `json:"TODAY_PUNCH_IN"`
	TodayPunchOut bool             `json:"TODAY_PUNCH_OUT"`
}

// ListResponse is the admin cross-user listing page.
type ListResponse struct {
	Items      []RecordResponse `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// StatsSnapshot counts each status over a reporting window. It is always
// recomputed from stored records, never persisted.
type StatsSnapshot struct {
	Present int64 `json:"PRESENT"`
	Absent  int64 `json:"ABSENT"`
	Late    int64 `json:"LATE"`
	OnLeave int64 `json:"ON_LEAVE"`
	HalfDay int64 `json:"HALF_DAY"`
	Holiday int64 `json:"HOLIDAY"`
}

// TodayPunchState is the convenience projection behind the client's punch
// button enablement.
type TodayPunchState struct {
	HasPunchedIn  bool `json:"hasPunchedIn"`
	HasPunchedOut bool `json:"hasPunchedOut"`
}
