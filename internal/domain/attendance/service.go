package attendance

import "context"

// AttendanceService defines business logic for attendance operations. The
// acting user and the punch instant come from the request context and the
// server clock, never from client input.
type AttendanceService interface {
	// PunchIn records the current user's arrival for today
	PunchIn(ctx context.Context) (RecordResponse, error)

	// PunchOut records the current user's departure for today
	PunchOut(ctx context.Context) (RecordResponse, error)

	// GetMyAttendance retrieves the current user's paginated records plus
	// today's punch-state flags
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (MyAttendanceResponse, error)

	// GetMyStats aggregates the current user's status counts over the
	// current month
	GetMyStats(ctx context.Context) (StatsSnapshot, error)

	// ListAttendance retrieves records across users with filters (admin)
	ListAttendance(ctx context.Context, filter ListFilter) (ListResponse, error)
}
