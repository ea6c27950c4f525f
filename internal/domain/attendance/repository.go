package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Dates are
// passed as YYYY-MM-DD strings already resolved to the organization's
// calendar day; punch times are wall-clock instants in the org timezone.
type AttendanceRepository interface {
	// UpsertPunchIn records the day's punch-in. It creates the day record,
	// or fills in an externally created one that has no punch-in yet.
	// Writes are serialized per (userID, date): when two punch-ins race,
	// exactly one succeeds and the loser gets ErrAlreadyPunchedIn.
	UpsertPunchIn(ctx context.Context, userID, date string, punchIn time.Time, status Status, lateMinutes int) (Record, error)

	// UpsertPunchOut sets the day's punch-out and the recomputed totals.
	// Fails with ErrNotPunchedIn when no punch-in exists for the date and
	// ErrAlreadyPunchedOut when the day is already closed.
	UpsertPunchOut(ctx context.Context, userID, date string, punchOut time.Time, totalHours float64, overtimeMinutes int) (Record, error)

	// GetByUserAndDate retrieves one day's record, nil when none exists
	GetByUserAndDate(ctx context.Context, userID, date string) (*Record, error)

	// ListByUser retrieves the user's records ordered by date descending,
	// with total count. A page past the end yields an empty slice.
	ListByUser(ctx context.Context, userID string, filter MyAttendanceFilter) ([]Record, int64, error)

	// List retrieves records across users with filters (admin)
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)

	// CountByStatus aggregates status counts over [startDate, endDate]
	CountByStatus(ctx context.Context, userID, startDate, endDate string) (StatsSnapshot, error)

	// GetTodayPunchState projects the punch flags for one date
	GetTodayPunchState(ctx context.Context, userID, date string) (TodayPunchState, error)

	// SetDayStatus assigns an externally decided status (absent, on-leave,
	// holiday, half-day) to a day with no punch-in. Fails with
	// ErrAlreadyPunchedIn when the user already punched that day.
	SetDayStatus(ctx context.Context, userID, date string, status Status) (Record, error)
}
