package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sssms/hrms-backend-go/internal/domain/attendance"
	"github.com/sssms/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const recordColumns = `
	id, user_id, date, punch_in, punch_out,
	status, late_minutes, overtime_minutes, total_hours,
	created_at, updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.PunchIn, &rec.PunchOut,
		&rec.Status, &rec.LateMinutes, &rec.OvertimeMinutes, &rec.TotalHours,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// UpsertPunchIn implements attendance.AttendanceRepository.
//
// Two statements inside one transaction: an insert that yields to an existing
// (user_id, date) row, then a guarded update that only fills an empty
// punch_in. Whichever concurrent punch-in loses the insert race finds
// punch_in already set and fails, so a day can never be opened twice.
func (a *attendanceRepository) UpsertPunchIn(ctx context.Context, userID, date string, punchIn time.Time, status attendance.Status, lateMinutes int) (attendance.Record, error) {
	var rec attendance.Record

	err := WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, a.db)

		insertQuery := `
			INSERT INTO attendance_records (id, user_id, date, punch_in, status, late_minutes)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, date) DO NOTHING
			RETURNING ` + recordColumns

		var err error
		rec, err = scanRecord(q.QueryRow(txCtx, insertQuery,
			uuid.NewString(), userID, date, punchIn, status, lateMinutes,
		))
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to insert punch-in: %w", err)
		}

		// Row already exists: fill it only when nobody has punched in yet
		// (it may have been created externally as absent/on-leave/holiday).
		updateQuery := `
			UPDATE attendance_records
			SET punch_in = $1, status = $2, late_minutes = $3, updated_at = NOW()
			WHERE user_id = $4 AND date = $5 AND punch_in IS NULL
			RETURNING ` + recordColumns

		rec, err = scanRecord(q.QueryRow(txCtx, updateQuery,
			punchIn, status, lateMinutes, userID, date,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrAlreadyPunchedIn
			}
			return fmt.Errorf("failed to update punch-in: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Record{}, err
	}

	return rec, nil
}

// UpsertPunchOut implements attendance.AttendanceRepository. The WHERE guard
// makes the write atomic: only an open day (punch_in set, punch_out empty)
// is closed, so concurrent punch-outs cannot both succeed.
func (a *attendanceRepository) UpsertPunchOut(ctx context.Context, userID, date string, punchOut time.Time, totalHours float64, overtimeMinutes int) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET punch_out = $1, total_hours = $2, overtime_minutes = $3, updated_at = NOW()
		WHERE user_id = $4 AND date = $5 AND punch_in IS NOT NULL AND punch_out IS NULL
		RETURNING ` + recordColumns

	rec, err := scanRecord(q.QueryRow(ctx, query, punchOut, totalHours, overtimeMinutes, userID, date))
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, fmt.Errorf("failed to update punch-out: %w", err)
	}

	// Distinguish "never punched in" from "already punched out".
	existing, err := a.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.Record{}, err
	}
	if existing != nil && existing.PunchOut != nil {
		return attendance.Record{}, attendance.ErrAlreadyPunchedOut
	}
	return attendance.Record{}, attendance.ErrNotPunchedIn
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &rec, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+recordColumns+`
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+recordColumns+`
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC, user_id
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, userID, startDate, endDate string) (attendance.StatsSnapshot, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendance_records
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return attendance.StatsSnapshot{}, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	var stats attendance.StatsSnapshot
	for rows.Next() {
		var status attendance.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return attendance.StatsSnapshot{}, fmt.Errorf("failed to scan status count: %w", err)
		}

		switch status {
		case attendance.StatusPresent:
			stats.Present = count
		case attendance.StatusAbsent:
			stats.Absent = count
		case attendance.StatusLate:
			stats.Late = count
		case attendance.StatusOnLeave:
			stats.OnLeave = count
		case attendance.StatusHalfDay:
			stats.HalfDay = count
		case attendance.StatusHoliday:
			stats.Holiday = count
		}
	}

	return stats, nil
}

// GetTodayPunchState implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetTodayPunchState(ctx context.Context, userID, date string) (attendance.TodayPunchState, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT punch_in IS NOT NULL, punch_out IS NOT NULL
		FROM attendance_records
		WHERE user_id = $1 AND date = $2
	`

	var state attendance.TodayPunchState
	err := q.QueryRow(ctx, query, userID, date).Scan(&state.HasPunchedIn, &state.HasPunchedOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TodayPunchState{}, nil
		}
		return attendance.TodayPunchState{}, fmt.Errorf("failed to get today punch state: %w", err)
	}

	return state, nil
}

// SetDayStatus implements attendance.AttendanceRepository. Used by external
// payroll/leave tooling to mark a day absent, on leave, half-day or holiday;
// it refuses to overwrite a day the user actually punched.
func (a *attendanceRepository) SetDayStatus(ctx context.Context, userID, date string, status attendance.Status) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, user_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE
		SET status = EXCLUDED.status, updated_at = NOW()
		WHERE attendance_records.punch_in IS NULL
		RETURNING ` + recordColumns

	rec, err := scanRecord(q.QueryRow(ctx, query, uuid.NewString(), userID, date, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to set day status: %w", err)
	}

	return rec, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
