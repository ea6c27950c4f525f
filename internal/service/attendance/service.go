package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sssms/hrms-backend-go/internal/config"
	"github.com/sssms/hrms-backend-go/internal/domain/attendance"
	"github.com/sssms/hrms-backend-go/internal/pkg/worktime"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository

	policy      config.AttendanceConfig
	loc         *time.Location
	shiftHour   int
	shiftMinute int
	weekend     map[time.Weekday]bool

	// now is the server clock; tests swap it for a fixed instant.
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, policy config.AttendanceConfig) attendance.AttendanceService {
	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		loc = time.UTC
	}

	shiftStart, err := time.Parse("15:04", policy.ShiftStart)
	if err != nil {
		shiftStart = time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	}

	weekend := make(map[time.Weekday]bool, len(policy.WeekendDays))
	for _, day := range policy.WeekendDays {
		weekend[day] = true
	}

	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		policy:               policy,
		loc:                  loc,
		shiftHour:            shiftStart.Hour(),
		shiftMinute:          shiftStart.Minute(),
		weekend:              weekend,
		now:                  time.Now,
	}
}

// currentUserID extracts the acting user from the request token. The punch
// identity always comes from the verified claims, never from client input.
func currentUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *AttendanceServiceImpl) isWeekend(t time.Time) bool {
	return s.weekend[t.Weekday()]
}

// shiftStartOn returns the configured shift start on the given local day.
func (s *AttendanceServiceImpl) shiftStartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.shiftHour, s.shiftMinute, 0, 0, s.loc)
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context) (attendance.RecordResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	if err := attendance.CheckPunchIn(attendance.StateOf(existing), s.isWeekend(nowLocal)); err != nil {
		return attendance.RecordResponse{}, err
	}

	lateMinutes := worktime.LatenessMinutes(nowLocal, s.shiftStartOn(nowLocal), s.policy.GraceMinutes)
	status := attendance.StatusPresent
	if lateMinutes > 0 {
		status = attendance.StatusLate
	}

	// The repository re-checks the punch state under its own write guard, so
	// a concurrent punch-in that slipped past the read above still fails.
	rec, err := s.AttendanceRepository.UpsertPunchIn(ctx, userID, dateLocal, nowLocal, status, lateMinutes)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.mapRecordToResponse(rec), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.RecordResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	if err := attendance.CheckPunchOut(attendance.StateOf(existing), s.isWeekend(nowLocal)); err != nil {
		return attendance.RecordResponse{}, err
	}

	punchIn := existing.PunchIn.In(s.loc)

	var totalMinutes int
	if d, ok := worktime.WorkingDuration(&punchIn, &nowLocal); ok {
		totalMinutes = d.TotalMinutes()
	}

	rec, err := s.AttendanceRepository.UpsertPunchOut(ctx, userID, dateLocal, nowLocal,
		worktime.Hours(totalMinutes),
		worktime.OvertimeMinutes(totalMinutes, s.policy.StandardShiftMinutes),
	)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.mapRecordToResponse(rec), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	userID, err := currentUserID(ctx)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	dateLocal := s.now().In(s.loc).Format("2006-01-02")
	todayState, err := s.AttendanceRepository.GetTodayPunchState(ctx, userID, dateLocal)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to get today's punch state: %w", err)
	}

	items := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, s.mapRecordToResponse(rec))
	}

	return attendance.MyAttendanceResponse{
		Items:         items,
		Total:         total,
		TotalPages:    totalPages(total, filter.Limit),
		TodayPunchIn:  todayState.HasPunchedIn,
		TodayPunchOut: todayState.HasPunchedOut,
	}, nil
}

// GetMyStats implements attendance.AttendanceService. The reporting window
// is the current month in the organization's calendar.
func (s *AttendanceServiceImpl) GetMyStats(ctx context.Context) (attendance.StatsSnapshot, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return attendance.StatsSnapshot{}, err
	}

	nowLocal := s.now().In(s.loc)
	monthStart := time.Date(nowLocal.Year(), nowLocal.Month(), 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	stats, err := s.AttendanceRepository.CountByStatus(ctx, userID,
		monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
	if err != nil {
		return attendance.StatsSnapshot{}, fmt.Errorf("failed to count attendance stats: %w", err)
	}

	return stats, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	items := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, s.mapRecordToResponse(rec))
	}

	return attendance.ListResponse{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// mapRecordToResponse converts a Record to its wire form. Punch times go out
// as local wall-clock "HH:MM:SS"; absent punches are omitted entirely.
func (s *AttendanceServiceImpl) mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Date:            rec.Date.Format("2006-01-02"),
		PunchIn:         s.clockString(rec.PunchIn),
		PunchOut:        s.clockString(rec.PunchOut),
		TotalHours:      rec.TotalHours,
		Status:          string(rec.Status),
		LateMinutes:     rec.LateMinutes,
		OvertimeMinutes: rec.OvertimeMinutes,
	}
}

func (s *AttendanceServiceImpl) clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.loc).Format("15:04:05")
	return &formatted
}
