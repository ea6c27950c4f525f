package attendance

// PunchState is the daily punch state machine for one (user, date):
// NotPunched -> PunchedIn -> PunchedOut, terminal for the day.
type PunchState int

const (
	NotPunched PunchState = iota
	PunchedIn
	PunchedOut
)

// StateOf derives the punch state from a day's record; a nil record or a
// record created externally (absence, leave, holiday) is NotPunched.
func StateOf(rec *Record) PunchState {
	switch {
	case rec == nil || rec.PunchIn == nil:
		return NotPunched
	case rec.PunchOut == nil:
		return PunchedIn
	default:
		return PunchedOut
	}
}

// CanPunchIn reports whether a punch-in is permitted in the given state.
// Weekends always refuse, regardless of state.
func CanPunchIn(state PunchState, isWeekend bool) bool {
	return state == NotPunched && !isWeekend
}

// CanPunchOut reports whether a punch-out is permitted in the given state.
func CanPunchOut(state PunchState, isWeekend bool) bool {
	return state == PunchedIn && !isWeekend
}

// CheckPunchIn returns the gate error for an impermissible punch-in, nil
// when permitted. Punching is never idempotent: repeating a punch in the
// same state is an error, not a silent success.
func CheckPunchIn(state PunchState, isWeekend bool) error {
	if isWeekend {
		return ErrWeekendPunch
	}
	switch state {
	case PunchedIn, PunchedOut:
		return ErrAlreadyPunchedIn
	}
	return nil
}

// CheckPunchOut returns the gate error for an impermissible punch-out, nil
// when permitted.
func CheckPunchOut(state PunchState, isWeekend bool) error {
	if isWeekend {
		return ErrWeekendPunch
	}
	switch state {
	case NotPunched:
		return ErrNotPunchedIn
	case PunchedOut:
		return ErrAlreadyPunchedOut
	}
	return nil
}
