package attendance

import "errors"

// Punch gate errors
var (
	ErrWeekendPunch      = errors.New("punching is not allowed on weekends")
	ErrAlreadyPunchedIn  = errors.New("you have already punched in today")
	ErrAlreadyPunchedOut = errors.New("you have already punched out today")
	ErrNotPunchedIn      = errors.New("you have not punched in today")
)
