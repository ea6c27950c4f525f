// Package worktime holds the pure time arithmetic behind attendance records:
// working duration, lateness and overtime. Everything operates on wall-clock
// hours and minutes, which is the resolution punch times are recorded at.
package worktime

import (
	"fmt"
	"math"
	"time"
)

// Duration is a working duration broken into whole hours plus remainder minutes.
type Duration struct {
	Hours   int
	Minutes int
}

// TotalMinutes returns the duration as whole minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

func (d Duration) String() string {
	if d.Minutes == 0 {
		return fmt.Sprintf("%dh", d.Hours)
	}
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// WorkingDuration returns the wall-clock time between punch-in and punch-out.
// ok is false when either time is missing or when punchOut is not strictly
// after punchIn; a shift can never have negative or zero length.
func WorkingDuration(punchIn, punchOut *time.Time) (Duration, bool) {
	if punchIn == nil || punchOut == nil {
		return Duration{}, false
	}

	in := minutesOfDay(*punchIn)
	out := minutesOfDay(*punchOut)
	if out <= in {
		return Duration{}, false
	}

	diff := out - in
	return Duration{Hours: diff / 60, Minutes: diff % 60}, true
}

// LatenessMinutes returns how many minutes past the shift start (plus grace
// period) the punch-in happened. Punching before or within grace yields 0.
func LatenessMinutes(punchIn, shiftStart time.Time, graceMinutes int) int {
	late := minutesOfDay(punchIn) - minutesOfDay(shiftStart) - graceMinutes
	if late < 0 {
		return 0
	}
	return late
}

// OvertimeMinutes returns the minutes worked beyond the standard shift length.
func OvertimeMinutes(totalMinutes, standardShiftMinutes int) int {
	overtime := totalMinutes - standardShiftMinutes
	if overtime < 0 {
		return 0
	}
	return overtime
}

// Hours converts whole minutes to decimal hours rounded to two places,
// the precision attendance totals are reported at.
func Hours(totalMinutes int) float64 {
	return math.Round(float64(totalMinutes)/60.0*100) / 100
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
