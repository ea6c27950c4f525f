package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Equal(t, NotPunched, StateOf(nil))
	assert.Equal(t, NotPunched, StateOf(&Record{Status: StatusOnLeave}), "external record without punch-in")
	assert.Equal(t, PunchedIn, StateOf(&Record{PunchIn: &now}))
	assert.Equal(t, PunchedOut, StateOf(&Record{PunchIn: &now, PunchOut: &now}))
}

func TestCanPunchIn(t *testing.T) {
	t.Parallel()

	assert.True(t, CanPunchIn(NotPunched, false))
	assert.False(t, CanPunchIn(NotPunched, true), "weekend blocks a fresh punch-in")
	assert.False(t, CanPunchIn(PunchedIn, false))
	assert.False(t, CanPunchIn(PunchedOut, false))
}

func TestCanPunchOut(t *testing.T) {
	t.Parallel()

	assert.True(t, CanPunchOut(PunchedIn, false))
	assert.False(t, CanPunchOut(PunchedIn, true), "weekend blocks punch-out too")
	assert.False(t, CanPunchOut(NotPunched, false))
	assert.False(t, CanPunchOut(PunchedOut, false))
}

func TestCheckPunchIn(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckPunchIn(NotPunched, false))
	assert.ErrorIs(t, CheckPunchIn(NotPunched, true), ErrWeekendPunch)
	assert.ErrorIs(t, CheckPunchIn(PunchedIn, false), ErrAlreadyPunchedIn)
	assert.ErrorIs(t, CheckPunchIn(PunchedOut, false), ErrAlreadyPunchedIn)
	assert.ErrorIs(t, CheckPunchIn(PunchedIn, true), ErrWeekendPunch, "weekend wins regardless of state")
}

func TestCheckPunchOut(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckPunchOut(PunchedIn, false))
	assert.ErrorIs(t, CheckPunchOut(PunchedIn, true), ErrWeekendPunch)
	assert.ErrorIs(t, CheckPunchOut(NotPunched, false), ErrNotPunchedIn)
	assert.ErrorIs(t, CheckPunchOut(PunchedOut, false), ErrAlreadyPunchedOut)
}
