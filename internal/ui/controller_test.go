package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Davidcrz14/Temporizador/internal/alert"
	"github.com/Davidcrz14/Temporizador/internal/clockface"
	"github.com/Davidcrz14/Temporizador/internal/models"
	"github.com/Davidcrz14/Temporizador/internal/scheduler"
	"github.com/Davidcrz14/Temporizador/internal/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	times   []string
	hands   []models.ClockAngles
	status  models.Status
	cleared int
	errs    []error
	infos   []string
	events  []string
}

func (f *fakeView) SetTime(label string) { f.times = append(f.times, label) }

func (f *fakeView) SetHands(a models.ClockAngles) { f.hands = append(f.hands, a) }

func (f *fakeView) SetStatus(s models.Status) { f.status = s }

func (f *fakeView) ClearInputs() { f.cleared++ }

func (f *fakeView) ShowError(err error) {
	f.errs = append(f.errs, err)
	f.events = append(f.events, "error")
}

func (f *fakeView) ShowInfo(title, message string) {
	f.infos = append(f.infos, title)
	f.events = append(f.events, "info")
}

func (f *fakeView) lastTime() string {
	if len(f.times) == 0 {
		return ""
	}
	return f.times[len(f.times)-1]
}

type fakeAlerter struct {
	calls int
	err   error
}

func (a *fakeAlerter) Alert() error {
	a.calls++
	return a.err
}

type fixture struct {
	c       *Controller
	state   *AppState
	sched   *scheduler.Manual
	view    *fakeView
	alerter *fakeAlerter
}

func newFixture() *fixture {
	f := &fixture{
		state:   NewAppState(),
		sched:   scheduler.NewManual(),
		view:    &fakeView{},
		alerter: &fakeAlerter{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.c = NewController(f.state, f.sched, f.alerter, f.view, logger)
	f.c.Run()
	return f
}

func (f *fixture) start(h, m, s string) {
	f.c.SetInputs(models.InputFields{Hours: h, Minutes: m, Seconds: s})
	f.c.Toggle()
}

func TestController_RunRendersInitialState(t *testing.T) {
	f := newFixture()

	assert.Equal(t, "00:00:00", f.view.lastTime())
	assert.Equal(t, models.StatusIdle, f.view.status)
	require.NotEmpty(t, f.view.hands)
	assert.Equal(t, clockface.AnglesFor(0), f.view.hands[len(f.view.hands)-1])
	assert.Equal(t, 1, f.sched.Pending(), "clock redraw loop is armed")
}

func TestController_InvalidInputShowsError(t *testing.T) {
	tests := []models.InputFields{
		{},
		{Hours: "0", Minutes: "0", Seconds: "0"},
		{Hours: "x"},
		{Minutes: "-2"},
	}

	for _, in := range tests {
		t.Run(fmt.Sprintf("%+v", in), func(t *testing.T) {
			f := newFixture()
			f.start(in.Hours, in.Minutes, in.Seconds)

			require.Len(t, f.view.errs, 1)
			assert.ErrorIs(t, f.view.errs[0], timer.ErrInvalidInput)
			assert.Equal(t, models.TimerState{Status: models.StatusIdle}, f.c.State())
			assert.Equal(t, in, f.state.Inputs, "inputs are left untouched")
			assert.Equal(t, 1, f.sched.Pending(), "no countdown armed")
		})
	}
}

func TestController_CountdownToExpiry(t *testing.T) {
	f := newFixture()
	f.start("", "", "3")

	assert.Equal(t, models.StatusRunning, f.view.status)
	assert.Equal(t, "00:00:03", f.view.lastTime())

	f.sched.Advance(time.Second)
	assert.Equal(t, "00:00:02", f.view.lastTime())
	assert.Equal(t, models.StatusRunning, f.view.status)

	f.sched.Advance(2 * time.Second)
	assert.Equal(t, "00:00:00", f.view.lastTime())
	assert.Equal(t, models.StatusExpired, f.view.status)
	assert.Equal(t, models.TimerState{Status: models.StatusExpired}, f.c.State())
	assert.Equal(t, 1, f.alerter.calls)
	assert.Equal(t, []string{"info"}, f.view.events)

	f.sched.Advance(time.Minute)
	assert.Equal(t, 1, f.alerter.calls, "expiry fires once")
	assert.Equal(t, 1, f.sched.Pending(), "only the clock redraw keeps running")
}

func TestController_AlertFailureStillShowsCompletion(t *testing.T) {
	f := newFixture()
	f.alerter.err = fmt.Errorf("%w: device busy", alert.ErrPlayback)

	f.start("", "", "1")
	f.sched.Advance(time.Second)

	require.Len(t, f.view.errs, 1)
	assert.True(t, errors.Is(f.view.errs[0], alert.ErrPlayback))
	assert.Equal(t, []string{"error", "info"}, f.view.events)
	assert.Equal(t, []string{doneTitle}, f.view.infos)
}

func TestController_PauseStopsTicking(t *testing.T) {
	f := newFixture()
	f.start("", "1", "0")
	f.sched.Advance(2 * time.Second)

	f.c.Toggle()
	assert.Equal(t, models.StatusPaused, f.view.status)
	assert.Equal(t, "00:00:58", f.view.lastTime())

	f.sched.Advance(10 * time.Second)
	assert.Equal(t, models.TimerState{Remaining: 58, Status: models.StatusPaused}, f.c.State())
	assert.Equal(t, 1, f.sched.Pending(), "countdown stopped rescheduling")
}

func TestController_ResumeContinuesCountdown(t *testing.T) {
	f := newFixture()
	f.start("", "1", "0")
	f.sched.Advance(time.Second)

	f.c.Toggle()
	f.sched.Advance(5 * time.Second)
	f.c.Toggle()

	assert.Equal(t, models.StatusRunning, f.view.status)
	assert.Equal(t, 59, f.c.State().Remaining, "resume keeps the remaining time")

	f.sched.Advance(3 * time.Second)
	assert.Equal(t, 56, f.c.State().Remaining)
}

func TestController_QuickPauseResumeKeepsRate(t *testing.T) {
	f := newFixture()
	f.start("", "", "30")

	f.sched.Advance(500 * time.Millisecond)
	f.c.Toggle()
	f.c.Toggle()

	f.sched.Advance(10 * time.Second)
	assert.Equal(t, 20, f.c.State().Remaining, "one tick per second")
}

func TestController_ResetFromEveryState(t *testing.T) {
	setups := map[string]func(f *fixture){
		"idle": func(f *fixture) {
			f.c.SetInputs(models.InputFields{Seconds: "9"})
		},
		"running": func(f *fixture) {
			f.start("1", "2", "3")
			f.sched.Advance(time.Second)
		},
		"paused": func(f *fixture) {
			f.start("", "5", "")
			f.c.Toggle()
		},
		"expired": func(f *fixture) {
			f.start("", "", "2")
			f.sched.Advance(2 * time.Second)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			setup(f)

			f.c.Reset()

			assert.Equal(t, models.TimerState{Remaining: 0, Status: models.StatusIdle}, f.c.State())
			assert.True(t, f.state.Inputs.IsEmpty())
			assert.Equal(t, 1, f.view.cleared)
			assert.Equal(t, "00:00:00", f.view.lastTime())
			assert.Equal(t, models.StatusIdle, f.view.status)

			f.sched.Advance(5 * time.Second)
			assert.Equal(t, models.StatusIdle, f.c.State().Status)
		})
	}
}

func TestController_RestartAfterExpiry(t *testing.T) {
	f := newFixture()
	f.start("", "", "1")
	f.sched.Advance(time.Second)
	require.Equal(t, models.StatusExpired, f.c.State().Status)

	f.c.Toggle()
	assert.Equal(t, models.TimerState{Remaining: 1, Status: models.StatusRunning}, f.c.State())
}

func TestController_ClockRedrawsWhileIdle(t *testing.T) {
	f := newFixture()
	before := len(f.view.hands)

	f.sched.Advance(4 * time.Second)
	assert.Equal(t, before+4, len(f.view.hands))
	for _, a := range f.view.hands[before:] {
		assert.Equal(t, clockface.AnglesFor(0), a)
	}
}

func TestController_RestartAfterResetWaitsFullSecond(t *testing.T) {
	f := newFixture()
	f.start("", "", "10")
	f.sched.Advance(900 * time.Millisecond)

	f.c.Reset()
	assert.Equal(t, 1, f.sched.Pending(), "reset cancels the pending countdown")

	f.start("", "", "10")
	f.sched.Advance(100 * time.Millisecond)
	assert.Equal(t, models.TimerState{Remaining: 10, Status: models.StatusRunning}, f.c.State())

	f.sched.Advance(900 * time.Millisecond)
	assert.Equal(t, 9, f.c.State().Remaining)

	f.sched.Advance(3 * time.Second)
	assert.Equal(t, 6, f.c.State().Remaining)
}

// lateStopScheduler 模拟 Stop 来不及取消、回调已经排队的情况
type lateStopScheduler struct {
	*scheduler.Manual
}

type lateStopTimer struct{}

func (lateStopTimer) Stop() bool { return false }

func (s lateStopScheduler) ScheduleOnce(delay time.Duration, fn func()) scheduler.Timer {
	s.Manual.ScheduleOnce(delay, fn)
	return lateStopTimer{}
}

func TestController_StaleFireAfterResetIsIgnored(t *testing.T) {
	sched := lateStopScheduler{Manual: scheduler.NewManual()}
	state := NewAppState()
	c := NewController(state, sched, &fakeAlerter{}, &fakeView{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.Run()

	c.SetInputs(models.InputFields{Seconds: "10"})
	c.Toggle()
	sched.Advance(900 * time.Millisecond)

	c.Reset()
	c.SetInputs(models.InputFields{Seconds: "10"})
	c.Toggle()

	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, 10, c.State().Remaining, "old run's fire does not tick the new run")

	sched.Advance(900 * time.Millisecond)
	assert.Equal(t, 9, c.State().Remaining)

	sched.Advance(3 * time.Second)
	assert.Equal(t, 6, c.State().Remaining, "one tick per second")
}
