package ui

import (
	"log/slog"
	"time"

	"github.com/Davidcrz14/Temporizador/internal/alert"
	"github.com/Davidcrz14/Temporizador/internal/clockface"
	"github.com/Davidcrz14/Temporizador/internal/models"
	"github.com/Davidcrz14/Temporizador/internal/scheduler"
)

const tickInterval = time.Second

const (
	doneTitle   = "时间到"
	doneMessage = "倒计时已结束！"
)

// View 控制器驱动的显示层
type View interface {
	SetTime(label string)
	SetHands(angles models.ClockAngles)
	SetStatus(status models.Status)
	ClearInputs()
	ShowError(err error)
	ShowInfo(title, message string)
}

// Controller 把用户操作转给计时器，并在每次状态变化后刷新界面
// 所有方法都必须在同一个 goroutine（界面线程）上调用
type Controller struct {
	state   *AppState
	sched   scheduler.Scheduler
	alerter alert.Alerter
	view    View
	logger  *slog.Logger

	armed   bool            // 是否已经有一次倒计时回调在等待
	pending scheduler.Timer // 等待中的倒计时回调
	gen     int             // 回调的代数，重置后旧的回调全部作废
}

func NewController(state *AppState, sched scheduler.Scheduler, alerter alert.Alerter, view View, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		state:   state,
		sched:   sched,
		alerter: alerter,
		view:    view,
		logger:  logger,
	}
}

// Run 首次刷新界面并启动表盘的刷新循环，循环在视图存在期间一直运行
func (c *Controller) Run() {
	c.render()
	c.sched.ScheduleOnce(tickInterval, c.redrawClock)
}

func (c *Controller) redrawClock() {
	c.view.SetHands(clockface.AnglesFor(c.state.Engine.State().Remaining))
	c.sched.ScheduleOnce(tickInterval, c.redrawClock)
}

// SetInputs 由输入框的变化回调调用
func (c *Controller) SetInputs(in models.InputFields) {
	c.state.Inputs = in
}

// Toggle 开始/暂停按钮
func (c *Controller) Toggle() {
	engine := c.state.Engine

	switch engine.State().Status {
	case models.StatusRunning:
		engine.Pause()
		c.logger.Debug("timer paused", "remaining", engine.State().Remaining)
	case models.StatusPaused:
		engine.Resume()
		c.logger.Debug("timer resumed", "remaining", engine.State().Remaining)
		c.armCountdown()
	default:
		in := c.state.Inputs
		total, err := engine.Configure(in.Hours, in.Minutes, in.Seconds)
		if err != nil {
			c.logger.Debug("rejected timer input", "error", err)
			c.view.ShowError(err)
			return
		}
		engine.Start(total)
		c.logger.Debug("timer started", "total", total)
		c.armCountdown()
	}

	c.render()
}

// Reset 重置按钮，任何状态下都有效
func (c *Controller) Reset() {
	c.state.Reset()
	c.disarmCountdown()
	c.view.ClearInputs()
	c.logger.Debug("timer reset")
	c.render()
}

func (c *Controller) State() models.TimerState {
	return c.state.Engine.State()
}

// armCountdown 安排下一次倒计时回调，同一时间最多只有一个在等待
func (c *Controller) armCountdown() {
	if c.armed {
		return
	}
	c.armed = true
	gen := c.gen
	c.pending = c.sched.ScheduleOnce(tickInterval, func() { c.onCountdown(gen) })
}

// disarmCountdown 取消等待中的回调，下一次开始从完整的一秒计起
// Stop 来不及时，已排队的旧回调会因为代数不符直接返回
func (c *Controller) disarmCountdown() {
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.armed = false
}

func (c *Controller) onCountdown(gen int) {
	if gen != c.gen {
		return
	}
	c.armed = false
	c.pending = nil

	engine := c.state.Engine
	if !engine.Running() {
		return
	}

	expired := engine.Tick()
	c.render()

	if expired {
		c.onExpire()
		return
	}
	c.armCountdown()
}

func (c *Controller) onExpire() {
	c.logger.Info("countdown finished")

	// 提示音失败不影响完成提示
	if err := c.alerter.Alert(); err != nil {
		c.logger.Warn("alert failed", "error", err)
		c.view.ShowError(err)
	}
	c.view.ShowInfo(doneTitle, doneMessage)
}

func (c *Controller) render() {
	st := c.state.Engine.State()
	c.view.SetTime(clockface.FormatHMS(st.Remaining))
	c.view.SetHands(clockface.AnglesFor(st.Remaining))
	c.view.SetStatus(st.Status)
}
