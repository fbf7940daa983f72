package timer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Davidcrz14/Temporizador/internal/models"
)

// ErrInvalidInput 输入的时间不是非负整数，或总时长为 0
var ErrInvalidInput = errors.New("invalid input")

// Engine 倒计时状态机，不做任何 I/O
type Engine struct {
	state models.TimerState
}

// NewEngine 创建处于 Idle 状态的计时器
func NewEngine() *Engine {
	return &Engine{state: models.TimerState{Status: models.StatusIdle}}
}

// Configure 解析三个输入字段并返回总秒数，不修改状态
func (e *Engine) Configure(hours, minutes, seconds string) (int, error) {
	h, err := parseField("hours", hours)
	if err != nil {
		return 0, err
	}
	m, err := parseField("minutes", minutes)
	if err != nil {
		return 0, err
	}
	s, err := parseField("seconds", seconds)
	if err != nil {
		return 0, err
	}

	if m > (math.MaxInt-s)/60 || h > (math.MaxInt-m*60-s)/3600 {
		return 0, fmt.Errorf("%w: please enter a shorter time", ErrInvalidInput)
	}

	total := h*3600 + m*60 + s
	if total == 0 {
		return 0, fmt.Errorf("%w: please enter a valid time", ErrInvalidInput)
	}
	return total, nil
}

func parseField(name, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: please enter valid numeric values (%s: %q)", ErrInvalidInput, name, text)
	}
	return v, nil
}

// Start 开始倒计时，total <= 0 时忽略
func (e *Engine) Start(total int) {
	if total <= 0 {
		return
	}
	e.state = models.TimerState{Remaining: total, Status: models.StatusRunning}
}

func (e *Engine) Pause() {
	if e.state.Status == models.StatusRunning {
		e.state.Status = models.StatusPaused
	}
}

func (e *Engine) Resume() {
	if e.state.Status == models.StatusPaused {
		e.state.Status = models.StatusRunning
	}
}

// Tick 走一秒。只有在本次走到 0 时返回 true（到期事件）
// 非 Running 状态下的调用不产生任何效果
func (e *Engine) Tick() bool {
	if e.state.Status != models.StatusRunning {
		return false
	}
	e.state.Remaining--
	if e.state.Remaining <= 0 {
		e.state.Remaining = 0
		e.state.Status = models.StatusExpired
		return true
	}
	return false
}

// Reset 无条件回到 Idle
func (e *Engine) Reset() {
	e.state = models.TimerState{Status: models.StatusIdle}
}

func (e *Engine) State() models.TimerState {
	return e.state
}

func (e *Engine) Running() bool {
	return e.state.Status == models.StatusRunning
}
