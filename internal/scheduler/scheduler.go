package scheduler

import (
	"time"

	"fyne.io/fyne/v2"
)

// Timer 一个可以取消的待执行回调
type Timer interface {
	Stop() bool
}

// Scheduler 在 delay 之后于界面事件循环上执行一次 fn
// 需要重复执行的任务在 fn 中自行重新安排
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) Timer
}

// UI 把回调交给 Fyne 主 goroutine 执行
type UI struct{}

func (UI) ScheduleOnce(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
}
