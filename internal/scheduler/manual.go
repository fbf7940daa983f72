package scheduler

import (
	"sort"
	"time"
)

// Manual 使用虚拟时间的 Scheduler，用于测试
// 回调只会在 Advance 中、在调用方的 goroutine 上执行
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	m   *Manual
	due time.Duration
	seq int
	fn  func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) ScheduleOnce(delay time.Duration, fn func()) Timer {
	if delay < 0 {
		delay = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now + delay, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance 把虚拟时间推进 d，按顺序执行所有到期的回调，
// 包括回调执行期间新安排的回调
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.next()
		if next == nil || next.due > target {
			break
		}
		m.remove(next)
		m.now = next.due
		next.fn()
	}
	m.now = target
}

// Pending 返回等待执行的回调数量
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now 返回创建以来经过的虚拟时间
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) next() *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due != m.pending[j].due {
			return m.pending[i].due < m.pending[j].due
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}

func (t *manualTimer) Stop() bool {
	return t.m.remove(t)
}
