package models

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// TimerState 倒计时的全部状态
// Remaining 为 0 时 Status 只可能是 Idle 或 Expired
type TimerState struct {
	Remaining int // 剩余秒数
	Status    Status
}

// InputFields 用户在三个输入框中输入的原始文本
type InputFields struct {
	Hours   string
	Minutes string
	Seconds string
}

func (f InputFields) IsEmpty() bool {
	return f.Hours == "" && f.Minutes == "" && f.Seconds == ""
}

// ClockAngles 表针角度（弧度），由剩余秒数推导，不保存
type ClockAngles struct {
	Hour   float64
	Minute float64
	Second float64
}
