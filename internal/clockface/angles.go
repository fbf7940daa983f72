package clockface

import (
	"fmt"
	"math"

	"github.com/Davidcrz14/Temporizador/internal/models"
)

// 表盘几何尺寸，单位是 200x200 绘制区域中的像素
const (
	FaceSize   = 200
	Center     = FaceSize / 2
	FaceRadius = 90

	TickInner = 80
	TickOuter = 90

	HourHand   = 50
	MinuteHand = 70
	SecondHand = 80
)

const (
	unitStep = math.Pi / 30 // 一分钟或一秒：6°
	hourStep = math.Pi / 6  // 一小时：30°
	topShift = math.Pi / 2
)

// Decompose 把总秒数拆成时、分、秒
// 小时不取模，total 必须非负
func Decompose(total int) (hours, minutes, seconds int) {
	return total / 3600, (total / 60) % 60, total % 60
}

// AnglesFor 计算剩余秒数对应的三根表针角度
func AnglesFor(remaining int) models.ClockAngles {
	h, m, s := Decompose(remaining)
	h %= 12

	return models.ClockAngles{
		Hour:   (float64(h)+float64(m)/60)*hourStep - topShift,
		Minute: (float64(m)+float64(s)/60)*unitStep - topShift,
		Second: float64(s)*unitStep - topShift,
	}
}

// HandEnd 返回指定长度表针的末端坐标
func HandEnd(cx, cy, length, angle float64) (x, y float64) {
	return cx + length*math.Cos(angle), cy + length*math.Sin(angle)
}

type Point struct {
	X, Y float64
}

type Segment struct {
	From, To Point
}

// TickMarks 返回表盘上 12 个小时刻度
func TickMarks() []Segment {
	marks := make([]Segment, 0, 12)
	for i := 0; i < 12; i++ {
		angle := float64(i)*hourStep - topShift
		x1, y1 := HandEnd(Center, Center, TickInner, angle)
		x2, y2 := HandEnd(Center, Center, TickOuter, angle)
		marks = append(marks, Segment{From: Point{x1, y1}, To: Point{x2, y2}})
	}
	return marks
}

// FormatHMS 把总秒数格式化为补零的 HH:MM:SS
func FormatHMS(total int) string {
	h, m, s := Decompose(total)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
