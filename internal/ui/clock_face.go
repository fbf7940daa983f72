package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/Davidcrz14/Temporizador/internal/clockface"
	"github.com/Davidcrz14/Temporizador/internal/models"
)

// ClockFace 模拟时钟表盘：外圈、12 个刻度和三根指针
type ClockFace struct {
	container  *fyne.Container
	hourHand   *canvas.Line
	minuteHand *canvas.Line
	secondHand *canvas.Line
}

func NewClockFace() *ClockFace {
	f := &ClockFace{}

	rim := canvas.NewCircle(color.Transparent)
	rim.StrokeColor = faceColor
	rim.StrokeWidth = 2
	rim.Move(fyne.NewPos(clockface.Center-clockface.FaceRadius, clockface.Center-clockface.FaceRadius))
	rim.Resize(fyne.NewSize(2*clockface.FaceRadius, 2*clockface.FaceRadius))

	objects := []fyne.CanvasObject{rim}
	for _, mark := range clockface.TickMarks() {
		line := canvas.NewLine(faceColor)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(mark.From.X), float32(mark.From.Y))
		line.Position2 = fyne.NewPos(float32(mark.To.X), float32(mark.To.Y))
		objects = append(objects, line)
	}

	f.hourHand = newHand(hourHandColor, 6)
	f.minuteHand = newHand(minuteHandColor, 4)
	f.secondHand = newHand(secondHandColor, 2)
	objects = append(objects, f.hourHand, f.minuteHand, f.secondHand)

	// 固定 200x200 的绘制区域，内部使用绝对坐标
	face := container.NewWithoutLayout(objects...)
	f.container = container.NewCenter(
		container.NewGridWrap(fyne.NewSize(clockface.FaceSize, clockface.FaceSize), face),
	)

	f.SetAngles(clockface.AnglesFor(0))
	return f
}

func newHand(c color.Color, width float32) *canvas.Line {
	hand := canvas.NewLine(c)
	hand.StrokeWidth = width
	hand.Position1 = fyne.NewPos(clockface.Center, clockface.Center)
	return hand
}

// SetAngles 更新三根指针的位置
func (f *ClockFace) SetAngles(a models.ClockAngles) {
	setHand(f.hourHand, clockface.HourHand, a.Hour)
	setHand(f.minuteHand, clockface.MinuteHand, a.Minute)
	setHand(f.secondHand, clockface.SecondHand, a.Second)
}

func setHand(hand *canvas.Line, length, angle float64) {
	x, y := clockface.HandEnd(clockface.Center, clockface.Center, length, angle)
	hand.Position1 = fyne.NewPos(clockface.Center, clockface.Center)
	hand.Position2 = fyne.NewPos(float32(x), float32(y))
	hand.Refresh()
}

func (f *ClockFace) Container() *fyne.Container {
	return f.container
}
