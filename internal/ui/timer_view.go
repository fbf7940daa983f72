package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Davidcrz14/Temporizador/internal/models"
)

const (
	startText = "开始"
	pauseText = "暂停"
	resetText = "重置"
)

// TimerView 倒计时界面：数字时间、输入框、按钮和表盘
type TimerView struct {
	window    fyne.Window
	container *fyne.Container

	title        *canvas.Text
	timeLabel    *canvas.Text
	hoursEntry   *widget.Entry
	minutesEntry *widget.Entry
	secondsEntry *widget.Entry
	startButton  *widget.Button
	resetButton  *widget.Button
	clock        *ClockFace

	onInputs func(models.InputFields)
}

// NewTimerView 创建界面，对话框显示在 window 上
func NewTimerView(window fyne.Window, title string) *TimerView {
	v := &TimerView{window: window}

	v.title = canvas.NewText(title, timeColor)
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.title.TextSize = 24
	v.title.Alignment = fyne.TextAlignCenter

	v.timeLabel = canvas.NewText("00:00:00", timeColor)
	v.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	v.timeLabel.TextSize = 48
	v.timeLabel.Alignment = fyne.TextAlignCenter

	v.hoursEntry = newNumberEntry()
	v.minutesEntry = newNumberEntry()
	v.secondsEntry = newNumberEntry()
	for _, e := range []*widget.Entry{v.hoursEntry, v.minutesEntry, v.secondsEntry} {
		e.OnChanged = func(string) { v.inputsChanged() }
	}

	v.startButton = widget.NewButtonWithIcon(startText, theme.MediaPlayIcon(), nil)
	v.startButton.Importance = widget.HighImportance

	v.resetButton = widget.NewButtonWithIcon(resetText, theme.MediaReplayIcon(), nil)
	v.resetButton.Importance = widget.DangerImportance

	v.clock = NewClockFace()

	inputs := container.NewGridWithColumns(3,
		container.NewBorder(nil, nil, widget.NewLabel("时:"), nil, v.hoursEntry),
		container.NewBorder(nil, nil, widget.NewLabel("分:"), nil, v.minutesEntry),
		container.NewBorder(nil, nil, widget.NewLabel("秒:"), nil, v.secondsEntry),
	)

	controls := container.NewCenter(container.NewHBox(v.startButton, v.resetButton))

	v.container = container.NewVBox(
		container.NewPadded(v.title),
		container.NewPadded(v.timeLabel),
		container.NewPadded(inputs),
		controls,
		v.clock.Container(),
	)
	return v
}

func newNumberEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder("0")
	return e
}

// Bind 把按钮和输入框连接到控制器
func (v *TimerView) Bind(c *Controller) {
	v.startButton.OnTapped = c.Toggle
	v.resetButton.OnTapped = c.Reset
	v.onInputs = c.SetInputs
}

func (v *TimerView) inputsChanged() {
	if v.onInputs == nil {
		return
	}
	v.onInputs(models.InputFields{
		Hours:   v.hoursEntry.Text,
		Minutes: v.minutesEntry.Text,
		Seconds: v.secondsEntry.Text,
	})
}

func (v *TimerView) SetTitle(title string) {
	v.title.Text = title
	v.title.Refresh()
}

func (v *TimerView) SetTime(label string) {
	v.timeLabel.Text = label
	v.timeLabel.Refresh()
}

func (v *TimerView) SetHands(angles models.ClockAngles) {
	v.clock.SetAngles(angles)
}

// SetStatus 按钮的文字、图标和颜色跟随计时器状态
func (v *TimerView) SetStatus(status models.Status) {
	if status == models.StatusRunning {
		v.startButton.Importance = widget.WarningImportance
		v.startButton.SetIcon(theme.MediaPauseIcon())
		v.startButton.SetText(pauseText)
	} else {
		v.startButton.Importance = widget.HighImportance
		v.startButton.SetIcon(theme.MediaPlayIcon())
		v.startButton.SetText(startText)
	}
	v.startButton.Refresh()
}

func (v *TimerView) ClearInputs() {
	v.hoursEntry.SetText("")
	v.minutesEntry.SetText("")
	v.secondsEntry.SetText("")
}

func (v *TimerView) ShowError(err error) {
	dialog.ShowError(err, v.window)
}

func (v *TimerView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, v.window)
}

func (v *TimerView) Container() *fyne.Container {
	return v.container
}
