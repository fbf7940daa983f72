package ui

import "image/color"

// 定义颜色常量
var (
	faceColor       = color.NRGBA{R: 103, G: 58, B: 183, A: 255} // 紫色表盘
	hourHandColor   = color.NRGBA{R: 211, G: 47, B: 47, A: 255}  // 红色时针
	minuteHandColor = color.NRGBA{R: 56, G: 142, B: 60, A: 255}  // 绿色分针
	secondHandColor = color.NRGBA{R: 25, G: 118, B: 210, A: 255} // 蓝色秒针
	timeColor       = color.NRGBA{R: 103, G: 58, B: 183, A: 255}
)
