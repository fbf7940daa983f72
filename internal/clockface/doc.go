// Package clockface 把剩余秒数换算成界面显示的内容：表针角度、表盘几何和 HH:MM:SS 文本。
//
// 这里的函数都是纯函数。角度为弧度，从 x 轴正方向开始，y 轴向下，
// 整体减去 π/2，使 0 指向 12 点。
package clockface
