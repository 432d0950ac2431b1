// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// ActivePointers 返回所有按下的触摸点
// 没有触摸时，按下的鼠标左键也算作一个触摸点（桌面调试移动模式）
func ActivePointers() []Point {
	touchIDs := ebiten.AppendTouchIDs(nil)
	points := make([]Point, 0, len(touchIDs))
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, Point{X: float64(x), Y: float64(y)})
	}

	if len(points) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, Point{X: float64(x), Y: float64(y)})
	}
	return points
}
