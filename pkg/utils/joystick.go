package utils

import "math"

// JoystickVector 计算虚拟摇杆输出
// (dx, dy) 是触摸点相对摇杆中心的偏移，除以半径后截断到单位圆内
func JoystickVector(dx, dy, radius float64) (float64, float64) {
	if radius <= 0 {
		return 0, 0
	}
	x := dx / radius
	y := dy / radius
	length := math.Hypot(x, y)
	if length > 1 {
		x /= length
		y /= length
	}
	return x, y
}

// InCircle 判断点是否在圆内（含边界）
func InCircle(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= radius*radius
}
