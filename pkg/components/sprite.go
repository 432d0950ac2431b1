package components

import "image/color"

// SpriteComponent 纯色绘制信息
// ImageKey 不为空时优先绘制图片，图片不可用时退回 Color 填充
type SpriteComponent struct {
	Color    color.RGBA
	Accent   color.RGBA // 机体上的装饰色块，Alpha 为 0 时不绘制
	ImageKey string
}
