package components

// PositionComponent 实体在战场中的位置
// (X, Y) 是左上角坐标，单位像素
type PositionComponent struct {
	X float64
	Y float64
}
