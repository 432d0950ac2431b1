package components

// VelocityComponent 每帧位移（像素/帧）
// Boss 的花样弹幕在发射时各自计算速度向量
type VelocityComponent struct {
	VX float64
	VY float64
}
