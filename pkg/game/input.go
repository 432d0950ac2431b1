package game

// InputSnapshot 一帧的输入快照，由模拟读取
// MoveX / MoveY 取值 [-1, 1]，正方向为右、下
type InputSnapshot struct {
	MoveX  float64
	MoveY  float64
	Fire   bool
	Mobile bool
}

// InputState 当前输入状态
// 由 InputSystem 在每次 Update 开始时写入，窗口失去焦点时清空按键
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool

	// 移动端虚拟摇杆向量（已截断到单位圆）和发射按钮
	TouchX    float64
	TouchY    float64
	TouchFire bool

	Mobile bool
}

// ClearKeys 释放所有按键和触控
func (s *InputState) ClearKeys() {
	s.Left, s.Right, s.Up, s.Down, s.Fire = false, false, false, false, false
	s.TouchX, s.TouchY, s.TouchFire = 0, 0, false
}

// Snapshot 合并键盘与触控输入
// 只有移动模式下触控输入才生效，合并后每个轴截断到 [-1, 1]
func (s *InputState) Snapshot() InputSnapshot {
	var x, y float64
	if s.Left {
		x--
	}
	if s.Right {
		x++
	}
	if s.Up {
		y--
	}
	if s.Down {
		y++
	}

	fire := s.Fire
	if s.Mobile {
		x += s.TouchX
		y += s.TouchY
		fire = fire || s.TouchFire
	}

	return InputSnapshot{
		MoveX:  clampUnit(x),
		MoveY:  clampUnit(y),
		Fire:   fire,
		Mobile: s.Mobile,
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
