package components

// PlayerComponent 标记玩家实体
type PlayerComponent struct {
	Speed float64 // 每帧移动像素
}
