package components

import "github.com/gonewx/shmup/pkg/types"

// EnemyComponent 普通敌机
type EnemyComponent struct {
	Type types.EnemyType

	ShootTimer  int     // 距离上次开火的帧数
	FireDelay   int     // ShootTimer 超过该值后才可能开火
	FireChance  float64 // 每帧开火概率
	BulletSpeed float64

	// 之字形移动：PatternTimer 到达 ZigzagPeriod 时换向
	PatternTimer int
	Direction    float64 // -1 或 1
	ZigzagSpeed  float64
	ZigzagPeriod int

	Points int // 击毁得分
}
