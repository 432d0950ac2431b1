package components

import "github.com/gonewx/shmup/pkg/types"

// BossComponent Boss 状态机
//
// 阶段流转：Entering -> Active -> Dying -> Removed
//   - Entering: 向下移动直到 EntryY，不攻击、不可被击中
//   - Active: 左右巡逻并按攻击模式开火
//   - Dying: 生命值归零后淡出，不攻击、无接触伤害
//   - Removed: 死亡演出结束，等待结算并删除
type BossComponent struct {
	Type  types.BossType
	Name  string
	Index int // 第几个 Boss（0 起）

	Phase types.BossPhase

	EntrySpeed    float64
	AttackPattern int // 当前攻击模式索引
	PatternTimer  int // 距离上次切换模式的帧数
	ShootTimer    int // 距离上次开火的帧数
	MoveTimer     int // 距离上次巡逻换向的帧数
	Direction     float64

	DeathTimer int     // 死亡演出已进行的帧数
	Alpha      float64 // 绘制透明度（死亡时淡出）
	AnchorX    float64 // 死亡时的位置，抖动以此为中心
	AnchorY    float64

	DamageFlash int // 受击闪烁剩余帧数
}

// IsHittable 只有 Active 阶段可被击中并造成接触伤害
func (b *BossComponent) IsHittable() bool {
	return b.Phase == types.BossPhaseActive
}

// StartDying 生命值归零时进入死亡阶段，记录抖动中心
func (b *BossComponent) StartDying(x, y float64) {
	b.Phase = types.BossPhaseDying
	b.DeathTimer = 0
	b.AnchorX = x
	b.AnchorY = y
}
