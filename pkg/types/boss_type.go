package types

// BossType 定义 Boss 的类型
// 取值同时作为 gameplay.yaml 中 bosses 列表的 type 字段
type BossType string

const (
	// BossSnail 第一个 Boss：蜗牛，慢速直线弹和螺旋弹
	BossSnail BossType = "boss1"
	// BossKappa 第二个 Boss：河童，水弹和波状弹
	BossKappa BossType = "boss2"
	// BossBear 第三个 Boss：跳舞熊，强力弹和随机弹
	BossBear BossType = "boss3"
)

// BossPhase Boss 生命周期阶段
type BossPhase int

const (
	// BossPhaseEntering 登场：向下移动到固定高度，不攻击、不可被击中
	BossPhaseEntering BossPhase = iota
	// BossPhaseActive 战斗：左右巡逻并循环三种攻击模式
	BossPhaseActive
	// BossPhaseDying 死亡：淡出并抖动，血量冻结
	BossPhaseDying
	// BossPhaseRemoved 已移除：结算分数后删除实体
	BossPhaseRemoved
)

// String 返回阶段名称（用于日志）
func (p BossPhase) String() string {
	switch p {
	case BossPhaseEntering:
		return "entering"
	case BossPhaseActive:
		return "active"
	case BossPhaseDying:
		return "dying"
	case BossPhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// AttackKind Boss 攻击模式的弹道形状
type AttackKind string

const (
	// AttackStraight 单发直线弹
	AttackStraight AttackKind = "straight"
	// AttackSpiral 随时间旋转角度的螺旋弹
	AttackSpiral AttackKind = "spiral"
	// AttackRadial 均匀分布的放射弹（rate 非零时整体旋转）
	AttackRadial AttackKind = "radial"
	// AttackWave 正弦摆动的波状弹
	AttackWave AttackKind = "wave"
	// AttackSpread 随机角度的扇形弹
	AttackSpread AttackKind = "spread"
)

// IsValid 检查攻击模式是否为已知类型
func (k AttackKind) IsValid() bool {
	switch k {
	case AttackStraight, AttackSpiral, AttackRadial, AttackWave, AttackSpread:
		return true
	}
	return false
}
