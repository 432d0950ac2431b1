// Package types 定义共享的基础类型
package types

// EnemyType 定义普通敌机的类型
// 取值同时作为 gameplay.yaml 中 enemies 映射的键
type EnemyType string

const (
	// EnemyNormal 普通敌机：直线下落，出现频率最高
	EnemyNormal EnemyType = "normal"
	// EnemyFast 高速敌机：下落更快，分数更高
	EnemyFast EnemyType = "fast"
	// EnemyZigzag 之字形敌机：下落时左右摆动
	EnemyZigzag EnemyType = "zigzag"
	// EnemyTank 重装敌机：移动缓慢，血量高
	EnemyTank EnemyType = "tank"
)

// AllEnemyTypes 按解锁顺序列出所有敌机类型
var AllEnemyTypes = []EnemyType{EnemyNormal, EnemyFast, EnemyZigzag, EnemyTank}

// IsValid 检查敌机类型是否为已知类型
func (t EnemyType) IsValid() bool {
	for _, known := range AllEnemyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ObstacleKind 定义障碍物种类
type ObstacleKind int

const (
	// ObstacleDestructible 可破坏障碍物（有限血量）
	ObstacleDestructible ObstacleKind = iota
	// ObstacleIndestructible 不可破坏障碍物（无限血量，只吸收子弹）
	ObstacleIndestructible
)

// String 返回障碍物种类名称
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleDestructible:
		return "destructible"
	case ObstacleIndestructible:
		return "indestructible"
	default:
		return "unknown"
	}
}

// ProjectileOwner 标识子弹归属阵营
type ProjectileOwner int

const (
	// OwnerPlayer 玩家发射的子弹，向上飞行
	OwnerPlayer ProjectileOwner = iota
	// OwnerEnemy 敌机或 Boss 发射的子弹
	OwnerEnemy
)
