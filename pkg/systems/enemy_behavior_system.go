package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
)

// EnemyBehaviorSystem 敌机的射击和之字形移动
type EnemyBehaviorSystem struct {
	em   *ecs.EntityManager
	rand RandSource
}

// NewEnemyBehaviorSystem 创建敌机行为系统
func NewEnemyBehaviorSystem(em *ecs.EntityManager, rand RandSource) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{em: em, rand: rand}
}

// Update 更新所有敌机
// ShootTimer 超过 FireDelay 后，每帧以 FireChance 的概率向下开火
func (s *EnemyBehaviorSystem) Update() {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		if enemy.ZigzagSpeed > 0 {
			s.steer(enemy, pos, vel)
		}

		enemy.ShootTimer++
		if enemy.ShootTimer > enemy.FireDelay && s.rand.Float64() < enemy.FireChance {
			entities.NewEnemyBullet(s.em, pos.X+config.EnemyWidth/2, pos.Y+config.EnemyHeight,
				0, enemy.BulletSpeed, entities.EnemyBulletColor)
			enemy.ShootTimer = 0
		}
	}
}

// steer 之字形敌机：周期换向，碰到战场边缘时折返
func (s *EnemyBehaviorSystem) steer(enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	enemy.PatternTimer++
	if enemy.PatternTimer >= enemy.ZigzagPeriod {
		enemy.Direction = -enemy.Direction
		enemy.PatternTimer = 0
	}
	if pos.X <= 0 {
		enemy.Direction = 1
	} else if pos.X >= config.FieldWidth-config.EnemyWidth {
		enemy.Direction = -1
	}
	vel.VX = enemy.Direction * enemy.ZigzagSpeed
}
