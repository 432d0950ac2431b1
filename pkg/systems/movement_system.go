package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/ecs"
)

// MovementSystem 按速度推进子弹、敌机和障碍物
type MovementSystem struct {
	em *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{em: em}
}

// Update 每个拥有速度的实体移动一帧
func (s *MovementSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX
		pos.Y += vel.VY
	}
}
