package entities

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/ecs"
)

// NewDamageText 在 (x, y) 创建飘字，x 为文字中心
func NewDamageText(em *ecs.EntityManager, x, y float64, damage, lifeTime int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.DamageTextComponent{Damage: damage, LifeTime: lifeTime, Alpha: 1})
	return id
}
