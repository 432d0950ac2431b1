package entities

import (
	"fmt"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/types"
)

// NewObstacle 创建下落的障碍物
// 不可破坏的障碍物只吸收子弹，血量不会减少
func NewObstacle(em *ecs.EntityManager, cfg *config.ObstacleConfig, kind types.ObstacleKind, x float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	health := &components.HealthComponent{CurrentHealth: cfg.DestructibleHealth, MaxHealth: cfg.DestructibleHealth}
	sprite := &components.SpriteComponent{Color: cfg.DestructibleColor.RGBA()}
	switch kind {
	case types.ObstacleDestructible:
	case types.ObstacleIndestructible:
		health = &components.HealthComponent{CurrentHealth: 1, MaxHealth: 1, Indestructible: true}
		sprite = &components.SpriteComponent{Color: cfg.SolidColor.RGBA(), Accent: lighten(cfg.SolidColor.RGBA(), 0.3)}
	default:
		return 0, fmt.Errorf("unknown obstacle kind %d", kind)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: -config.ObstacleHeight})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: cfg.Speed})
	em.AddComponent(id, &components.CollisionComponent{Width: config.ObstacleWidth, Height: config.ObstacleHeight})
	em.AddComponent(id, health)
	em.AddComponent(id, &components.ObstacleComponent{Kind: kind})
	em.AddComponent(id, sprite)
	return id, nil
}
