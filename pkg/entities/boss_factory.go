package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/types"
)

// NewBoss 创建 Boss 实体
// Boss 从屏幕上方水平居中处登场，初始阶段为 Entering
func NewBoss(em *ecs.EntityManager, spec *config.BossSpec, index int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("boss spec cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: config.FieldWidth/2 - config.BossWidth/2,
		Y: config.BossStartY,
	})
	em.AddComponent(id, &components.CollisionComponent{Width: config.BossWidth, Height: config.BossHeight})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: spec.Health, MaxHealth: spec.Health})
	em.AddComponent(id, &components.BossComponent{
		Type:       spec.Type,
		Name:       spec.Name,
		Index:      index,
		Phase:      types.BossPhaseEntering,
		EntrySpeed: spec.Speed,
		Direction:  1,
		Alpha:      1,
	})
	em.AddComponent(id, &components.SpriteComponent{Color: spec.Color.RGBA(), ImageKey: spec.Image})

	log.Printf("[BossFactory] 创建 Boss %d: type=%s, name=%s, hp=%d", id, spec.Type, spec.Name, spec.Health)
	return id, nil
}
