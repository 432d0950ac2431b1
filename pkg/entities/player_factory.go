package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
)

var (
	playerColor  = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	playerAccent = color.RGBA{R: 0x00, G: 0xff, B: 0x44, A: 0xff}
)

// NewPlayer 创建玩家实体，位于底部中央
func NewPlayer(em *ecs.EntityManager, cfg *config.PlayerConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("player config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: config.PlayerStartX, Y: config.PlayerStartY})
	em.AddComponent(id, &components.CollisionComponent{Width: config.PlayerWidth, Height: config.PlayerHeight})
	em.AddComponent(id, &components.PlayerComponent{Speed: cfg.Speed})
	em.AddComponent(id, &components.SpriteComponent{Color: playerColor, Accent: playerAccent})
	return id, nil
}
