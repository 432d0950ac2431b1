package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
)

// DamageTextSystem 飘字上升并淡出，寿命结束后删除
type DamageTextSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
}

// NewDamageTextSystem 创建飘字系统
func NewDamageTextSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *DamageTextSystem {
	return &DamageTextSystem{em: em, cfg: cfg}
}

// Update 推进所有飘字
func (s *DamageTextSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.DamageTextComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		dt, _ := ecs.GetComponent[*components.DamageTextComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.Y -= s.cfg.DamageText.RiseSpeed
		dt.Alpha -= s.cfg.DamageText.FadeRate
		if dt.Alpha < 0 {
			dt.Alpha = 0
		}
		dt.LifeTime--
		if dt.LifeTime <= 0 {
			s.em.DestroyEntity(id)
		}
	}
}
