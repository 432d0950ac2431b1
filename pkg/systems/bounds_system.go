package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/types"
)

// BoundsSystem 删除离开战场的实体
//   - 玩家子弹：Y < 0
//   - 敌方子弹：Y > 战场高度，或者在左、右、上方完全离开战场超过 bulletMargin
//   - 敌机和障碍物：Y > 战场高度
type BoundsSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
}

// NewBoundsSystem 创建边界系统
func NewBoundsSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *BoundsSystem {
	return &BoundsSystem{em: em, cfg: cfg}
}

// Update 标记越界实体待删除
func (s *BoundsSystem) Update() {
	for _, b := range bodiesWith[*components.ProjectileComponent](s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, b.id)
		if proj.Owner == types.OwnerPlayer {
			if b.pos.Y < 0 {
				s.em.DestroyEntity(b.id)
			}
			continue
		}
		if s.enemyBulletOut(b) {
			s.em.DestroyEntity(b.id)
		}
	}

	for _, b := range bodiesWith[*components.EnemyComponent](s.em) {
		if b.pos.Y > config.FieldHeight {
			s.em.DestroyEntity(b.id)
		}
	}
	for _, b := range bodiesWith[*components.ObstacleComponent](s.em) {
		if b.pos.Y > config.FieldHeight {
			s.em.DestroyEntity(b.id)
		}
	}
}

func (s *BoundsSystem) enemyBulletOut(b body) bool {
	margin := s.cfg.Spawn.BulletMargin
	return b.pos.Y > config.FieldHeight ||
		b.pos.X+b.col.Width < -margin ||
		b.pos.X > config.FieldWidth+margin ||
		b.pos.Y+b.col.Height < -margin
}
