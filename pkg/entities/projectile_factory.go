package entities

import (
	"image/color"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/types"
)

var (
	playerBulletColor = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	// EnemyBulletColor 普通敌机子弹颜色
	EnemyBulletColor = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
)

// NewPlayerBullet 创建玩家子弹
// (centerX, topY) 是发射点：子弹水平居中于该点，底边对齐 topY
func NewPlayerBullet(em *ecs.EntityManager, centerX, topY, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: centerX - config.BulletWidth/2,
		Y: topY - config.BulletHeight,
	})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: -speed})
	em.AddComponent(id, &components.CollisionComponent{Width: config.BulletWidth, Height: config.BulletHeight})
	em.AddComponent(id, &components.ProjectileComponent{Owner: types.OwnerPlayer, Color: playerBulletColor})
	return id
}

// NewEnemyBullet 创建敌方子弹
// (centerX, y) 是发射点（通常为发射者底边中央），速度向量由调用方给出
func NewEnemyBullet(em *ecs.EntityManager, centerX, y, vx, vy float64, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: centerX - config.BulletWidth/2,
		Y: y,
	})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.CollisionComponent{Width: config.BulletWidth, Height: config.BulletHeight})
	em.AddComponent(id, &components.ProjectileComponent{Owner: types.OwnerEnemy, Color: c})
	return id
}
