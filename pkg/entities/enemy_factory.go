package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/types"
)

// NewEnemy 创建普通敌机，从战场上方 x 处出现
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数（提供该类型的速度、血量、开火参数）
//   - enemyType: 敌机类型
//   - x: 左上角X坐标
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID
//   - error: 类型未配置时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.GameplayConfig, enemyType types.EnemyType, x float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	stats, ok := cfg.GetEnemyStats(enemyType)
	if !ok {
		return 0, fmt.Errorf("enemy type %q is not configured", enemyType)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: -config.EnemyHeight})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: stats.Speed})
	em.AddComponent(id, &components.CollisionComponent{Width: config.EnemyWidth, Height: config.EnemyHeight})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: stats.Health, MaxHealth: stats.Health})
	em.AddComponent(id, &components.EnemyComponent{
		Type:         enemyType,
		FireDelay:    stats.FireDelay,
		FireChance:   stats.FireChance,
		BulletSpeed:  stats.BulletSpeed,
		Direction:    1,
		ZigzagSpeed:  stats.ZigzagSpeed,
		ZigzagPeriod: stats.ZigzagPeriod,
		Points:       stats.Points,
	})
	base := stats.Color.RGBA()
	em.AddComponent(id, &components.SpriteComponent{Color: base, Accent: lighten(base, 0.27)})
	return id, nil
}

// lighten 将颜色向白色混合 f（0~1）
func lighten(c color.RGBA, f float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return v + uint8(float64(0xff-v)*f)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
