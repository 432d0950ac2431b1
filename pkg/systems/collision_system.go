package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/types"
)

// CollisionSystem 按固定顺序处理一帧内的所有碰撞
//
//  1. 玩家子弹 × 敌机
//  2. 玩家子弹 × 障碍物
//  3. 敌方子弹 × 玩家（每帧最多一次）
//  4. 敌机 × 玩家（每帧最多一次）
//  5. 玩家子弹 × Boss（仅 Active，每帧最多一次）
//  6. Boss × 玩家（仅 Active）
//  7. 玩家 × 障碍物（每帧最多一次）
//  8. 敌方子弹 × 障碍物
//
// 被消耗的实体立即标记删除，后续步骤跳过它们。
type CollisionSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	cfg   *config.GameplayConfig
	sound game.SoundPlayer
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameplayConfig, sound game.SoundPlayer) *CollisionSystem {
	return &CollisionSystem{em: em, gs: gs, cfg: cfg, sound: sound}
}

// Update 执行碰撞检测
func (s *CollisionSystem) Update() {
	playerBullets, enemyBullets := s.projectiles()
	enemies := bodiesWith[*components.EnemyComponent](s.em)
	obstacles := bodiesWith[*components.ObstacleComponent](s.em)
	player, hasPlayer := findPlayer(s.em)

	s.playerBulletsVsEnemies(playerBullets, enemies)
	s.playerBulletsVsObstacles(playerBullets, obstacles)
	if hasPlayer {
		s.enemyBulletsVsPlayer(enemyBullets, player)
		s.enemiesVsPlayer(enemies, player)
	}
	s.playerBulletsVsBoss(playerBullets)
	if hasPlayer {
		s.bossVsPlayer(player)
		s.playerVsObstacles(player, obstacles)
	}
	s.enemyBulletsVsObstacles(enemyBullets, obstacles)
}

func (s *CollisionSystem) projectiles() (playerBullets, enemyBullets []body) {
	for _, b := range bodiesWith[*components.ProjectileComponent](s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, b.id)
		if proj.Owner == types.OwnerPlayer {
			playerBullets = append(playerBullets, b)
		} else {
			enemyBullets = append(enemyBullets, b)
		}
	}
	return playerBullets, enemyBullets
}

func (s *CollisionSystem) alive(b body) bool {
	return s.em.IsAlive(b.id)
}

func (s *CollisionSystem) playerBulletsVsEnemies(bullets, enemies []body) {
	for _, bullet := range bullets {
		if !s.alive(bullet) {
			continue
		}
		for _, enemy := range enemies {
			if !s.alive(enemy) || !bullet.overlaps(enemy) {
				continue
			}
			s.em.DestroyEntity(bullet.id)

			health, _ := ecs.GetComponent[*components.HealthComponent](s.em, enemy.id)
			if health == nil || health.TakeDamage(1) {
				points := 0
				if ec, ok := ecs.GetComponent[*components.EnemyComponent](s.em, enemy.id); ok {
					points = ec.Points
				}
				s.em.DestroyEntity(enemy.id)
				s.gs.AddScore(points)
				playSound(s.sound, game.SoundExplosion)
			} else {
				s.gs.AddScore(s.cfg.Scoring.EnemyHit)
				playSound(s.sound, game.SoundHit)
			}
			break
		}
	}
}

func (s *CollisionSystem) playerBulletsVsObstacles(bullets, obstacles []body) {
	for _, bullet := range bullets {
		if !s.alive(bullet) {
			continue
		}
		for _, obstacle := range obstacles {
			if !s.alive(obstacle) || !bullet.overlaps(obstacle) {
				continue
			}
			s.em.DestroyEntity(bullet.id)

			health, _ := ecs.GetComponent[*components.HealthComponent](s.em, obstacle.id)
			if health != nil && !health.Indestructible {
				if health.TakeDamage(1) {
					s.em.DestroyEntity(obstacle.id)
					s.gs.AddScore(s.cfg.Scoring.ObstacleKill)
					playSound(s.sound, game.SoundExplosion)
				} else {
					s.gs.AddScore(s.cfg.Scoring.ObstacleHit)
					playSound(s.sound, game.SoundHit)
				}
			}
			break
		}
	}
}

func (s *CollisionSystem) enemyBulletsVsPlayer(bullets []body, player body) {
	for _, bullet := range bullets {
		if !s.alive(bullet) || !bullet.overlaps(player) {
			continue
		}
		s.em.DestroyEntity(bullet.id)
		s.hitPlayer()
		return
	}
}

func (s *CollisionSystem) enemiesVsPlayer(enemies []body, player body) {
	for _, enemy := range enemies {
		if !s.alive(enemy) || !enemy.overlaps(player) {
			continue
		}
		s.em.DestroyEntity(enemy.id)
		s.hitPlayer()
		return
	}
}

// activeBoss 返回处于 Active 阶段的 Boss
func (s *CollisionSystem) activeBoss() (body, *components.BossComponent, bool) {
	for _, b := range bodiesWith[*components.BossComponent](s.em) {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.em, b.id)
		if boss.IsHittable() && s.alive(b) {
			return b, boss, true
		}
	}
	return body{}, nil, false
}

func (s *CollisionSystem) playerBulletsVsBoss(bullets []body) {
	target, boss, ok := s.activeBoss()
	if !ok {
		return
	}

	for _, bullet := range bullets {
		if !s.alive(bullet) || !bullet.overlaps(target) {
			continue
		}
		s.em.DestroyEntity(bullet.id)

		boss.DamageFlash = s.cfg.Boss.DamageFlash
		entities.NewDamageText(s.em, target.pos.X+target.col.Width/2, target.pos.Y, 1, s.cfg.DamageText.LifeTime)
		s.gs.AddScore(s.cfg.Scoring.BossHit)
		playSound(s.sound, game.SoundHit)

		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, target.id)
		if health != nil && health.TakeDamage(1) {
			boss.StartDying(target.pos.X, target.pos.Y)
			playSound(s.sound, game.SoundExplosion)
		}
		return
	}
}

func (s *CollisionSystem) bossVsPlayer(player body) {
	target, _, ok := s.activeBoss()
	if !ok || !target.overlaps(player) {
		return
	}
	s.hitPlayer()
}

func (s *CollisionSystem) playerVsObstacles(player body, obstacles []body) {
	for _, obstacle := range obstacles {
		if !s.alive(obstacle) || !obstacle.overlaps(player) {
			continue
		}
		s.em.DestroyEntity(obstacle.id)
		s.hitPlayer()
		return
	}
}

func (s *CollisionSystem) enemyBulletsVsObstacles(bullets, obstacles []body) {
	for _, bullet := range bullets {
		if !s.alive(bullet) {
			continue
		}
		for _, obstacle := range obstacles {
			if !s.alive(obstacle) || !bullet.overlaps(obstacle) {
				continue
			}
			s.em.DestroyEntity(bullet.id)

			health, _ := ecs.GetComponent[*components.HealthComponent](s.em, obstacle.id)
			if health != nil && health.TakeDamage(1) {
				s.em.DestroyEntity(obstacle.id)
			}
			break
		}
	}
}

func (s *CollisionSystem) hitPlayer() {
	if s.gs.LoseLife() {
		playSound(s.sound, game.SoundPlayerHit)
	}
}
