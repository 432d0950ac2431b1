package systems

import (
	"log"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/types"
)

// SpawnSystem 生成 Boss、敌机和障碍物
//
// 每帧的随机抽取顺序固定：
//  1. 敌机是否生成；生成时依次抽取类型和X坐标
//  2. 障碍物是否生成；生成时依次抽取种类和X坐标
//
// Boss 存在（任何阶段）时不生成敌机和障碍物。
type SpawnSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	cfg   *config.GameplayConfig
	rand  RandSource
	sound game.SoundPlayer
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameplayConfig, rand RandSource, sound game.SoundPlayer) *SpawnSystem {
	return &SpawnSystem{em: em, gs: gs, cfg: cfg, rand: rand, sound: sound}
}

// Update 执行一帧的生成检查
func (s *SpawnSystem) Update() {
	if s.bossExists() {
		return
	}
	if s.trySpawnBoss() {
		return
	}

	spawn := s.cfg.Spawn
	if s.rand.Float64() < spawn.EnemyChance {
		s.spawnEnemy()
	}
	if s.rand.Float64() < spawn.ObstacleChance {
		s.spawnObstacle()
	}
}

func (s *SpawnSystem) bossExists() bool {
	return len(ecs.GetEntitiesWith1[*components.BossComponent](s.em)) > 0
}

// trySpawnBoss 分数达到下一个 Boss 的门槛时生成 Boss
func (s *SpawnSystem) trySpawnBoss() bool {
	spec := s.cfg.BossAt(s.gs.BossCount)
	if spec == nil || s.gs.Score < spec.ScoreGate {
		return false
	}

	if _, err := entities.NewBoss(s.em, spec, s.gs.BossCount); err != nil {
		log.Printf("[SpawnSystem] 创建 Boss 失败: %v", err)
		return false
	}
	playSound(s.sound, game.SoundBossAppear)
	log.Printf("[SpawnSystem] 分数 %d 达到 %d，Boss %s 登场", s.gs.Score, spec.ScoreGate, spec.Name)
	return true
}

func (s *SpawnSystem) spawnEnemy() {
	enemyType := s.chooseEnemyType()
	x := s.rand.Float64() * (config.FieldWidth - config.EnemyWidth)
	if _, err := entities.NewEnemy(s.em, s.cfg, enemyType, x); err != nil {
		log.Printf("[SpawnSystem] 创建敌机失败: %v", err)
	}
}

// chooseEnemyType 在已解锁的类型中按权重抽取
func (s *SpawnSystem) chooseEnemyType() types.EnemyType {
	candidates := s.cfg.UnlockedEnemyTypes(s.gs.Score)
	if len(candidates) == 0 {
		return types.EnemyNormal
	}

	total := 0
	for _, t := range candidates {
		total += s.cfg.Enemies[t].Weight
	}

	r := s.rand.Float64() * float64(total)
	for _, t := range candidates {
		r -= float64(s.cfg.Enemies[t].Weight)
		if r < 0 {
			return t
		}
	}
	return candidates[len(candidates)-1]
}

func (s *SpawnSystem) spawnObstacle() {
	kind := types.ObstacleIndestructible
	if s.rand.Float64() < s.cfg.Spawn.DestructibleRatio {
		kind = types.ObstacleDestructible
	}
	x := s.rand.Float64() * (config.FieldWidth - config.ObstacleWidth)
	if _, err := entities.NewObstacle(s.em, &s.cfg.Obstacles, kind, x); err != nil {
		log.Printf("[SpawnSystem] 创建障碍物失败: %v", err)
	}
}
