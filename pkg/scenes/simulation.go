package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/systems"
)

// Simulation 一局游戏的逐帧模拟，不依赖窗口和渲染
//
// GameScene 和 cmd/soak 共用同一套模拟；随机数和音效通过接口注入，
// 测试中可以用脚本化的随机源和 nil 音效。
type Simulation struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cfg           *config.GameplayConfig

	playerControlSystem *systems.PlayerControlSystem
	movementSystem      *systems.MovementSystem
	enemyBehaviorSystem *systems.EnemyBehaviorSystem
	bossSystem          *systems.BossSystem
	damageTextSystem    *systems.DamageTextSystem
	spawnSystem         *systems.SpawnSystem
	collisionSystem     *systems.CollisionSystem
	boundsSystem        *systems.BoundsSystem
}

// NewSimulation 创建未开始的模拟
// cfg 由模拟持有，ApplyConfig 原地替换其内容，所有系统随之生效
func NewSimulation(cfg *config.GameplayConfig, rand systems.RandSource, sound game.SoundPlayer) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}
	if rand == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.Player.InitialLives)

	return &Simulation{
		entityManager:       em,
		gameState:           gs,
		cfg:                 cfg,
		playerControlSystem: systems.NewPlayerControlSystem(em, gs, cfg, sound),
		movementSystem:      systems.NewMovementSystem(em),
		enemyBehaviorSystem: systems.NewEnemyBehaviorSystem(em, rand),
		bossSystem:          systems.NewBossSystem(em, gs, cfg, rand, sound),
		damageTextSystem:    systems.NewDamageTextSystem(em, cfg),
		spawnSystem:         systems.NewSpawnSystem(em, gs, cfg, rand, sound),
		collisionSystem:     systems.NewCollisionSystem(em, gs, cfg, sound),
		boundsSystem:        systems.NewBoundsSystem(em, cfg),
	}, nil
}

// EntityManager 返回实体管理器（渲染使用）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// State 返回游戏状态
func (s *Simulation) State() *game.GameState {
	return s.gameState
}

// Config 返回当前生效的参数
func (s *Simulation) Config() *config.GameplayConfig {
	return s.cfg
}

// Start 开始游戏；已经开始时不做任何事
func (s *Simulation) Start() error {
	if s.gameState.Started {
		return nil
	}
	return s.Restart()
}

// Restart 清空所有实体，重置状态并立即开始
func (s *Simulation) Restart() error {
	s.entityManager.Clear()
	s.gameState.Reset()

	if _, err := entities.NewPlayer(s.entityManager, &s.cfg.Player); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	s.gameState.Started = true
	log.Printf("[Simulation] 开始新游戏 (残机 %d)", s.gameState.Lives)
	return nil
}

// Tick 推进一帧
// 未开始或已结束（GameOver / GameCleared）时不做任何事
func (s *Simulation) Tick(input game.InputSnapshot) {
	if !s.gameState.IsRunning() {
		return
	}

	s.playerControlSystem.Update(input) // 1. 玩家移动与射击
	s.movementSystem.Update()           // 2. 子弹、敌机、障碍物位移
	s.enemyBehaviorSystem.Update()      // 3. 敌机转向与开火
	s.bossSystem.Update()               // 4. Boss 状态机
	s.damageTextSystem.Update()         // 5. 伤害飘字
	s.spawnSystem.Update()              // 6. 生成 Boss / 敌机 / 障碍物
	s.collisionSystem.Update()          // 7. 碰撞
	s.boundsSystem.Update()             // 8. 越界清理
	s.entityManager.RemoveMarkedEntities()

	s.gameState.Frame++
	s.gameState.ResolveTerminal()

	if s.gameState.GameOver {
		log.Printf("[Simulation] GameOver: 分数 %d, 击破 Boss %d", s.gameState.Score, s.gameState.BossCount)
	} else if s.gameState.GameCleared {
		log.Printf("[Simulation] 通关: 分数 %d, 残机 %d", s.gameState.Score, s.gameState.Lives)
	}
}

// ApplyConfig 原地替换参数
// 已存在的实体保持原样，新参数从下一帧起作用；残机上限在下次重新开始时生效
func (s *Simulation) ApplyConfig(next *config.GameplayConfig) {
	if next == nil {
		return
	}
	*s.cfg = *next
	s.gameState.SetInitialLives(next.Player.InitialLives)

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
			player.Speed = next.Player.Speed
		}
	}
	log.Printf("[Simulation] 已应用新参数")
}

// BossCount 当前场上的 Boss 实体数量
func (s *Simulation) BossCount() int {
	return len(ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager))
}

// CurrentBoss 返回场上的 Boss 及其血量，没有 Boss 时 ok 为 false
func (s *Simulation) CurrentBoss() (boss *components.BossComponent, health *components.HealthComponent, ok bool) {
	ids := ecs.GetEntitiesWith2[*components.BossComponent, *components.HealthComponent](s.entityManager)
	if len(ids) == 0 {
		return nil, nil, false
	}
	boss, _ = ecs.GetComponent[*components.BossComponent](s.entityManager, ids[0])
	health, _ = ecs.GetComponent[*components.HealthComponent](s.entityManager, ids[0])
	return boss, health, true
}
