package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/modules"
	"github.com/gonewx/shmup/pkg/types"
)

// fixedRand 总是返回同一个值
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestSimulation(t *testing.T, rand interface{ Float64() float64 }) *Simulation {
	t.Helper()
	sim, err := NewSimulation(config.DefaultGameplay(), rand, nil)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return sim
}

func TestNewSimulationRejectsNil(t *testing.T) {
	if _, err := NewSimulation(nil, fixedRand(0.5), nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := NewSimulation(config.DefaultGameplay(), nil, nil); err == nil {
		t.Error("expected error for nil random source")
	}
}

func TestTickBeforeStartIsNoop(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0))
	for i := 0; i < 10; i++ {
		sim.Tick(game.InputSnapshot{Fire: true})
	}
	if sim.State().Frame != 0 || sim.EntityManager().Count() != 0 {
		t.Errorf("frame=%d entities=%d, want 0/0", sim.State().Frame, sim.EntityManager().Count())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0.999))
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	sim.State().Score = 42
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if sim.State().Score != 42 {
		t.Error("second Start() should not reset a running game")
	}
	if got := len(ecs.GetEntitiesWith1[*components.PlayerComponent](sim.EntityManager())); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0.999))
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	gs := sim.State()
	gs.Score, gs.Lives, gs.BossCount = 2500, 0, 2
	gs.GameOver = true
	em := sim.EntityManager()
	if _, err := entities.NewEnemy(em, sim.Config(), types.EnemyNormal, 100); err != nil {
		t.Fatalf("NewEnemy() error = %v", err)
	}
	entities.NewEnemyBullet(em, 100, 100, 0, 3, entities.EnemyBulletColor)

	if err := sim.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}

	if gs.Score != 0 || gs.Lives != 10 || gs.BossCount != 0 {
		t.Errorf("score=%d lives=%d bosses=%d, want 0/10/0", gs.Score, gs.Lives, gs.BossCount)
	}
	if gs.GameOver || gs.GameCleared || !gs.Started {
		t.Errorf("flags over=%v cleared=%v started=%v", gs.GameOver, gs.GameCleared, gs.Started)
	}
	if em.Count() != 1 {
		t.Errorf("entities = %d, want only the player", em.Count())
	}
}

func TestBossSpawnsOnceAtThreshold(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0.999))
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	sim.State().Score = 99
	sim.Tick(game.InputSnapshot{})
	if sim.BossCount() != 0 {
		t.Fatal("boss spawned below the threshold")
	}

	sim.State().Score = 100
	for i := 0; i < 30; i++ {
		sim.Tick(game.InputSnapshot{})
		if n := sim.BossCount(); n != 1 {
			t.Fatalf("tick %d: bosses = %d, want 1", i, n)
		}
	}
	boss, health, ok := sim.CurrentBoss()
	if !ok || boss.Name != "Snail" || health.CurrentHealth != 30 {
		t.Errorf("CurrentBoss() = %+v, %+v, %v", boss, health, ok)
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0))
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	gs := sim.State()
	gs.GameCleared = true
	gs.BossCount = 3
	frame, count := gs.Frame, sim.EntityManager().Count()

	for i := 0; i < 100; i++ {
		sim.Tick(game.InputSnapshot{MoveX: 1, Fire: true})
	}

	if gs.Frame != frame || sim.EntityManager().Count() != count {
		t.Errorf("simulation advanced after game clear: frame %d -> %d", frame, gs.Frame)
	}
}

func TestGameOverWinsOverClearOnSameTick(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0.999))
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	gs := sim.State()
	em := sim.EntityManager()
	gs.Lives = 1
	gs.BossCount = 2

	cfg := sim.Config()
	id, err := entities.NewBoss(em, cfg.BossAt(2), 2)
	if err != nil {
		t.Fatalf("NewBoss() error = %v", err)
	}
	boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
	boss.StartDying(300, 50)
	boss.DeathTimer = cfg.Boss.DeathDuration - 1

	// 停在玩家身上的敌方子弹
	entities.NewEnemyBullet(em, config.PlayerStartX+15, config.PlayerStartY+5, 0, 0, entities.EnemyBulletColor)

	sim.Tick(game.InputSnapshot{})

	if !gs.GameOver || gs.GameCleared {
		t.Errorf("gameOver=%v cleared=%v, want true/false", gs.GameOver, gs.GameCleared)
	}
	if gs.BossCount != 3 {
		t.Errorf("bossCount = %d, the defeat still counts", gs.BossCount)
	}
}

func TestApplyConfigSwapsInPlace(t *testing.T) {
	sim := newTestSimulation(t, fixedRand(0.999))
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	held := sim.Config()

	next := config.DefaultGameplay()
	next.Player.Speed = 9
	next.Player.InitialLives = 3
	sim.ApplyConfig(next)

	if held.Player.Speed != 9 {
		t.Error("systems holding the config pointer should see the new values")
	}
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](sim.EntityManager())
	player, _ := ecs.GetComponent[*components.PlayerComponent](sim.EntityManager(), players[0])
	if player.Speed != 9 {
		t.Errorf("player speed = %v, want 9", player.Speed)
	}
	if sim.State().Lives != 10 {
		t.Errorf("lives changed mid-game: %d", sim.State().Lives)
	}
	if err := sim.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	if sim.State().Lives != 3 {
		t.Errorf("lives after restart = %d, want 3", sim.State().Lives)
	}

	sim.ApplyConfig(nil)
	if held.Player.Speed != 9 {
		t.Error("nil config should be ignored")
	}
}

// TestSoakInvariants 长时间随机运行，检查分数、残机和 Boss 数量的不变量
func TestSoakInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 3; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7))
		sim := newTestSimulation(t, rng)
		if err := sim.Start(); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		gs := sim.State()
		gs.Lives = 1000

		prevScore, prevLives, prevBosses := gs.Score, gs.Lives, gs.BossCount
		for frame := 0; frame < 5000 && gs.IsRunning(); frame++ {
			input := game.InputSnapshot{
				MoveX: float64((frame/90)%3 - 1),
				MoveY: float64((frame/240)%3 - 1),
				Fire:  true,
			}
			sim.Tick(input)

			if gs.Score < prevScore {
				t.Fatalf("seed %d frame %d: score decreased %d -> %d", seed, frame, prevScore, gs.Score)
			}
			if gs.Lives > prevLives || gs.Lives < 0 {
				t.Fatalf("seed %d frame %d: lives %d -> %d", seed, frame, prevLives, gs.Lives)
			}
			if gs.BossCount < prevBosses {
				t.Fatalf("seed %d frame %d: boss count decreased", seed, frame)
			}
			if n := sim.BossCount(); n > 1 {
				t.Fatalf("seed %d frame %d: %d bosses on field", seed, frame, n)
			}
			if gs.GameOver && gs.GameCleared {
				t.Fatalf("seed %d frame %d: both terminal flags set", seed, frame)
			}
			prevScore, prevLives, prevBosses = gs.Score, gs.Lives, gs.BossCount
		}
		if gs.Score == 0 {
			t.Errorf("seed %d: bot never scored", seed)
		}
	}
}

func TestOverlayModeFor(t *testing.T) {
	tests := []struct {
		name  string
		setup func(gs *game.GameState)
		want  modules.OverlayMode
	}{
		{"not started", func(gs *game.GameState) {}, modules.OverlayTitle},
		{"running", func(gs *game.GameState) { gs.Started = true }, modules.OverlayHidden},
		{"game over", func(gs *game.GameState) { gs.Started, gs.GameOver = true, true }, modules.OverlayGameOver},
		{"cleared", func(gs *game.GameState) { gs.Started, gs.GameCleared = true, true }, modules.OverlayCleared},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := game.NewGameState(10)
			tt.setup(gs)
			if got := OverlayModeFor(gs); got != tt.want {
				t.Errorf("OverlayModeFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
