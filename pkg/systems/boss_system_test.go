package systems

import (
	"math"
	"testing"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/types"
)

func spawnBoss(t *testing.T, w *testWorld, index int) (ecs.EntityID, *components.BossComponent, *components.PositionComponent) {
	t.Helper()
	id, err := entities.NewBoss(w.em, w.cfg.BossAt(index), index)
	if err != nil {
		t.Fatalf("NewBoss() error = %v", err)
	}
	boss, _ := ecs.GetComponent[*components.BossComponent](w.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return id, boss, pos
}

func TestBossEntersThenActivates(t *testing.T) {
	w := newTestWorld()
	_, boss, pos := spawnBoss(t, w, 0)
	s := NewBossSystem(w.em, w.gs, w.cfg, constRand(0.5), nil)

	s.Update()
	if boss.Phase != types.BossPhaseEntering || pos.Y != config.BossStartY+1 {
		t.Fatalf("after one frame: phase=%v y=%v", boss.Phase, pos.Y)
	}

	for i := 0; i < 300 && boss.Phase == types.BossPhaseEntering; i++ {
		s.Update()
	}
	if boss.Phase != types.BossPhaseActive {
		t.Fatalf("phase = %v, want active", boss.Phase)
	}
	if pos.Y != 50 {
		t.Errorf("y = %v, want 50", pos.Y)
	}
	if got := count[*components.ProjectileComponent](w.em); got != 0 {
		t.Errorf("boss fired %d bullets while entering", got)
	}
}

func TestBossStraightPatternFires(t *testing.T) {
	w := newTestWorld()
	_, boss, pos := spawnBoss(t, w, 0)
	boss.Phase = types.BossPhaseActive
	pos.Y = 50
	s := NewBossSystem(w.em, w.gs, w.cfg, constRand(0.5), nil)

	for i := 0; i < 30; i++ {
		s.Update()
	}
	if got := count[*components.ProjectileComponent](w.em); got != 0 {
		t.Fatalf("fired before interval: %d", got)
	}
	s.Update()
	bullets := ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em)
	if len(bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(bullets))
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, bullets[0])
	if vel.VX != 0 || vel.VY != 2 {
		t.Errorf("velocity = (%v, %v), want (0, 2)", vel.VX, vel.VY)
	}
	if boss.ShootTimer != 0 {
		t.Errorf("ShootTimer = %d, want 0", boss.ShootTimer)
	}
}

func TestBossPatternCyclesIndependentOfDamage(t *testing.T) {
	w := newTestWorld()
	_, boss, pos := spawnBoss(t, w, 1)
	boss.Phase = types.BossPhaseActive
	pos.Y = 50
	s := NewBossSystem(w.em, w.gs, w.cfg, constRand(0.5), nil)

	for i := 0; i < 181; i++ {
		s.Update()
	}
	if boss.AttackPattern != 1 {
		t.Errorf("pattern after 181 frames = %d, want 1", boss.AttackPattern)
	}
	for i := 0; i < 181*2; i++ {
		s.Update()
	}
	if boss.AttackPattern != 0 {
		t.Errorf("pattern after 543 frames = %d, want 0 (wrapped)", boss.AttackPattern)
	}
}

func TestBossPatrolTurnsAtEdges(t *testing.T) {
	w := newTestWorld()
	_, boss, pos := spawnBoss(t, w, 0)
	boss.Phase = types.BossPhaseActive
	s := NewBossSystem(w.em, w.gs, w.cfg, constRand(0.5), nil)

	pos.X = config.FieldWidth - config.BossWidth - 0.25
	boss.Direction = 1
	s.Update()
	if boss.Direction != -1 || pos.X != config.FieldWidth-config.BossWidth {
		t.Errorf("right edge: direction=%v x=%v", boss.Direction, pos.X)
	}

	pos.X = 0.25
	boss.Direction = -1
	boss.MoveTimer = 0
	s.Update()
	if boss.Direction != 1 || pos.X != 0 {
		t.Errorf("left edge: direction=%v x=%v", boss.Direction, pos.X)
	}
}

func TestBossDeathSequence(t *testing.T) {
	w := newTestWorld()
	id, boss, pos := spawnBoss(t, w, 2)
	pos.X, pos.Y = 300, 50
	boss.StartDying(pos.X, pos.Y)
	w.gs.Score = 2900

	s := NewBossSystem(w.em, w.gs, w.cfg, constRand(1), nil)

	s.Update()
	if math.Abs(pos.X-303) > 1e-9 || math.Abs(pos.Y-53) > 1e-9 {
		t.Errorf("jittered position = (%v, %v), want (303, 53)", pos.X, pos.Y)
	}
	if boss.Alpha >= 1 || boss.Alpha <= 0 {
		t.Errorf("alpha after one frame = %v", boss.Alpha)
	}

	for i := 1; i < 59; i++ {
		s.Update()
	}
	if boss.Phase != types.BossPhaseDying || w.gs.BossCount != 0 {
		t.Fatalf("boss resolved early: phase=%v count=%d", boss.Phase, w.gs.BossCount)
	}
	if got := count[*components.ProjectileComponent](w.em); got != 0 {
		t.Errorf("dying boss fired %d bullets", got)
	}

	s.Update()
	if boss.Phase != types.BossPhaseRemoved {
		t.Errorf("phase = %v, want removed", boss.Phase)
	}
	if w.gs.Score != 3900 || w.gs.BossCount != 1 {
		t.Errorf("score=%d bossCount=%d, want 3900/1", w.gs.Score, w.gs.BossCount)
	}
	if !w.em.IsMarkedForDestruction(id) {
		t.Error("boss entity should be marked for destruction")
	}
}

func TestThirdBossDefeatClearsGame(t *testing.T) {
	w := newTestWorld()
	_, boss, pos := spawnBoss(t, w, 2)
	boss.StartDying(pos.X, pos.Y)
	w.gs.BossCount = 2

	s := NewBossSystem(w.em, w.gs, w.cfg, constRand(0.5), nil)
	for i := 0; i < 60; i++ {
		s.Update()
	}
	if !w.gs.GameCleared {
		t.Error("GameCleared should be true after the third boss")
	}
}

func TestPatternVelocities(t *testing.T) {
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	t.Run("radial five", func(t *testing.T) {
		p := config.AttackPattern{Kind: types.AttackRadial, Count: 5, SpeedX: 1, SpeedY: 1, Drift: 1}
		v := PatternVelocities(p, 1234, nil)
		if len(v) != 5 {
			t.Fatalf("len = %d, want 5", len(v))
		}
		if !near(v[0].VX, 1) || !near(v[0].VY, 1) {
			t.Errorf("first shot = %+v, want (1, 1)", v[0])
		}
	})

	t.Run("rotating radial", func(t *testing.T) {
		p := config.AttackPattern{Kind: types.AttackRadial, Count: 6, SpeedX: 2, SpeedY: 2, Drift: 1, Rate: 0.02}
		t0 := math.Pi / 2 / 0.02
		v := PatternVelocities(p, t0, nil)
		if !near(v[0].VX, 0) || !near(v[0].VY, 3) {
			t.Errorf("first shot at quarter turn = %+v, want (0, 3)", v[0])
		}
	})

	t.Run("spiral", func(t *testing.T) {
		p := config.AttackPattern{Kind: types.AttackSpiral, SpeedX: 1.5, SpeedY: 1.5, Drift: 2, Rate: 0.01}
		v := PatternVelocities(p, 0, nil)
		if len(v) != 1 || !near(v[0].VX, 1.5) || !near(v[0].VY, 2) {
			t.Errorf("spiral at t=0 = %+v, want (1.5, 2)", v)
		}
	})

	t.Run("wave", func(t *testing.T) {
		p := config.AttackPattern{Kind: types.AttackWave, Count: 3, SpeedX: 2, SpeedY: 3, Rate: 0.01, Amplitude: 0.5}
		v := PatternVelocities(p, 0, nil)
		if len(v) != 3 {
			t.Fatalf("len = %d, want 3", len(v))
		}
		if !near(v[0].VX, 0) || !near(v[0].VY, 3) {
			t.Errorf("first wave shot = %+v, want (0, 3)", v[0])
		}
		for _, shot := range v {
			if shot.VY <= 0 {
				t.Errorf("wave shot %+v should move down", shot)
			}
		}
	})

	t.Run("spread center", func(t *testing.T) {
		p := config.AttackPattern{Kind: types.AttackSpread, SpeedX: 3, SpeedY: 4, Arc: 90}
		v := PatternVelocities(p, 0, constRand(0.5))
		if len(v) != 1 || !near(v[0].VX, 0) || !near(v[0].VY, 4) {
			t.Errorf("spread with draw 0.5 = %+v, want (0, 4)", v)
		}
	})

	t.Run("spread edge", func(t *testing.T) {
		p := config.AttackPattern{Kind: types.AttackSpread, SpeedX: 3, SpeedY: 4, Arc: 90}
		v := PatternVelocities(p, 0, constRand(0))
		want := math.Sin(-math.Pi/4) * 3
		if !near(v[0].VX, want) {
			t.Errorf("spread with draw 0: VX = %v, want %v", v[0].VX, want)
		}
	})
}
