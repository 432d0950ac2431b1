package systems

import (
	"testing"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/types"
)

func TestMovementSystem(t *testing.T) {
	w := newTestWorld()
	id := w.place(10, 10, 4, 10, &components.VelocityComponent{VX: 1.5, VY: -8})

	NewMovementSystem(w.em).Update()

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if pos.X != 11.5 || pos.Y != 2 {
		t.Errorf("position = (%v, %v), want (11.5, 2)", pos.X, pos.Y)
	}
}

func TestEnemyFiresAfterDelay(t *testing.T) {
	w := newTestWorld()
	id, _ := entities.NewEnemy(w.em, w.cfg, types.EnemyNormal, 100)
	s := NewEnemyBehaviorSystem(w.em, constRand(0))

	for i := 0; i < 60; i++ {
		s.Update()
	}
	if got := count[*components.ProjectileComponent](w.em); got != 0 {
		t.Fatalf("enemy fired before delay: %d bullets", got)
	}

	s.Update()
	if got := count[*components.ProjectileComponent](w.em); got != 1 {
		t.Fatalf("bullets after delay = %d, want 1", got)
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
	if enemy.ShootTimer != 0 {
		t.Errorf("ShootTimer = %d, want reset to 0", enemy.ShootTimer)
	}

	bullets := ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, bullets[0])
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, bullets[0])
	if proj.Owner != types.OwnerEnemy || vel.VY != 3 {
		t.Errorf("enemy bullet owner=%v VY=%v, want enemy/3", proj.Owner, vel.VY)
	}
}

func TestEnemyDoesNotFireWhenChanceFails(t *testing.T) {
	w := newTestWorld()
	entities.NewEnemy(w.em, w.cfg, types.EnemyNormal, 100)
	s := NewEnemyBehaviorSystem(w.em, constRand(0.5))

	for i := 0; i < 200; i++ {
		s.Update()
	}
	if got := count[*components.ProjectileComponent](w.em); got != 0 {
		t.Errorf("bullets = %d, want 0 with fireChance 0.02 and draw 0.5", got)
	}
}

func TestZigzagEnemySteers(t *testing.T) {
	w := newTestWorld()
	id, _ := entities.NewEnemy(w.em, w.cfg, types.EnemyZigzag, 300)
	s := NewEnemyBehaviorSystem(w.em, constRand(0.999))

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)

	s.Update()
	if vel.VX != 2 {
		t.Fatalf("VX = %v, want 2", vel.VX)
	}
	for i := 1; i < enemy.ZigzagPeriod; i++ {
		s.Update()
	}
	if vel.VX != -2 {
		t.Errorf("VX after one period = %v, want -2", vel.VX)
	}

	// 在左边缘强制向右
	pos.X = 0
	s.Update()
	if vel.VX != 2 {
		t.Errorf("VX at left edge = %v, want 2", vel.VX)
	}
}
