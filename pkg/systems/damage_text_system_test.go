package systems

import (
	"math"
	"testing"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
)

func TestDamageTextRisesAndExpires(t *testing.T) {
	w := newTestWorld()
	id := entities.NewDamageText(w.em, 100, 200, 1, w.cfg.DamageText.LifeTime)
	s := NewDamageTextSystem(w.em, w.cfg)

	s.Update()
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	dt, _ := ecs.GetComponent[*components.DamageTextComponent](w.em, id)
	if pos.Y != 198 {
		t.Errorf("y = %v, want 198", pos.Y)
	}
	if math.Abs(dt.Alpha-0.984) > 1e-9 {
		t.Errorf("alpha = %v, want 0.984", dt.Alpha)
	}

	for i := 1; i < 59; i++ {
		s.Update()
	}
	if w.em.IsMarkedForDestruction(id) {
		t.Fatal("damage text removed before its lifetime ended")
	}
	s.Update()
	if !w.em.IsMarkedForDestruction(id) {
		t.Error("damage text should be removed after 60 frames")
	}
	if dt.Alpha < 0 {
		t.Errorf("alpha = %v, should not go negative", dt.Alpha)
	}
}
