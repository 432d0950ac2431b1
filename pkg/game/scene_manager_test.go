package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type countingScene struct {
	updates int
}

func (s *countingScene) Update(deltaTime float64) { s.updates++ }
func (s *countingScene) Draw(screen *ebiten.Image) {}

func TestSceneManagerSwitch(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60) // 没有场景时不做任何事

	first := &countingScene{}
	second := &countingScene{}

	sm.SwitchTo(first)
	sm.Update(1.0 / 60)
	sm.SwitchTo(second)
	sm.Update(1.0 / 60)
	sm.Update(1.0 / 60)

	if first.updates != 1 || second.updates != 2 {
		t.Errorf("updates = %d/%d, want 1/2", first.updates, second.updates)
	}
	if sm.GetCurrentScene() != second {
		t.Error("GetCurrentScene() should return the last scene")
	}
}
