package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/game"
)

// scriptedRand 按顺序返回预设值，用完后返回 0.999（不会触发任何概率事件）
type scriptedRand struct {
	values []float64
	next   int
}

func (r *scriptedRand) Float64() float64 {
	if r.next >= len(r.values) {
		return 0.999
	}
	v := r.values[r.next]
	r.next++
	return v
}

// constRand 总是返回同一个值
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type testWorld struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	cfg *config.GameplayConfig
}

func newTestWorld() *testWorld {
	cfg := config.DefaultGameplay()
	gs := game.NewGameState(cfg.Player.InitialLives)
	gs.Started = true
	return &testWorld{em: ecs.NewEntityManager(), gs: gs, cfg: cfg}
}

// place 在指定位置放置一个碰撞盒实体
func (w *testWorld) place(x, y, width, height float64, extra ...interface{}) ecs.EntityID {
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	w.em.AddComponent(id, &components.CollisionComponent{Width: width, Height: height})
	for _, c := range extra {
		w.em.AddComponent(id, c)
	}
	return id
}

func count[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
