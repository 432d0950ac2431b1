package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/ecs"
)

// overlaps 检查两个轴对齐碰撞盒是否重叠
// 碰撞盒左上角为实体位置，边缘相接不算重叠
func overlaps(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	return pos1.X < pos2.X+col2.Width &&
		pos1.X+col1.Width > pos2.X &&
		pos1.Y < pos2.Y+col2.Height &&
		pos1.Y+col1.Height > pos2.Y
}

// body 实体的位置与碰撞盒
type body struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	col *components.CollisionComponent
}

func (b body) overlaps(other body) bool {
	return overlaps(b.pos, b.col, other.pos, other.col)
}

// bodiesWith 收集拥有位置、碰撞盒以及组件 T 的实体（按ID升序）
func bodiesWith[T any](em *ecs.EntityManager) []body {
	ids := ecs.GetEntitiesWith3[T, *components.PositionComponent, *components.CollisionComponent](em)
	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		bodies = append(bodies, body{id: id, pos: pos, col: col})
	}
	return bodies
}

// findPlayer 返回玩家实体，不存在时 ok 为 false
func findPlayer(em *ecs.EntityManager) (body, bool) {
	players := bodiesWith[*components.PlayerComponent](em)
	if len(players) == 0 {
		return body{}, false
	}
	return players[0], true
}
