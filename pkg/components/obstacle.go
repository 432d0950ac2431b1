package components

import "github.com/gonewx/shmup/pkg/types"

// ObstacleComponent 下落的障碍物
type ObstacleComponent struct {
	Kind types.ObstacleKind
}
