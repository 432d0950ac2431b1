package scenes

import (
	"github.com/gonewx/shmup/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene
