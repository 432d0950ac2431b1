package components

import (
	"image/color"

	"github.com/gonewx/shmup/pkg/types"
)

// ProjectileComponent 子弹
type ProjectileComponent struct {
	Owner types.ProjectileOwner // 发射方
	Color color.RGBA
}
