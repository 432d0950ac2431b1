package systems

import (
	"log"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 把键盘和触控输入写入 game.InputState
type InputSystem struct {
	state *game.InputState
}

// NewInputSystem 创建输入系统
func NewInputSystem(state *game.InputState) *InputSystem {
	return &InputSystem{state: state}
}

// Update 读取本帧输入
// 窗口失去焦点时释放所有按键，避免角色一直移动
func (s *InputSystem) Update() {
	if !ebiten.IsFocused() {
		s.state.ClearKeys()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		s.state.Mobile = !s.state.Mobile
		log.Printf("[InputSystem] 移动端控制: %v", s.state.Mobile)
	}

	s.state.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	s.state.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	s.state.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	s.state.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	s.state.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)

	if s.state.Mobile {
		ApplyTouches(s.state, utils.ActivePointers())
	} else {
		s.state.TouchX, s.state.TouchY, s.state.TouchFire = 0, 0, false
	}
}

// ApplyTouches 根据触摸点更新虚拟摇杆和发射按钮
// 落在发射按钮内的触摸点按下发射；左半屏的触摸点驱动摇杆（取第一个）
func ApplyTouches(state *game.InputState, points []utils.Point) {
	state.TouchX, state.TouchY, state.TouchFire = 0, 0, false

	joystickSet := false
	for _, p := range points {
		if utils.InCircle(p.X, p.Y, config.ShootButtonX, config.ShootButtonY, config.ShootButtonRadius) {
			state.TouchFire = true
			continue
		}
		if joystickSet || p.X >= config.FieldWidth/2 {
			continue
		}
		state.TouchX, state.TouchY = utils.JoystickVector(
			p.X-config.JoystickCenterX, p.Y-config.JoystickCenterY, config.JoystickRadius)
		joystickSet = true
	}
}
