package systems

import (
	"math"
	"testing"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/utils"
)

func TestApplyTouches(t *testing.T) {
	tests := []struct {
		name     string
		points   []utils.Point
		wantX    float64
		wantY    float64
		wantFire bool
	}{
		{"no touches", nil, 0, 0, false},
		{"shoot button", []utils.Point{{X: config.ShootButtonX, Y: config.ShootButtonY}}, 0, 0, true},
		{"joystick right", []utils.Point{{X: config.JoystickCenterX + 50, Y: config.JoystickCenterY}}, 1, 0, false},
		{"joystick half up", []utils.Point{{X: config.JoystickCenterX, Y: config.JoystickCenterY - 25}}, 0, -0.5, false},
		{"joystick clamped", []utils.Point{{X: config.JoystickCenterX, Y: config.JoystickCenterY - 200}}, 0, -1, false},
		{"right half ignored", []utils.Point{{X: 500, Y: 300}}, 0, 0, false},
		{
			"move and shoot",
			[]utils.Point{
				{X: config.ShootButtonX + 10, Y: config.ShootButtonY},
				{X: config.JoystickCenterX - 50, Y: config.JoystickCenterY},
			},
			-1, 0, true,
		},
		{
			"first joystick touch wins",
			[]utils.Point{
				{X: config.JoystickCenterX + 50, Y: config.JoystickCenterY},
				{X: config.JoystickCenterX - 50, Y: config.JoystickCenterY},
			},
			1, 0, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &game.InputState{TouchX: 0.3, TouchFire: true}
			ApplyTouches(state, tt.points)

			if math.Abs(state.TouchX-tt.wantX) > 1e-9 || math.Abs(state.TouchY-tt.wantY) > 1e-9 {
				t.Errorf("joystick = (%v, %v), want (%v, %v)", state.TouchX, state.TouchY, tt.wantX, tt.wantY)
			}
			if state.TouchFire != tt.wantFire {
				t.Errorf("fire = %v, want %v", state.TouchFire, tt.wantFire)
			}
		})
	}
}
