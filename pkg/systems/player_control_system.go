package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
)

// PlayerControlSystem 根据输入移动玩家并处理射击
type PlayerControlSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	cfg   *config.GameplayConfig
	sound game.SoundPlayer
}

// NewPlayerControlSystem 创建玩家控制系统
// sound 可以为 nil（无头运行）
func NewPlayerControlSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameplayConfig, sound game.SoundPlayer) *PlayerControlSystem {
	return &PlayerControlSystem{em: em, gs: gs, cfg: cfg, sound: sound}
}

// Update 处理一帧的移动和射击
func (s *PlayerControlSystem) Update(input game.InputSnapshot) {
	player, ok := findPlayer(s.em)
	if !ok {
		return
	}
	speed := s.cfg.Player.Speed
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, player.id); ok {
		speed = pc.Speed
	}

	dx, dy := Displacement(input.MoveX, input.MoveY, speed, s.cfg.Player.DiagonalFactor)
	player.pos.X = clamp(player.pos.X+dx, 0, config.FieldWidth-player.col.Width)
	player.pos.Y = clamp(player.pos.Y+dy, 0, config.FieldHeight-player.col.Height)

	if (input.Fire || s.cfg.Player.AutoFire) && s.gs.ShootCooldown <= 0 {
		entities.NewPlayerBullet(s.em, player.pos.X+player.col.Width/2, player.pos.Y, s.cfg.Player.BulletSpeed)
		s.gs.ShootCooldown = s.cfg.Player.ShootCooldown
		playSound(s.sound, game.SoundShoot)
	}
	if s.gs.ShootCooldown > 0 {
		s.gs.ShootCooldown--
	}
}

// Displacement 计算一帧的位移
// 两个轴都有输入时，每个轴乘以 diagonalFactor，使斜向速度与单轴速度大致相同
func Displacement(moveX, moveY, speed, diagonalFactor float64) (float64, float64) {
	dx := moveX * speed
	dy := moveY * speed
	if moveX != 0 && moveY != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}
	return dx, dy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// playSound 在 sound 不为 nil 时播放音效
func playSound(sound game.SoundPlayer, id game.SoundID) {
	if sound != nil {
		sound.PlaySound(id)
	}
}
