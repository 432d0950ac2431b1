package config

import (
	"math"

	"github.com/gonewx/shmup/pkg/types"
)

// DefaultGameplay 返回内置默认参数
// 与 data/gameplay.yaml 保持一致（由测试保证）
func DefaultGameplay() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerConfig{
			Speed:          5,
			DiagonalFactor: 0.707,
			ShootCooldown:  10,
			BulletSpeed:    8,
			AutoFire:       false,
			InitialLives:   10,
		},
		Scoring: ScoringConfig{
			EnemyHit:     2,
			ObstacleHit:  1,
			ObstacleKill: 15,
			BossHit:      5,
			BossKill:     1000,
		},
		Spawn: SpawnConfig{
			EnemyChance:       0.02,
			ObstacleChance:    0.005,
			DestructibleRatio: 0.7,
			BulletMargin:      40,
		},
		Enemies: map[types.EnemyType]EnemyStats{
			types.EnemyNormal: {
				Speed: 2, Health: 1, FireDelay: 60, FireChance: 0.02, BulletSpeed: 3,
				Points: 10, MinScore: 0, Weight: 10, Color: MustColor("#ff0000"),
			},
			types.EnemyFast: {
				Speed: 4, Health: 1, FireDelay: 90, FireChance: 0.01, BulletSpeed: 4,
				Points: 20, MinScore: 300, Weight: 4, Color: MustColor("#ff8800"),
			},
			types.EnemyZigzag: {
				Speed: 1.5, Health: 2, FireDelay: 60, FireChance: 0.02, BulletSpeed: 3,
				Points: 30, MinScore: 600, Weight: 3, ZigzagSpeed: 2, ZigzagPeriod: 45,
				Color: MustColor("#ff44ff"),
			},
			types.EnemyTank: {
				Speed: 1, Health: 4, FireDelay: 45, FireChance: 0.03, BulletSpeed: 2.5,
				Points: 50, MinScore: 1000, Weight: 2, Color: MustColor("#aa2222"),
			},
		},
		Obstacles: ObstacleConfig{
			Speed:              1,
			DestructibleHealth: 3,
			DestructibleColor:  MustColor("#886644"),
			SolidColor:         MustColor("#666677"),
		},
		Boss: BossBehaviorConfig{
			EntryY:          50,
			PatrolSpeed:     0.5,
			TurnInterval:    120,
			PatternInterval: 180,
			DeathDuration:   60,
			DeathJitter:     3,
			DamageFlash:     10,
		},
		Bosses: []BossSpec{
			{
				Type: types.BossSnail, Name: "Snail", Health: 30, Speed: 1, ScoreGate: 100,
				Color: MustColor("#ccaa44"), Image: "assets/images/boss1.png",
				Patterns: []AttackPattern{
					{Kind: types.AttackStraight, Interval: 30, SpeedY: 2},
					{Kind: types.AttackSpiral, Interval: 25, SpeedX: 1.5, SpeedY: 1.5, Drift: 2, Rate: 0.01},
					{Kind: types.AttackRadial, Interval: 40, Count: 5, SpeedX: 1, SpeedY: 1, Drift: 1},
				},
			},
			{
				Type: types.BossKappa, Name: "Kappa", Health: 40, Speed: 1.5, ScoreGate: 1400,
				Color: MustColor("#44ff44"), Image: "assets/images/boss2.png",
				Patterns: []AttackPattern{
					{Kind: types.AttackStraight, Interval: 20, SpeedY: 4},
					{Kind: types.AttackWave, Interval: 25, Count: 3, SpeedX: 2, SpeedY: 3, Rate: 0.01, Amplitude: 0.5},
					{Kind: types.AttackRadial, Interval: 30, Count: 6, SpeedX: 2, SpeedY: 2, Drift: 1, Rate: 0.02},
				},
			},
			{
				Type: types.BossBear, Name: "Dancing Bear", Health: 50, Speed: 0.8, ScoreGate: 2700,
				Color: MustColor("#8b4513"), Image: "assets/images/boss3.png",
				Patterns: []AttackPattern{
					{Kind: types.AttackStraight, Interval: 15, SpeedY: 5},
					{Kind: types.AttackSpread, Interval: 20, SpeedX: 3, SpeedY: 4, Arc: 90},
					{Kind: types.AttackRadial, Interval: 25, Count: 8, SpeedX: 2, SpeedY: 2},
				},
			},
		},
		DamageText: DamageTextConfig{
			LifeTime:  60,
			RiseSpeed: 2,
			FadeRate:  0.016,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// ArcRadians 返回 spread 模式扇形角度（弧度）
func (p AttackPattern) ArcRadians() float64 {
	return p.Arc * math.Pi / 180
}
