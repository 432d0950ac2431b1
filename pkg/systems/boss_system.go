package systems

import (
	"log"
	"math"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/types"
)

// BossSystem 推进 Boss 状态机
//
//	Entering: 下降到 EntryY 后切换到 Active
//	Active:   左右巡逻，按当前攻击模式开火，每 PatternInterval 帧切换模式
//	Dying:    淡出并抖动 DeathDuration 帧
//	Removed:  结算击破分数、计数并删除实体
type BossSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	cfg   *config.GameplayConfig
	rand  RandSource
	sound game.SoundPlayer
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameplayConfig, rand RandSource, sound game.SoundPlayer) *BossSystem {
	return &BossSystem{em: em, gs: gs, cfg: cfg, rand: rand, sound: sound}
}

// Update 更新当前 Boss（最多一个）
func (s *BossSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.BossComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if boss.DamageFlash > 0 {
			boss.DamageFlash--
		}

		switch boss.Phase {
		case types.BossPhaseEntering:
			s.updateEntering(boss, pos)
		case types.BossPhaseActive:
			s.updateActive(boss, pos)
		case types.BossPhaseDying:
			s.updateDying(id, boss, pos)
		}
	}
}

func (s *BossSystem) updateEntering(boss *components.BossComponent, pos *components.PositionComponent) {
	pos.Y += boss.EntrySpeed
	if pos.Y >= s.cfg.Boss.EntryY {
		pos.Y = s.cfg.Boss.EntryY
		boss.Phase = types.BossPhaseActive
		log.Printf("[BossSystem] %s 进入战斗", boss.Name)
	}
}

func (s *BossSystem) updateActive(boss *components.BossComponent, pos *components.PositionComponent) {
	tuning := s.cfg.Boss

	// 巡逻
	boss.MoveTimer++
	if boss.MoveTimer > tuning.TurnInterval {
		boss.Direction = -boss.Direction
		boss.MoveTimer = 0
	}
	pos.X += boss.Direction * tuning.PatrolSpeed
	maxX := config.FieldWidth - config.BossWidth
	if pos.X <= 0 {
		pos.X = 0
		boss.Direction = 1
	} else if pos.X >= maxX {
		pos.X = maxX
		boss.Direction = -1
	}

	spec := s.cfg.BossAt(boss.Index)
	if spec == nil {
		return
	}

	// 攻击模式切换与受伤无关，只看时间
	boss.PatternTimer++
	boss.ShootTimer++
	if boss.PatternTimer > tuning.PatternInterval {
		boss.AttackPattern = (boss.AttackPattern + 1) % len(spec.Patterns)
		boss.PatternTimer = 0
	}
	if boss.AttackPattern >= len(spec.Patterns) {
		boss.AttackPattern = 0
	}

	pattern := spec.Patterns[boss.AttackPattern]
	if boss.ShootTimer > pattern.Interval {
		s.fire(pattern, spec, pos)
		boss.ShootTimer = 0
	}
}

// fire 按攻击模式从 Boss 底边中央发射子弹
func (s *BossSystem) fire(pattern config.AttackPattern, spec *config.BossSpec, pos *components.PositionComponent) {
	originX := pos.X + config.BossWidth/2
	originY := pos.Y + config.BossHeight
	color := spec.Color.RGBA()

	for _, v := range PatternVelocities(pattern, s.gs.SimulationMillis(), s.rand) {
		entities.NewEnemyBullet(s.em, originX, originY, v.VX, v.VY, color)
	}
}

func (s *BossSystem) updateDying(id ecs.EntityID, boss *components.BossComponent, pos *components.PositionComponent) {
	tuning := s.cfg.Boss

	boss.DeathTimer++
	boss.Alpha = 1 - float64(boss.DeathTimer)/float64(tuning.DeathDuration)
	if boss.Alpha < 0 {
		boss.Alpha = 0
	}
	pos.X = boss.AnchorX + (s.rand.Float64()*2-1)*tuning.DeathJitter
	pos.Y = boss.AnchorY + (s.rand.Float64()*2-1)*tuning.DeathJitter

	if boss.DeathTimer < tuning.DeathDuration {
		return
	}

	boss.Phase = types.BossPhaseRemoved
	s.gs.AddScore(s.cfg.Scoring.BossKill)
	s.gs.DefeatBoss()
	s.em.DestroyEntity(id)
	playSound(s.sound, game.SoundBossDown)
	log.Printf("[BossSystem] %s 被击破 (已击破 %d 个, 分数 %d)", boss.Name, s.gs.BossCount, s.gs.Score)
}

// PatternVelocities 计算一次开火的所有子弹速度
// t 为模拟毫秒；spread 模式从 rand 抽取一次角度
func PatternVelocities(p config.AttackPattern, t float64, rand RandSource) []components.VelocityComponent {
	switch p.Kind {
	case types.AttackStraight:
		return []components.VelocityComponent{{VX: 0, VY: p.SpeedY}}

	case types.AttackSpiral:
		a := t * p.Rate
		return []components.VelocityComponent{{VX: math.Cos(a) * p.SpeedX, VY: math.Sin(a)*p.SpeedY + p.Drift}}

	case types.AttackRadial:
		out := make([]components.VelocityComponent, 0, p.Count)
		for i := 0; i < p.Count; i++ {
			a := t*p.Rate + 2*math.Pi*float64(i)/float64(p.Count)
			out = append(out, components.VelocityComponent{VX: math.Cos(a) * p.SpeedX, VY: math.Sin(a)*p.SpeedY + p.Drift})
		}
		return out

	case types.AttackWave:
		out := make([]components.VelocityComponent, 0, p.Count)
		for i := 0; i < p.Count; i++ {
			a := math.Sin(t*p.Rate+float64(i)) * p.Amplitude
			out = append(out, components.VelocityComponent{VX: math.Sin(a) * p.SpeedX, VY: math.Cos(a) * p.SpeedY})
		}
		return out

	case types.AttackSpread:
		a := (rand.Float64() - 0.5) * p.ArcRadians()
		return []components.VelocityComponent{{VX: math.Sin(a) * p.SpeedX, VY: math.Cos(a) * p.SpeedY}}
	}
	return nil
}
