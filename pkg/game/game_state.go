package game

import "github.com/gonewx/shmup/pkg/config"

// GameState 存储一局游戏的全局状态
//
// 分数只增不减，残机只减不增（直到重新开始）；
// GameOver 与 GameCleared 互斥，同时成立时以 GameOver 为准。
type GameState struct {
	Score     int // 当前分数
	Lives     int // 剩余残机
	BossCount int // 已击败的 Boss 数量

	Started     bool
	GameOver    bool
	GameCleared bool

	ShootCooldown int     // 距离下次可射击的帧数
	Frame         int     // 开始后经过的模拟帧数
	BackgroundY   float64 // 背景滚动偏移（仅用于绘制）

	initialLives int
}

// NewGameState 创建未开始的游戏状态
func NewGameState(initialLives int) *GameState {
	gs := &GameState{initialLives: initialLives}
	gs.Reset()
	return gs
}

// Reset 恢复到初始值（分数 0、残机满、标志位清空、未开始）
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.Lives = gs.initialLives
	gs.BossCount = 0
	gs.Started = false
	gs.GameOver = false
	gs.GameCleared = false
	gs.ShootCooldown = 0
	gs.Frame = 0
	gs.BackgroundY = 0
}

// SetInitialLives 修改重新开始时的残机数（热重载配置时使用）
func (gs *GameState) SetInitialLives(lives int) {
	gs.initialLives = lives
}

// AddScore 增加分数，负数被忽略
func (gs *GameState) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	gs.Score += amount
}

// LoseLife 扣除一条残机，残机归零时进入 GameOver
// 返回是否真的扣除了残机
func (gs *GameState) LoseLife() bool {
	if gs.Lives <= 0 {
		return false
	}
	gs.Lives--
	if gs.Lives == 0 {
		gs.GameOver = true
	}
	return true
}

// DefeatBoss 记录击败一个 Boss，达到要求数量时通关
func (gs *GameState) DefeatBoss() {
	gs.BossCount++
	if gs.BossCount >= config.RequiredBossCount {
		gs.GameCleared = true
	}
}

// IsTerminal 游戏是否已结束（失败或通关）
func (gs *GameState) IsTerminal() bool {
	return gs.GameOver || gs.GameCleared
}

// IsRunning 模拟是否应该推进
func (gs *GameState) IsRunning() bool {
	return gs.Started && !gs.IsTerminal()
}

// ResolveTerminal 帧末处理结束标志：GameOver 优先于 GameCleared
func (gs *GameState) ResolveTerminal() {
	if gs.GameOver {
		gs.GameCleared = false
	}
}

// SimulationMillis 返回开始后经过的模拟毫秒数
func (gs *GameState) SimulationMillis() float64 {
	return float64(gs.Frame) * config.MillisPerTick
}
