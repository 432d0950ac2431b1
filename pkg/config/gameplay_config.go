package config

import (
	"fmt"
	"os"

	"github.com/gonewx/shmup/pkg/embedded"
	"github.com/gonewx/shmup/pkg/types"
	"gopkg.in/yaml.v3"
)

// GameplayConfigPath 内嵌游戏参数文件路径
const GameplayConfigPath = "data/gameplay.yaml"

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`          // 每帧移动像素
	DiagonalFactor float64 `yaml:"diagonalFactor"` // 斜向移动时每个轴的缩放（约 1/√2）
	ShootCooldown  int     `yaml:"shootCooldown"`  // 两次射击之间的帧数
	BulletSpeed    float64 `yaml:"bulletSpeed"`    // 玩家子弹向上速度（正值）
	AutoFire       bool    `yaml:"autoFire"`       // 是否自动射击
	InitialLives   int     `yaml:"initialLives"`   // 初始残机
}

// ScoringConfig 得分参数
type ScoringConfig struct {
	EnemyHit     int `yaml:"enemyHit"`     // 击中但未击毁敌机
	ObstacleHit  int `yaml:"obstacleHit"`  // 击中但未击毁可破坏障碍物
	ObstacleKill int `yaml:"obstacleKill"` // 击毁可破坏障碍物
	BossHit      int `yaml:"bossHit"`      // 每次击中 Boss
	BossKill     int `yaml:"bossKill"`     // Boss 死亡演出结束后结算
}

// SpawnConfig 生成参数
type SpawnConfig struct {
	EnemyChance       float64 `yaml:"enemyChance"`       // 每帧生成敌机的概率
	ObstacleChance    float64 `yaml:"obstacleChance"`    // 每帧生成障碍物的概率
	DestructibleRatio float64 `yaml:"destructibleRatio"` // 障碍物为可破坏类型的概率
	BulletMargin      float64 `yaml:"bulletMargin"`      // 敌方子弹离开战场多远后删除
}

// EnemyStats 单个敌机类型的属性
type EnemyStats struct {
	Speed        float64 `yaml:"speed"`                  // 下落速度
	Health       int     `yaml:"health"`                 // 血量
	FireDelay    int     `yaml:"fireDelay"`              // 射击计时器超过该帧数后才可能开火
	FireChance   float64 `yaml:"fireChance"`             // 满足 FireDelay 后每帧开火概率
	BulletSpeed  float64 `yaml:"bulletSpeed"`            // 子弹向下速度
	Points       int     `yaml:"points"`                 // 击毁得分
	MinScore     int     `yaml:"minScore"`               // 解锁该类型所需分数
	Weight       int     `yaml:"weight"`                 // 随机选择权重
	ZigzagSpeed  float64 `yaml:"zigzagSpeed,omitempty"`  // 水平摆动速度（0 表示不摆动）
	ZigzagPeriod int     `yaml:"zigzagPeriod,omitempty"` // 摆动换向周期（帧）
	Color        Color   `yaml:"color"`                  // 机体颜色
}

// ObstacleConfig 障碍物参数
type ObstacleConfig struct {
	Speed              float64 `yaml:"speed"`              // 下落速度
	DestructibleHealth int     `yaml:"destructibleHealth"` // 可破坏障碍物血量
	DestructibleColor  Color   `yaml:"destructibleColor"`
	SolidColor         Color   `yaml:"solidColor"`
}

// AttackPattern Boss 的一种攻击模式
// 弹道公式见 systems.BossSystem，t 为模拟毫秒
type AttackPattern struct {
	Kind      types.AttackKind `yaml:"kind"`
	Interval  int              `yaml:"interval"`            // 射击计时器超过该帧数时开火
	Count     int              `yaml:"count,omitempty"`     // 每次开火的子弹数（radial / wave）
	SpeedX    float64          `yaml:"speedX,omitempty"`    // 水平分量系数
	SpeedY    float64          `yaml:"speedY"`              // 垂直分量系数
	Drift     float64          `yaml:"drift,omitempty"`     // 附加的向下速度
	Rate      float64          `yaml:"rate,omitempty"`      // 角度随时间变化率（弧度/毫秒）
	Amplitude float64          `yaml:"amplitude,omitempty"` // wave 摆动幅度（弧度）
	Arc       float64          `yaml:"arc,omitempty"`       // spread 扇形总角度（度）
}

// BossSpec 单个 Boss 的配置
type BossSpec struct {
	Type      types.BossType  `yaml:"type"`
	Name      string          `yaml:"name"`
	Health    int             `yaml:"health"`
	Speed     float64         `yaml:"speed"`     // 登场下降速度
	ScoreGate int             `yaml:"scoreGate"` // 出现所需分数
	Color     Color           `yaml:"color"`     // 图片缺失时的填充色，同时是子弹颜色
	Image     string          `yaml:"image"`     // 图片资源路径（可缺失）
	Patterns  []AttackPattern `yaml:"patterns"`
}

// BossBehaviorConfig 所有 Boss 共用的行为参数
type BossBehaviorConfig struct {
	EntryY          float64 `yaml:"entryY"`          // 登场结束的Y坐标
	PatrolSpeed     float64 `yaml:"patrolSpeed"`     // 左右巡逻速度
	TurnInterval    int     `yaml:"turnInterval"`    // 巡逻换向周期（帧）
	PatternInterval int     `yaml:"patternInterval"` // 攻击模式切换周期（帧）
	DeathDuration   int     `yaml:"deathDuration"`   // 死亡淡出时长（帧）
	DeathJitter     float64 `yaml:"deathJitter"`     // 死亡时位置抖动幅度（像素）
	DamageFlash     int     `yaml:"damageFlash"`     // 受击闪烁帧数
}

// DamageTextConfig 伤害数字参数
type DamageTextConfig struct {
	LifeTime  int     `yaml:"lifeTime"`  // 显示帧数
	RiseSpeed float64 `yaml:"riseSpeed"` // 每帧上升像素
	FadeRate  float64 `yaml:"fadeRate"`  // 每帧透明度衰减
}

// AudioConfig 音效参数
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 ~ 1.0
}

// GameplayConfig 游戏参数文件结构（data/gameplay.yaml）
type GameplayConfig struct {
	Player     PlayerConfig                   `yaml:"player"`
	Scoring    ScoringConfig                  `yaml:"scoring"`
	Spawn      SpawnConfig                    `yaml:"spawn"`
	Enemies    map[types.EnemyType]EnemyStats `yaml:"enemies"`
	Obstacles  ObstacleConfig                 `yaml:"obstacles"`
	Boss       BossBehaviorConfig             `yaml:"boss"`
	Bosses     []BossSpec                     `yaml:"bosses"`
	DamageText DamageTextConfig               `yaml:"damageText"`
	Audio      AudioConfig                    `yaml:"audio"`
}

// RequiredBossCount 通关所需击败的 Boss 数量
const RequiredBossCount = 3

// patternsPerBoss 每个 Boss 的攻击模式数量
const patternsPerBoss = 3

// LoadGameplay 从内嵌资源加载游戏参数
func LoadGameplay(path string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}
	cfg, err := ParseGameplay(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameplayFile 从磁盘加载游戏参数（-config 覆盖文件）
func LoadGameplayFile(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file %s: %w", path, err)
	}
	cfg, err := ParseGameplay(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameplay 解析并验证 YAML 数据
func ParseGameplay(data []byte) (*GameplayConfig, error) {
	var cfg GameplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay YAML: %w", err)
	}
	if err := validateGameplay(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateGameplay 验证配置的有效性
func validateGameplay(cfg *GameplayConfig) error {
	p := cfg.Player
	if p.Speed <= 0 {
		return fmt.Errorf("player.speed must be > 0, got %v", p.Speed)
	}
	if p.DiagonalFactor <= 0 || p.DiagonalFactor > 1 {
		return fmt.Errorf("player.diagonalFactor must be in (0, 1], got %v", p.DiagonalFactor)
	}
	if p.ShootCooldown < 1 {
		return fmt.Errorf("player.shootCooldown must be >= 1, got %d", p.ShootCooldown)
	}
	if p.BulletSpeed <= 0 {
		return fmt.Errorf("player.bulletSpeed must be > 0, got %v", p.BulletSpeed)
	}
	if p.InitialLives < 1 {
		return fmt.Errorf("player.initialLives must be >= 1, got %d", p.InitialLives)
	}

	s := cfg.Scoring
	if s.EnemyHit < 0 || s.ObstacleHit < 0 || s.ObstacleKill < 0 || s.BossHit < 0 || s.BossKill < 0 {
		return fmt.Errorf("scoring values cannot be negative")
	}

	if err := validateProbability("spawn.enemyChance", cfg.Spawn.EnemyChance); err != nil {
		return err
	}
	if err := validateProbability("spawn.obstacleChance", cfg.Spawn.ObstacleChance); err != nil {
		return err
	}
	if err := validateProbability("spawn.destructibleRatio", cfg.Spawn.DestructibleRatio); err != nil {
		return err
	}
	if cfg.Spawn.BulletMargin < 0 {
		return fmt.Errorf("spawn.bulletMargin cannot be negative, got %v", cfg.Spawn.BulletMargin)
	}

	if err := validateEnemies(cfg.Enemies); err != nil {
		return err
	}

	if cfg.Obstacles.Speed <= 0 {
		return fmt.Errorf("obstacles.speed must be > 0, got %v", cfg.Obstacles.Speed)
	}
	if cfg.Obstacles.DestructibleHealth < 1 {
		return fmt.Errorf("obstacles.destructibleHealth must be >= 1, got %d", cfg.Obstacles.DestructibleHealth)
	}

	b := cfg.Boss
	if b.PatrolSpeed <= 0 || b.TurnInterval < 1 || b.PatternInterval < 1 || b.DeathDuration < 1 {
		return fmt.Errorf("boss: patrolSpeed, turnInterval, patternInterval and deathDuration must be positive")
	}
	if b.DeathJitter < 0 || b.DamageFlash < 0 {
		return fmt.Errorf("boss: deathJitter and damageFlash cannot be negative")
	}

	if err := validateBosses(cfg.Bosses); err != nil {
		return err
	}

	if cfg.DamageText.LifeTime < 1 {
		return fmt.Errorf("damageText.lifeTime must be >= 1, got %d", cfg.DamageText.LifeTime)
	}

	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %v", cfg.Audio.Volume)
	}

	return nil
}

func validateProbability(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
	}
	return nil
}

// validateEnemies 验证敌机表
// 基础类型 normal 必须存在、从 0 分解锁，且权重不低于任何其他类型
func validateEnemies(enemies map[types.EnemyType]EnemyStats) error {
	if len(enemies) == 0 {
		return fmt.Errorf("enemies cannot be empty")
	}

	base, ok := enemies[types.EnemyNormal]
	if !ok {
		return fmt.Errorf("enemies must define %q", types.EnemyNormal)
	}
	if base.MinScore != 0 {
		return fmt.Errorf("enemy %s: minScore must be 0, got %d", types.EnemyNormal, base.MinScore)
	}

	for enemyType, stats := range enemies {
		if !enemyType.IsValid() {
			return fmt.Errorf("unknown enemy type %q", enemyType)
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be > 0, got %v", enemyType, stats.Speed)
		}
		if stats.Health < 1 {
			return fmt.Errorf("enemy %s: health must be >= 1, got %d", enemyType, stats.Health)
		}
		if stats.FireDelay < 0 {
			return fmt.Errorf("enemy %s: fireDelay cannot be negative, got %d", enemyType, stats.FireDelay)
		}
		if err := validateProbability(fmt.Sprintf("enemy %s: fireChance", enemyType), stats.FireChance); err != nil {
			return err
		}
		if stats.Points < 0 || stats.MinScore < 0 {
			return fmt.Errorf("enemy %s: points and minScore cannot be negative", enemyType)
		}
		if stats.Weight < 1 {
			return fmt.Errorf("enemy %s: weight must be >= 1, got %d", enemyType, stats.Weight)
		}
		if stats.Weight > base.Weight {
			return fmt.Errorf("enemy %s: weight %d exceeds base type weight %d", enemyType, stats.Weight, base.Weight)
		}
		if stats.ZigzagSpeed > 0 && stats.ZigzagPeriod < 1 {
			return fmt.Errorf("enemy %s: zigzagPeriod must be >= 1 when zigzagSpeed is set", enemyType)
		}
	}
	return nil
}

// validateBosses 验证 Boss 列表
// 必须正好 3 个，出现分数严格递增，每个 Boss 3 种攻击模式
func validateBosses(bosses []BossSpec) error {
	if len(bosses) != RequiredBossCount {
		return fmt.Errorf("bosses must contain exactly %d entries, got %d", RequiredBossCount, len(bosses))
	}

	prevGate := -1
	for i, boss := range bosses {
		if boss.Type == "" {
			return fmt.Errorf("bosses[%d]: type cannot be empty", i)
		}
		if boss.Health < 1 {
			return fmt.Errorf("boss %s: health must be >= 1, got %d", boss.Type, boss.Health)
		}
		if boss.Speed <= 0 {
			return fmt.Errorf("boss %s: speed must be > 0, got %v", boss.Type, boss.Speed)
		}
		if boss.ScoreGate <= prevGate {
			return fmt.Errorf("boss %s: scoreGate %d must be greater than previous gate %d", boss.Type, boss.ScoreGate, prevGate)
		}
		prevGate = boss.ScoreGate

		if len(boss.Patterns) != patternsPerBoss {
			return fmt.Errorf("boss %s: must define exactly %d patterns, got %d", boss.Type, patternsPerBoss, len(boss.Patterns))
		}
		for j, pattern := range boss.Patterns {
			if !pattern.Kind.IsValid() {
				return fmt.Errorf("boss %s pattern %d: unknown kind %q", boss.Type, j, pattern.Kind)
			}
			if pattern.Interval < 1 {
				return fmt.Errorf("boss %s pattern %d: interval must be >= 1, got %d", boss.Type, j, pattern.Interval)
			}
			if (pattern.Kind == types.AttackRadial || pattern.Kind == types.AttackWave) && pattern.Count < 1 {
				return fmt.Errorf("boss %s pattern %d: %s requires count >= 1", boss.Type, j, pattern.Kind)
			}
		}
	}
	return nil
}

// GetEnemyStats 获取指定敌机类型的属性
// 如果类型不存在，返回 nil 和 false
func (c *GameplayConfig) GetEnemyStats(enemyType types.EnemyType) (*EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// UnlockedEnemyTypes 返回当前分数下可生成的敌机类型（按解锁顺序）
func (c *GameplayConfig) UnlockedEnemyTypes(score int) []types.EnemyType {
	unlocked := make([]types.EnemyType, 0, len(c.Enemies))
	for _, enemyType := range types.AllEnemyTypes {
		stats, ok := c.Enemies[enemyType]
		if !ok {
			continue
		}
		if score >= stats.MinScore {
			unlocked = append(unlocked, enemyType)
		}
	}
	return unlocked
}

// BossAt 返回第 index 个 Boss（0 起），越界返回 nil
func (c *GameplayConfig) BossAt(index int) *BossSpec {
	if index < 0 || index >= len(c.Bosses) {
		return nil
	}
	return &c.Bosses[index]
}
