// soak 无窗口运行模拟，用脚本化的机器人输入检查不变量
//
// 用法：
//
//	go run ./cmd/soak -frames 36000 -seed 42
//	go run ./cmd/soak -config my_tuning.yaml -lives 100 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/scenes"
)

var (
	frames     = flag.Int("frames", 36000, "最多运行的帧数")
	seed       = flag.Uint64("seed", 1, "随机种子")
	configPath = flag.String("config", "", "参数文件（为空则使用默认参数）")
	lives      = flag.Int("lives", 0, "覆盖初始残机（0 表示使用配置值）")
	verbose    = flag.Bool("verbose", false, "显示模拟日志")
)

// botInput 简单的机器人：持续射击，左右来回移动，偶尔上下移动
func botInput(frame int) game.InputSnapshot {
	return game.InputSnapshot{
		MoveX: float64((frame/90)%3 - 1),
		MoveY: float64((frame/240)%3 - 1),
		Fire:  true,
	}
}

func loadConfig() (*config.GameplayConfig, error) {
	if *configPath == "" {
		return config.DefaultGameplay(), nil
	}
	return config.LoadGameplayFile(*configPath)
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("❌ 参数加载失败: %v\n", err)
		os.Exit(1)
	}
	if *lives > 0 {
		cfg.Player.InitialLives = *lives
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	sim, err := scenes.NewSimulation(cfg, rng, nil)
	if err != nil {
		fmt.Printf("❌ 模拟初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := sim.Start(); err != nil {
		fmt.Printf("❌ 开始游戏失败: %v\n", err)
		os.Exit(1)
	}

	gs := sim.State()
	violations := 0
	prevScore, prevLives, prevBosses := gs.Score, gs.Lives, gs.BossCount
	frame := 0
	for ; frame < *frames && gs.IsRunning(); frame++ {
		sim.Tick(botInput(frame))

		switch {
		case gs.Score < prevScore:
			fmt.Printf("❌ 帧 %d: 分数减少 %d -> %d\n", frame, prevScore, gs.Score)
			violations++
		case gs.Lives > prevLives || gs.Lives < 0:
			fmt.Printf("❌ 帧 %d: 残机异常 %d -> %d\n", frame, prevLives, gs.Lives)
			violations++
		case gs.BossCount < prevBosses:
			fmt.Printf("❌ 帧 %d: Boss 计数减少\n", frame)
			violations++
		case sim.BossCount() > 1:
			fmt.Printf("❌ 帧 %d: 场上有 %d 个 Boss\n", frame, sim.BossCount())
			violations++
		case gs.GameOver && gs.GameCleared:
			fmt.Printf("❌ 帧 %d: GameOver 与通关同时成立\n", frame)
			violations++
		}
		prevScore, prevLives, prevBosses = gs.Score, gs.Lives, gs.BossCount
	}

	result := "进行中"
	switch {
	case gs.GameOver:
		result = "GameOver"
	case gs.GameCleared:
		result = "通关"
	}

	fmt.Printf("帧数:   %d\n", frame)
	fmt.Printf("结果:   %s\n", result)
	fmt.Printf("分数:   %d\n", gs.Score)
	fmt.Printf("残机:   %d\n", gs.Lives)
	fmt.Printf("Boss:   %d / %d\n", gs.BossCount, config.RequiredBossCount)
	fmt.Printf("实体数: %d\n", sim.EntityManager().Count())

	if violations > 0 {
		fmt.Printf("❌ 发现 %d 处不变量违反\n", violations)
		os.Exit(1)
	}
	fmt.Printf("✅ 不变量全部成立\n")
}
