// validate_config 校验 gameplay YAML 文件并打印摘要
//
// 用法：
//
//	go run ./tools/validate_config data/gameplay.yaml
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/types"
)

func main() {
	path := config.GameplayConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameplayFile(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 校验通过\n", path)
	fmt.Printf("玩家:   速度 %.1f, 射击间隔 %d 帧, 残机 %d\n",
		cfg.Player.Speed, cfg.Player.ShootCooldown, cfg.Player.InitialLives)
	fmt.Printf("生成:   敌机 %.3f/帧, 障碍物 %.3f/帧\n", cfg.Spawn.EnemyChance, cfg.Spawn.ObstacleChance)

	fmt.Printf("敌机:\n")
	for _, t := range types.AllEnemyTypes {
		stats, ok := cfg.GetEnemyStats(t)
		if !ok {
			continue
		}
		fmt.Printf("  %-7s 血量 %d, 分数 %d, 解锁分数 %d, 权重 %d\n",
			t, stats.Health, stats.Points, stats.MinScore, stats.Weight)
	}

	fmt.Printf("Boss:\n")
	for i, boss := range cfg.Bosses {
		kinds := make([]string, 0, len(boss.Patterns))
		for _, p := range boss.Patterns {
			kinds = append(kinds, string(p.Kind))
		}
		fmt.Printf("  %d. %-13s 血量 %d, 登场分数 %d, 攻击 %v\n", i+1, boss.Name, boss.Health, boss.ScoreGate, kinds)
	}
}
