package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/shmup/pkg/app"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/embedded"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	configPath  = flag.String("config", "", "覆盖参数文件（YAML），为空则使用内置参数")
	watch       = flag.Bool("watch", false, "监听 -config 文件变化并热重载")
	forceMobile = flag.Bool("mobile", false, "显示触控控件（也可以按 F2 切换）")
	seed        = flag.Uint64("seed", 0, "随机种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		Watch:       *watch,
		ForceMobile: *forceMobile,
		Seed:        *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Vertical Shooter")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
