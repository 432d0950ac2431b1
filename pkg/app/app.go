// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/scenes"
	"github.com/gonewx/shmup/pkg/utils"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖参数文件（为空则只使用内置的 data/gameplay.yaml）
	ConfigPath string
	// Watch 监听 ConfigPath 的变化并热重载
	Watch bool
	// ForceMobile 强制显示触控控件
	ForceMobile bool
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	watcher                  *config.Watcher
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := loadGameplay(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var watcher *config.Watcher
	if cfg.Watch {
		if cfg.ConfigPath == "" {
			return nil, fmt.Errorf("-watch requires a config file")
		}
		watcher, err = config.NewWatcher(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置文件监听失败: %w", err)
		}
		log.Printf("[Config] 监听 %s 的变化", cfg.ConfigPath)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)
	audioManager := game.NewAudioManager(audioContext, gameplay.Audio)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	simulation, err := scenes.NewSimulation(gameplay, rng, audioManager)
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return nil, fmt.Errorf("模拟初始化失败: %w", err)
	}

	resourceManager := game.NewResourceManager()
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(resourceManager, audioManager, simulation, scenes.GameSceneOptions{
		Watcher:      watcher,
		OverridePath: cfg.ConfigPath,
		Mobile:       cfg.ForceMobile || utils.IsMobile(),
	}))

	log.Printf("[App] 初始化完成 (seed=%d)", seed)
	return &App{
		sceneManager: sceneManager,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameplay 加载内置参数，指定了覆盖文件时改为加载该文件
func loadGameplay(overridePath string) (*config.GameplayConfig, error) {
	if overridePath != "" {
		cfg, err := config.LoadGameplayFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("参数文件加载失败: %w", err)
		}
		log.Printf("[Config] 加载覆盖参数: %s", overridePath)
		return cfg, nil
	}

	cfg, err := config.LoadGameplay(config.GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置参数加载失败: %w", err)
	}
	log.Printf("[Config] 加载内置参数: %s", config.GameplayConfigPath)
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 停止配置文件监听
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
