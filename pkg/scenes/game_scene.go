package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/modules"
	"github.com/gonewx/shmup/pkg/systems"
	"github.com/gonewx/shmup/pkg/utils"
)

// GameSceneOptions GameScene 的可选项
type GameSceneOptions struct {
	// Watcher 覆盖配置文件监听器，nil 表示不热重载
	Watcher *config.Watcher
	// OverridePath 热重载时重新读取的文件
	OverridePath string
	// Mobile 初始是否显示触控控件
	Mobile bool
}

// GameScene 唯一的游戏场景
//
// 每帧的处理顺序：
//  1. 热重载覆盖配置（如果有变化）
//  2. 读取输入
//  3. 开始 / 重新开始（Enter、Space、R、点击或覆盖层按钮）
//  4. 推进模拟
//  5. 根据游戏状态切换覆盖层面板
type GameScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	simulation      *Simulation

	inputState   *game.InputState
	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem
	overlay      *modules.OverlayModule

	hudFace *text.GoTextFace

	watcher      *config.Watcher
	overridePath string
}

// NewGameScene 创建游戏场景
func NewGameScene(rm *game.ResourceManager, am *game.AudioManager, sim *Simulation, opts GameSceneOptions) *GameScene {
	inputState := &game.InputState{Mobile: opts.Mobile}

	s := &GameScene{
		resourceManager: rm,
		audioManager:    am,
		simulation:      sim,
		inputState:      inputState,
		inputSystem:     systems.NewInputSystem(inputState),
		renderSystem:    systems.NewRenderSystem(sim.EntityManager(), sim.State(), rm, inputState),
		watcher:         opts.Watcher,
		overridePath:    opts.OverridePath,
	}
	s.overlay = modules.NewOverlayModule(modules.OverlayCallbacks{
		OnStart:   s.start,
		OnRestart: s.restart,
	})

	face, err := rm.LoadFont(config.HUDFontSize)
	if err != nil {
		log.Printf("[GameScene] Warning: failed to load HUD font, falling back to debug print: %v", err)
	}
	s.hudFace = face

	log.Printf("[GameScene] 初始化完成 (mobile=%v, watch=%v)", opts.Mobile, opts.Watcher != nil)
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.reloadConfigIfChanged()

	s.inputSystem.Update()
	s.handleLifecycleKeys()
	s.overlay.Update()

	s.simulation.Tick(s.inputState.Snapshot())

	gs := s.simulation.State()
	s.overlay.SetMode(OverlayModeFor(gs), gs.Score)
}

// handleLifecycleKeys 处理开始和重新开始
func (s *GameScene) handleLifecycleKeys() {
	gs := s.simulation.State()

	if !gs.Started {
		clicked, _, _ := utils.IsJustTouchedOrClicked()
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.start()
		}
		return
	}

	if gs.IsTerminal() && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		s.restart()
	}
}

func (s *GameScene) start() {
	if err := s.simulation.Start(); err != nil {
		log.Printf("[GameScene] 开始游戏失败: %v", err)
	}
}

func (s *GameScene) restart() {
	if err := s.simulation.Restart(); err != nil {
		log.Printf("[GameScene] 重新开始失败: %v", err)
	}
}

// reloadConfigIfChanged 覆盖文件变化时重新加载
// 新文件无效时保留当前参数
func (s *GameScene) reloadConfigIfChanged() {
	if s.watcher == nil {
		return
	}
	select {
	case err, ok := <-s.watcher.Errors:
		if ok && err != nil {
			log.Printf("[GameScene] 配置监听错误: %v", err)
		}
	default:
	}
	if !s.watcher.PendingReload() {
		return
	}

	next, err := config.LoadGameplayFile(s.overridePath)
	if err != nil {
		log.Printf("[GameScene] 热重载失败，保留当前参数: %v", err)
		return
	}
	s.simulation.ApplyConfig(next)
	s.audioManager.Apply(next.Audio)
	log.Printf("[Config] 已热重载 %s", s.overridePath)
}

// OverlayModeFor 根据游戏状态选择覆盖层面板
func OverlayModeFor(gs *game.GameState) modules.OverlayMode {
	switch {
	case !gs.Started:
		return modules.OverlayTitle
	case gs.GameOver:
		return modules.OverlayGameOver
	case gs.GameCleared:
		return modules.OverlayCleared
	default:
		return modules.OverlayHidden
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	gs := s.simulation.State()
	if gs.Started {
		s.drawHUD(screen, gs)
	}
	s.overlay.Draw(screen)
}

// drawHUD 左上角显示分数和残机
func (s *GameScene) drawHUD(screen *ebiten.Image, gs *game.GameState) {
	lines := []string{
		fmt.Sprintf("Score: %d", gs.Score),
		fmt.Sprintf("Lives: %d", gs.Lives),
	}

	if s.hudFace == nil {
		ebitenutil.DebugPrintAt(screen, lines[0]+"\n"+lines[1], 10, 10)
		return
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 10+float64(i)*(config.HUDFontSize+6))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, s.hudFace, op)
	}
}
