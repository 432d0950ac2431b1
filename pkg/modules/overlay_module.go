package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/shmup/pkg/config"
)

// OverlayMode 覆盖层当前显示的面板
type OverlayMode int

const (
	// OverlayHidden 游戏进行中，不显示
	OverlayHidden OverlayMode = iota
	// OverlayTitle 开始前的标题面板
	OverlayTitle
	// OverlayGameOver 残机耗尽
	OverlayGameOver
	// OverlayCleared 击败全部 Boss
	OverlayCleared
)

// String 返回面板名称
func (m OverlayMode) String() string {
	switch m {
	case OverlayHidden:
		return "hidden"
	case OverlayTitle:
		return "title"
	case OverlayGameOver:
		return "game over"
	case OverlayCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// OverlayCallbacks 覆盖层按钮回调
type OverlayCallbacks struct {
	OnStart   func() // 标题面板的 "Start"
	OnRestart func() // 结束面板的 "Restart"
}

var (
	overlayPanelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	overlayButtonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	overlayHoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	overlayTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gameOverColor      = color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	clearedColor       = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// overlayPanel 一个面板及其可变文字
type overlayPanel struct {
	ui     *ebitenui.UI
	detail *widget.Text
}

// OverlayModule 标题 / GameOver / 通关面板
//
// 每种面板是一个独立的 ebitenui.UI；同一时间最多显示一个。
// 键盘（Enter / Space / R）由 GameScene 处理，这里只负责按钮。
type OverlayModule struct {
	panels map[OverlayMode]*overlayPanel
	mode   OverlayMode

	onStart   func()
	onRestart func()
}

// NewOverlayModule 创建覆盖层，初始显示标题面板
func NewOverlayModule(callbacks OverlayCallbacks) *OverlayModule {
	m := &OverlayModule{
		panels:    make(map[OverlayMode]*overlayPanel, 3),
		mode:      OverlayTitle,
		onStart:   callbacks.OnStart,
		onRestart: callbacks.OnRestart,
	}

	var face text.Face = text.NewGoXFace(basicfont.Face7x13)

	m.panels[OverlayTitle] = newOverlayPanel(&face, "VERTICAL SHOOTER", overlayTextColor,
		"Arrows / WASD to move, Space to shoot", "Start", m.Activate)
	m.panels[OverlayGameOver] = newOverlayPanel(&face, "GAME OVER", gameOverColor,
		"", "Restart", m.Activate)
	m.panels[OverlayCleared] = newOverlayPanel(&face, "GAME CLEAR!", clearedColor,
		"", "Restart", m.Activate)

	log.Printf("[OverlayModule] Initialized with %d panels", len(m.panels))
	return m
}

func newOverlayPanel(face *text.Face, title string, titleColor color.Color, detail, buttonLabel string, onClick func()) *overlayPanel {
	panelImg := imageui.NewNineSliceColor(overlayPanelColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(overlayButtonColor),
		Hover:   imageui.NewNineSliceColor(overlayHoverColor),
		Pressed: imageui.NewNineSliceColor(overlayHoverColor),
	}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(
		widget.TextOpts.Text(title, face, titleColor),
		widget.TextOpts.WidgetOpts(center),
	)
	detailText := widget.NewText(
		widget.TextOpts.Text(detail, face, overlayTextColor),
		widget.TextOpts.WidgetOpts(center),
	)
	button := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text(buttonLabel, face, &widget.ButtonTextColor{Idle: overlayTextColor}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.GameWindowWidth/2, config.GameWindowHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(detailText)
	panel.AddChild(button)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &overlayPanel{ui: &ebitenui.UI{Container: root}, detail: detailText}
}

// Mode 返回当前面板
func (m *OverlayModule) Mode() OverlayMode {
	return m.mode
}

// SetMode 切换面板；结束面板显示最终分数
func (m *OverlayModule) SetMode(mode OverlayMode, score int) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	if panel, ok := m.panels[mode]; ok && mode != OverlayTitle {
		panel.detail.Label = fmt.Sprintf("Final Score: %d", score)
	}
	log.Printf("[OverlayModule] 切换到 %s 面板", mode)
}

// Activate 触发当前面板的按钮
// 标题面板开始游戏，结束面板重新开始
func (m *OverlayModule) Activate() {
	switch m.mode {
	case OverlayTitle:
		if m.onStart != nil {
			m.onStart()
		}
	case OverlayGameOver, OverlayCleared:
		if m.onRestart != nil {
			m.onRestart()
		}
	}
}

// Update 更新当前面板的按钮交互
func (m *OverlayModule) Update() {
	if panel, ok := m.panels[m.mode]; ok {
		panel.ui.Update()
	}
}

// Draw 绘制当前面板
func (m *OverlayModule) Draw(screen *ebiten.Image) {
	if panel, ok := m.panels[m.mode]; ok {
		panel.ui.Draw(screen)
	}
}
