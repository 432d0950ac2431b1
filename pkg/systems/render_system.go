package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/ecs"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	gradientTop    = color.RGBA{R: 0x00, G: 0x11, B: 0x22, A: 0xff}
	gradientBottom = color.RGBA{R: 0x00, G: 0x00, B: 0x44, A: 0xff}
	barBackground  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	damageYellow   = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	controlFill    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
	controlStroke  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

// RenderSystem 绘制背景、实体、Boss 血条、飘字和触控控件
// 除背景滚动偏移外不修改任何模拟状态
type RenderSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	rm    *game.ResourceManager
	input *game.InputState

	background *ebiten.Image
	smallFace  *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, rm *game.ResourceManager, input *game.InputState) *RenderSystem {
	s := &RenderSystem{em: em, gs: gs, rm: rm, input: input}
	s.background = newGradientImage(config.GameWindowHeight, gradientTop, gradientBottom)

	face, err := rm.LoadFont(config.DamageTextFontSize)
	if err != nil {
		log.Printf("[RenderSystem] Warning: failed to load font: %v", err)
	}
	s.smallFace = face
	return s
}

// newGradientImage 生成 1 像素宽的纵向渐变，绘制时横向拉伸
func newGradientImage(height int, top, bottom color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(1, height)
	pix := make([]byte, 4*height)
	for y := 0; y < height; y++ {
		c := lerpColor(top, bottom, float64(y)/float64(height-1))
		pix[4*y], pix[4*y+1], pix[4*y+2], pix[4*y+3] = c.R, c.G, c.B, c.A
	}
	img.WritePixels(pix)
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// StarPosition 第 i 颗星星的位置和大小
func StarPosition(i int, backgroundY float64) (x, y, size float64) {
	x = float64((i * 37) % config.GameWindowWidth)
	y = modFloat(backgroundY+float64(i*73), config.FieldHeight+100)
	size = float64(1 + i%3)
	return x, y, size
}

func modFloat(v, m float64) float64 {
	r := v - m*float64(int(v/m))
	if r < 0 {
		r += m
	}
	return r
}

// ScrollBackground 背景偏移 +1，超过战场高度后归零
func ScrollBackground(y float64) float64 {
	y++
	if y > config.FieldHeight {
		y = 0
	}
	return y
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	s.drawShips(screen, ecs.GetEntitiesWith1[*components.ObstacleComponent](s.em))
	s.drawShips(screen, ecs.GetEntitiesWith1[*components.PlayerComponent](s.em))
	s.drawProjectiles(screen)
	s.drawShips(screen, ecs.GetEntitiesWith1[*components.EnemyComponent](s.em))
	s.drawBoss(screen)
	s.drawDamageTexts(screen)

	if s.input != nil && s.input.Mobile {
		s.drawTouchControls(screen)
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.FieldWidth, 1)
	screen.DrawImage(s.background, op)

	for i := 0; i < config.StarCount; i++ {
		x, y, size := StarPosition(i, s.gs.BackgroundY)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), color.White, false)
	}

	s.gs.BackgroundY = ScrollBackground(s.gs.BackgroundY)
}

// drawShips 绘制纯色方块实体及其装饰色块
func (s *RenderSystem) drawShips(screen *ebiten.Image, ids []ecs.EntityID) {
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)
		if col == nil || sprite == nil {
			continue
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(col.Width), float32(col.Height)
		vector.DrawFilledRect(screen, x, y, w, h, sprite.Color, false)
		if sprite.Accent.A != 0 {
			vector.DrawFilledRect(screen, x+w/6, y+h/6, w*2/3, h/3, sprite.Accent, false)
			vector.DrawFilledRect(screen, x+w/3, y+h/2, w/3, h/3, sprite.Accent, false)
		}

		// 可破坏障碍物受损时显示剩余血量
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id); ok && !health.Indestructible && health.CurrentHealth < health.MaxHealth {
			vector.DrawFilledRect(screen, x, y+h-3, w*float32(health.Ratio()), 3, colornames.Orange, false)
		}
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	for _, b := range bodiesWith[*components.ProjectileComponent](s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, b.id)
		vector.DrawFilledRect(screen, float32(b.pos.X), float32(b.pos.Y), float32(b.col.Width), float32(b.col.Height), proj.Color, false)
	}
}

func (s *RenderSystem) drawBoss(screen *ebiten.Image) {
	for _, b := range bodiesWith[*components.BossComponent](s.em) {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.em, b.id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, b.id)
		if boss.Phase == types.BossPhaseRemoved {
			continue
		}

		s.drawBossBody(screen, b, boss, sprite)

		if boss.Phase == types.BossPhaseActive {
			health, _ := ecs.GetComponent[*components.HealthComponent](s.em, b.id)
			s.drawBossBar(screen, boss, health)
		}
	}
}

// drawBossBody 优先绘制图片，图片不可用时绘制纯色方块
// 受击闪烁期间每隔两帧偏红
func (s *RenderSystem) drawBossBody(screen *ebiten.Image, b body, boss *components.BossComponent, sprite *components.SpriteComponent) {
	flash := boss.DamageFlash > 0 && (boss.DamageFlash/2)%2 == 0

	var img *ebiten.Image
	if sprite != nil && sprite.ImageKey != "" {
		img, _ = s.rm.LoadImage(sprite.ImageKey)
	}

	if img != nil {
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.col.Width/float64(bounds.Dx()), b.col.Height/float64(bounds.Dy()))
		op.GeoM.Translate(b.pos.X, b.pos.Y)
		if flash {
			op.ColorScale.Scale(1, 0.4, 0.4, 1)
		}
		op.ColorScale.ScaleAlpha(float32(boss.Alpha))
		screen.DrawImage(img, op)
		return
	}

	fill := color.RGBA{}
	if sprite != nil {
		fill = sprite.Color
	}
	if flash {
		fill = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	fill = scaleAlpha(fill, boss.Alpha)
	vector.DrawFilledRect(screen, float32(b.pos.X), float32(b.pos.Y), float32(b.col.Width), float32(b.col.Height), fill, false)
}

// scaleAlpha 返回预乘 alpha 后的颜色
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (s *RenderSystem) drawBossBar(screen *ebiten.Image, boss *components.BossComponent, health *components.HealthComponent) {
	barX := float32((config.FieldWidth - config.BossBarWidth) / 2)
	barY := float32(config.BossBarY)
	ratio := 0.0
	if health != nil {
		ratio = health.Ratio()
	}

	vector.DrawFilledRect(screen, barX, barY, config.BossBarWidth, config.BossBarHeight, barBackground, false)
	vector.DrawFilledRect(screen, barX, barY, float32(ratio*config.BossBarWidth), config.BossBarHeight, colornames.Red, false)
	vector.StrokeRect(screen, barX, barY, config.BossBarWidth, config.BossBarHeight, 2, color.White, false)

	if s.smallFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.FieldWidth/2, config.BossNameY)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, boss.Name, s.smallFace, op)
}

func (s *RenderSystem) drawDamageTexts(screen *ebiten.Image) {
	if s.smallFace == nil {
		return
	}
	ids := ecs.GetEntitiesWith2[*components.DamageTextComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		dt, _ := ecs.GetComponent[*components.DamageTextComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X, pos.Y-config.DamageTextFontSize)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(damageYellow)
		op.ColorScale.ScaleAlpha(float32(dt.Alpha))
		text.Draw(screen, fmt.Sprintf("-%d", dt.Damage), s.smallFace, op)
	}
}

func (s *RenderSystem) drawTouchControls(screen *ebiten.Image) {
	cx, cy := float32(config.JoystickCenterX), float32(config.JoystickCenterY)
	vector.DrawFilledCircle(screen, cx, cy, config.JoystickRadius, controlFill, true)
	vector.StrokeCircle(screen, cx, cy, config.JoystickRadius, 2, controlStroke, true)

	knobX := cx + float32(s.input.TouchX*config.JoystickRadius)
	knobY := cy + float32(s.input.TouchY*config.JoystickRadius)
	vector.DrawFilledCircle(screen, knobX, knobY, config.JoystickRadius/2, controlStroke, true)

	fill := controlFill
	if s.input.TouchFire {
		fill = controlStroke
	}
	bx, by := float32(config.ShootButtonX), float32(config.ShootButtonY)
	vector.DrawFilledCircle(screen, bx, by, config.ShootButtonRadius, fill, true)
	vector.StrokeCircle(screen, bx, by, config.ShootButtonRadius, 2, controlStroke, true)
}
