package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/arcshooter/internal/application/state"
	"github.com/younwookim/arcshooter/internal/ecs"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorProjectile = color.RGBA{255, 200, 100, 255}
	colorLabelBG    = color.RGBA{0, 0, 0, 166} // 65% opaque
	colorLabelText  = color.RGBA{255, 255, 255, 255}
	colorPause      = color.RGBA{0, 0, 0, 128}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
)

// debugGlyphH is the line height of ebitenutil's debug font
const debugGlyphH = 16

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	w := p.world
	for _, id := range w.Projectiles() {
		p.drawBox(screen, w.Position[id], w.Size[id], colorProjectile)
	}
	for _, id := range w.Enemies() {
		p.drawBox(screen, w.Position[id], w.Size[id], colorEnemy)
	}
	for _, id := range w.Players() {
		p.drawBox(screen, w.Position[id], w.Size[id], colorPlayer)
	}
	for _, id := range w.Labels() {
		p.drawLabel(screen, w.LabelData[id])
	}

	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// toScreen maps a Y-up world box center to the top-left screen corner
func (p *Playing) toScreen(pos, size ecs.Vec2) (float32, float32) {
	x := pos.X - size.X/2
	y := float64(p.screenH) - pos.Y - size.Y/2
	return float32(x), float32(y)
}

func (p *Playing) drawBox(screen *ebiten.Image, pos, size ecs.Vec2, c color.Color) {
	x, y := p.toScreen(pos, size)
	vector.DrawFilledRect(screen, x, y, float32(size.X), float32(size.Y), c, false)
}

// labelBox returns the screen rectangle of a label's background
func (p *Playing) labelBox(label ecs.Label) (x, y, w, h float64) {
	pad := p.config.Label.Padding

	var tw, th float64
	if p.face != nil {
		tw, th = text.Measure(label.Text, p.face, p.face.Size)
	} else {
		tw, th = float64(6*len(label.Text)), debugGlyphH
	}

	x = label.Left - pad
	y = float64(p.screenH) - label.Bottom - th - pad
	return x, y, tw + 2*pad, th + 2*pad
}

func (p *Playing) drawLabel(screen *ebiten.Image, label ecs.Label) {
	if label.Text == "" {
		return
	}

	x, y, w, h := p.labelBox(label)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorLabelBG, false)

	pad := p.config.Label.Padding
	if p.face == nil {
		ebitenutil.DebugPrintAt(screen, label.Text, int(x+pad), int(y+pad))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+pad, y+pad)
	op.ColorScale.ScaleWithColor(colorLabelText)
	text.Draw(screen, label.Text, p.face, op)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	hud := fmt.Sprintf("Score: %d  Shots: %d  Enemies: %d", p.score, p.shots, p.world.CountEnemies())
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	// Controls
	ebitenutil.DebugPrintAt(screen, "A-Z: Shoot | Left/Right: Move | ESC: Pause", 10, p.screenH-debugGlyphH-4)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorPause, false)

	msg := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, msg, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorGameOver, false)

	msg := fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress SPACE to restart", p.score)
	ebitenutil.DebugPrintAt(screen, msg, p.screenW/2-60, p.screenH/2-30)
}
