package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

var (
	hudBackground = color.RGBA{A: 0xb0}
	healthBack    = color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xc8}
	healthFill    = color.RGBA{G: 0xc8, A: 0xff}
)

const hudHeight = 20

func fillBox(dst *ebiten.Image, b vmath.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.Left()), float32(b.Top()), float32(b.W), float32(b.H), c, false)
}

func drawWorld(dst *ebiten.Image, snap game.Snapshot) {
	dst.Fill(game.ColorSky)
	vector.DrawFilledRect(dst, 0, float32(snap.OceanLineY), float32(snap.Width), float32(snap.Height-snap.OceanLineY), game.ColorOcean, false)

	for _, sp := range snap.Sprites {
		fillBox(dst, sp.Box, game.SpriteColor(sp))
		if sp.Zoned {
			fillBox(dst, sp.Zone, game.ColorZone)
		}
		if sp.Health < 1 && sp.Kind != core.KindPlayer {
			drawHealthBar(dst, sp)
		}
	}
}

// drawHealthBar sits just above damaged targets
func drawHealthBar(dst *ebiten.Image, sp game.Sprite) {
	x := float32(sp.Box.Left())
	y := float32(sp.Box.Top()) - 6
	w := float32(sp.Box.W)
	vector.DrawFilledRect(dst, x, y, w, 3, healthBack, false)
	vector.DrawFilledRect(dst, x, y, w*float32(sp.Health), 3, healthFill, false)
}

func drawEffects(dst *ebiten.Image, fx []game.Effect) {
	for _, e := range fx {
		c := game.EffectColor(e.Kind)
		p := e.Progress()
		f := 1 - p
		c = color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: uint8(float64(c.A) * f)}
		switch e.Kind {
		case core.EffectExplosion, core.EffectExplosionBig, core.EffectFlakBurst:
			r := float32((8 + 32*p) * e.Scale)
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), r, c, true)
		case core.EffectSplash:
			r := float32((6 + 24*p) * e.Scale)
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), r, 2, c, true)
		default:
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(4*e.Scale), c, true)
		}
	}
}

// hudText formats the status line
func hudText(h core.HUDState) string {
	return fmt.Sprintf("HP %d/%d   BOMBS %d   SCORE %d   BEST %d   %s", h.HP, h.MaxHP, h.Bombs, h.Score, h.BestScore, h.Segment)
}

func drawHUD(dst *ebiten.Image, width float64, h core.HUDState) {
	vector.DrawFilledRect(dst, 0, 0, float32(width), hudHeight, hudBackground, false)
	fg := color.Color(game.ColorHUD)
	if h.GameOver || (h.MaxHP > 0 && h.HP*10 < h.MaxHP*3) {
		fg = game.ColorDanger
	}
	text.Draw(dst, hudText(h), basicfont.Face7x13, 8, 14, fg)
	if h.Help != "" {
		w := len(h.Help) * 7
		text.Draw(dst, h.Help, basicfont.Face7x13, int(width)/2-w/2, hudHeight+24, game.ColorHUD)
	}
}

func drawOverlay(dst *ebiten.Image, overlay string) {
	ebitenutil.DebugPrintAt(dst, overlay, 8, hudHeight+40)
}
