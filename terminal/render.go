package terminal

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

var kindGlyphs = map[core.Kind]rune{
	core.KindPlayer:     '>',
	core.KindFighter:    '<',
	core.KindBomber:     'W',
	core.KindTurret:     'T',
	core.KindPrimary:    'P',
	core.KindSecondary:  'S',
	core.KindBoat:       'b',
	core.KindBattleship: '=',
	core.KindBullet:     '-',
	core.KindBomb:       'o',
	core.KindFlak:       '*',
	core.KindIsland:     '#',
	core.KindCarrier:    '_',
}

var effectGlyphs = map[core.EffectKind]rune{
	core.EffectExplosion:    '*',
	core.EffectExplosionBig: '@',
	core.EffectSpark:        '+',
	core.EffectSmoke:        '%',
	core.EffectSplash:       '^',
	core.EffectFlakBurst:    '#',
	core.EffectMuzzleFlash:  '=',
	core.EffectRecoil:       '=',
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// viewport maps world pixels onto the play area cells
type viewport struct {
	top, cols, rows int
	sx, sy          float64
}

func newViewport(snap game.Snapshot, top, cols, rows int) viewport {
	v := viewport{top: top, cols: cols, rows: rows}
	if snap.Width > 0 {
		v.sx = float64(cols) / snap.Width
	}
	if snap.Height > 0 {
		v.sy = float64(rows) / snap.Height
	}
	return v
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// cells returns the inclusive cell span of a box, at least one cell wide
func (v viewport) cells(b vmath.Box) (c0, r0, c1, r1 int) {
	c0, c1 = v.col(b.Left()), v.col(b.Right())
	r0, r1 = v.row(b.Top()), v.row(b.Bottom())
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	if c1 > c0 && float64(c1)/v.sx >= b.Right() {
		c1--
	}
	if r1 > r0 && float64(r1-v.top)/v.sy >= b.Bottom() {
		r1--
	}
	return
}

func (v viewport) inside(c, r int) bool {
	return c >= 0 && c < v.cols && r >= v.top && r < v.top+v.rows
}

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	Debug bool

	ocean int
}

// Draw paints one full frame; overlay is shown on the top row in debug mode
func (r *Renderer) Draw(scr tcell.Screen, snap game.Snapshot, fx []game.Effect, hud core.HUDState, overlay string) {
	cols, rows := scr.Size()
	scr.Clear()
	if cols <= 0 || rows <= 1 {
		scr.Show()
		return
	}

	top := 0
	if r.Debug {
		top = 1
	}
	play := rows - 1 - top
	if play < 1 {
		play = 1
	}
	v := newViewport(snap, top, cols, play)

	r.drawBackground(scr, v, snap)
	for _, sp := range snap.Sprites {
		r.drawSprite(scr, v, sp)
	}
	for _, e := range fx {
		r.drawEffect(scr, v, e)
	}
	drawHUD(scr, rows-1, cols, hud)
	if r.Debug {
		drawText(scr, 0, 0, cols, overlay, tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack))
	}
	scr.Show()
}

func (r *Renderer) drawBackground(scr tcell.Screen, v viewport, snap game.Snapshot) {
	sky := tcell.StyleDefault.Background(tcellColor(game.ColorSky))
	sea := tcell.StyleDefault.Background(tcellColor(game.ColorOcean)).Foreground(tcellColor(game.ColorSky))
	ocean := v.row(snap.OceanLineY)
	r.ocean = ocean
	for row := v.top; row < v.top+v.rows; row++ {
		style, glyph := sky, ' '
		if row >= ocean {
			style, glyph = sea, '~'
		}
		for c := 0; c < v.cols; c++ {
			g := ' '
			if glyph == '~' && (c+row)%4 == 0 {
				g = glyph
			}
			scr.SetContent(c, row, g, nil, style)
		}
	}
}

// background is the fill color drawBackground left in the row
func (r *Renderer) background(row int) tcell.Color {
	if row >= r.ocean {
		return tcellColor(game.ColorOcean)
	}
	return tcellColor(game.ColorSky)
}

func (r *Renderer) drawSprite(scr tcell.Screen, v viewport, sp game.Sprite) {
	glyph, ok := kindGlyphs[sp.Kind]
	if !ok {
		return
	}
	if sp.Enemy && sp.Kind == core.KindBullet {
		glyph = '.'
	}
	fg := tcellColor(game.SpriteColor(sp))
	if sp.Kind == core.KindPlayer && sp.Health < 0.3 {
		fg = tcellColor(game.ColorDanger)
	}

	fill := func(b vmath.Box, g rune, fg tcell.Color) {
		c0, r0, c1, r1 := v.cells(b)
		for row := r0; row <= r1; row++ {
			for c := c0; c <= c1; c++ {
				if !v.inside(c, row) {
					continue
				}
				scr.SetContent(c, row, g, nil, tcell.StyleDefault.Foreground(fg).Background(r.background(row)))
			}
		}
	}

	fill(sp.Box, glyph, fg)
	if sp.Zoned {
		fill(sp.Zone, '=', tcellColor(game.ColorZone))
	}
}

func (r *Renderer) drawEffect(scr tcell.Screen, v viewport, e game.Effect) {
	glyph, ok := effectGlyphs[e.Kind]
	if !ok {
		return
	}
	radius := 6 * e.Scale
	switch e.Kind {
	case core.EffectExplosion, core.EffectExplosionBig, core.EffectFlakBurst, core.EffectSplash:
		radius = (10 + 30*e.Progress()) * e.Scale
	}
	box := vmath.Box{X: e.X, Y: e.Y, W: radius * 2, H: radius * 2}
	c0, r0, c1, r1 := v.cells(box)
	fg := tcellColor(game.EffectColor(e.Kind))
	for row := r0; row <= r1; row++ {
		for c := c0; c <= c1; c++ {
			if !v.inside(c, row) || (c+row)%2 == 1 && c != c0 {
				continue
			}
			scr.SetContent(c, row, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(r.background(row)))
		}
	}
}

// HUDLine formats the status bar text
func HUDLine(h core.HUDState) string {
	var b strings.Builder
	fmt.Fprintf(&b, " HP %3d/%d  BOMBS %d  SCORE %d  BEST %d  %s", h.HP, h.MaxHP, h.Bombs, h.Score, h.BestScore, h.Segment)
	if h.Help != "" {
		b.WriteString("  | ")
		b.WriteString(h.Help)
	}
	return b.String()
}

func drawHUD(scr tcell.Screen, row, cols int, h core.HUDState) {
	style := tcell.StyleDefault.Foreground(tcellColor(game.ColorHUD)).Background(tcell.ColorBlack)
	if h.GameOver || (h.MaxHP > 0 && h.HP*10 < h.MaxHP*3) {
		style = style.Foreground(tcellColor(game.ColorDanger))
	}
	for c := 0; c < cols; c++ {
		scr.SetContent(c, row, ' ', nil, style)
	}
	drawText(scr, 0, row, cols, HUDLine(h), style)
}

func drawText(scr tcell.Screen, col, row, cols int, text string, style tcell.Style) {
	for _, r := range text {
		if col >= cols {
			return
		}
		scr.SetContent(col, row, r, nil, style)
		col++
	}
}
