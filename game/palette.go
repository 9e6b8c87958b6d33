package game

import (
	"image/color"

	"github.com/lixenwraith/pacific-fighter/core"
)

// Shared host colors
var (
	ColorSky    = color.RGBA{R: 0x6c, G: 0xa6, B: 0xd9, A: 0xff}
	ColorOcean  = color.RGBA{R: 0x1d, G: 0x4e, B: 0x89, A: 0xff}
	ColorHUD    = color.RGBA{R: 0xf2, G: 0xf2, B: 0xe6, A: 0xff}
	ColorDanger = color.RGBA{R: 0xe0, G: 0x3c, B: 0x31, A: 0xff}
	ColorZone   = color.RGBA{R: 0x8a, G: 0x86, B: 0x7a, A: 0xff}
	ColorAce    = color.RGBA{R: 0xd9, G: 0x2b, B: 0x8a, A: 0xff}
)

var kindColors = map[core.Kind]color.RGBA{
	core.KindPlayer:     {R: 0xe8, G: 0xe8, B: 0x40, A: 0xff},
	core.KindFighter:    {R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
	core.KindBomber:     {R: 0x7d, G: 0x3c, B: 0x98, A: 0xff},
	core.KindTurret:     {R: 0x5d, G: 0x6d, B: 0x7e, A: 0xff},
	core.KindPrimary:    {R: 0xd3, G: 0x54, B: 0x00, A: 0xff},
	core.KindSecondary:  {R: 0xb9, G: 0x77, B: 0x0e, A: 0xff},
	core.KindBoat:       {R: 0x95, G: 0xa5, B: 0xa6, A: 0xff},
	core.KindBattleship: {R: 0x56, G: 0x65, B: 0x73, A: 0xff},
	core.KindBullet:     {R: 0xff, G: 0xf1, B: 0x76, A: 0xff},
	core.KindBomb:       {R: 0x21, G: 0x21, B: 0x21, A: 0xff},
	core.KindFlak:       {R: 0x42, G: 0x42, B: 0x42, A: 0xff},
	core.KindIsland:     {R: 0x3e, G: 0x8e, B: 0x41, A: 0xff},
	core.KindCarrier:    {R: 0x60, G: 0x60, B: 0x60, A: 0xff},
}

var effectColors = map[core.EffectKind]color.RGBA{
	core.EffectExplosion:    {R: 0xff, G: 0x8f, B: 0x00, A: 0xff},
	core.EffectExplosionBig: {R: 0xff, G: 0x6f, B: 0x00, A: 0xff},
	core.EffectSpark:        {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.EffectSmoke:        {R: 0x75, G: 0x75, B: 0x75, A: 0xff},
	core.EffectSplash:       {R: 0xe1, G: 0xf5, B: 0xfe, A: 0xff},
	core.EffectFlakBurst:    {R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	core.EffectMuzzleFlash:  {R: 0xff, G: 0xee, B: 0x58, A: 0xff},
	core.EffectRecoil:       {R: 0xff, G: 0xee, B: 0x58, A: 0xff},
}

// SpriteColor picks the draw color for a sprite
func SpriteColor(sp Sprite) color.RGBA {
	switch {
	case sp.Ace:
		return ColorAce
	case sp.Enemy && sp.Kind == core.KindBullet:
		return ColorDanger
	}
	if c, ok := kindColors[sp.Kind]; ok {
		return c
	}
	return ColorHUD
}

// EffectColor picks the draw color for an effect
func EffectColor(kind core.EffectKind) color.RGBA {
	if c, ok := effectColors[kind]; ok {
		return c
	}
	return ColorHUD
}
