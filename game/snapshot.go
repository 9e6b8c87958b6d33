package game

import (
	"time"

	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/vmath"
)

// Sprite is a drawable view of one entity in screen pixels
type Sprite struct {
	Kind   core.Kind
	Box    vmath.Box
	Health float64 // remaining fraction for damageable entities, 1 otherwise
	Ace    bool
	Enemy  bool // projectile fired by a hostile
	Zone   vmath.Box
	Zoned  bool
}

// Snapshot is everything a host needs to draw one frame
// Sprites are ordered back to front: set-pieces, surface targets, aircraft, projectiles, player
type Snapshot struct {
	Now        time.Duration
	Width      float64
	Height     float64
	OceanLineY float64
	Sprites    []Sprite
}

// Snapshot copies the drawable state of the world
func (s *Session) Snapshot() Snapshot {
	w := s.world
	cfg := w.Resources.Config
	snap := Snapshot{
		Now:        w.Resources.Time.Now,
		Width:      cfg.Screen.Width,
		Height:     cfg.Screen.Height,
		OceanLineY: cfg.OceanLineY(),
		Sprites:    make([]Sprite, 0, w.Components.Kinetic.CountEntities()),
	}

	for _, e := range w.Components.SetPiece.GetAllEntities() {
		piece, _ := w.Components.SetPiece.GetComponent(e)
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		sp := Sprite{Kind: piece.Kind, Box: k.Box(), Health: 1}
		sp.Zone, sp.Zoned = piece.Zone(k)
		snap.Sprites = append(snap.Sprites, sp)
	}

	var aircraft []Sprite
	for _, e := range w.Components.Combat.GetAllEntities() {
		c, _ := w.Components.Combat.GetComponent(e)
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		sp := Sprite{Kind: c.Kind, Box: k.Box(), Health: c.Fraction()}
		if c.Kind.IsAircraft() {
			if enemy, ok := w.Components.Enemy.GetComponent(e); ok {
				sp.Ace = enemy.Ace
			}
			aircraft = append(aircraft, sp)
			continue
		}
		snap.Sprites = append(snap.Sprites, sp)
	}
	snap.Sprites = append(snap.Sprites, aircraft...)

	for _, e := range w.Components.Projectile.GetAllEntities() {
		proj, _ := w.Components.Projectile.GetComponent(e)
		k, ok := w.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		snap.Sprites = append(snap.Sprites, Sprite{
			Kind:   proj.Kind,
			Box:    k.Box(),
			Health: 1,
			Enemy:  proj.Owner == component.OwnerEnemy,
		})
	}

	player := w.Resources.Game.Player
	if pilot, ok := w.Components.Pilot.GetComponent(player); ok && !pilot.Dead {
		if k, ok := w.Components.Kinetic.GetComponent(player); ok {
			health := 0.0
			if pilot.MaxHealth > 0 {
				health = pilot.Health / pilot.MaxHealth
			}
			snap.Sprites = append(snap.Sprites, Sprite{Kind: core.KindPlayer, Box: k.Box(), Health: health})
		}
	}
	return snap
}
