package engine

import (
	"github.com/lixenwraith/pacific-fighter/component"
	"github.com/lixenwraith/pacific-fighter/core"
)

// ComponentStore holds one typed store per component
// Registries are views over these stores: enemies carry Enemy, ground targets carry Ground, and so on
type ComponentStore struct {
	Kinetic    *Store[component.KineticComponent]
	Combat     *Store[component.CombatComponent]
	Enemy      *Store[component.EnemyComponent]
	Ground     *Store[component.GroundComponent]
	Boat       *Store[component.BoatComponent]
	Battleship *Store[component.BattleshipComponent]
	Projectile *Store[component.ProjectileComponent]
	Pilot      *Store[component.PilotComponent]
	SetPiece   *Store[component.SetPieceComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic:    NewStore[component.KineticComponent](),
		Combat:     NewStore[component.CombatComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Ground:     NewStore[component.GroundComponent](),
		Boat:       NewStore[component.BoatComponent](),
		Battleship: NewStore[component.BattleshipComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Pilot:      NewStore[component.PilotComponent](),
		SetPiece:   NewStore[component.SetPieceComponent](),
	}
}

func (cs *ComponentStore) removeEntity(e core.Entity) {
	cs.Kinetic.RemoveEntity(e)
	cs.Combat.RemoveEntity(e)
	cs.Enemy.RemoveEntity(e)
	cs.Ground.RemoveEntity(e)
	cs.Boat.RemoveEntity(e)
	cs.Battleship.RemoveEntity(e)
	cs.Projectile.RemoveEntity(e)
	cs.Pilot.RemoveEntity(e)
	cs.SetPiece.RemoveEntity(e)
}

func (cs *ComponentStore) clear() {
	cs.Kinetic.ClearAllComponents()
	cs.Combat.ClearAllComponents()
	cs.Enemy.ClearAllComponents()
	cs.Ground.ClearAllComponents()
	cs.Boat.ClearAllComponents()
	cs.Battleship.ClearAllComponents()
	cs.Projectile.ClearAllComponents()
	cs.Pilot.ClearAllComponents()
	cs.SetPiece.ClearAllComponents()
}
