package core

// Kind tags what an entity is, dispatched by switch in the combat code
type Kind uint8

const (
	KindNone Kind = iota
	KindFighter
	KindBomber
	KindTurret
	KindPrimary
	KindSecondary
	KindBoat
	KindBattleship
	KindBullet
	KindBomb
	KindFlak
	KindPlayer
	KindIsland
	KindCarrier
)

var kindNames = [...]string{
	KindNone:       "none",
	KindFighter:    "fighter",
	KindBomber:     "bomber",
	KindTurret:     "turret",
	KindPrimary:    "primary",
	KindSecondary:  "secondary",
	KindBoat:       "boat",
	KindBattleship: "battleship",
	KindBullet:     "bullet",
	KindBomb:       "bomb",
	KindFlak:       "flak",
	KindPlayer:     "player",
	KindIsland:     "island",
	KindCarrier:    "carrier",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsAircraft reports kinds living in the enemy registry
func (k Kind) IsAircraft() bool {
	return k == KindFighter || k == KindBomber
}

// IsGround reports kinds living in the ground target registry
func (k Kind) IsGround() bool {
	return k == KindTurret || k == KindPrimary || k == KindSecondary
}
