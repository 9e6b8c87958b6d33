package system

import (
	"math"
	"time"

	"github.com/lixenwraith/pacific-fighter/parameter"
)

// descending returns max(floor, base - per*d)
func descending(base, per, floor time.Duration, d int) time.Duration {
	v := base - per*time.Duration(d)
	if v < floor {
		return floor
	}
	return v
}

// FighterInterval is the gap between fighter spawns
func FighterInterval(d int, bomberAlive bool) time.Duration {
	iv := descending(parameter.FighterSpawnBase, parameter.FighterSpawnPerLevel, parameter.FighterSpawnFloor, d)
	if bomberAlive {
		iv = time.Duration(float64(iv) * parameter.FighterBomberSlowdown)
	}
	return iv
}

// BomberInterval is the gap between bomber spawn attempts
func BomberInterval(d int) time.Duration {
	return descending(parameter.BomberSpawnBase, parameter.BomberSpawnPerLevel, parameter.BomberSpawnFloor, d)
}

// FighterShotEvery is a fighter's fire interval; aces shoot faster
func FighterShotEvery(d int, ace bool) time.Duration {
	iv := descending(parameter.FighterShotBase, parameter.FighterShotPerLevel, parameter.FighterShotFloor, d)
	if ace {
		iv -= parameter.AceShotReduction
		if iv < parameter.AceShotFloor {
			iv = parameter.AceShotFloor
		}
	}
	return iv
}

func BomberShotEvery(d int) time.Duration {
	return descending(parameter.BomberShotBase, parameter.BomberShotPerLevel, parameter.BomberShotFloor, d)
}

func TurretFireEvery(d int) time.Duration {
	return descending(parameter.TurretFireBase, parameter.TurretFirePerLevel, parameter.TurretFireFloor, d)
}

func TurretFireChance(d int) float64 {
	return math.Min(parameter.TurretChanceCap, parameter.TurretChanceBase+parameter.TurretChancePerLevel*float64(d))
}

func AceChance(d int) float64 {
	return math.Min(parameter.AceChanceCap, parameter.AceChanceBase+parameter.AceChancePerLevel*float64(d))
}

func FighterHP(d int, ace bool) int {
	hp := parameter.FighterBaseHP + parameter.FighterHPPerLevel*d
	if ace {
		hp += parameter.AceBonusHP
	}
	return hp
}

func FighterSpeed(d int) float64 {
	return parameter.FighterBaseSpeed + parameter.FighterSpeedPerLevel*float64(d)
}

func BomberHP(d int) int {
	return parameter.BomberBaseHP + parameter.BomberHPPerLevel*d
}

func BomberSpeed(d int) float64 {
	return parameter.BomberBaseSpeed + parameter.BomberSpeedPerLevel*float64(d)
}

func BoatHP(d int) int {
	return parameter.BoatBaseHP + parameter.BoatHPPerLevel*d
}

func EnemyShotSpeed(d int) float64 {
	return parameter.EnemyShotBaseSpeed + parameter.EnemyShotSpeedPerLevel*float64(d)
}

func FlakSpeed(d int) float64 {
	return parameter.FlakBaseSpeed + parameter.FlakSpeedPerLevel*float64(d)
}
