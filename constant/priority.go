package constant

// System Execution Priorities (lower runs first)
// Order: phase, set-pieces, spawn director, entities, collision, cleanup/score, presentation
const (
	PrioritySegment    = 10
	PriorityCarrier    = 20
	PriorityIsland     = 30
	PriorityBattleship = 40
	PriorityConvoy     = 50
	PrioritySpawn      = 60
	PriorityPlayer     = 70
	PriorityEnemy      = 80
	PriorityWeapon     = 90
	PriorityCollision  = 100
	PriorityCull       = 110
	PriorityScore      = 120
	PriorityEffect     = 130
	PriorityAudio      = 140
	PriorityHUD        = 150
)
