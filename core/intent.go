package core

// Intent is the per-tick player input snapshot produced by the host
// BombPressed is edge-triggered: true only on the tick the key went down
type Intent struct {
	Up          bool    `msgpack:"u"`
	Down        bool    `msgpack:"d"`
	Left        bool    `msgpack:"l"`
	Right       bool    `msgpack:"r"`
	FireHeld    bool    `msgpack:"f"`
	BombPressed bool    `msgpack:"b"`
	HasPointer  bool    `msgpack:"hp"`
	PointerY    float64 `msgpack:"py"`
}
