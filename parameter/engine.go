package parameter

import "time"

const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1

	// MaxFrameDelta caps a single tick after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// FrameInterval is the host tick used by both front-ends and replay
	FrameInterval = 16 * time.Millisecond
)
