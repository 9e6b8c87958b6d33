package core

// Segment is a mission phase
type Segment uint8

const (
	SegmentLaunch Segment = iota
	SegmentOcean
	SegmentIsland
	SegmentCarrierReturn
)

var segmentNames = [...]string{
	SegmentLaunch:        "LAUNCH",
	SegmentOcean:         "OCEAN",
	SegmentIsland:        "ISLAND",
	SegmentCarrierReturn: "CARRIER_RETURN",
}

func (s Segment) String() string {
	if int(s) < len(segmentNames) {
		return segmentNames[s]
	}
	return "UNKNOWN"
}

// ParseSegment maps a phase name back to its Segment
func ParseSegment(name string) (Segment, bool) {
	for i, n := range segmentNames {
		if n == name {
			return Segment(i), true
		}
	}
	return SegmentLaunch, false
}
