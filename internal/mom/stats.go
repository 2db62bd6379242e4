package mom

// Stats counts the primitive operations performed by the engine.
// Counters are plain integers; the engine never runs concurrently
// within a single selection.
type Stats struct {
	Comparisons uint64 // element-to-element comparisons
	Swaps       uint64 // element moves and exchanges
	Partitions  uint64 // partition passes over a window
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	*s = Stats{}
}

func (s *Stats) comparison() {
	if s != nil {
		s.Comparisons++
	}
}

func (s *Stats) swap() {
	if s != nil {
		s.Swaps++
	}
}

func (s *Stats) partition() {
	if s != nil {
		s.Partitions++
	}
}
