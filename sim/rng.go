package sim

import (
	"hash/fnv"
	"math/rand"
)

// Names of the random streams the workload generator draws from.
const (
	StreamArrival  = "arrival"
	StreamBurst    = "burst"
	StreamPriority = "priority"
)

// SeedStreams hands out one independently seeded *rand.Rand per stream name,
// so drawing priorities never shifts the arrivals or bursts of a workload
// generated from the same seed.
//
// The arrival stream is seeded with the master seed itself: the arrival
// sequence for seed N is exactly rand.New(rand.NewSource(N)), whichever other
// streams are in use. Every other stream is seeded with seed XOR fnv1a64(name).
//
// Not safe for concurrent use.
type SeedStreams struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewSeedStreams returns the stream set for seed.
func NewSeedStreams(seed int64) *SeedStreams {
	return &SeedStreams{
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// Seed returns the master seed.
func (s *SeedStreams) Seed() int64 {
	return s.seed
}

// Stream returns the RNG for name, creating it on first use.
func (s *SeedStreams) Stream(name string) *rand.Rand {
	if r, ok := s.streams[name]; ok {
		return r
	}
	r := rand.New(rand.NewSource(s.streamSeed(name)))
	s.streams[name] = r
	return r
}

// Between draws uniformly from [lo, hi] on the named stream.
// hi < lo is a programming error and panics.
func (s *SeedStreams) Between(name string, lo, hi int64) int64 {
	if hi < lo {
		panic("Between: hi must not be less than lo")
	}
	return lo + s.Stream(name).Int63n(hi-lo+1)
}

func (s *SeedStreams) streamSeed(name string) int64 {
	if name == StreamArrival {
		return s.seed
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return s.seed ^ int64(h.Sum64())
}
