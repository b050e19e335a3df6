// Package resetstate implements component G: a shared, lock-protected
// progress object CCD writes to and any consumer may poll during a
// rebuild (spec §4.G).
package resetstate

import (
	"sync"
	"time"
)

// Phase enumerates every CCD rebuild phase, in the order spec §4.F runs
// them, plus the terminal None/Failed states.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseStart
	PhaseDeconstruct
	PhaseWalkDir
	PhaseMetadata
	PhaseFix
	PhaseSort
	PhaseMap
	PhaseArt
	PhaseTextures
	PhasePlaylists
	PhaseDisk
	PhaseFinalize
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseStart:
		return "start"
	case PhaseDeconstruct:
		return "deconstruct"
	case PhaseWalkDir:
		return "walk_dir"
	case PhaseMetadata:
		return "metadata"
	case PhaseFix:
		return "fix"
	case PhaseSort:
		return "sort"
	case PhaseMap:
		return "map"
	case PhaseArt:
		return "art"
	case PhaseTextures:
		return "textures"
	case PhasePlaylists:
		return "playlists"
	case PhaseDisk:
		return "disk"
	case PhaseFinalize:
		return "finalize"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// phaseWeight is each phase's share of the 0..100 percent range CCD
// advances through, roughly proportional to the component-share table in
// spec §2.
var phaseWeight = map[Phase]int{
	PhaseDeconstruct: 2,
	PhaseWalkDir:      10,
	PhaseMetadata:     35,
	PhaseFix:          8,
	PhaseSort:         8,
	PhaseMap:          5,
	PhaseArt:          20,
	PhaseTextures:     6,
	PhasePlaylists:    3,
	PhaseDisk:         3,
}

// Snapshot is an immutable copy of the progress state at one instant,
// safe to read without holding any lock.
type Snapshot struct {
	GenerationID string
	Phase        Phase
	Percent      int
	Specific     string
	Durations    map[Phase]time.Duration
}

// State is the single-writer, many-reader progress object. CCD holds the
// write lock only for the duration of one field update (spec §4.G,
// §5 "Shared-resource policy").
type State struct {
	mu sync.RWMutex

	generationID string
	phase        Phase
	percent      int
	specific     string

	phaseStart time.Time
	durations  map[Phase]time.Duration
}

// New returns a State in PhaseNone, ready for a rebuild to drive.
func New() *State {
	return &State{
		phase:     PhaseNone,
		durations: make(map[Phase]time.Duration),
	}
}

// Snapshot takes a short read-lock and returns a copy of the current
// state. Readers may observe any intermediate value but percent is never
// seen to decrease within one rebuild (spec §5 "Ordering guarantees").
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	durations := make(map[Phase]time.Duration, len(s.durations))
	for k, v := range s.durations {
		durations[k] = v
	}

	return Snapshot{
		GenerationID: s.generationID,
		Phase:        s.phase,
		Percent:      s.percent,
		Specific:     s.specific,
		Durations:    durations,
	}
}

// StartGeneration resets the state to PhaseStart for a new rebuild,
// tagged with a fresh generation id so concurrent/successive rebuilds are
// distinguishable in logs (spec §4.F, SPEC_FULL [DOMAIN-STACK] google/uuid).
func (s *State) StartGeneration(generationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generationID = generationID
	s.phase = PhaseStart
	s.percent = 0
	s.specific = ""
	s.durations = make(map[Phase]time.Duration)
	s.phaseStart = time.Now()
}

// EnterPhase records that a new phase has begun, recording how long the
// previous phase took, and advances percent by the new phase's declared
// weight.
func (s *State) EnterPhase(phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.phase != PhaseNone && s.phase != PhaseStart {
		s.durations[s.phase] = now.Sub(s.phaseStart)
	}
	s.phase = phase
	s.percent += phaseWeight[phase]
	if s.percent > 100 {
		s.percent = 100
	}
	s.specific = ""
	s.phaseStart = now
}

// SetSpecific updates the human-readable per-item string without
// changing phase or percent (spec §4.F "Decoding: /music/.../file.flac").
func (s *State) SetSpecific(specific string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specific = specific
}

// Fail transitions to PhaseFailed with a human-readable reason and
// records the in-flight phase's elapsed duration.
func (s *State) Fail(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseNone {
		s.durations[s.phase] = time.Now().Sub(s.phaseStart)
	}
	s.phase = PhaseFailed
	s.specific = reason
}

// Finish transitions to PhaseFinalize at 100 percent.
func (s *State) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations[s.phase] = time.Now().Sub(s.phaseStart)
	s.phase = PhaseFinalize
	s.percent = 100
	s.specific = ""
}
