package resetstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentMonotonicAcrossPhases(t *testing.T) {
	s := New()
	s.StartGeneration("gen-1")

	last := 0
	for _, p := range []Phase{PhaseDeconstruct, PhaseWalkDir, PhaseMetadata, PhaseFix, PhaseSort, PhaseMap, PhaseArt, PhaseTextures, PhasePlaylists, PhaseDisk} {
		s.EnterPhase(p)
		snap := s.Snapshot()
		assert.GreaterOrEqual(t, snap.Percent, last)
		last = snap.Percent
	}
	assert.Equal(t, 100, last)
}

func TestSpecificDoesNotChangePhaseOrPercent(t *testing.T) {
	s := New()
	s.StartGeneration("gen-2")
	s.EnterPhase(PhaseMetadata)
	before := s.Snapshot()

	s.SetSpecific("Decoding: /music/a/b.flac")

	after := s.Snapshot()
	assert.Equal(t, before.Phase, after.Phase)
	assert.Equal(t, before.Percent, after.Percent)
	assert.Equal(t, "Decoding: /music/a/b.flac", after.Specific)
}

func TestFailRecordsReasonAndPhase(t *testing.T) {
	s := New()
	s.StartGeneration("gen-3")
	s.EnterPhase(PhaseWalkDir)

	s.Fail("no candidate files found")

	snap := s.Snapshot()
	assert.Equal(t, PhaseFailed, snap.Phase)
	assert.Equal(t, "no candidate files found", snap.Specific)
}

func TestFinishReaches100Percent(t *testing.T) {
	s := New()
	s.StartGeneration("gen-4")
	s.EnterPhase(PhaseDisk)

	s.Finish()

	snap := s.Snapshot()
	assert.Equal(t, PhaseFinalize, snap.Phase)
	assert.Equal(t, 100, snap.Percent)
}

func TestDurationsAccumulatePerPhase(t *testing.T) {
	s := New()
	s.StartGeneration("gen-5")
	s.EnterPhase(PhaseWalkDir)
	s.EnterPhase(PhaseMetadata)
	snap := s.Snapshot()

	_, ok := snap.Durations[PhaseWalkDir]
	assert.True(t, ok)
}
