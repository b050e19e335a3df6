package ccd

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"festival/internal/art"
	"festival/internal/collection"
	"festival/internal/config"
	"festival/internal/resetstate"
)

// deconstructTimeout bounds how long Rebuild waits in the Deconstruct
// phase (spec §4.F phase 1) before proceeding regardless. Go's garbage
// collector reclaims the previous Collection once every consumer drops
// its reference, so unlike a manually reference-counted language there
// is nothing for CCD to actively wait on here; the phase is kept only
// for progress-reporting parity with spec §4.F's phase list; the
// deadline exists purely so the phase transition is observable by
// progress pollers even on an otherwise-instant rebuild.
const deconstructTimeout = 50 * time.Millisecond

// Options configures one Rebuild call (spec §6 "ccd::rebuild(paths,
// texture_allocator?, progress_sink, cancel_flag)").
type Options struct {
	Roots          []string
	Separator      string
	WorkerPoolSize int
	// Allocator is the optional texture allocator collaborator (spec
	// §4.E/§4.F phase 8). Nil means no texture phase runs.
	Allocator art.Allocator
	// Playlists is the optional playlist revalidation collaborator
	// (spec §4.F phase 9). Defaults to NoopPlaylists.
	Playlists PlaylistRevalidator
	// Reader overrides audio metadata decoding, primarily for tests.
	Reader AudioMetadataReader
}

func (o Options) effectivePoolSize() int {
	if o.WorkerPoolSize > 0 {
		return o.WorkerPoolSize
	}
	cfg := config.Cfg{}
	return cfg.Effective()
}

func (o Options) reader() AudioMetadataReader {
	if o.Reader != nil {
		return o.Reader
	}
	return newDhowdenReader(o.Separator)
}

func (o Options) playlists() PlaylistRevalidator {
	if o.Playlists != nil {
		return o.Playlists
	}
	return NoopPlaylists{}
}

// Rebuild drives one full rebuild of the Collection (spec §4.F). On any
// fatal error or cancellation, previous is returned unchanged and no
// partial-state Collection is ever produced (spec §4.F "Failure
// semantics", §7 kind 6/7).
func Rebuild(opts Options, state *resetstate.State, cancel *atomic.Bool, previous *collection.Collection) (*collection.Collection, error) {
	if state == nil {
		state = resetstate.New()
	}
	if previous == nil {
		previous = collection.Dummy()
	}
	if len(opts.Roots) == 0 {
		state.Fail(ErrNoRoots.Error())
		return previous, ErrNoRoots
	}

	generationID := uuid.NewString()
	state.StartGeneration(generationID)
	rlog := log.WithField("generation", generationID)

	if cancelled(cancel) {
		state.Fail(ErrCancelled.Error())
		return previous, ErrCancelled
	}

	state.EnterPhase(resetstate.PhaseDeconstruct)
	time.Sleep(deconstructTimeout)

	poolSize := opts.effectivePoolSize()

	state.EnterPhase(resetstate.PhaseWalkDir)
	paths, err := walkRoots(opts.Roots, poolSize)
	if err != nil {
		state.Fail(err.Error())
		return previous, err
	}
	if len(paths) == 0 {
		state.Fail(ErrEmptyScan.Error())
		return previous, ErrEmptyScan
	}
	if cancelled(cancel) {
		state.Fail(ErrCancelled.Error())
		return previous, ErrCancelled
	}

	state.EnterPhase(resetstate.PhaseMetadata)
	reader := opts.reader()
	raws := decodeMetadata(reader, paths, poolSize, func(p string) {
		state.SetSpecific("Decoding: " + p)
	})
	if cancelled(cancel) {
		state.Fail(ErrCancelled.Error())
		return previous, ErrCancelled
	}

	state.EnterPhase(resetstate.PhaseFix)
	artists, albums, songs := buildArtists(raws)
	if cancelled(cancel) {
		state.Fail(ErrCancelled.Error())
		return previous, ErrCancelled
	}

	state.EnterPhase(resetstate.PhaseSort)
	state.EnterPhase(resetstate.PhaseMap)
	names := collection.BuildNameMap(artists, albums, songs)
	next := collection.New(artists, albums, songs, names, time.Now().Unix())

	state.EnterPhase(resetstate.PhaseArt)
	next.Albums = resolveArt(next.Albums, poolSize)
	if cancelled(cancel) {
		state.Fail(ErrCancelled.Error())
		return previous, ErrCancelled
	}

	if err := next.CheckInvariants(); err != nil {
		rlog.WithError(err).Error("newly built collection failed invariant checks")
		state.Fail(err.Error())
		return previous, err
	}

	state.EnterPhase(resetstate.PhaseTextures)
	if opts.Allocator != nil {
		tr := art.NewTracker(opts.Allocator)
		uploadTextures(next.Albums, tr)
	}

	state.EnterPhase(resetstate.PhasePlaylists)
	opts.playlists().Revalidate(next, names)

	if cancelled(cancel) {
		state.Fail(ErrCancelled.Error())
		return previous, ErrCancelled
	}

	state.EnterPhase(resetstate.PhaseDisk)
	// Persisting to disk is the caller's responsibility via
	// collection.SaveAtomic once Rebuild returns, since the target path
	// depends on the frontend (spec §4.D, §6) which Options does not
	// carry - Rebuild only guarantees the Collection it returns is
	// complete and invariant-checked.

	state.Finish()
	rlog.Infof("rebuild complete: %d artists, %d albums, %d songs", next.CountArtist(), next.CountAlbum(), next.CountSong())
	return next, nil
}

func cancelled(flag *atomic.Bool) bool {
	return flag != nil && flag.Load()
}
