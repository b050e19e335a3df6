package ccd

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festival/internal/collection"
	"festival/internal/resetstate"
)

// fakeReader is a deterministic AudioMetadataReader, so rebuild tests don't
// depend on real audio files or tag decoding.
type fakeReader struct {
	byPath map[string]rawSong
}

func (r fakeReader) Read(path string) (rawSong, error) {
	s, ok := r.byPath[path]
	if !ok {
		return rawSong{}, os.ErrNotExist
	}
	return s, nil
}

func track(n int) *int { return &n }

// threeArtistFixture builds the scan-tree and matching fake reader for the
// three-artist/four-album/seven-song scenario (spec §8 scenario 1).
func threeArtistFixture(t *testing.T, root string) fakeReader {
	t.Helper()
	byPath := map[string]rawSong{}

	add := func(artist, album, title string, trk int, path string) {
		p := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("fake-audio"), 0o644))
		byPath[p] = rawSong{
			ArtistName: artist,
			AlbumTitle: album,
			AlbumPath:  filepath.Dir(p),
			Title:      title,
			Runtime:    180,
			Track:      track(trk),
			Path:       p,
		}
	}

	add("Breaking Pixels", "Vector Skies", "Gradient", 1, "bp/vs/01.flac")
	add("Breaking Pixels", "Vector Skies", "Raster", 2, "bp/vs/02.flac")
	add("Breaking Pixels", "Afterglow", "Dusk", 1, "bp/ag/01.flac")
	add("Monochrome Choir", "Static Hymns", "Noise Floor", 1, "mc/sh/01.flac")
	add("Monochrome Choir", "Static Hymns", "Carrier", 2, "mc/sh/02.flac")
	add("Monochrome Choir", "Static Hymns", "Silence", 3, "mc/sh/03.flac")
	add("Driftwood Parade", "Low Tide", "Undertow", 1, "dp/lt/01.flac")

	return fakeReader{byPath: byPath}
}

func TestRebuildBuildsCollectionFromFixture(t *testing.T) {
	root := t.TempDir()
	reader := threeArtistFixture(t, root)

	state := resetstate.New()
	c, err := Rebuild(Options{Roots: []string{root}, Reader: reader}, state, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, 3, c.CountArtist())
	assert.Equal(t, 4, c.CountAlbum())
	assert.Equal(t, 7, c.CountSong())

	snap := state.Snapshot()
	assert.Equal(t, resetstate.PhaseFinalize, snap.Phase)
	assert.Equal(t, 100, snap.Percent)

	_, ok := c.Names().Artist("Breaking Pixels")
	assert.True(t, ok)
}

func TestRebuildEmptyScanWhenNoCandidateFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("not audio"), 0o644))

	state := resetstate.New()
	prev := collection.Dummy()
	c, err := Rebuild(Options{Roots: []string{root}}, state, nil, prev)

	assert.ErrorIs(t, err, ErrEmptyScan)
	assert.Same(t, prev, c)
	assert.Equal(t, resetstate.PhaseFailed, state.Snapshot().Phase)
}

func TestRebuildNoRootsReturnsErrNoRoots(t *testing.T) {
	state := resetstate.New()
	prev := collection.Dummy()
	c, err := Rebuild(Options{}, state, nil, prev)

	assert.ErrorIs(t, err, ErrNoRoots)
	assert.Same(t, prev, c)
}

func TestRebuildCancelledBeforeStartPreservesPrevious(t *testing.T) {
	root := t.TempDir()
	reader := threeArtistFixture(t, root)

	var cancel atomic.Bool
	cancel.Store(true)

	state := resetstate.New()
	prev := collection.Dummy()
	c, err := Rebuild(Options{Roots: []string{root}, Reader: reader}, state, &cancel, prev)

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Same(t, prev, c)
	assert.Equal(t, resetstate.PhaseFailed, state.Snapshot().Phase)
}

func TestRebuildUsesProvidedPreviousOnFailure(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(root, 0o755))

	prevCollection := collection.New(nil, nil, nil, collection.NameMap{}, 42)

	state := resetstate.New()
	c, err := Rebuild(Options{Roots: []string{root}}, state, nil, prevCollection)

	require.Error(t, err)
	assert.Same(t, prevCollection, c)
}
