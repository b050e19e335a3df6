package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func fixtureCollection() *Collection {
	artists := []Artist{
		{Key: ArtistKeyFrom(0), Name: "Alpha", Runtime: 200, Albums: []AlbumKey{0}, Songs: []SongKey{0, 1}},
	}
	albums := []Album{
		{
			Key: AlbumKeyFrom(0), Artist: ArtistKeyFrom(0), Title: "First",
			Release: Date{Year: intPtr(2001), Month: intPtr(3), Day: nil},
			Runtime: 200, SongCount: 2, Songs: []SongKey{0, 1}, Discs: 1,
			Path: "/music/Alpha/First", Genre: "Rock",
			Art: Art{Variant: ArtKnown, Width: 500, Height: 500, Handle: make([]byte, 750000), Length: 750000},
		},
	}
	songs := []Song{
		{Key: SongKeyFrom(0), Album: AlbumKeyFrom(0), Title: "One", Runtime: 100, SampleRate: 44100, Track: intPtr(1), Disc: intPtr(1), Mime: "audio/mpeg", Extension: "mp3", Path: "/music/Alpha/First/01.mp3"},
		{Key: SongKeyFrom(1), Album: AlbumKeyFrom(0), Title: "Two", Runtime: 100, SampleRate: 44100, Track: intPtr(2), Disc: intPtr(1), Mime: "audio/mpeg", Extension: "mp3", Path: "/music/Alpha/First/02.mp3"},
	}
	deriveLowercase(artists, albums, songs)
	names := buildNameMap(artists, albums, songs)
	return New(artists, albums, songs, names, 1700000000)
}

func TestSaveAtomicLoadRoundTrip(t *testing.T) {
	c := fixtureCollection()
	target := filepath.Join(t.TempDir(), "state", "collection.bin")

	require.NoError(t, SaveAtomic(c, target))

	loaded, err := Load(target)
	require.NoError(t, err)

	assert.Equal(t, c.Timestamp, loaded.Timestamp)
	assert.Equal(t, c.Artists, loaded.Artists)
	assert.Equal(t, c.Albums, loaded.Albums)
	assert.Equal(t, c.Songs, loaded.Songs)
	assert.NoError(t, loaded.CheckInvariants())
}

func TestSaveAtomicLeavesNoTempFile(t *testing.T) {
	c := fixtureCollection()
	dir := t.TempDir()
	target := filepath.Join(dir, "collection.bin")
	require.NoError(t, SaveAtomic(c, target))

	entries, err := filepath.Glob(filepath.Join(dir, "collection.bin.tmp.*"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	target := filepath.Join(t.TempDir(), "collection.bin")
	require.NoError(t, writeRaw(target, []byte("not-a-festival-header-xx\x01")))

	_, err := Load(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestLoadRejectsTruncatedHeader(t *testing.T) {
	target := filepath.Join(t.TempDir(), "collection.bin")
	require.NoError(t, writeRaw(target, []byte("short")))

	_, err := Load(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncatedBody)
}

func TestEmptyRoundTripEqualsDummyOnLogicalFields(t *testing.T) {
	empty := New(nil, nil, nil, newNameMap(), 42)
	target := filepath.Join(t.TempDir(), "collection.bin")
	require.NoError(t, SaveAtomic(empty, target))

	loaded, err := Load(target)
	require.NoError(t, err)

	assert.True(t, loaded.Empty())
	assert.Equal(t, Dummy().Empty(), loaded.Empty())
	assert.Equal(t, 0, loaded.CountArtist())
	assert.Equal(t, 0, loaded.CountAlbum())
	assert.Equal(t, 0, loaded.CountSong())
}

func writeRaw(path string, b []byte) error {
	return os.WriteFile(path, b, 0o644)
}
