package collection

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeV0Fixture hand-writes a version-0 body matching the layout
// decodeV0 expects. The project's real historical fixture
// (collection0_real.bin, referenced in spec §8 scenario 2) is not
// available in this environment, so this is a self-authored stand-in
// exercising the same shape: one artist, one album, two songs, no
// genre/mime/extension/key fields on the wire (see DESIGN.md).
func encodeV0Fixture(t *testing.T, buf *bytes.Buffer, timestamp int64) {
	w := newWireWriter(buf)
	w.i64(timestamp)

	// artists
	w.u64(1)
	w.str("Breaking Pixels")
	w.u32(240)
	w.u64(1) // albums
	w.u32(0)
	w.u64(2) // songs
	w.u32(0)
	w.u32(1)

	// albums
	w.u64(1)
	w.u32(0) // artist
	w.str("Vector Skies")
	w.optInt(intPtr(2010))
	w.optInt(nil)
	w.optInt(nil)
	w.u32(240)
	w.u32(2)
	w.u64(2)
	w.u32(0)
	w.u32(1)
	w.u32(1) // discs
	w.str("/music/Breaking Pixels/Vector Skies")
	w.u8(uint8(ArtUnknown))

	// songs
	w.u64(2)
	w.u32(0)
	w.str("Gradient")
	w.u32(120)
	w.u32(44100)
	w.optInt(intPtr(1))
	w.optInt(intPtr(1))
	w.str("/music/Breaking Pixels/Vector Skies/01.flac")
	w.u32(0)
	w.str("Raster")
	w.u32(120)
	w.u32(44100)
	w.optInt(intPtr(2))
	w.optInt(intPtr(1))
	w.str("/music/Breaking Pixels/Vector Skies/02.flac")

	require.NoError(t, w.flush())
}

func TestDecodeV0Migration(t *testing.T) {
	var body bytes.Buffer
	encodeV0Fixture(t, &body, 1688690421)

	c, err := decodeV0(body.Bytes())
	require.NoError(t, err)

	assert.Equal(t, 1, c.CountArtist())
	assert.Equal(t, 1, c.CountAlbum())
	assert.Equal(t, 2, c.CountSong())
	assert.EqualValues(t, 1688690421, c.Timestamp)

	assert.Equal(t, ArtistKeyFrom(0), c.Artists[0].Key)
	assert.Equal(t, AlbumKeyFrom(0), c.Albums[0].Key)
	assert.Equal(t, SongKeyFrom(0), c.Songs[0].Key)
	assert.Equal(t, SongKeyFrom(1), c.Songs[1].Key)

	assert.Equal(t, "", c.Albums[0].Genre)
	assert.Equal(t, "", c.Songs[0].Mime)
	assert.Equal(t, "", c.Songs[0].Extension)

	assert.NotEmpty(t, c.Artists[0].NameLowercase)
	assert.NotEmpty(t, c.Albums[0].TitleLowercase)

	require.NoError(t, c.CheckInvariants())
}

func TestLoadDispatchesToV0Migration(t *testing.T) {
	var body bytes.Buffer
	encodeV0Fixture(t, &body, 1688690421)

	target := filepath.Join(t.TempDir(), "collection0.bin")
	raw := append([]byte(magic), versionV0)
	raw = append(raw, body.Bytes()...)
	require.NoError(t, writeRaw(target, raw))

	c, err := Load(target)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CountArtist())
	assert.Equal(t, 2, c.CountSong())
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	target := filepath.Join(t.TempDir(), "collectionX.bin")
	raw := append([]byte(magic), 77)
	raw = append(raw, 0, 0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, writeRaw(target, raw))

	_, err := Load(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedVersion)
}
