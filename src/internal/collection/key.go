package collection

import "fmt"

// ArtistKey, AlbumKey and SongKey are opaque indices into the Collection's
// three dense arrays. They are distinct defined types so that a key of one
// kind can never be used to index the array of another kind without an
// explicit conversion - there is no arithmetic across key kinds, only
// zero/from/inner.
type (
	ArtistKey uint32
	AlbumKey  uint32
	SongKey   uint32
)

// ZeroArtistKey, ZeroAlbumKey and ZeroSongKey are the keys of the first
// entity of each kind. They double as a usable "no entity yet" sentinel only
// when a Collection is known to be empty - callers must check count_* before
// relying on that.
const (
	ZeroArtistKey ArtistKey = 0
	ZeroAlbumKey  AlbumKey  = 0
	ZeroSongKey   SongKey   = 0
)

// ArtistKeyFrom, AlbumKeyFrom and SongKeyFrom convert an unsigned integer
// into the corresponding key type.
func ArtistKeyFrom(n uint32) ArtistKey { return ArtistKey(n) }
func AlbumKeyFrom(n uint32) AlbumKey   { return AlbumKey(n) }
func SongKeyFrom(n uint32) SongKey     { return SongKey(n) }

// Inner returns the underlying unsigned integer of a key.
func (k ArtistKey) Inner() uint32 { return uint32(k) }
func (k AlbumKey) Inner() uint32  { return uint32(k) }
func (k SongKey) Inner() uint32   { return uint32(k) }

func (k ArtistKey) String() string { return fmt.Sprintf("artist#%d", uint32(k)) }
func (k AlbumKey) String() string  { return fmt.Sprintf("album#%d", uint32(k)) }
func (k SongKey) String() string   { return fmt.Sprintf("song#%d", uint32(k)) }

// Key ties a particular song to its owning album and artist. It exists for
// external references (playback queues, playlists) that must survive a
// Collection swap only if revalidated against the new Collection - a stale
// Key is never dereferenced blindly by the core.
type Key struct {
	Artist ArtistKey
	Album  AlbumKey
	Song   SongKey
}

// Zero reports whether every component of the compound key is its zero
// value. This is not the same as "valid" - key zero may be a real entity in
// a non-empty Collection.
func (k Key) Zero() bool {
	return k.Artist == ZeroArtistKey && k.Album == ZeroAlbumKey && k.Song == ZeroSongKey
}

// Keychain is the result shape for searches: three independent, ordered key
// sets, one per entity kind.
type Keychain struct {
	Artists []ArtistKey
	Albums  []AlbumKey
	Songs   []SongKey
}

// Len returns the total number of keys across all three kinds.
func (kc Keychain) Len() int {
	return len(kc.Artists) + len(kc.Albums) + len(kc.Songs)
}
