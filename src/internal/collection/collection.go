package collection

import (
	"math/rand"
)

// Collection is the immutable in-memory catalog of artists, albums and
// songs, plus their precomputed sort orders and name map. Once published it
// is never mutated - every accessor below is a read. See spec §3.2 for the
// invariants every Collection (besides the dummy) must satisfy.
type Collection struct {
	Artists []Artist
	Albums  []Album
	Songs   []Song

	// Timestamp is the Unix seconds at which this Collection was
	// constructed.
	Timestamp int64

	names NameMap

	artistSorts artistSorts
	albumSorts  albumSorts
	songSorts   songSorts
}

// CountArtist, CountAlbum and CountSong return the number of entities of
// each kind - always equal to the length of the corresponding array
// (spec §3.2 invariant 5).
func (c *Collection) CountArtist() int { return len(c.Artists) }
func (c *Collection) CountAlbum() int  { return len(c.Albums) }
func (c *Collection) CountSong() int   { return len(c.Songs) }

// CountArt returns the number of albums whose art is ArtKnown.
func (c *Collection) CountArt() int {
	n := 0
	for _, a := range c.Albums {
		if a.Art.Variant == ArtKnown {
			n++
		}
	}
	return n
}

// Empty reports whether the Collection has no artists, albums or songs.
func (c *Collection) Empty() bool {
	return len(c.Artists) == 0 && len(c.Albums) == 0 && len(c.Songs) == 0
}

var dummy = &Collection{names: newNameMap()}

// Dummy returns the canonical, shared, zero-filled Collection. It owns no
// textures and its arrays are zero-length; every caller may safely hold the
// same shared reference (spec §3.2 invariant 9).
func Dummy() *Collection { return dummy }

// New assembles a Collection from finalized, dense, back-reference-complete
// entity arrays and a built NameMap. It is the single constructor CCD uses
// to publish a new generation (spec §4.F phases 5/6). It precomputes every
// sort order described in spec §4.C.
func New(artists []Artist, albums []Album, songs []Song, names NameMap, timestamp int64) *Collection {
	deriveLowercase(artists, albums, songs)
	return &Collection{
		Artists:     artists,
		Albums:      albums,
		Songs:       songs,
		Timestamp:   timestamp,
		names:       names,
		artistSorts: computeArtistSorts(artists),
		albumSorts:  computeAlbumSorts(artists, albums),
		songSorts:   computeSongSorts(artists, albums, songs),
	}
}

// Names exposes the Collection's NameMap for artist(name)/album(artist,
// title)/song(artist, album, title) lookups (spec §4.B).
func (c *Collection) Names() NameMap { return c.names }

// Artist, Album and Song perform direct keyed indexing into the dense
// arrays. They panic on an out-of-range key, matching the invariant that a
// Key drawn from this very Collection's sorts/maps is always in range; a
// Key retained across a Collection swap must be revalidated by the caller
// before use (spec §4.A).
func (c *Collection) Artist(k ArtistKey) *Artist { return &c.Artists[k] }
func (c *Collection) Album(k AlbumKey) *Album     { return &c.Albums[k] }
func (c *Collection) Song(k SongKey) *Song        { return &c.Songs[k] }

// GetArtist, GetAlbum and GetSong are the bounds-checked counterparts of
// Artist/Album/Song, returning ok=false instead of panicking.
func (c *Collection) GetArtist(k ArtistKey) (*Artist, bool) {
	if int(k) >= len(c.Artists) {
		return nil, false
	}
	return &c.Artists[k], true
}
func (c *Collection) GetAlbum(k AlbumKey) (*Album, bool) {
	if int(k) >= len(c.Albums) {
		return nil, false
	}
	return &c.Albums[k], true
}
func (c *Collection) GetSong(k SongKey) (*Song, bool) {
	if int(k) >= len(c.Songs) {
		return nil, false
	}
	return &c.Songs[k], true
}

// Walk returns the artist, album and song reachable from a song key, or
// ok=false if the song key is out of range.
func (c *Collection) Walk(k SongKey) (artist *Artist, album *Album, song *Song, ok bool) {
	song, ok = c.GetSong(k)
	if !ok {
		return nil, nil, nil, false
	}
	album = &c.Albums[song.Album]
	artist = &c.Artists[album.Artist]
	return artist, album, song, true
}

// ArtistFromAlbum, ArtistFromSong and AlbumFromSong resolve owning
// entities by key, without requiring the caller to walk intermediate
// arrays by hand.
func (c *Collection) ArtistFromAlbum(k AlbumKey) *Artist {
	return &c.Artists[c.Albums[k].Artist]
}
func (c *Collection) AlbumFromSong(k SongKey) *Album {
	return &c.Albums[c.Songs[k].Album]
}
func (c *Collection) ArtistFromSong(k SongKey) *Artist {
	return c.ArtistFromAlbum(c.Songs[k].Album)
}

// AllSongsByArtist returns every song key belonging to the artist, in the
// artist's own song order (albums order then intra-album order).
func (c *Collection) AllSongsByArtist(k ArtistKey) []SongKey {
	return c.Artists[k].Songs
}

// NextAlbum and PreviousAlbum return the album key immediately
// after/before the given one among the owning artist's albums, wrapping
// around at the ends.
func (c *Collection) NextAlbum(k AlbumKey) AlbumKey {
	return c.adjacentAlbum(k, 1)
}
func (c *Collection) PreviousAlbum(k AlbumKey) AlbumKey {
	return c.adjacentAlbum(k, -1)
}

func (c *Collection) adjacentAlbum(k AlbumKey, delta int) AlbumKey {
	artist := c.ArtistFromAlbum(k)
	albums := artist.Albums
	idx := indexOfAlbum(albums, k)
	if idx < 0 {
		return k
	}
	n := len(albums)
	next := ((idx+delta)%n + n) % n
	return albums[next]
}

func indexOfAlbum(albums []AlbumKey, k AlbumKey) int {
	for i, a := range albums {
		if a == k {
			return i
		}
	}
	return -1
}

// NextSong and PreviousSong return the song key immediately after/before
// the given one within its owning album, wrapping around at the ends.
func (c *Collection) NextSong(k SongKey) SongKey {
	return c.adjacentSong(k, 1)
}
func (c *Collection) PreviousSong(k SongKey) SongKey {
	return c.adjacentSong(k, -1)
}

func (c *Collection) adjacentSong(k SongKey, delta int) SongKey {
	album := c.AlbumFromSong(k)
	songs := album.Songs
	idx := indexOfSong(songs, k)
	if idx < 0 {
		return k
	}
	n := len(songs)
	next := ((idx+delta)%n + n) % n
	return songs[next]
}

func indexOfSong(songs []SongKey, k SongKey) int {
	for i, s := range songs {
		if s == k {
			return i
		}
	}
	return -1
}

// RandArtist, RandAlbum and RandSong return a uniformly chosen key. If
// exclude is non-nil, the returned key never equals *exclude unless it is
// the only key available. ok is false only when the Collection has zero
// entities of that kind.
func (c *Collection) RandArtist(exclude *ArtistKey) (ArtistKey, bool) {
	return randKey(len(c.Artists), exclude, ArtistKeyFrom)
}
func (c *Collection) RandAlbum(exclude *AlbumKey) (AlbumKey, bool) {
	return randKey(len(c.Albums), exclude, AlbumKeyFrom)
}
func (c *Collection) RandSong(exclude *SongKey) (SongKey, bool) {
	return randKey(len(c.Songs), exclude, SongKeyFrom)
}

func randKey[K comparable](n int, exclude *K, from func(uint32) K) (K, bool) {
	var zero K
	if n == 0 {
		return zero, false
	}
	if n == 1 || exclude == nil {
		return from(uint32(rand.Intn(n))), true
	}
	for {
		k := from(uint32(rand.Intn(n)))
		if k != *exclude {
			return k, true
		}
	}
}

// RandArtists, RandAlbums and RandSongs return a shuffled permutation of
// every key of that kind.
func (c *Collection) RandArtists() []ArtistKey { return shuffledKeys[ArtistKey](len(c.Artists)) }
func (c *Collection) RandAlbums() []AlbumKey   { return shuffledKeys[AlbumKey](len(c.Albums)) }
func (c *Collection) RandSongs() []SongKey     { return shuffledKeys[SongKey](len(c.Songs)) }

func shuffledKeys[K ~uint32](n int) []K {
	perm := rand.Perm(n)
	return toKeys[K](perm)
}
