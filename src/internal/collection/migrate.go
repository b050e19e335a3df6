package collection

import (
	"bytes"

	"github.com/pkg/errors"
)

// migrate.go implements component H: decoders for historical Collection
// layouts, each converting its intermediate struct into the current
// model without touching the filesystem (spec §4.H/§9 "Migration without
// filesystem rescan").
//
// versionV0 is the only historical layout this module has ever shipped:
// it predates the `genre`, `mime` and `extension` fields and never
// persisted a `key` (entities were always in dense declaration order, so
// key == position held implicitly). Decoding it is therefore lossy with
// respect to those three fields only, exactly as spec §9 calls out.
const versionV0 uint8 = 0

func decodeHistorical(version uint8, body []byte) (*Collection, error) {
	switch version {
	case versionV0:
		return decodeV0(body)
	default:
		return nil, errors.Wrapf(ErrUnrecognizedVersion, "version byte %d", version)
	}
}

type v0Artist struct {
	Name    string
	Runtime uint32
	Albums  []uint32
	Songs   []uint32
}

type v0Album struct {
	Artist    uint32
	Title     string
	Release   Date
	Runtime   uint32
	SongCount uint32
	Songs     []uint32
	Discs     uint32
	Path      string
	Art       Art
}

type v0Song struct {
	Album      uint32
	Title      string
	Runtime    uint32
	SampleRate uint32
	Track      *int
	Disc       *int
	Path       string
}

// decodeV0 parses a version-0 body and converts every intermediate
// struct into its current-layout counterpart: `key` is assigned from
// array position (§9), `genre` defaults to the zero value (empty
// string, meaning "none" per entity.go), and `mime`/`extension` default
// to "" since recovering them would require re-opening each file.
func decodeV0(body []byte) (*Collection, error) {
	r := newWireReader(bytes.NewReader(body))

	timestamp := r.i64()

	nArtists := r.u64()
	v0Artists := make([]v0Artist, 0, nArtists)
	for i := uint64(0); i < nArtists && r.err == nil; i++ {
		v0Artists = append(v0Artists, decodeV0Artist(r))
	}

	nAlbums := r.u64()
	v0Albums := make([]v0Album, 0, nAlbums)
	for i := uint64(0); i < nAlbums && r.err == nil; i++ {
		v0Albums = append(v0Albums, decodeV0Album(r))
	}

	nSongs := r.u64()
	v0Songs := make([]v0Song, 0, nSongs)
	for i := uint64(0); i < nSongs && r.err == nil; i++ {
		v0Songs = append(v0Songs, decodeV0Song(r))
	}

	if r.err != nil {
		return nil, errors.Wrap(r.err, "cannot decode version-0 body")
	}

	artists := make([]Artist, len(v0Artists))
	for i, a := range v0Artists {
		artists[i] = Artist{
			Key:     ArtistKeyFrom(uint32(i)),
			Name:    a.Name,
			Runtime: a.Runtime,
			Albums:  toAlbumKeys(a.Albums),
			Songs:   toSongKeys(a.Songs),
		}
	}

	albums := make([]Album, len(v0Albums))
	for i, a := range v0Albums {
		albums[i] = Album{
			Key:       AlbumKeyFrom(uint32(i)),
			Artist:    ArtistKeyFrom(a.Artist),
			Title:     a.Title,
			Release:   a.Release,
			Runtime:   a.Runtime,
			SongCount: int(a.SongCount),
			Songs:     toSongKeys(a.Songs),
			Discs:     int(a.Discs),
			Path:      a.Path,
			Art:       a.Art,
			Genre:     "",
		}
	}

	songs := make([]Song, len(v0Songs))
	for i, s := range v0Songs {
		songs[i] = Song{
			Key:        SongKeyFrom(uint32(i)),
			Album:      AlbumKeyFrom(s.Album),
			Title:      s.Title,
			Runtime:    s.Runtime,
			SampleRate: s.SampleRate,
			Track:      s.Track,
			Disc:       s.Disc,
			Mime:       "",
			Extension:  "",
			Path:       s.Path,
		}
	}

	names := buildNameMap(artists, albums, songs)

	return New(artists, albums, songs, names, timestamp), nil
}

func decodeV0Artist(r *wireReader) v0Artist {
	var a v0Artist
	a.Name = r.str()
	a.Runtime = r.u32()
	n := r.u64()
	a.Albums = make([]uint32, n)
	for i := range a.Albums {
		a.Albums[i] = r.u32()
	}
	n = r.u64()
	a.Songs = make([]uint32, n)
	for i := range a.Songs {
		a.Songs[i] = r.u32()
	}
	return a
}

func decodeV0Album(r *wireReader) v0Album {
	var a v0Album
	a.Artist = r.u32()
	a.Title = r.str()
	a.Release.Year = r.optInt()
	a.Release.Month = r.optInt()
	a.Release.Day = r.optInt()
	a.Runtime = r.u32()
	a.SongCount = r.u32()
	n := r.u64()
	a.Songs = make([]uint32, n)
	for i := range a.Songs {
		a.Songs[i] = r.u32()
	}
	a.Discs = r.u32()
	a.Path = r.str()
	a.Art = decodeArt(r)
	return a
}

func decodeV0Song(r *wireReader) v0Song {
	var s v0Song
	s.Album = r.u32()
	s.Title = r.str()
	s.Runtime = r.u32()
	s.SampleRate = r.u32()
	s.Track = r.optInt()
	s.Disc = r.optInt()
	s.Path = r.str()
	return s
}

func toAlbumKeys(raw []uint32) []AlbumKey {
	out := make([]AlbumKey, len(raw))
	for i, v := range raw {
		out[i] = AlbumKeyFrom(v)
	}
	return out
}

func toSongKeys(raw []uint32) []SongKey {
	out := make([]SongKey, len(raw))
	for i, v := range raw {
		out[i] = SongKeyFrom(v)
	}
	return out
}
