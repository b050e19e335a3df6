package collection

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	l "github.com/sirupsen/logrus"
)

var log = l.WithFields(l.Fields{"pkg": "collection"})

// magic is the 24-byte ASCII header every persisted file begins with
// (spec §4.D/§6).
const magic = "-----BEGIN FESTIVAL-----"

// CurrentVersion is the version byte written by SaveAtomic. Version
// migration (migrate.go) is keyed off the version byte read back by Load.
const CurrentVersion uint8 = 1

func init() {
	if len(magic) != 24 {
		panic("collection: magic header must be exactly 24 bytes")
	}
}

// encodeBody writes everything after the version byte: timestamp, then the
// three dense arrays. The NameMap is never persisted - it is always
// rebuilt from the arrays on load (spec §4.H).
func encodeBody(w *wireWriter, c *Collection) {
	w.i64(c.Timestamp)

	w.u64(uint64(len(c.Artists)))
	for _, a := range c.Artists {
		encodeArtist(w, a)
	}
	w.u64(uint64(len(c.Albums)))
	for _, al := range c.Albums {
		encodeAlbum(w, al)
	}
	w.u64(uint64(len(c.Songs)))
	for _, s := range c.Songs {
		encodeSong(w, s)
	}
}

func encodeArtist(w *wireWriter, a Artist) {
	w.u32(uint32(a.Key))
	w.str(a.Name)
	w.u32(a.Runtime)
	w.u64(uint64(len(a.Albums)))
	for _, k := range a.Albums {
		w.u32(uint32(k))
	}
	w.u64(uint64(len(a.Songs)))
	for _, k := range a.Songs {
		w.u32(uint32(k))
	}
}

func encodeAlbum(w *wireWriter, a Album) {
	w.u32(uint32(a.Key))
	w.u32(uint32(a.Artist))
	w.str(a.Title)
	w.optInt(a.Release.Year)
	w.optInt(a.Release.Month)
	w.optInt(a.Release.Day)
	w.u32(a.Runtime)
	w.u32(uint32(a.SongCount))
	w.u64(uint64(len(a.Songs)))
	for _, k := range a.Songs {
		w.u32(uint32(k))
	}
	w.u32(uint32(a.Discs))
	w.str(a.Path)
	encodeArt(w, a.Art)
	w.optStr(a.Genre, a.Genre != "")
}

func encodeArt(w *wireWriter, art Art) {
	w.u8(uint8(art.Variant))
	switch art.Variant {
	case ArtBytes:
		w.bytes(art.Raw)
	case ArtKnown:
		w.u32(uint32(art.Width))
		w.u32(uint32(art.Height))
		w.bytes(art.Handle)
	}
}

func encodeSong(w *wireWriter, s Song) {
	w.u32(uint32(s.Key))
	w.u32(uint32(s.Album))
	w.str(s.Title)
	w.u32(s.Runtime)
	w.u32(s.SampleRate)
	w.optInt(s.Track)
	w.optInt(s.Disc)
	w.str(s.Mime)
	w.str(s.Extension)
	w.str(s.Path)
}

func decodeBodyCurrent(r *wireReader) (*Collection, error) {
	timestamp := r.i64()

	nArtists := r.u64()
	artists := make([]Artist, 0, nArtists)
	for i := uint64(0); i < nArtists && r.err == nil; i++ {
		artists = append(artists, decodeArtist(r))
	}

	nAlbums := r.u64()
	albums := make([]Album, 0, nAlbums)
	for i := uint64(0); i < nAlbums && r.err == nil; i++ {
		albums = append(albums, decodeAlbum(r))
	}

	nSongs := r.u64()
	songs := make([]Song, 0, nSongs)
	for i := uint64(0); i < nSongs && r.err == nil; i++ {
		songs = append(songs, decodeSong(r))
	}

	if r.err != nil {
		return nil, errors.Wrap(r.err, "cannot decode collection body")
	}

	names := buildNameMap(artists, albums, songs)

	return New(artists, albums, songs, names, timestamp), nil
}

func decodeArtist(r *wireReader) Artist {
	var a Artist
	a.Key = ArtistKey(r.u32())
	a.Name = r.str()
	a.Runtime = r.u32()
	n := r.u64()
	a.Albums = make([]AlbumKey, n)
	for i := range a.Albums {
		a.Albums[i] = AlbumKey(r.u32())
	}
	n = r.u64()
	a.Songs = make([]SongKey, n)
	for i := range a.Songs {
		a.Songs[i] = SongKey(r.u32())
	}
	return a
}

func decodeAlbum(r *wireReader) Album {
	var a Album
	a.Key = AlbumKey(r.u32())
	a.Artist = ArtistKey(r.u32())
	a.Title = r.str()
	a.Release.Year = r.optInt()
	a.Release.Month = r.optInt()
	a.Release.Day = r.optInt()
	a.Runtime = r.u32()
	a.SongCount = int(r.u32())
	n := r.u64()
	a.Songs = make([]SongKey, n)
	for i := range a.Songs {
		a.Songs[i] = SongKey(r.u32())
	}
	a.Discs = int(r.u32())
	a.Path = r.str()
	a.Art = decodeArt(r)
	if genre, present := r.optStr(); present {
		a.Genre = genre
	}
	return a
}

func decodeArt(r *wireReader) Art {
	variant := ArtVariant(r.u8())
	art := Art{Variant: variant}
	switch variant {
	case ArtBytes:
		art.Raw = r.bytes()
	case ArtKnown:
		art.Width = int(r.u32())
		art.Height = int(r.u32())
		art.Handle = r.bytes()
		art.Length = len(art.Handle)
	}
	return art
}

func decodeSong(r *wireReader) Song {
	var s Song
	s.Key = SongKey(r.u32())
	s.Album = AlbumKey(r.u32())
	s.Title = r.str()
	s.Runtime = r.u32()
	s.SampleRate = r.u32()
	s.Track = r.optInt()
	s.Disc = r.optInt()
	s.Mime = r.str()
	s.Extension = r.str()
	s.Path = r.str()
	return s
}

// SaveAtomic encodes c and publishes it at targetPath atomically: it
// writes to a sibling temp file in the same directory, fsyncs it, then
// renames it over targetPath so concurrent readers either see the whole
// old file or the whole new one, never a partial write (spec §4.D, §5).
func SaveAtomic(c *Collection, targetPath string) error {
	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "cannot create directory %q for collection", dir)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf("collection.bin.tmp.%d.%d", os.Getpid(), time.Now().UnixNano()))

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "cannot create temp file %q", tmpPath)
	}
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := f.WriteString(magic); err != nil {
		f.Close()
		return errors.Wrap(err, "cannot write magic header")
	}
	if _, err := f.Write([]byte{CurrentVersion}); err != nil {
		f.Close()
		return errors.Wrap(err, "cannot write version byte")
	}

	ww := newWireWriter(f)
	encodeBody(ww, c)
	if err := ww.flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "cannot encode collection body")
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot fsync %q", tmpPath)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %q", tmpPath)
	}

	if err := os.Rename(tmpPath, targetPath); err != nil {
		return errors.Wrapf(err, "cannot rename %q to %q", tmpPath, targetPath)
	}

	log.Tracef("saved collection to %q (%d artists, %d albums, %d songs)", targetPath, len(c.Artists), len(c.Albums), len(c.Songs))
	return nil
}

// Load reads the file at path, validates its header, and decodes its body.
// A version mismatch dispatches to the matching historical decoder
// (migrate.go); an unreadable body after a recognized version falls back
// to the dummy Collection with the error logged, per spec §4.H load
// policy. Load does not memory-map the file (see DESIGN.md): it reads the
// whole file into memory, which for a single-process single-writer
// catalog is simpler than introducing an mmap dependency no pack example
// ever calls, at the cost of one full read per load.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read collection file %q", path)
	}

	if len(data) < len(magic)+1 {
		return nil, errors.Wrapf(ErrTruncatedBody, "file %q is shorter than the header", path)
	}
	if string(data[:len(magic)]) != magic {
		return nil, errors.Wrapf(ErrBadMagic, "file %q", path)
	}
	version := data[len(magic)]
	body := data[len(magic)+1:]

	if version == CurrentVersion {
		r := newWireReader(bytes.NewReader(body))
		c, err := decodeBodyCurrent(r)
		if err != nil {
			log.WithError(err).Warnf("body decode failed for %q, falling back to empty collection", path)
			return Dummy(), errors.Wrapf(err, "cannot decode body of %q", path)
		}
		return c, nil
	}

	c, err := decodeHistorical(version, body)
	if err != nil {
		log.WithError(err).Warnf("migration failed for %q (version %d), falling back to empty collection", path, version)
		return Dummy(), errors.Wrapf(err, "cannot migrate %q from version %d", path, version)
	}
	return c, nil
}
