package ccd

import (
	"fmt"
	"sort"

	"festival/internal/collection"
)

// buildArtists is the Fix phase (spec §4.F phase 4): it groups raw,
// per-file triples into entities, deduplicates by casefolded name,
// disambiguates colliding song titles, assigns dense keys in insertion
// order, populates back-references, and sums runtimes bottom-up.
func buildArtists(raws []rawSong) ([]collection.Artist, []collection.Album, []collection.Song) {
	ab := newArtistBuilder()
	for _, raw := range raws {
		ab.add(raw)
	}
	return ab.finish()
}

type songDraft struct {
	title      string
	runtime    uint32
	sampleRate uint32
	track      *int
	disc       *int
	mime       string
	extension  string
	path       string
	artBytes   []byte
}

type albumDraft struct {
	title      string
	release    collection.Date
	path       string
	genre      string
	artBytes   []byte
	runtimeSum uint32
	songs      []*songDraft
	// titlesSeen maps a casefolded song title to how many times it has
	// been seen, so the Nth occurrence (N >= 2) gets a stable " (N)"
	// suffix.
	titlesSeen map[string]int
}

type artistDraft struct {
	name    string
	runtime uint32
	albums  []*albumDraft
}

// artistBuilder accumulates drafts keyed by casefolded name at each
// level, preserving first-seen display forms and insertion order (spec
// §4.F phase 4 "the display form is the first one seen").
type artistBuilder struct {
	order   []*artistDraft
	byName  map[string]int // casefolded artist name -> index into order
	albumID map[int]map[string]int
}

func newArtistBuilder() *artistBuilder {
	return &artistBuilder{
		byName:  make(map[string]int),
		albumID: make(map[int]map[string]int),
	}
}

func (ab *artistBuilder) add(raw rawSong) {
	artistKey := collection.FoldName(raw.ArtistName)
	ai, ok := ab.byName[artistKey]
	if !ok {
		ai = len(ab.order)
		ab.order = append(ab.order, &artistDraft{name: raw.ArtistName})
		ab.byName[artistKey] = ai
		ab.albumID[ai] = make(map[string]int)
	}
	artist := ab.order[ai]

	albumKey := collection.FoldName(raw.AlbumTitle)
	albums := ab.albumID[ai]
	aj, ok := albums[albumKey]
	if !ok {
		aj = len(artist.albums)
		artist.albums = append(artist.albums, &albumDraft{
			title:      raw.AlbumTitle,
			release:    raw.Release,
			path:       raw.AlbumPath,
			genre:      raw.Genre,
			titlesSeen: make(map[string]int),
		})
		albums[albumKey] = aj
	}
	album := artist.albums[aj]
	if album.artBytes == nil && raw.ArtBytes != nil {
		album.artBytes = raw.ArtBytes
	}

	title := disambiguate(album, raw.Title)
	album.songs = append(album.songs, &songDraft{
		title:      title,
		runtime:    raw.Runtime,
		sampleRate: raw.SampleRate,
		track:      raw.Track,
		disc:       raw.Disc,
		mime:       raw.Mime,
		extension:  raw.Extension,
		path:       raw.Path,
	})

	artist.runtime += raw.Runtime
	album.runtimeSum += raw.Runtime
}

// disambiguate returns raw's title, or - if its casefolded form already
// occurred in this album - the title with a stable " (N)" suffix so the
// name map stays unique (spec §4.F phase 4, §8 "Song titles that
// casefold to the same string but differ in display form").
func disambiguate(album *albumDraft, title string) string {
	key := collection.FoldName(title)
	n := album.titlesSeen[key]
	album.titlesSeen[key] = n + 1
	if n == 0 {
		return title
	}
	return fmt.Sprintf("%s (%d)", title, n+1)
}

func (ab *artistBuilder) finish() ([]collection.Artist, []collection.Album, []collection.Song) {
	var artists []collection.Artist
	var albums []collection.Album
	var songs []collection.Song

	for _, ad := range ab.order {
		// Artist.Albums is ordered release ascending, ties by title
		// ascending (spec §3.1); Artist.Songs then follows this album
		// order with each album's own intra-album order.
		sort.SliceStable(ad.albums, func(i, j int) bool {
			return albumDraftLess(ad.albums[i], ad.albums[j])
		})

		artistKey := collection.ArtistKeyFrom(uint32(len(artists)))
		var albumKeys []collection.AlbumKey
		var songKeysForArtist []collection.SongKey

		for _, bd := range ad.albums {
			// Album.Songs is ordered disc ascending, then track
			// ascending, ties by title ascending (spec §3.1).
			sort.SliceStable(bd.songs, func(i, j int) bool {
				return songDraftLess(bd.songs[i], bd.songs[j])
			})

			albumKey := collection.AlbumKeyFrom(uint32(len(albums)))
			var songKeys []collection.SongKey
			discSet := map[int]bool{}

			for _, sd := range bd.songs {
				songKey := collection.SongKeyFrom(uint32(len(songs)))
				songs = append(songs, collection.Song{
					Key:        songKey,
					Album:      albumKey,
					Title:      sd.title,
					Runtime:    sd.runtime,
					SampleRate: sd.sampleRate,
					Track:      sd.track,
					Disc:       sd.disc,
					Mime:       sd.mime,
					Extension:  sd.extension,
					Path:       sd.path,
				})
				songKeys = append(songKeys, songKey)
				songKeysForArtist = append(songKeysForArtist, songKey)
				if sd.disc != nil {
					discSet[*sd.disc] = true
				}
			}

			discs := len(discSet)
			if discs == 0 {
				discs = 1
			}

			var art collection.Art
			if bd.artBytes != nil {
				art = collection.Art{Variant: collection.ArtBytes, Raw: bd.artBytes}
			}

			albums = append(albums, collection.Album{
				Key:       albumKey,
				Artist:    artistKey,
				Title:     bd.title,
				Release:   bd.release,
				Runtime:   bd.runtimeSum,
				SongCount: len(songKeys),
				Songs:     songKeys,
				Discs:     discs,
				Path:      bd.path,
				Art:       art,
				Genre:     bd.genre,
			})
			albumKeys = append(albumKeys, albumKey)
		}

		artists = append(artists, collection.Artist{
			Key:     artistKey,
			Name:    ad.name,
			Runtime: ad.runtime,
			Albums:  albumKeys,
			Songs:   songKeysForArtist,
		})
	}

	return artists, albums, songs
}

func albumDraftLess(a, b *albumDraft) bool {
	if a.release.Less(b.release) {
		return true
	}
	if b.release.Less(a.release) {
		return false
	}
	return collection.FoldName(a.title) < collection.FoldName(b.title)
}

func songDraftLess(a, b *songDraft) bool {
	ad, bd := discOf(a.disc), discOf(b.disc)
	if ad != bd {
		return ad < bd
	}
	at, bt := trackOf(a.track), trackOf(b.track)
	if at != bt {
		return at < bt
	}
	return collection.FoldName(a.title) < collection.FoldName(b.title)
}

func discOf(d *int) int {
	if d == nil {
		return 0
	}
	return *d
}

func trackOf(t *int) int {
	if t == nil {
		return 0
	}
	return *t
}
