package collection

import (
	"encoding/json"
)

// jsonMeta is the metadata block of the JSON projection.
type jsonMeta struct {
	Timestamp   int64 `json:"timestamp"`
	CountArtist uint64 `json:"count_artist"`
	CountAlbum  uint64 `json:"count_album"`
	CountSong   uint64 `json:"count_song"`
	CountArt    uint64 `json:"count_art"`
}

type jsonArtist struct {
	Key     uint64   `json:"key"`
	Name    string   `json:"name"`
	Runtime uint32   `json:"runtime"`
	Albums  []uint64 `json:"albums"`
	Songs   []uint64 `json:"songs"`
}

type jsonAlbum struct {
	Key       uint64  `json:"key"`
	Artist    uint64  `json:"artist"`
	Title     string  `json:"title"`
	Release   string  `json:"release"`
	Runtime   uint32  `json:"runtime"`
	SongCount int     `json:"song_count"`
	Songs     []uint64 `json:"songs"`
	Discs     int     `json:"discs"`
	Path      string  `json:"path"`
	Art       *int    `json:"art"` // byte length of the known art, or null
	Genre     *string `json:"genre"`
}

type jsonSong struct {
	Key        uint64 `json:"key"`
	Album      uint64 `json:"album"`
	Title      string `json:"title"`
	Runtime    uint32 `json:"runtime"`
	SampleRate uint32 `json:"sample_rate"`
	Track      *int   `json:"track"`
	Disc       *int   `json:"disc"`
	Mime       string `json:"mime"`
	Extension  string `json:"extension"`
	Path       string `json:"path"`
}

type jsonCollection struct {
	Meta    jsonMeta     `json:"meta"`
	Artists []jsonArtist `json:"artists"`
	Albums  []jsonAlbum  `json:"albums"`
	Songs   []jsonSong   `json:"songs"`
}

// ToJSON writes a stable JSON rendering of the Collection for API
// consumers (spec §4.C). This is output-only - there is no corresponding
// FromJSON, the binary format in disk.go is the only persisted
// representation.
func (c *Collection) ToJSON() ([]byte, error) {
	doc := jsonCollection{
		Meta: jsonMeta{
			Timestamp:   c.Timestamp,
			CountArtist: uint64(len(c.Artists)),
			CountAlbum:  uint64(len(c.Albums)),
			CountSong:   uint64(len(c.Songs)),
			CountArt:    uint64(c.CountArt()),
		},
	}

	for _, a := range c.Artists {
		doc.Artists = append(doc.Artists, jsonArtist{
			Key:     uint64(a.Key),
			Name:    a.Name,
			Runtime: a.Runtime,
			Albums:  keysToUint64(a.Albums),
			Songs:   songKeysToUint64(a.Songs),
		})
	}

	for _, al := range c.Albums {
		var genre *string
		if al.Genre != "" {
			g := al.Genre
			genre = &g
		}
		var art *int
		if al.Art.Variant == ArtKnown {
			n := al.Art.Length
			art = &n
		}
		doc.Albums = append(doc.Albums, jsonAlbum{
			Key:       uint64(al.Key),
			Artist:    uint64(al.Artist),
			Title:     al.Title,
			Release:   al.Release.String(),
			Runtime:   al.Runtime,
			SongCount: al.SongCount,
			Songs:     songKeysToUint64(al.Songs),
			Discs:     al.Discs,
			Path:      al.Path,
			Art:       art,
			Genre:     genre,
		})
	}

	for _, s := range c.Songs {
		doc.Songs = append(doc.Songs, jsonSong{
			Key:        uint64(s.Key),
			Album:      uint64(s.Album),
			Title:      s.Title,
			Runtime:    s.Runtime,
			SampleRate: s.SampleRate,
			Track:      s.Track,
			Disc:       s.Disc,
			Mime:       s.Mime,
			Extension:  s.Extension,
			Path:       s.Path,
		})
	}

	return json.Marshal(doc)
}

func keysToUint64(ks []AlbumKey) []uint64 {
	out := make([]uint64, len(ks))
	for i, k := range ks {
		out[i] = uint64(k)
	}
	return out
}

func songKeysToUint64(ks []SongKey) []uint64 {
	out := make([]uint64, len(ks))
	for i, k := range ks {
		out[i] = uint64(k)
	}
	return out
}
