package collection

import "fmt"

// Date is a year/month/day triple where any part may be missing. Missing
// parts are permitted and compare as least-permissive last: a Date that
// lacks a field is considered "larger" (later / less specific) than one
// that has it when both share everything more specific, matching the
// ordering used for release-date sorts.
type Date struct {
	Year  *int
	Month *int
	Day   *int
}

// String renders the date as "YYYY-MM-DD", substituting "?" for any part
// that is missing.
func (d Date) String() string {
	part := func(v *int, width int) string {
		if v == nil {
			return "?"
		}
		return fmt.Sprintf("%0*d", width, *v)
	}
	return part(d.Year, 4) + "-" + part(d.Month, 2) + "-" + part(d.Day, 2)
}

// Less implements the release-date ordering: missing parts sort after
// present ones once everything more significant is equal.
func (d Date) Less(o Date) bool {
	cmp := func(a, b *int) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1 // missing sorts after present
		case b == nil:
			return -1
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		default:
			return 0
		}
	}
	if c := cmp(d.Year, o.Year); c != 0 {
		return c < 0
	}
	if c := cmp(d.Month, o.Month); c != 0 {
		return c < 0
	}
	return cmp(d.Day, o.Day) < 0
}

// ArtVariant discriminates the three states cover art can be in.
type ArtVariant int

const (
	// ArtUnknown means no art has been associated with the album yet.
	ArtUnknown ArtVariant = iota
	// ArtBytes means raw, undecoded image bytes were extracted from a tag
	// but have not been processed into a display-ready handle yet.
	ArtBytes
	// ArtKnown means the art has been decoded, cropped and resized to
	// 500x500 RGB8 and is ready for display / texture upload.
	ArtKnown
)

// Art is the tagged union of the three art states described in spec
// §3.1/§4.E. Exactly one of Raw (for ArtBytes) or the Known fields
// (for ArtKnown) is meaningful, selected by Variant.
type Art struct {
	Variant ArtVariant

	// Raw holds the untouched tag bytes while Variant == ArtBytes.
	Raw []byte

	// Known fields, valid only when Variant == ArtKnown.
	Width, Height int
	// Handle is the 500*500*3 = 750000 byte RGB8 pixel buffer.
	Handle []byte
	// TextureID and HasTexture are set by the texture-allocation phase
	// (§4.E "Texture allocation"); the Collection model itself never
	// uploads a texture.
	TextureID  uint64
	HasTexture bool
	Length     int // byte length of Handle, always 750000 when Variant == ArtKnown
}

// Artist is one performer/band as recorded in the Collection.
type Artist struct {
	Key  ArtistKey
	Name string
	// NameLowercase is the NFKC-casefolded form of Name, used for
	// case-insensitive comparisons and sort ordering.
	NameLowercase string

	// Runtime is the sum, in seconds, of every song by this artist.
	Runtime uint32

	// Albums is ordered by release date ascending, ties broken by album
	// title ascending.
	Albums []AlbumKey
	// Songs follows the order of Albums, then each album's intra-album
	// disc/track order.
	Songs []SongKey
}

// Album is one release by one (possibly compilation) artist.
type Album struct {
	Key    AlbumKey
	Artist ArtistKey

	Title           string
	TitleLowercase  string
	Release         Date
	Runtime         uint32
	SongCount       int
	// Songs is ordered disc ascending, then track ascending, ties broken
	// by title ascending.
	Songs []SongKey
	// Discs is the count of distinct disc numbers seen among this album's
	// songs, or 1 if none were tagged.
	Discs int
	// Path is the absolute path of the containing directory of the first
	// song added to this album.
	Path string
	Art  Art
	// Genre is optional; empty string means untagged.
	Genre string
}

// Song is one audio file as recorded in the Collection.
type Song struct {
	Key   SongKey
	Album AlbumKey

	Title          string
	TitleLowercase string

	Runtime    uint32
	SampleRate uint32
	// Track and Disc are nil when untagged.
	Track *int
	Disc  *int

	Mime      string
	Extension string
	Path      string
}
