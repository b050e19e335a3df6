package collection

import "fmt"
import "io"

// The methods below are read-only diagnostics adapted from the teacher's
// content.go report functions (AlbumsWithInconsistentTrackNumbers,
// TracksWithoutAlbum, TracksWithoutCover). There is no
// AlbumsWithMultipleCovers report, since art belongs to the Album rather
// than to each Song. They are additive to spec §4.C - a `festival
// inspect` style consumer prints them after a load, they do not
// participate in any invariant.

const diagRule = "--------------------------------------------------------------------------------"

// AlbumsWithInconsistentTrackNumbers writes every album whose songs have
// either overlapping track numbers or gaps in the numbering.
func (c *Collection) AlbumsWithInconsistentTrackNumbers(w io.Writer) {
	fmt.Fprint(w, "Albums with inconsistent track numbers:\n\n")
	fmt.Fprintf(w, "%-30s %-30s\n", "Artist", "Album")
	fmt.Fprintf(w, "%s\n", diagRule)

	for _, a := range c.Albums {
		if len(a.Songs) == 0 {
			continue
		}
		seen := make(map[int]struct{})
		consistent := true
		for _, sk := range a.Songs {
			s := c.Songs[sk]
			if s.Track == nil {
				continue
			}
			if _, exists := seen[*s.Track]; exists {
				consistent = false
				break
			}
			seen[*s.Track] = struct{}{}
		}
		if consistent {
			for i := 0; i < len(seen); i++ {
				if _, exists := seen[i+1]; !exists {
					consistent = false
					break
				}
			}
		}
		if !consistent {
			fmt.Fprintf(w, "%-30s %-30s\n", c.Artists[a.Artist].Name, a.Title)
		}
	}
}

// TracksWithoutAlbum writes every song that has no album tag.
func (c *Collection) TracksWithoutAlbum(w io.Writer) {
	fmt.Fprint(w, "Tracks without album:\n")
	for _, al := range c.Albums {
		if al.Title == "" {
			for _, sk := range al.Songs {
				s := c.Songs[sk]
				fmt.Fprintf(w, "Artist: %q, track: %q\n", c.Artists[al.Artist].Name, s.Title)
			}
		}
	}
}

// TracksWithoutCover writes every song whose owning album has no cover art.
func (c *Collection) TracksWithoutCover(w io.Writer) {
	fmt.Fprint(w, "Tracks without cover pictures:\n")
	for _, al := range c.Albums {
		if al.Art.Variant != ArtUnknown {
			continue
		}
		for _, sk := range al.Songs {
			s := c.Songs[sk]
			fmt.Fprintf(w, "Artist: %q, album: %q, track: %q\n", c.Artists[al.Artist].Name, al.Title, s.Title)
		}
	}
}
