package collection

import "fmt"

// CheckInvariants verifies every quantified invariant from spec §3.2/§8
// against c and returns the first violation found, or nil if none. CCD
// runs it on every rebuild before returning the new Collection (spec §7
// kind 5, InvariantViolation), and tests use it too; it never mutates c.
func (c *Collection) CheckInvariants() error {
	for i, a := range c.Artists {
		if int(a.Key) != i {
			return fmt.Errorf("artist dense-array invariant violated: artists[%d].Key == %d", i, a.Key)
		}
	}
	for i, a := range c.Albums {
		if int(a.Key) != i {
			return fmt.Errorf("album dense-array invariant violated: albums[%d].Key == %d", i, a.Key)
		}
		if int(a.Artist) >= len(c.Artists) {
			return fmt.Errorf("album %d references out-of-range artist %d", a.Key, a.Artist)
		}
	}
	for i, s := range c.Songs {
		if int(s.Key) != i {
			return fmt.Errorf("song dense-array invariant violated: songs[%d].Key == %d", i, s.Key)
		}
		if int(s.Album) >= len(c.Albums) {
			return fmt.Errorf("song %d references out-of-range album %d", s.Key, s.Album)
		}
	}

	// back-reference consistency
	for _, s := range c.Songs {
		if !containsSongKey(c.Albums[s.Album].Songs, s.Key) {
			return fmt.Errorf("album %d does not back-reference song %d", s.Album, s.Key)
		}
	}
	for _, a := range c.Albums {
		if !containsAlbumKey(c.Artists[a.Artist].Albums, a.Key) {
			return fmt.Errorf("artist %d does not back-reference album %d", a.Artist, a.Key)
		}
	}

	// sort array invariants: length equals count, and each is a permutation
	for _, s := range c.allArtistSortSlices() {
		if err := checkPermutation(len(s), len(c.Artists), toIntsArtist(s)); err != nil {
			return err
		}
	}
	for _, s := range c.allAlbumSortSlices() {
		if err := checkPermutation(len(s), len(c.Albums), toIntsAlbum(s)); err != nil {
			return err
		}
	}
	for _, s := range c.allSongSortSlices() {
		if err := checkPermutation(len(s), len(c.Songs), toIntsSong(s)); err != nil {
			return err
		}
	}

	// counts
	if c.Empty() != (len(c.Artists) == 0 && len(c.Albums) == 0 && len(c.Songs) == 0) {
		return fmt.Errorf("empty flag inconsistent with entity counts")
	}

	// art size
	for _, a := range c.Albums {
		if a.Art.Variant == ArtKnown {
			if a.Art.Width != 500 || a.Art.Height != 500 || len(a.Art.Handle) != 750000 {
				return fmt.Errorf("album %d has non-conforming known art (%dx%d, %d bytes)", a.Key, a.Art.Width, a.Art.Height, len(a.Art.Handle))
			}
		}
	}

	// name-map exactness
	for _, a := range c.Artists {
		k, ok := c.names.Artist(a.Name)
		if !ok || k != a.Key {
			return fmt.Errorf("name map does not resolve artist %q to key %d", a.Name, a.Key)
		}
	}
	for _, al := range c.Albums {
		artistName := c.Artists[al.Artist].Name
		k, ok := c.names.Album(artistName, al.Title)
		if !ok || k != al.Key {
			return fmt.Errorf("name map does not resolve album %q (artist %q) to key %d", al.Title, artistName, al.Key)
		}
	}
	for _, s := range c.Songs {
		al := c.Albums[s.Album]
		artistName := c.Artists[al.Artist].Name
		k, ok := c.names.Song(artistName, al.Title, s.Title)
		if !ok || k != s.Key {
			return fmt.Errorf("name map does not resolve song %q (album %q) to key %d", s.Title, al.Title, s.Key)
		}
	}

	return nil
}

func checkPermutation(length, expected int, values []int) error {
	if length != expected {
		return fmt.Errorf("sort array length %d does not match entity count %d", length, expected)
	}
	seen := make([]bool, expected)
	for _, v := range values {
		if v < 0 || v >= expected || seen[v] {
			return fmt.Errorf("sort array is not a permutation of [0, %d)", expected)
		}
		seen[v] = true
	}
	return nil
}

func toIntsArtist(s []ArtistKey) []int {
	out := make([]int, len(s))
	for i, k := range s {
		out[i] = int(k)
	}
	return out
}
func toIntsAlbum(s []AlbumKey) []int {
	out := make([]int, len(s))
	for i, k := range s {
		out[i] = int(k)
	}
	return out
}
func toIntsSong(s []SongKey) []int {
	out := make([]int, len(s))
	for i, k := range s {
		out[i] = int(k)
	}
	return out
}

func containsSongKey(s []SongKey, k SongKey) bool {
	for _, x := range s {
		if x == k {
			return true
		}
	}
	return false
}
func containsAlbumKey(s []AlbumKey, k AlbumKey) bool {
	for _, x := range s {
		if x == k {
			return true
		}
	}
	return false
}
