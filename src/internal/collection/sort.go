package collection

import "sort"

// sortPermutation returns a permutation of [0, n) ordered by less, computed
// with a stable sort so that equal elements keep their original (insertion)
// order as a final tie-breaker. Every precomputed sort array in the
// Collection is built this way: a permutation, never a copy of the data
// itself (spec §9 "Sort orders as separate arrays").
func sortPermutation(n int, less func(i, j int) bool) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return less(perm[i], perm[j]) })
	return perm
}

func toKeys[K ~uint32](perm []int) []K {
	out := make([]K, len(perm))
	for i, p := range perm {
		out[i] = K(p)
	}
	return out
}

type artistSorts struct {
	NameAsc, NameDesc             []ArtistKey
	AlbumCountAsc, AlbumCountDesc []ArtistKey
	SongCountAsc, SongCountDesc   []ArtistKey
	RuntimeAsc, RuntimeDesc       []ArtistKey
	NameLenAsc, NameLenDesc       []ArtistKey
}

func computeArtistSorts(artists []Artist) artistSorts {
	n := len(artists)
	less := func(field func(i int) string) func(i, j int) bool {
		return func(i, j int) bool { return field(i) < field(j) }
	}
	byName := func(i int) string { return artists[i].NameLowercase }

	var s artistSorts
	s.NameAsc = toKeys[ArtistKey](sortPermutation(n, less(byName)))
	s.NameDesc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return byName(i) > byName(j) }))

	s.AlbumCountAsc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return len(artists[i].Albums) < len(artists[j].Albums) }))
	s.AlbumCountDesc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return len(artists[i].Albums) > len(artists[j].Albums) }))

	s.SongCountAsc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return len(artists[i].Songs) < len(artists[j].Songs) }))
	s.SongCountDesc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return len(artists[i].Songs) > len(artists[j].Songs) }))

	s.RuntimeAsc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return artists[i].Runtime < artists[j].Runtime }))
	s.RuntimeDesc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return artists[i].Runtime > artists[j].Runtime }))

	s.NameLenAsc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return len(artists[i].NameLowercase) < len(artists[j].NameLowercase) }))
	s.NameLenDesc = toKeys[ArtistKey](sortPermutation(n, func(i, j int) bool { return len(artists[i].NameLowercase) > len(artists[j].NameLowercase) }))

	return s
}

type albumSorts struct {
	ArtistNameAscReleaseAsc, ArtistNameAscReleaseDesc   []AlbumKey
	ArtistNameDescReleaseAsc, ArtistNameDescReleaseDesc []AlbumKey
	ArtistNameAscTitleAsc, ArtistNameAscTitleDesc       []AlbumKey
	ArtistNameDescTitleAsc, ArtistNameDescTitleDesc     []AlbumKey
	TitleAsc, TitleDesc                                 []AlbumKey
	ReleaseAsc, ReleaseDesc                              []AlbumKey
	RuntimeAsc, RuntimeDesc                               []AlbumKey
	TitleLenAsc, TitleLenDesc                             []AlbumKey
}

func computeAlbumSorts(artists []Artist, albums []Album) albumSorts {
	n := len(albums)
	artistName := func(i int) string { return artists[albums[i].Artist].NameLowercase }
	title := func(i int) string { return albums[i].TitleLowercase }

	twoLevel := func(primary func(i, j int) int, secondary func(i, j int) bool) func(i, j int) bool {
		return func(i, j int) bool {
			if c := primary(i, j); c != 0 {
				return c < 0
			}
			return secondary(i, j)
		}
	}
	cmpStr := func(field func(int) string, desc bool) func(i, j int) int {
		return func(i, j int) int {
			a, b := field(i), field(j)
			switch {
			case a == b:
				return 0
			case a < b:
				if desc {
					return 1
				}
				return -1
			default:
				if desc {
					return -1
				}
				return 1
			}
		}
	}
	releaseLess := func(i, j int) bool { return albums[i].Release.Less(albums[j].Release) }
	releaseGreater := func(i, j int) bool { return albums[j].Release.Less(albums[i].Release) }
	titleLess := func(i, j int) bool { return title(i) < title(j) }
	titleGreater := func(i, j int) bool { return title(i) > title(j) }

	var s albumSorts
	s.ArtistNameAscReleaseAsc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, false), releaseLess)))
	s.ArtistNameAscReleaseDesc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, false), releaseGreater)))
	s.ArtistNameDescReleaseAsc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, true), releaseLess)))
	s.ArtistNameDescReleaseDesc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, true), releaseGreater)))

	s.ArtistNameAscTitleAsc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, false), titleLess)))
	s.ArtistNameAscTitleDesc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, false), titleGreater)))
	s.ArtistNameDescTitleAsc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, true), titleLess)))
	s.ArtistNameDescTitleDesc = toKeys[AlbumKey](sortPermutation(n, twoLevel(cmpStr(artistName, true), titleGreater)))

	s.TitleAsc = toKeys[AlbumKey](sortPermutation(n, titleLess))
	s.TitleDesc = toKeys[AlbumKey](sortPermutation(n, titleGreater))
	s.ReleaseAsc = toKeys[AlbumKey](sortPermutation(n, releaseLess))
	s.ReleaseDesc = toKeys[AlbumKey](sortPermutation(n, releaseGreater))
	s.RuntimeAsc = toKeys[AlbumKey](sortPermutation(n, func(i, j int) bool { return albums[i].Runtime < albums[j].Runtime }))
	s.RuntimeDesc = toKeys[AlbumKey](sortPermutation(n, func(i, j int) bool { return albums[i].Runtime > albums[j].Runtime }))
	s.TitleLenAsc = toKeys[AlbumKey](sortPermutation(n, func(i, j int) bool { return len(title(i)) < len(title(j)) }))
	s.TitleLenDesc = toKeys[AlbumKey](sortPermutation(n, func(i, j int) bool { return len(title(i)) > len(title(j)) }))

	return s
}

type songSorts struct {
	ArtistNameAscAlbumReleaseAsc, ArtistNameAscAlbumReleaseDesc   []SongKey
	ArtistNameDescAlbumReleaseAsc, ArtistNameDescAlbumReleaseDesc []SongKey
	ArtistNameAscAlbumTitleAsc, ArtistNameAscAlbumTitleDesc       []SongKey
	ArtistNameDescAlbumTitleAsc, ArtistNameDescAlbumTitleDesc     []SongKey
	TitleAsc, TitleDesc                                           []SongKey
	ReleaseAsc, ReleaseDesc                                       []SongKey
	RuntimeAsc, RuntimeDesc                                       []SongKey
	TitleLenAsc, TitleLenDesc                                     []SongKey
}

// trackOrder is the within-album order a song naturally has: disc
// ascending, then track ascending, ties broken by title ascending - the
// same order Album.Songs itself is built in (§3.1). It is used as the
// final tiebreak for every artist x album combination, so that within one
// album the track sequence is always preserved regardless of how albums
// themselves are ordered.
func trackOrder(songs []Song, i, j int) bool {
	si, sj := songs[i], songs[j]
	di, dj := 0, 0
	if si.Disc != nil {
		di = *si.Disc
	}
	if sj.Disc != nil {
		dj = *sj.Disc
	}
	if di != dj {
		return di < dj
	}
	ti, tj := 0, 0
	if si.Track != nil {
		ti = *si.Track
	}
	if sj.Track != nil {
		tj = *sj.Track
	}
	if ti != tj {
		return ti < tj
	}
	return si.TitleLowercase < sj.TitleLowercase
}

func computeSongSorts(artists []Artist, albums []Album, songs []Song) songSorts {
	n := len(songs)
	artistName := func(i int) string { return artists[albums[songs[i].Album].Artist].NameLowercase }
	albumTitle := func(i int) string { return albums[songs[i].Album].TitleLowercase }
	release := func(i int) Date { return albums[songs[i].Album].Release }
	title := func(i int) string { return songs[i].TitleLowercase }

	cmpStr := func(field func(int) string, desc bool) func(i, j int) int {
		return func(i, j int) int {
			a, b := field(i), field(j)
			switch {
			case a == b:
				return 0
			case a < b:
				if desc {
					return 1
				}
				return -1
			default:
				if desc {
					return -1
				}
				return 1
			}
		}
	}
	threeLevel := func(primary, secondary func(i, j int) int, tie func(i, j int) bool) func(i, j int) bool {
		return func(i, j int) bool {
			if c := primary(i, j); c != 0 {
				return c < 0
			}
			if c := secondary(i, j); c != 0 {
				return c < 0
			}
			return tie(i, j)
		}
	}
	cmpRelease := func(desc bool) func(i, j int) int {
		return func(i, j int) int {
			a, b := release(i), release(j)
			switch {
			case a.Less(b):
				if desc {
					return 1
				}
				return -1
			case b.Less(a):
				if desc {
					return -1
				}
				return 1
			default:
				return 0
			}
		}
	}
	tie := func(i, j int) bool { return trackOrder(songs, i, j) }

	var s songSorts
	s.ArtistNameAscAlbumReleaseAsc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, false), cmpRelease(false), tie)))
	s.ArtistNameAscAlbumReleaseDesc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, false), cmpRelease(true), tie)))
	s.ArtistNameDescAlbumReleaseAsc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, true), cmpRelease(false), tie)))
	s.ArtistNameDescAlbumReleaseDesc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, true), cmpRelease(true), tie)))

	s.ArtistNameAscAlbumTitleAsc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, false), cmpStr(albumTitle, false), tie)))
	s.ArtistNameAscAlbumTitleDesc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, false), cmpStr(albumTitle, true), tie)))
	s.ArtistNameDescAlbumTitleAsc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, true), cmpStr(albumTitle, false), tie)))
	s.ArtistNameDescAlbumTitleDesc = toKeys[SongKey](sortPermutation(n, threeLevel(cmpStr(artistName, true), cmpStr(albumTitle, true), tie)))

	s.TitleAsc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return title(i) < title(j) }))
	s.TitleDesc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return title(i) > title(j) }))
	s.ReleaseAsc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return release(i).Less(release(j)) }))
	s.ReleaseDesc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return release(j).Less(release(i)) }))
	s.RuntimeAsc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return songs[i].Runtime < songs[j].Runtime }))
	s.RuntimeDesc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return songs[i].Runtime > songs[j].Runtime }))
	s.TitleLenAsc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return len(title(i)) < len(title(j)) }))
	s.TitleLenDesc = toKeys[SongKey](sortPermutation(n, func(i, j int) bool { return len(title(i)) > len(title(j)) }))

	return s
}
