package collection

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldCaser implements the NFKC-casefold comparison key used for every
// *_lowercase field (spec §3.2 "name comparisons are case- and
// normalization-insensitive"). cases.Fold() is itself Unicode casefolding;
// running the result through norm.NFKC additionally collapses
// compatibility variants (e.g. full-width forms, ligatures) so visually
// distinct but canonically identical names map to the same key.
var foldCaser = cases.Fold()

func foldName(s string) string {
	return norm.NFKC.String(foldCaser.String(s))
}

// FoldName exposes the same NFKC-casefold key used for *_lowercase
// fields to callers outside this package - namely CCD's Fix phase, which
// must dedupe artist/album/song names by the identical key the
// Collection itself will later use for sorting and the name map (spec
// §4.F phase 4 "Dedup ... by casefolded name").
func FoldName(s string) string { return foldName(s) }

// deriveLowercase fills in the *_lowercase comparison fields used by the
// name map and by every name-based sort. It is idempotent and is called
// by New, so it runs both for a fresh CCD build and after decoding a
// persisted or migrated Collection, since the lowercase fields are never
// persisted verbatim-redundant with Name/Title - they are always recomputed
// from source, as cases.Fold/norm tables can change between
// golang.org/x/text releases and we don't want an on-disk file to pin a
// tables version.
func deriveLowercase(artists []Artist, albums []Album, songs []Song) {
	for i := range artists {
		artists[i].NameLowercase = foldName(artists[i].Name)
	}
	for i := range albums {
		albums[i].TitleLowercase = foldName(albums[i].Title)
	}
	for i := range songs {
		songs[i].TitleLowercase = foldName(songs[i].Title)
	}
}
