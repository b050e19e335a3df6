// Package ccd implements component F: the Collection Construction
// pipeline that walks directories, decodes audio metadata and art, and
// builds a collection.Collection (spec §4.F). Persisting the result is
// left to the caller (collection.SaveAtomic).
package ccd

import (
	l "github.com/sirupsen/logrus"

	"festival/internal/collection"
)

var log = l.WithFields(l.Fields{"pkg": "ccd"})

// rawSong is the per-file output of the Metadata phase (spec §4.F phase
// 3 "raw triples (ArtistName, AlbumTitleReleasePath, SongFields,
// OptionalArtBytes)").
type rawSong struct {
	ArtistName string
	AlbumTitle string
	AlbumPath  string
	Release    collection.Date
	Genre      string

	Title      string
	Runtime    uint32
	SampleRate uint32
	Track      *int
	Disc       *int
	Mime       string
	Extension  string
	Path       string

	ArtBytes []byte
}

// PlaylistRevalidator is the collaborator CCD's Playlists phase surfaces
// the rebuilt Collection to (spec §4.F phase 9, §6). The core does not
// implement playlist revalidation itself.
type PlaylistRevalidator interface {
	Revalidate(c *collection.Collection, names collection.NameMap)
}

// AudioMetadataReader abstracts tag decoding so the Metadata phase can be
// tested without real audio files (spec §6 "audio metadata reader").
type AudioMetadataReader interface {
	Read(path string) (rawSong, error)
}
