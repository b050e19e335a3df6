package ccd

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/sourcegraph/conc/pool"

	"festival/internal/collection"
)

// unknownArtist is the fallback display name used when a file carries no
// artist tag (spec §4.F phase 3 "files with no artist or title tag use a
// fallback").
const unknownArtist = "Unknown Artist"

// dhowdenReader reads audio metadata with github.com/dhowden/tag, the
// default AudioMetadataReader (spec §6 "audio metadata reader").
type dhowdenReader struct {
	separator string
}

func newDhowdenReader(separator string) dhowdenReader {
	return dhowdenReader{separator: separator}
}

func (r dhowdenReader) Read(path string) (rawSong, error) {
	f, err := os.Open(path)
	if err != nil {
		return rawSong{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return rawSong{}, err
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}
	if artist == "" {
		artist = unknownArtist
	}

	title := m.Title()
	if title == "" {
		title = fileStem(path)
	}

	track, _ := m.Track()
	disc, _ := m.Disc()

	var trackPtr, discPtr *int
	if track > 0 {
		trackPtr = &track
	}
	if disc > 0 {
		discPtr = &disc
	}

	var release collection.Date
	if year := m.Year(); year > 0 {
		release.Year = &year
	}

	var artBytes []byte
	if pic := m.Picture(); pic != nil {
		artBytes = pic.Data
	}

	// Runtime is not derivable from tags alone - real decode (out of
	// scope per spec §1) would be needed to measure it exactly, so
	// Metadata reports 0 here; Fix sums whatever is present bottom-up.
	var runtime uint32

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	mimeType := mime.TypeByExtension(filepath.Ext(path))

	return rawSong{
		ArtistName: artist,
		AlbumTitle: albumTitleOr(m.Album(), path),
		AlbumPath:  filepath.Dir(path),
		Release:    release,
		Genre:      firstEntry(m.Genre(), r.separator),
		Title:      title,
		Runtime:    runtime,
		SampleRate: 0,
		Track:      trackPtr,
		Disc:       discPtr,
		Mime:       mimeType,
		Extension:  ext,
		Path:       path,
		ArtBytes:   artBytes,
	}, nil
}

// firstEntry takes the first of a possibly multi-valued tag (e.g. a
// genre frame listing several genres separated by sep), matching the
// teacher's splitMultipleEntries except the model here keeps a single
// Genre per Album rather than a slice.
func firstEntry(raw, sep string) string {
	if raw == "" || sep == "" {
		return raw
	}
	if i := strings.Index(raw, sep); i >= 0 {
		return raw[:i]
	}
	return raw
}

func albumTitleOr(title, path string) string {
	if title != "" {
		return title
	}
	return filepath.Base(filepath.Dir(path))
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// metadataResult pairs a decode outcome with the source path so failures
// can be logged with context without aborting the phase (spec §7 kind 3
// PerFile: "logged and skipped").
type metadataResult struct {
	song rawSong
	err  error
	path string
}

// decodeMetadata runs the Metadata phase (spec §4.F phase 3): parallel
// tag decode across every candidate path, skipping files whose tags
// can't be read.
func decodeMetadata(reader AudioMetadataReader, paths []string, maxGoroutines int, onProgress func(path string)) []rawSong {
	p := pool.NewWithResults[metadataResult]().WithMaxGoroutines(maxGoroutines)
	for _, path := range paths {
		path := path
		p.Go(func() metadataResult {
			if onProgress != nil {
				onProgress(path)
			}
			song, err := reader.Read(path)
			return metadataResult{song: song, err: err, path: path}
		})
	}

	results := p.Wait()
	songs := make([]rawSong, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			log.WithError(r.err).WithField("path", r.path).Warn("cannot decode metadata, skipping file")
			continue
		}
		songs = append(songs, r.song)
	}
	return songs
}
