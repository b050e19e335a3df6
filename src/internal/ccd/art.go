package ccd

import (
	"github.com/sourcegraph/conc/pool"

	"festival/internal/art"
	"festival/internal/collection"
)

// resolveArt runs the art pipeline (spec §4.F phase 7 "Prepare/Resize/
// Clone/Convert") across every album that carries raw art bytes, in
// parallel across a worker pool, replacing the Bytes(_) placeholder with
// a Known buffer. Albums whose art fails to decode (zero dimensions,
// corrupt bytes) fall back to Unknown rather than aborting the rebuild
// (spec §7 kind 3 PerFile, kind 4 ResourceExhaustion).
func resolveArt(albums []collection.Album, maxGoroutines int) []collection.Album {
	type job struct {
		index int
		raw   []byte
	}

	var jobs []job
	for i, al := range albums {
		if al.Art.Variant == collection.ArtBytes {
			jobs = append(jobs, job{index: i, raw: al.Art.Raw})
		}
	}
	if len(jobs) == 0 {
		return albums
	}

	type outcome struct {
		index int
		art   collection.Art
	}

	p := pool.NewWithResults[outcome]().WithMaxGoroutines(maxGoroutines)
	for _, j := range jobs {
		j := j
		p.Go(func() outcome {
			res, err := art.Process(j.raw)
			if err != nil {
				log.WithError(err).WithField("album_index", j.index).Warn("art decode failed, falling back to unknown art")
				return outcome{index: j.index, art: collection.Art{Variant: collection.ArtUnknown}}
			}
			return outcome{index: j.index, art: collection.Art{
				Variant: collection.ArtKnown,
				Width:   res.Width,
				Height:  res.Height,
				Handle:  res.Pixels,
				Length:  len(res.Pixels),
			}}
		})
	}

	for _, o := range p.Wait() {
		albums[o.index].Art = o.art
	}
	return albums
}

// uploadTextures runs the Textures phase (spec §4.F phase 8): serially
// request an upload for every Known album art, recording the (start,
// count) range the allocator handed out. It is a no-op when tr is nil
// (no allocator connected for this rebuild).
func uploadTextures(albums []collection.Album, tr *art.Tracker) {
	if tr == nil {
		return
	}
	for i, al := range albums {
		if al.Art.Variant != collection.ArtKnown {
			continue
		}
		id := tr.Upload(al.Art.Handle)
		albums[i].Art.TextureID = id
		albums[i].Art.HasTexture = true
	}
}
