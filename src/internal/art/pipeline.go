package art

// Result is the output of running the full decode/crop/resize pipeline
// (spec §4.E stages 1-3) over one set of raw tag bytes.
type Result struct {
	Pixels []byte // RGB8, BufferLength bytes
	Width  int
	Height int
}

// Process runs stages 1-3 of the art pipeline: decode (with JPEG fast
// path and general fallback), centered crop to square, resize to
// Size x Size, and pack into an RGB8 buffer. It deliberately returns only
// primitive fields rather than a collection.Art so this package stays
// free of a dependency on the collection model; CCD's art phase
// (internal/ccd) assembles the final collection.Art{Variant: ArtKnown}
// value from this Result.
func Process(raw []byte) (Result, error) {
	img, err := Decode(raw)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Pixels: CropAndResize(img),
		Width:  Size,
		Height: Size,
	}, nil
}
