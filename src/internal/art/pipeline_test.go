package art

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidJPEG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessSquareJPEG(t *testing.T) {
	raw := solidJPEG(t, 512, 512, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	res, err := Process(raw)
	require.NoError(t, err)
	assert.Equal(t, Size, res.Width)
	assert.Equal(t, Size, res.Height)
	assert.Len(t, res.Pixels, BufferLength)
}

func TestProcessWideJPEGCropsToSquare(t *testing.T) {
	raw := solidJPEG(t, 1920, 1080, color.RGBA{R: 200, G: 0, B: 0, A: 255})

	res, err := Process(raw)
	require.NoError(t, err)
	assert.Equal(t, Size, res.Width)
	assert.Equal(t, Size, res.Height)
	assert.Len(t, res.Pixels, BufferLength)
}

func TestProcessFallsBackToGeneralDecoderForPNG(t *testing.T) {
	raw := solidPNG(t, 300, 300, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	res, err := Process(raw)
	require.NoError(t, err)
	assert.Len(t, res.Pixels, BufferLength)
}

func TestDecodeRejectsGarbageBytes(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDefaultHandleIsFixedSize(t *testing.T) {
	assert.Len(t, Default(), BufferLength)
}

type fakeAllocator struct {
	next  uint64
	freed []Generation
}

func (f *fakeAllocator) UploadRGB8At500(_ []byte) uint64 {
	id := f.next
	f.next++
	return id
}

func (f *fakeAllocator) FreeRange(start uint64, count int) {
	f.freed = append(f.freed, Generation{Start: start, Count: count})
}

func TestTrackerAccountsGenerationRange(t *testing.T) {
	alloc := &fakeAllocator{next: 100}
	tr := NewTracker(alloc)

	for i := 0; i < 3; i++ {
		tr.Upload(Default())
	}

	gen := tr.Generation()
	assert.EqualValues(t, 100, gen.Start)
	assert.Equal(t, 3, gen.Count)

	tr.FreePrevious(Generation{Start: 50, Count: 3})
	require.Len(t, alloc.freed, 1)
	assert.EqualValues(t, 50, alloc.freed[0].Start)
}
