package collection

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// wire.go implements the fixed, non-self-describing little-endian binary
// codec the body of every persisted file is written in (spec §4.D/§6).
// There is deliberately no use of encoding/gob or a msgpack-style
// self-describing codec here: the spec requires explicit length prefixes
// and fixed discriminants with no embedded schema, so the primitives below
// are hand-rolled on top of encoding/binary. See DESIGN.md for the
// discussion of why no pack dependency fits this concern.

type wireWriter struct {
	w   *bufio.Writer
	err error
}

func newWireWriter(w io.Writer) *wireWriter {
	return &wireWriter{w: bufio.NewWriter(w)}
}

func (ww *wireWriter) u8(v uint8) {
	if ww.err != nil {
		return
	}
	ww.err = ww.w.WriteByte(v)
}

func (ww *wireWriter) u32(v uint32) {
	if ww.err != nil {
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, ww.err = ww.w.Write(buf[:])
}

func (ww *wireWriter) i32(v int32) { ww.u32(uint32(v)) }

func (ww *wireWriter) u64(v uint64) {
	if ww.err != nil {
		return
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, ww.err = ww.w.Write(buf[:])
}

func (ww *wireWriter) i64(v int64) { ww.u64(uint64(v)) }

func (ww *wireWriter) bytes(b []byte) {
	ww.u64(uint64(len(b)))
	if ww.err != nil {
		return
	}
	_, ww.err = ww.w.Write(b)
}

func (ww *wireWriter) str(s string) { ww.bytes([]byte(s)) }

func (ww *wireWriter) optInt(v *int) {
	if v == nil {
		ww.u8(0)
		ww.i32(0)
		return
	}
	ww.u8(1)
	ww.i32(int32(*v))
}

func (ww *wireWriter) optStr(v string, present bool) {
	if !present {
		ww.u8(0)
		return
	}
	ww.u8(1)
	ww.str(v)
}

func (ww *wireWriter) flush() error {
	if ww.err != nil {
		return ww.err
	}
	return ww.w.Flush()
}

type wireReader struct {
	r   *bufio.Reader
	err error
}

func newWireReader(r io.Reader) *wireReader {
	return &wireReader{r: bufio.NewReader(r)}
}

func (wr *wireReader) u8() uint8 {
	if wr.err != nil {
		return 0
	}
	b, err := wr.r.ReadByte()
	if err != nil {
		wr.fail(err)
		return 0
	}
	return b
}

func (wr *wireReader) u32() uint32 {
	if wr.err != nil {
		return 0
	}
	var buf [4]byte
	if _, err := io.ReadFull(wr.r, buf[:]); err != nil {
		wr.fail(err)
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}

func (wr *wireReader) i32() int32 { return int32(wr.u32()) }

func (wr *wireReader) u64() uint64 {
	if wr.err != nil {
		return 0
	}
	var buf [8]byte
	if _, err := io.ReadFull(wr.r, buf[:]); err != nil {
		wr.fail(err)
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (wr *wireReader) i64() int64 { return int64(wr.u64()) }

// maxSanePrefix bounds a single length-prefixed field so a corrupted or
// truncated file cannot make the decoder attempt a multi-exabyte
// allocation; any real Collection field is far below this.
const maxSanePrefix = 1 << 34

func (wr *wireReader) bytes() []byte {
	n := wr.u64()
	if wr.err != nil {
		return nil
	}
	if n > maxSanePrefix {
		wr.fail(ErrTruncatedBody)
		return nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(wr.r, buf); err != nil {
		wr.fail(err)
		return nil
	}
	return buf
}

func (wr *wireReader) str() string { return string(wr.bytes()) }

func (wr *wireReader) optInt() *int {
	present := wr.u8()
	v := int(wr.i32())
	if present == 0 {
		return nil
	}
	return &v
}

func (wr *wireReader) optStr() (string, bool) {
	present := wr.u8()
	if present == 0 {
		return "", false
	}
	return wr.str(), true
}

func (wr *wireReader) fail(err error) {
	if wr.err == nil {
		wr.err = errors.Wrap(ErrTruncatedBody, err.Error())
	}
}
