package gwy

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/FocuswithJustin/gwyfile/core/errors"
)

// reader reads little-endian primitives from a forward-only stream, charging
// every byte against a shrinking budget. The budget bounds total consumption
// against malformed declared sizes; nested object sizes narrow it further
// via pushLimit.
type reader struct {
	br        *bufio.Reader
	remaining uint64
	scratch   [8]byte
}

func newReader(r io.Reader, budget uint64) *reader {
	return &reader{br: bufio.NewReader(r), remaining: budget}
}

// charge debits n bytes from the budget, failing with a confinement error
// when the budget does not cover them.
func (r *reader) charge(n uint64) error {
	if n > r.remaining {
		return errors.NewData(errors.CodeConfinement, "",
			"declared data size exceeds the enclosing size or stream budget")
	}
	r.remaining -= n
	return nil
}

// pushLimit narrows the budget to size bytes and returns the budget that
// remains outside. The corresponding popLimit restores it.
func (r *reader) pushLimit(size uint32) (outer uint64, err error) {
	if err := r.charge(uint64(size)); err != nil {
		return 0, err
	}
	outer = r.remaining
	r.remaining = uint64(size)
	return outer, nil
}

func (r *reader) popLimit(outer uint64) {
	r.remaining = outer
}

// wrapIOErr converts an underlying read failure: premature end of stream is
// a data confinement error, anything else is a system error.
func wrapIOErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.NewData(errors.CodeConfinement, "", "stream ends in the middle of data")
	}
	return errors.NewSystem("read", "", err)
}

func (r *reader) readFull(buf []byte) error {
	if err := r.charge(uint64(len(buf))); err != nil {
		return err
	}
	return r.readRawFull(buf)
}

// readRawFull fills buf without touching the budget; callers doing bulk
// element reads charge the whole array up front instead.
func (r *reader) readRawFull(buf []byte) error {
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return wrapIOErr(err)
	}
	return nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.charge(1); err != nil {
		return 0, err
	}
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, wrapIOErr(err)
	}
	return b, nil
}

func (r *reader) readUint32() (uint32, error) {
	if err := r.readFull(r.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.scratch[:4]), nil
}

func (r *reader) readInt32() (int32, error) {
	v, err := r.readUint32()
	return int32(v), err
}

func (r *reader) readInt64() (int64, error) {
	if err := r.readFull(r.scratch[:8]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(r.scratch[:8])), nil
}

func (r *reader) readDouble() (float64, error) {
	if err := r.readFull(r.scratch[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(r.scratch[:8])), nil
}

// readNULString reads a NUL-terminated string byte by byte, so the stream
// never needs to seek. The buffer grows by doubling, capped at the remaining
// budget, which avoids both O(n²) reallocation and overshooting allocations
// for hostile lengths. Running out of budget before the terminator is a
// long-string error.
func (r *reader) readNULString() (string, error) {
	buf := make([]byte, 0, minUint64(16, r.remaining))
	for {
		if r.remaining == 0 {
			return "", errors.NewData(errors.CodeLongString, "",
				"character string runs past the end of its container")
		}
		r.remaining--
		b, err := r.br.ReadByte()
		if err != nil {
			return "", wrapIOErr(err)
		}
		if b == 0 {
			return string(buf), nil
		}
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), minUint64(uint64(2*cap(buf)), uint64(len(buf))+1+r.remaining))
			copy(grown, buf)
			buf = grown
		}
		buf = append(buf, b)
	}
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// writer writes little-endian primitives to a buffered stream. Write
// failures surface as system errors.
type writer struct {
	bw      *bufio.Writer
	scratch [8]byte
}

func newWriter(w io.Writer) *writer {
	return &writer{bw: bufio.NewWriter(w)}
}

func (w *writer) flush() error {
	if err := w.bw.Flush(); err != nil {
		return errors.NewSystem("write", "", err)
	}
	return nil
}

func (w *writer) writeBytes(data []byte) error {
	if _, err := w.bw.Write(data); err != nil {
		return errors.NewSystem("write", "", err)
	}
	return nil
}

func (w *writer) writeByte(b byte) error {
	if err := w.bw.WriteByte(b); err != nil {
		return errors.NewSystem("write", "", err)
	}
	return nil
}

// writeNULString writes the string bytes followed by the NUL terminator.
func (w *writer) writeNULString(s string) error {
	if _, err := w.bw.WriteString(s); err != nil {
		return errors.NewSystem("write", "", err)
	}
	return w.writeByte(0)
}

func (w *writer) writeUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	return w.writeBytes(w.scratch[:4])
}

func (w *writer) writeInt32(v int32) error {
	return w.writeUint32(uint32(v))
}

func (w *writer) writeInt64(v int64) error {
	binary.LittleEndian.PutUint64(w.scratch[:8], uint64(v))
	return w.writeBytes(w.scratch[:8])
}

func (w *writer) writeDouble(v float64) error {
	binary.LittleEndian.PutUint64(w.scratch[:8], math.Float64bits(v))
	return w.writeBytes(w.scratch[:8])
}
