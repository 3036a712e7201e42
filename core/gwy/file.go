package gwy

import (
	"bytes"
	"io"
	"os"

	"github.com/FocuswithJustin/gwyfile/core/errors"
	"github.com/FocuswithJustin/gwyfile/internal/fileutil"
)

// Read reads a whole GWY stream from r: the 4-byte magic tag followed by
// exactly one top-level object.
func Read(r io.Reader, opts *ReadOptions) (*Object, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.NewData(errors.CodeMagic, "", "file is too short to hold the magic header")
		}
		return nil, errors.NewSystem("read", "", err)
	}
	if string(magic[:]) != Magic {
		return nil, errors.NewDataf(errors.CodeMagic, "", "file does not begin with the %q magic header", Magic)
	}
	return ReadObject(r, opts)
}

// ReadFile reads the GWY file at path. The byte budget is set to the actual
// file size, so any declared size pointing past the end of the file fails
// with a confinement error instead of a blocked read. The handle is closed
// on every exit path.
func ReadFile(path string) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSystem("open", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.NewSystem("stat", path, err)
	}
	size := uint64(info.Size())
	if size < uint64(len(Magic)) {
		return nil, errors.NewData(errors.CodeMagic, "", "file is too short to hold the magic header")
	}
	return Read(f, &ReadOptions{MaxSize: size - uint64(len(Magic))})
}

// Write writes the magic tag and the serialized object to w.
func Write(o *Object, w io.Writer) error {
	bw := newWriter(w)
	if err := bw.writeBytes([]byte(Magic)); err != nil {
		return err
	}
	if err := encodeObject(o, bw); err != nil {
		return err
	}
	return bw.flush()
}

// WriteFile writes the object as a GWY file at path. The file is written
// atomically: readers never observe a partial file, and nothing is left
// behind on failure.
func WriteFile(o *Object, path string) error {
	var buf bytes.Buffer
	buf.Grow(len(Magic) + int(o.Size()))
	if err := Write(o, &buf); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return errors.NewSystem("write", path, err)
	}
	return nil
}
