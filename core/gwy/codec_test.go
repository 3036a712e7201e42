package gwy

import (
	"bytes"
	"testing"

	"github.com/FocuswithJustin/gwyfile/core/errors"
)

func TestReaderPrimitives(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00, // uint32 1
		0xfe, 0xff, 0xff, 0xff, // int32 -2
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // int64 3
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f, // double 1.5
	}
	r := newReader(bytes.NewReader(data), uint64(len(data)))

	if v, err := r.readUint32(); err != nil || v != 1 {
		t.Errorf("readUint32() = %d, %v, want 1", v, err)
	}
	if v, err := r.readInt32(); err != nil || v != -2 {
		t.Errorf("readInt32() = %d, %v, want -2", v, err)
	}
	if v, err := r.readInt64(); err != nil || v != 3 {
		t.Errorf("readInt64() = %d, %v, want 3", v, err)
	}
	if v, err := r.readDouble(); err != nil || v != 1.5 {
		t.Errorf("readDouble() = %g, %v, want 1.5", v, err)
	}
}

func TestReaderBudget(t *testing.T) {
	// 8 bytes of data but a budget of 6: the second read must fail with a
	// confinement error without touching the stream bytes past the budget.
	data := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	r := newReader(bytes.NewReader(data), 6)

	if _, err := r.readUint32(); err != nil {
		t.Fatalf("first readUint32() failed: %v", err)
	}
	_, err := r.readUint32()
	if !errors.Is(err, errors.ErrConfinement) {
		t.Errorf("second readUint32() = %v, want confinement error", err)
	}
}

func TestReadNULString(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		budget  uint64
		want    string
		wantErr error
	}{
		{
			name:   "simple",
			data:   []byte("hello\x00"),
			budget: 6,
			want:   "hello",
		},
		{
			name:   "empty",
			data:   []byte{0},
			budget: 10,
			want:   "",
		},
		{
			name:   "long name grows the buffer",
			data:   append(bytes.Repeat([]byte{'x'}, 100), 0),
			budget: 101,
			want:   string(bytes.Repeat([]byte{'x'}, 100)),
		},
		{
			name:    "budget exhausted before terminator",
			data:    []byte("abcdef\x00"),
			budget:  3,
			wantErr: errors.ErrLongString,
		},
		{
			name:    "stream ends before terminator",
			data:    []byte("abc"),
			budget:  10,
			wantErr: errors.ErrConfinement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(bytes.NewReader(tt.data), tt.budget)
			got, err := r.readNULString()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("readNULString() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readNULString() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("readNULString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriterLittleEndian(t *testing.T) {
	// The wire is little-endian regardless of host order, so int32 1 must
	// serialize as 01 00 00 00 on every architecture.
	var buf bytes.Buffer
	w := newWriter(&buf)
	if err := w.writeInt32(1); err != nil {
		t.Fatalf("writeInt32() failed: %v", err)
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush() failed: %v", err)
	}
	want := []byte{0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("writeInt32(1) = % x, want % x", buf.Bytes(), want)
	}
}

func TestWriterDouble(t *testing.T) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	if err := w.writeDouble(1.5); err != nil {
		t.Fatalf("writeDouble() failed: %v", err)
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush() failed: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("writeDouble(1.5) = % x, want % x", buf.Bytes(), want)
	}
}

func TestPushLimit(t *testing.T) {
	r := newReader(bytes.NewReader(make([]byte, 10)), 10)
	outer, err := r.pushLimit(4)
	if err != nil {
		t.Fatalf("pushLimit(4) failed: %v", err)
	}
	if r.remaining != 4 {
		t.Errorf("remaining after pushLimit = %d, want 4", r.remaining)
	}
	if outer != 6 {
		t.Errorf("outer budget = %d, want 6", outer)
	}
	if _, err := r.pushLimit(5); !errors.Is(err, errors.ErrConfinement) {
		t.Errorf("pushLimit(5) inside limit 4 = %v, want confinement error", err)
	}
}
