package errors

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"
)

func TestDataErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *DataError
		want string
	}{
		{
			name: "with path",
			err:  NewData(CodeDuplicateName, "/Top/x", "two items named \"x\""),
			want: "/Top/x: two items named \"x\"",
		},
		{
			name: "without path",
			err:  NewData(CodeMagic, "", "wrong magic"),
			want: "wrong magic",
		},
		{
			name: "formatted",
			err:  NewDataf(CodeTooDeepNesting, "/a", "nesting exceeds %d levels", 200),
			want: "/a: nesting exceeds 200 levels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataErrorSentinels(t *testing.T) {
	tests := []struct {
		code DataCode
		want error
	}{
		{CodeMagic, ErrMagic},
		{CodeItemType, ErrItemType},
		{CodeConfinement, ErrConfinement},
		{CodeArraySize, ErrArraySize},
		{CodeDuplicateName, ErrDuplicateName},
		{CodeLongString, ErrLongString},
		{CodeObjectSize, ErrObjectSize},
		{CodeObjectName, ErrObjectName},
		{CodeMissingItem, ErrMissingItem},
		{CodeTooDeepNesting, ErrTooDeepNesting},
	}

	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			err := NewData(tt.code, "", "x")
			if !stderrors.Is(err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.want)
			}
			for _, other := range tests {
				if other.code != tt.code && stderrors.Is(err, other.want) {
					t.Errorf("errors.Is matched the wrong sentinel %v", other.want)
				}
			}
		})
	}
}

func TestDataErrorIsWithWrappedErr(t *testing.T) {
	// The code sentinel must still match when an underlying error is set.
	err := &DataError{Code: CodeConfinement, Message: "short read", Err: io.ErrUnexpectedEOF}
	if !stderrors.Is(err, ErrConfinement) {
		t.Error("sentinel lost behind a wrapped error")
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("wrapped error not reachable")
	}
}

func TestDataErrorAs(t *testing.T) {
	var de *DataError
	err := Wrap(NewData(CodeArraySize, "/p", "zero"), "decoding")
	if !As(err, &de) {
		t.Fatal("As() failed through a wrap")
	}
	if de.Code != CodeArraySize || de.Path != "/p" {
		t.Errorf("As() = %+v", de)
	}
}

func TestSystemError(t *testing.T) {
	underlying := stderrors.New("permission denied")

	withPath := NewSystem("open", "/tmp/f.gwy", underlying)
	if got := withPath.Error(); got != "failed to open /tmp/f.gwy: permission denied" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(withPath, underlying) {
		t.Error("underlying error not reachable")
	}

	withoutPath := NewSystem("read", "", underlying)
	if got := withoutPath.Error(); got != "failed to read: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}

func TestDomainString(t *testing.T) {
	tests := []struct {
		domain Domain
		want   string
	}{
		{DomainSystem, "system"},
		{DomainData, "data"},
		{DomainValidity, "validity"},
		{DomainWarning, "warning"},
		{Domain(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.domain.String(); got != tt.want {
			t.Errorf("Domain(%d).String() = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestList(t *testing.T) {
	var list List
	if list.Len() != 0 {
		t.Errorf("empty Len() = %d", list.Len())
	}

	list.Append(&Finding{Domain: DomainValidity, Path: "/a", Message: "bad"})
	list.Append(&Finding{Domain: DomainWarning, Path: "/b", Message: "iffy"})
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}

	if got := list.Findings[0].Error(); !strings.Contains(got, "validity") || !strings.Contains(got, "/a") {
		t.Errorf("Finding.Error() = %q", got)
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Len() after Clear = %d", list.Len())
	}

	var nilList *List
	if nilList.Len() != 0 {
		t.Error("nil List Len() != 0")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	base := stderrors.New("boom")
	wrapped := Wrapf(base, "stage %d", 2)
	if wrapped.Error() != "stage 2: boom" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("Is() failed through Wrapf")
	}
}
