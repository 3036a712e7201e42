package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/gwyfile/core/gwy"
)

func testTree() *gwy.Object {
	return gwy.NewObject("GwyContainer",
		gwy.NewInt32("n", 7),
		gwy.NewString("title", "scan"),
		gwy.NewObjectItem("/0/data", gwy.NewDataField(gwy.DataFieldSpec{
			XRes: 2, YRes: 2,
			XReal: 1, YReal: 1,
			Data: []float64{1, 2, 3, 4},
		})),
	)
}

func writeTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gwy")
	if err := gwy.WriteFile(testTree(), path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTreePlain(t *testing.T) {
	cfg := defaultConfig()
	obj, err := readTree(writeTestFile(t), &cfg)
	if err != nil {
		t.Fatalf("readTree() failed: %v", err)
	}
	if obj.Name() != "GwyContainer" || obj.NItems() != 3 {
		t.Errorf("readTree() = %q with %d items", obj.Name(), obj.NItems())
	}
}

func TestReadTreeXZ(t *testing.T) {
	var raw bytes.Buffer
	if err := gwy.Write(testTree(), &raw); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "test.gwy.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write(raw.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	obj, err := readTree(path, &cfg)
	if err != nil {
		t.Fatalf("readTree(xz) failed: %v", err)
	}
	if obj.Name() != "GwyContainer" {
		t.Errorf("readTree(xz) = %q", obj.Name())
	}
}

func TestReadTreeRespectsDepthLimit(t *testing.T) {
	inner := gwy.NewObject("Leaf")
	for i := 0; i < 5; i++ {
		inner = gwy.NewObject("Node", gwy.NewObjectItem("child", inner))
	}
	path := filepath.Join(t.TempDir(), "deep.gwy")
	if err := gwy.WriteFile(inner, path); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Limits.MaxDepth = 3
	if _, err := readTree(path, &cfg); err == nil {
		t.Error("readTree() ignored the configured depth limit")
	}
}

func TestDumpObject(t *testing.T) {
	var buf bytes.Buffer
	dumpObject(&buf, testTree(), 0)
	out := buf.String()

	for _, want := range []string{
		"GwyContainer (3 items",
		`"n" int32 = 7`,
		`"title" string = "scan"`,
		`"/0/data" object:`,
		`"xres" int32 = 2`,
		`"data" double array [4]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}
