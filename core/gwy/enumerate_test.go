package gwy

import (
	"reflect"
	"testing"
)

func testContainer() *Object {
	field := func() *Object {
		return NewDataField(DataFieldSpec{XRes: 1, YRes: 1, Data: []float64{0}})
	}
	return NewObject("GwyContainer",
		NewObjectItem("/2/data", field()),
		NewObjectItem("/0/data", field()),
		NewObjectItem("/10/data", field()),
		NewString("/0/data/title", "Topography"),
		NewInt32("/0/data/x", 1), // not an object, must be skipped
		NewObjectItem("/0/graph/graph/1", NewObject("GwyGraphModel",
			NewObjectArray("curves", []*Object{NewObject("GwyGraphCurveModel",
				NewDoubleArray("xdata", []float64{0}),
				NewDoubleArray("ydata", []float64{0}),
			)}),
		)),
		NewObjectItem("/brick/0", NewObject("GwyBrick")),
		NewObjectItem("/xyz/3", NewObject("GwySurface")),
		NewObjectItem("/sps/1", NewObject("GwySpectra")),
		NewObjectItem("/sps/junk", NewObject("GwySpectra")), // non-numeric id
	)
}

func TestEnumerate(t *testing.T) {
	c := testContainer()

	tests := []struct {
		name string
		fn   func(*Object) []int
		want []int
	}{
		{"channels", EnumerateChannels, []int{0, 2, 10}},
		{"graphs", EnumerateGraphs, []int{1}},
		{"volume", EnumerateVolume, []int{0}},
		{"xyz", EnumerateXYZ, []int{3}},
		{"spectra", EnumerateSpectra, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(c); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumerateEmptyContainer(t *testing.T) {
	c := NewObject("GwyContainer")
	if ids := EnumerateChannels(c); len(ids) != 0 {
		t.Errorf("EnumerateChannels(empty) = %v", ids)
	}
}
