package gwy

import (
	"fmt"
)

// Selections store their coordinates as a flat double array; the number of
// doubles per selected shape depends on the selection kind.

// selectionCoords maps a selection type name to its per-shape coordinate
// count.
var selectionCoords = map[string]int{
	"GwySelectionPoint":     2,
	"GwySelectionCross":     2,
	"GwySelectionLine":      4,
	"GwySelectionRectangle": 4,
	"GwySelectionEllipse":   4,
	"GwySelectionLattice":   4,
}

// SelectionSpec describes a selection object. Coords holds the flattened
// shape coordinates; Max is the optional selection capacity.
type SelectionSpec struct {
	Max    int32
	Coords []float64
}

func newSelection(typeName string, spec SelectionSpec) *Object {
	per := selectionCoords[typeName]
	if len(spec.Coords) == 0 || len(spec.Coords)%per != 0 {
		panic(fmt.Sprintf("gwy: %s coordinate count is not a multiple of %d", typeName, per))
	}
	o := NewObject(typeName, NewDoubleArray("data", spec.Coords))
	if spec.Max != 0 {
		o.Add(NewInt32("max", spec.Max))
	}
	return o
}

func selectionGet(typeName string, o *Object) (*SelectionSpec, error) {
	if err := requireName(o, typeName); err != nil {
		return nil, err
	}
	coords, err := requireDoubleArray(o, "data")
	if err != nil {
		return nil, err
	}
	return &SelectionSpec{Coords: coords, Max: optInt32(o, "max")}, nil
}

// NewSelectionPoint creates a "GwySelectionPoint" object; two coordinates
// per point.
func NewSelectionPoint(spec SelectionSpec) *Object {
	return newSelection("GwySelectionPoint", spec)
}

// SelectionPointGet extracts the contents of a "GwySelectionPoint" object.
func SelectionPointGet(o *Object) (*SelectionSpec, error) {
	return selectionGet("GwySelectionPoint", o)
}

// NewSelectionLine creates a "GwySelectionLine" object; four coordinates
// per line.
func NewSelectionLine(spec SelectionSpec) *Object {
	return newSelection("GwySelectionLine", spec)
}

// SelectionLineGet extracts the contents of a "GwySelectionLine" object.
func SelectionLineGet(o *Object) (*SelectionSpec, error) {
	return selectionGet("GwySelectionLine", o)
}

// NewSelectionRectangle creates a "GwySelectionRectangle" object; four
// coordinates per rectangle.
func NewSelectionRectangle(spec SelectionSpec) *Object {
	return newSelection("GwySelectionRectangle", spec)
}

// SelectionRectangleGet extracts the contents of a "GwySelectionRectangle"
// object.
func SelectionRectangleGet(o *Object) (*SelectionSpec, error) {
	return selectionGet("GwySelectionRectangle", o)
}
