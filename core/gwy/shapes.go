package gwy

import (
	"github.com/FocuswithJustin/gwyfile/core/errors"
)

// Helpers shared by the typed object getters. Every getter validates the
// object type name first and then its mandatory items, reporting
// object-name and missing-item data errors; optional items fall back to a
// zero value.

func requireName(o *Object, typeName string) error {
	if o.name != typeName {
		return errors.NewDataf(errors.CodeObjectName, ObjectPath(o),
			"object is %q, not %q", o.name, typeName)
	}
	return nil
}

func missingItem(o *Object, name string, typ ItemType) error {
	return errors.NewDataf(errors.CodeMissingItem, ObjectPath(o),
		"object has no %s item %q", typ, name)
}

func requireInt32(o *Object, name string) (int32, error) {
	it := o.GetWithType(name, TypeInt32)
	if it == nil {
		return 0, missingItem(o, name, TypeInt32)
	}
	return it.Int32(), nil
}

func requireDouble(o *Object, name string) (float64, error) {
	it := o.GetWithType(name, TypeDouble)
	if it == nil {
		return 0, missingItem(o, name, TypeDouble)
	}
	return it.Double(), nil
}

func requireDoubleArray(o *Object, name string) ([]float64, error) {
	it := o.GetWithType(name, TypeDoubleArray)
	if it == nil {
		return nil, missingItem(o, name, TypeDoubleArray)
	}
	return it.DoubleArray(), nil
}

func requireString(o *Object, name string) (string, error) {
	it := o.GetWithType(name, TypeString)
	if it == nil {
		return "", missingItem(o, name, TypeString)
	}
	return it.String(), nil
}

func optInt32(o *Object, name string) int32 {
	if it := o.GetWithType(name, TypeInt32); it != nil {
		return it.Int32()
	}
	return 0
}

func optDouble(o *Object, name string) float64 {
	if it := o.GetWithType(name, TypeDouble); it != nil {
		return it.Double()
	}
	return 0
}

func optString(o *Object, name string) string {
	if it := o.GetWithType(name, TypeString); it != nil {
		return it.String()
	}
	return ""
}

// optUnit returns the unit string of a nested GwySIUnit item, or "".
func optUnit(o *Object, name string) string {
	it := o.GetWithType(name, TypeObject)
	if it == nil {
		return ""
	}
	unit, err := SIUnitGet(it.Object())
	if err != nil {
		return ""
	}
	return unit
}

// addUnit adds a nested GwySIUnit item unless unit is empty.
func addUnit(o *Object, name, unit string) {
	if unit != "" {
		o.Add(NewObjectItem(name, NewSIUnit(unit)))
	}
}

// SIUnit

// NewSIUnit creates a "GwySIUnit" object for the given unit string.
func NewSIUnit(unit string) *Object {
	return NewObject("GwySIUnit", NewString("unitstr", unit))
}

// SIUnitGet returns the unit string of a "GwySIUnit" object.
func SIUnitGet(o *Object) (string, error) {
	if err := requireName(o, "GwySIUnit"); err != nil {
		return "", err
	}
	return requireString(o, "unitstr")
}

// DataField

// DataFieldSpec describes a "GwyDataField" object: a two-dimensional data
// array with physical dimensions. Data must hold XRes*YRes values in
// row-major order. Offsets and units are optional.
type DataFieldSpec struct {
	XRes, YRes       int32
	XReal, YReal     float64
	XOffset, YOffset float64
	SIUnitXY         string
	SIUnitZ          string
	Data             []float64
}

// NewDataField creates a "GwyDataField" object. It panics when Data does
// not hold exactly XRes*YRes values.
func NewDataField(spec DataFieldSpec) *Object {
	if int64(len(spec.Data)) != int64(spec.XRes)*int64(spec.YRes) {
		panic("gwy: DataField data length does not match xres*yres")
	}
	o := NewObject("GwyDataField",
		NewInt32("xres", spec.XRes),
		NewInt32("yres", spec.YRes),
		NewDouble("xreal", spec.XReal),
		NewDouble("yreal", spec.YReal),
	)
	if spec.XOffset != 0 {
		o.Add(NewDouble("xoff", spec.XOffset))
	}
	if spec.YOffset != 0 {
		o.Add(NewDouble("yoff", spec.YOffset))
	}
	addUnit(o, "si_unit_xy", spec.SIUnitXY)
	addUnit(o, "si_unit_z", spec.SIUnitZ)
	o.Add(NewDoubleArray("data", spec.Data))
	return o
}

// DataFieldGet extracts the contents of a "GwyDataField" object. The
// returned Data slice aliases the item payload.
func DataFieldGet(o *Object) (*DataFieldSpec, error) {
	if err := requireName(o, "GwyDataField"); err != nil {
		return nil, err
	}
	var (
		spec DataFieldSpec
		err  error
	)
	if spec.XRes, err = requireInt32(o, "xres"); err != nil {
		return nil, err
	}
	if spec.YRes, err = requireInt32(o, "yres"); err != nil {
		return nil, err
	}
	if spec.XReal, err = requireDouble(o, "xreal"); err != nil {
		return nil, err
	}
	if spec.YReal, err = requireDouble(o, "yreal"); err != nil {
		return nil, err
	}
	if spec.Data, err = requireDoubleArray(o, "data"); err != nil {
		return nil, err
	}
	spec.XOffset = optDouble(o, "xoff")
	spec.YOffset = optDouble(o, "yoff")
	spec.SIUnitXY = optUnit(o, "si_unit_xy")
	spec.SIUnitZ = optUnit(o, "si_unit_z")
	return &spec, nil
}

// DataLine

// DataLineSpec describes a "GwyDataLine" object: a one-dimensional data
// array with a physical length. Data must hold Res values.
type DataLineSpec struct {
	Res     int32
	Real    float64
	Offset  float64
	SIUnitX string
	SIUnitY string
	Data    []float64
}

// NewDataLine creates a "GwyDataLine" object. It panics when Data does not
// hold exactly Res values.
func NewDataLine(spec DataLineSpec) *Object {
	if int64(len(spec.Data)) != int64(spec.Res) {
		panic("gwy: DataLine data length does not match res")
	}
	o := NewObject("GwyDataLine",
		NewInt32("res", spec.Res),
		NewDouble("real", spec.Real),
	)
	if spec.Offset != 0 {
		o.Add(NewDouble("off", spec.Offset))
	}
	addUnit(o, "si_unit_x", spec.SIUnitX)
	addUnit(o, "si_unit_y", spec.SIUnitY)
	o.Add(NewDoubleArray("data", spec.Data))
	return o
}

// DataLineGet extracts the contents of a "GwyDataLine" object.
func DataLineGet(o *Object) (*DataLineSpec, error) {
	if err := requireName(o, "GwyDataLine"); err != nil {
		return nil, err
	}
	var (
		spec DataLineSpec
		err  error
	)
	if spec.Res, err = requireInt32(o, "res"); err != nil {
		return nil, err
	}
	if spec.Real, err = requireDouble(o, "real"); err != nil {
		return nil, err
	}
	if spec.Data, err = requireDoubleArray(o, "data"); err != nil {
		return nil, err
	}
	spec.Offset = optDouble(o, "off")
	spec.SIUnitX = optUnit(o, "si_unit_x")
	spec.SIUnitY = optUnit(o, "si_unit_y")
	return &spec, nil
}

// Brick

// BrickSpec describes a "GwyBrick" object: a three-dimensional data array
// with physical dimensions. Data must hold XRes*YRes*ZRes values.
type BrickSpec struct {
	XRes, YRes, ZRes          int32
	XReal, YReal, ZReal       float64
	XOffset, YOffset, ZOffset float64
	SIUnitX, SIUnitY, SIUnitZ string
	SIUnitW                   string
	Data                      []float64
}

// NewBrick creates a "GwyBrick" object. It panics when Data does not hold
// exactly XRes*YRes*ZRes values.
func NewBrick(spec BrickSpec) *Object {
	if int64(len(spec.Data)) != int64(spec.XRes)*int64(spec.YRes)*int64(spec.ZRes) {
		panic("gwy: Brick data length does not match xres*yres*zres")
	}
	o := NewObject("GwyBrick",
		NewInt32("xres", spec.XRes),
		NewInt32("yres", spec.YRes),
		NewInt32("zres", spec.ZRes),
		NewDouble("xreal", spec.XReal),
		NewDouble("yreal", spec.YReal),
		NewDouble("zreal", spec.ZReal),
	)
	if spec.XOffset != 0 {
		o.Add(NewDouble("xoff", spec.XOffset))
	}
	if spec.YOffset != 0 {
		o.Add(NewDouble("yoff", spec.YOffset))
	}
	if spec.ZOffset != 0 {
		o.Add(NewDouble("zoff", spec.ZOffset))
	}
	addUnit(o, "si_unit_x", spec.SIUnitX)
	addUnit(o, "si_unit_y", spec.SIUnitY)
	addUnit(o, "si_unit_z", spec.SIUnitZ)
	addUnit(o, "si_unit_w", spec.SIUnitW)
	o.Add(NewDoubleArray("data", spec.Data))
	return o
}

// BrickGet extracts the contents of a "GwyBrick" object.
func BrickGet(o *Object) (*BrickSpec, error) {
	if err := requireName(o, "GwyBrick"); err != nil {
		return nil, err
	}
	var (
		spec BrickSpec
		err  error
	)
	if spec.XRes, err = requireInt32(o, "xres"); err != nil {
		return nil, err
	}
	if spec.YRes, err = requireInt32(o, "yres"); err != nil {
		return nil, err
	}
	if spec.ZRes, err = requireInt32(o, "zres"); err != nil {
		return nil, err
	}
	if spec.XReal, err = requireDouble(o, "xreal"); err != nil {
		return nil, err
	}
	if spec.YReal, err = requireDouble(o, "yreal"); err != nil {
		return nil, err
	}
	if spec.ZReal, err = requireDouble(o, "zreal"); err != nil {
		return nil, err
	}
	if spec.Data, err = requireDoubleArray(o, "data"); err != nil {
		return nil, err
	}
	spec.XOffset = optDouble(o, "xoff")
	spec.YOffset = optDouble(o, "yoff")
	spec.ZOffset = optDouble(o, "zoff")
	spec.SIUnitX = optUnit(o, "si_unit_x")
	spec.SIUnitY = optUnit(o, "si_unit_y")
	spec.SIUnitZ = optUnit(o, "si_unit_z")
	spec.SIUnitW = optUnit(o, "si_unit_w")
	return &spec, nil
}

// Surface

// SurfaceSpec describes a "GwySurface" object: general XYZ data stored as
// (x, y, z) triples. Data must hold 3*N values for N points.
type SurfaceSpec struct {
	SIUnitXY string
	SIUnitZ  string
	Data     []float64
}

// NewSurface creates a "GwySurface" object. It panics when Data does not
// hold a non-zero multiple of three values.
func NewSurface(spec SurfaceSpec) *Object {
	if len(spec.Data) == 0 || len(spec.Data)%3 != 0 {
		panic("gwy: Surface data length is not a multiple of 3")
	}
	o := NewObject("GwySurface")
	addUnit(o, "si_unit_xy", spec.SIUnitXY)
	addUnit(o, "si_unit_z", spec.SIUnitZ)
	o.Add(NewDoubleArray("data", spec.Data))
	return o
}

// SurfaceGet extracts the contents of a "GwySurface" object.
func SurfaceGet(o *Object) (*SurfaceSpec, error) {
	if err := requireName(o, "GwySurface"); err != nil {
		return nil, err
	}
	var (
		spec SurfaceSpec
		err  error
	)
	if spec.Data, err = requireDoubleArray(o, "data"); err != nil {
		return nil, err
	}
	spec.SIUnitXY = optUnit(o, "si_unit_xy")
	spec.SIUnitZ = optUnit(o, "si_unit_z")
	return &spec, nil
}
