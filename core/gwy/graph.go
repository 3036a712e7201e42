package gwy

// GraphCurveModelSpec describes a "GwyGraphCurveModel" object: one curve of
// a graph. XData and YData must have the same non-zero length.
type GraphCurveModelSpec struct {
	Description string
	CurveType   int32
	PointSize   int32
	LineSize    int32
	ColorRed    float64
	ColorGreen  float64
	ColorBlue   float64
	XData       []float64
	YData       []float64
}

// NewGraphCurveModel creates a "GwyGraphCurveModel" object. It panics when
// XData and YData lengths differ.
func NewGraphCurveModel(spec GraphCurveModelSpec) *Object {
	if len(spec.XData) != len(spec.YData) {
		panic("gwy: GraphCurveModel xdata and ydata lengths differ")
	}
	o := NewObject("GwyGraphCurveModel",
		NewDoubleArray("xdata", spec.XData),
		NewDoubleArray("ydata", spec.YData),
	)
	if spec.Description != "" {
		o.Add(NewString("description", spec.Description))
	}
	if spec.CurveType != 0 {
		o.Add(NewInt32("type", spec.CurveType))
	}
	if spec.PointSize != 0 {
		o.Add(NewInt32("point_size", spec.PointSize))
	}
	if spec.LineSize != 0 {
		o.Add(NewInt32("line_size", spec.LineSize))
	}
	if spec.ColorRed != 0 {
		o.Add(NewDouble("color.red", spec.ColorRed))
	}
	if spec.ColorGreen != 0 {
		o.Add(NewDouble("color.green", spec.ColorGreen))
	}
	if spec.ColorBlue != 0 {
		o.Add(NewDouble("color.blue", spec.ColorBlue))
	}
	return o
}

// GraphCurveModelGet extracts the contents of a "GwyGraphCurveModel" object.
func GraphCurveModelGet(o *Object) (*GraphCurveModelSpec, error) {
	if err := requireName(o, "GwyGraphCurveModel"); err != nil {
		return nil, err
	}
	var (
		spec GraphCurveModelSpec
		err  error
	)
	if spec.XData, err = requireDoubleArray(o, "xdata"); err != nil {
		return nil, err
	}
	if spec.YData, err = requireDoubleArray(o, "ydata"); err != nil {
		return nil, err
	}
	spec.Description = optString(o, "description")
	spec.CurveType = optInt32(o, "type")
	spec.PointSize = optInt32(o, "point_size")
	spec.LineSize = optInt32(o, "line_size")
	spec.ColorRed = optDouble(o, "color.red")
	spec.ColorGreen = optDouble(o, "color.green")
	spec.ColorBlue = optDouble(o, "color.blue")
	return &spec, nil
}

// GraphModelSpec describes a "GwyGraphModel" object: a set of curves with
// titles and axis units. Curves must be non-empty; the objects are consumed
// (owned by the new graph model).
type GraphModelSpec struct {
	Title       string
	TopLabel    string
	BottomLabel string
	LeftLabel   string
	RightLabel  string
	XUnit       string
	YUnit       string
	Curves      []*Object
}

// NewGraphModel creates a "GwyGraphModel" object, taking ownership of the
// curve objects. It panics when Curves is empty or a curve already has an
// owner.
func NewGraphModel(spec GraphModelSpec) *Object {
	o := NewObject("GwyGraphModel",
		NewObjectArray("curves", spec.Curves),
	)
	if spec.Title != "" {
		o.Add(NewString("title", spec.Title))
	}
	if spec.TopLabel != "" {
		o.Add(NewString("top_label", spec.TopLabel))
	}
	if spec.BottomLabel != "" {
		o.Add(NewString("bottom_label", spec.BottomLabel))
	}
	if spec.LeftLabel != "" {
		o.Add(NewString("left_label", spec.LeftLabel))
	}
	if spec.RightLabel != "" {
		o.Add(NewString("right_label", spec.RightLabel))
	}
	addUnit(o, "x_unit", spec.XUnit)
	addUnit(o, "y_unit", spec.YUnit)
	return o
}

// GraphModelGet extracts the contents of a "GwyGraphModel" object. The
// returned curve objects stay owned by the graph model.
func GraphModelGet(o *Object) (*GraphModelSpec, error) {
	if err := requireName(o, "GwyGraphModel"); err != nil {
		return nil, err
	}
	it := o.GetWithType("curves", TypeObjectArray)
	if it == nil {
		return nil, missingItem(o, "curves", TypeObjectArray)
	}
	spec := GraphModelSpec{
		Curves:      it.ObjectArray(),
		Title:       optString(o, "title"),
		TopLabel:    optString(o, "top_label"),
		BottomLabel: optString(o, "bottom_label"),
		LeftLabel:   optString(o, "left_label"),
		RightLabel:  optString(o, "right_label"),
		XUnit:       optUnit(o, "x_unit"),
		YUnit:       optUnit(o, "y_unit"),
	}
	return &spec, nil
}
