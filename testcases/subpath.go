package testcases

// Multi-contour cases exercise the contour metadata and fill-rule
// interaction between nested and disjoint contours.
var subpathCases = []TestCase{
	{
		Name: "square_hole_evenodd",
		Vertices: concat(
			rectangle(8, 8, 56, 56),
			rectangle(24, 24, 40, 40),
		),
		Counts: []int{4, 4},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name: "square_hole_nonzero",
		Vertices: concat(
			rectangle(8, 8, 56, 56),
			reverse(rectangle(24, 24, 40, 40)),
		),
		Counts: []int{4, 4},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "two_triangles",
		Vertices: concat(
			triangle(4, 28, 16, 4, 28, 28),
			triangle(36, 60, 48, 36, 60, 60),
		),
		Counts: []int{3, 3},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		// The metadata does not match the vertex buffer; the renderer
		// must fall back to a single contour instead of failing.
		Name:     "bad_metadata",
		Vertices: triangle(10, 50, 32, 10, 54, 50),
		Counts:   []int{2, 2},
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
}

func concat(contours ...[]float64) []float64 {
	var out []float64
	for _, c := range contours {
		out = append(out, c...)
	}
	return out
}

// reverse flips the vertex order of one contour, inverting its winding.
func reverse(verts []float64) []float64 {
	n := len(verts) / 2
	out := make([]float64, 0, len(verts))
	for i := n - 1; i >= 0; i-- {
		out = append(out, verts[2*i], verts[2*i+1])
	}
	return out
}
