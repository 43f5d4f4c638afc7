package testcases

import "math"

var fillCases = []TestCase{
	{
		Name:     "triangle_nonzero",
		Vertices: triangle(10, 50, 32, 10, 54, 50),
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "triangle_evenodd",
		Vertices: triangle(10, 50, 32, 10, 54, 50),
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: EvenOdd},
	},
	{
		Name:     "rectangle",
		Vertices: rectangle(10, 10, 54, 54),
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "star_nonzero",
		Vertices: fivePointStar(32, 32, 25),
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "star_evenodd",
		Vertices: fivePointStar(32, 32, 25),
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: EvenOdd},
	},
	{
		Name:     "bowtie",
		Vertices: []float64{10, 10, 54, 54, 54, 10, 10, 54},
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "thin_sliver",
		Vertices: triangle(2, 30, 62, 31.5, 2, 33),
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
}

// triangle builds a triangular contour.
func triangle(x1, y1, x2, y2, x3, y3 float64) []float64 {
	return []float64{x1, y1, x2, y2, x3, y3}
}

// rectangle builds an axis-aligned rectangular contour.
func rectangle(x1, y1, x2, y2 float64) []float64 {
	return []float64{x1, y1, x2, y1, x2, y2, x1, y2}
}

// fivePointStar builds a self-intersecting five-pointed star by
// connecting every second point on a circle.
func fivePointStar(cx, cy, r float64) []float64 {
	order := []int{0, 2, 4, 1, 3}
	verts := make([]float64, 0, 10)
	for _, i := range order {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		verts = append(verts, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return verts
}
