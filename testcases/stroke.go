package testcases

import "seehuhn.de/go/pdf/graphics"

var strokeCases = []TestCase{
	{
		Name:     "line_butt",
		Vertices: []float64{10, 32, 54, 32},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:     "line_round",
		Vertices: []float64{10, 32, 54, 32},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:     "line_square",
		Vertices: []float64{10, 32, 54, 32},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:     "corner_miter",
		Vertices: []float64{10, 50, 32, 14, 54, 50},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:     "corner_round",
		Vertices: []float64{10, 50, 32, 14, 54, 50},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:     "corner_bevel",
		Vertices: []float64{10, 50, 32, 14, 54, 50},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
	},
	{
		Name:     "closed_square",
		Vertices: rectangle(16, 16, 48, 48),
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Closed:     true,
		},
	},
	{
		Name:     "dashed",
		Vertices: []float64{5, 32, 59, 32},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{8, 4},
		},
	},
	{
		Name:     "dashed_phase",
		Vertices: []float64{5, 32, 59, 32},
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{8, 4},
			DashPhase:  6,
		},
	},
}
