package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"fill":    fillCases,
	"stroke":  strokeCases,
	"subpath": subpathCases,
}
