package config

// Level1 is a single-tile warm-up.
var Level1 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
}

var Level2 = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
}

// DefaultLevels returns fresh copies of the built-in level grids.
func DefaultLevels() [][][]int {
	return [][][]int{copyGrid(Level1), copyGrid(Level2)}
}

func copyGrid(g [][]int) [][]int {
	out := make([][]int, len(g))
	for i, row := range g {
		out[i] = append([]int(nil), row...)
	}
	return out
}
