package main

// Pattern scanning. All four axes are walked as 1-D lines through
// index-mapped starts and steps; nothing is materialized or rotated.

type axis int

const (
	axisHorizontal axis = iota
	axisVertical
	axisDiagDown // top-left to bottom-right
	axisDiagUp   // top-right to bottom-left
	axisCount
)

type lineWalk struct {
	row, col     int
	stepR, stepC int
}

func lineWalks(b Board, a axis) []lineWalk {
	walks := []lineWalk{}
	switch a {
	case axisHorizontal:
		for r := 0; r < b.Height(); r++ {
			walks = append(walks, lineWalk{row: r, col: 0, stepR: 0, stepC: 1})
		}
	case axisVertical:
		for c := 0; c < b.Width(); c++ {
			walks = append(walks, lineWalk{row: 0, col: c, stepR: 1, stepC: 0})
		}
	case axisDiagDown:
		for c := 0; c < b.Width(); c++ {
			walks = append(walks, lineWalk{row: 0, col: c, stepR: 1, stepC: 1})
		}
		for r := 1; r < b.Height(); r++ {
			walks = append(walks, lineWalk{row: r, col: 0, stepR: 1, stepC: 1})
		}
	case axisDiagUp:
		for c := 0; c < b.Width(); c++ {
			walks = append(walks, lineWalk{row: 0, col: c, stepR: 1, stepC: -1})
		}
		for r := 1; r < b.Height(); r++ {
			walks = append(walks, lineWalk{row: r, col: b.Width() - 1, stepR: 1, stepC: -1})
		}
	}
	return walks
}

// longestRun walks one line and returns the length of its longest maximal run
// of target stones, first occurrence winning ties.
func longestRun(b Board, w lineWalk, target Cell) int {
	best := 0
	current := 0
	row, col := w.row, w.col
	for b.InBounds(row, col) {
		if b.At(row, col) == target {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
		row += w.stepR
		col += w.stepC
	}
	return best
}

// runsByAxis returns, per axis, the set of per-line longest run lengths of at
// least two stones.
func runsByAxis(color PlayerColor, b Board) [axisCount]map[int]bool {
	target := CellFromPlayer(color)
	var result [axisCount]map[int]bool
	for a := axis(0); a < axisCount; a++ {
		result[a] = map[int]bool{}
		for _, w := range lineWalks(b, a) {
			if run := longestRun(b, w, target); run >= 2 {
				result[a][run] = true
			}
		}
	}
	return result
}

// RunLengths is the union of runsByAxis across all four axes.
func RunLengths(color PlayerColor, b Board) map[int]bool {
	union := map[int]bool{}
	for _, runs := range runsByAxis(color, b) {
		for length := range runs {
			union[length] = true
		}
	}
	return union
}

func HasFiveInRow(color PlayerColor, b Board) bool {
	return RunLengths(color, b)[5]
}

func HasOverline(color PlayerColor, b Board) bool {
	for length := range RunLengths(color, b) {
		if length > 5 {
			return true
		}
	}
	return false
}

// HasDoubleThree reports whether any Black stone anchors open runs of exactly
// three on two distinct axes inside its radius-2 neighbourhood.
func HasDoubleThree(b Board) bool {
	return hasDoubleRun(b, 2, 3)
}

// HasDoubleFour is the radius-3, run-of-four analogue.
func HasDoubleFour(b Board) bool {
	return hasDoubleRun(b, 3, 4)
}

func hasDoubleRun(b Board, radius, want int) bool {
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.At(row, col) != CellBlack {
				continue
			}
			window := maskedWindow(b, row, col, radius)
			axes := 0
			for _, runs := range runsByAxis(PlayerBlack, window) {
				if runs[want] {
					axes++
				}
			}
			if axes >= 2 {
				return true
			}
		}
	}
	return false
}

// maskedWindow extracts the square neighbourhood of the given radius around a
// stone, padding beyond the board edge with empty cells, then nulls every cell
// that is neither empty nor part of the same-colour group touching the centre.
// What remains is the locally connected structure the double checks scan.
func maskedWindow(b Board, row, col, radius int) Board {
	size := radius*2 + 1
	window := Board{width: size, height: size, cells: make([]Cell, size*size)}
	center := b.At(row, col)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			boardRow := row - radius + r
			boardCol := col - radius + c
			if !b.InBounds(boardRow, boardCol) {
				continue
			}
			if cell := b.At(boardRow, boardCol); cell == center {
				window.Set(r, c, cell)
			}
		}
	}
	keep := touchingGroup(window, radius, radius)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if window.At(r, c) != CellEmpty && !keep[[2]int{r, c}] {
				window.Set(r, c, CellEmpty)
			}
		}
	}
	return window
}

// touchingGroup flood-fills the 8-connected group of same-valued cells that
// contains the start cell.
func touchingGroup(b Board, row, col int) map[[2]int]bool {
	target := b.At(row, col)
	group := map[[2]int]bool{{row, col}: true}
	frontier := [][2]int{{row, col}}
	for len(frontier) > 0 {
		at := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				next := [2]int{at[0] + dr, at[1] + dc}
				if group[next] || !b.InBounds(next[0], next[1]) {
					continue
				}
				if b.At(next[0], next[1]) != target {
					continue
				}
				group[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return group
}
