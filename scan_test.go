package main

import "testing"

func blankBoard(t *testing.T) Board {
	t.Helper()
	board, err := NewBoard(15, 15)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	return board
}

func placeRun(board *Board, cell Cell, row, col, stepR, stepC, length int) {
	for i := 0; i < length; i++ {
		board.Set(row+i*stepR, col+i*stepC, cell)
	}
}

func TestRunLengthsPerAxis(t *testing.T) {
	cases := []struct {
		name         string
		stepR, stepC int
	}{
		{"horizontal", 0, 1},
		{"vertical", 1, 0},
		{"diagonal down", 1, 1},
		{"diagonal up", 1, -1},
	}
	for _, tc := range cases {
		board := blankBoard(t)
		start := [2]int{7, 7}
		if tc.stepC < 0 {
			start = [2]int{5, 10}
		}
		placeRun(&board, CellBlack, start[0], start[1], tc.stepR, tc.stepC, 5)
		if !HasFiveInRow(PlayerBlack, board) {
			t.Fatalf("%s: expected a five in a row", tc.name)
		}
		if HasFiveInRow(PlayerWhite, board) {
			t.Fatalf("%s: expected no White five", tc.name)
		}
		if HasOverline(PlayerBlack, board) {
			t.Fatalf("%s: five is not an overline", tc.name)
		}
	}
}

func TestRunLengthsIgnoreSingles(t *testing.T) {
	board := blankBoard(t)
	board.Set(0, 0, CellBlack)
	board.Set(5, 5, CellWhite)
	if lengths := RunLengths(PlayerBlack, board); len(lengths) != 0 {
		t.Fatalf("expected no runs of length >= 2, got %v", lengths)
	}
}

// Only the longest maximal run per line counts, so an unbroken six yields {6}
// and no five.
func TestOverlineIsNotFive(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellBlack, 7, 4, 0, 1, 6)
	if HasFiveInRow(PlayerBlack, board) {
		t.Fatalf("an overline must not register as exactly five")
	}
	if !HasOverline(PlayerBlack, board) {
		t.Fatalf("expected an overline")
	}
}

func TestRemovedCellBreaksRun(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellBlack, 7, 4, 0, 1, 5)
	board.Set(7, 6, CellRemoved)
	if HasFiveInRow(PlayerBlack, board) {
		t.Fatalf("a removed cell must split the run")
	}
	lengths := RunLengths(PlayerBlack, board)
	if !lengths[2] {
		t.Fatalf("expected the remaining pair, got %v", lengths)
	}
}

func TestDoubleThreeAtCrossing(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellBlack, 7, 5, 0, 1, 3) // (7,5)..(7,7)
	placeRun(&board, CellBlack, 5, 7, 1, 0, 2) // (5,7),(6,7) joining at (7,7)
	if !HasDoubleThree(board) {
		t.Fatalf("expected a double three at the crossing stone")
	}
	if HasDoubleFour(board) {
		t.Fatalf("two threes are not a double four")
	}
}

func TestSingleThreeIsNotDouble(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellBlack, 7, 5, 0, 1, 3)
	if HasDoubleThree(board) {
		t.Fatalf("one three on one axis is not a double three")
	}
}

// Structure in the window that does not touch the centre stone's group is
// masked out before scanning.
func TestDoubleThreeMasksDisconnectedStones(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellBlack, 7, 7, 0, 1, 3) // (7,7)..(7,9)
	placeRun(&board, CellBlack, 5, 5, 0, 1, 3) // nearby but detached three
	if HasDoubleThree(board) {
		t.Fatalf("a detached neighbouring three must not count")
	}
}

func TestDoubleFourAtCrossing(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellBlack, 7, 4, 0, 1, 4) // (7,4)..(7,7)
	placeRun(&board, CellBlack, 4, 7, 1, 0, 3) // (4,7)..(6,7) joining at (7,7)
	if !HasDoubleFour(board) {
		t.Fatalf("expected a double four at the crossing stone")
	}
}

func TestWhiteStonesNeverFormForbiddenDoubles(t *testing.T) {
	board := blankBoard(t)
	placeRun(&board, CellWhite, 7, 5, 0, 1, 3)
	placeRun(&board, CellWhite, 5, 7, 1, 0, 2)
	if HasDoubleThree(board) {
		t.Fatalf("the forbidden-shape scan applies to Black only")
	}
}
