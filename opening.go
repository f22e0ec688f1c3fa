package main

// Opening legality for moves 1 through 7. From move 8 onward placement
// legality is just the turn rule, handled by the outcome evaluator.

// thirdMoveVertical holds the legal move-3 offsets from the centre in the
// canonical orientation where White's second stone sits directly above the
// centre. thirdMoveDiagonal is the analogue for White up-right of the centre:
// the 5x5 cells on and below the anti-diagonal through the two stones.
var thirdMoveVertical = map[[2]int]bool{
	{-2, 0}: true, {1, 0}: true, {2, 0}: true,
	{-2, 1}: true, {-1, 1}: true, {0, 1}: true, {1, 1}: true,
	{-2, 2}: true, {-1, 2}: true, {0, 2}: true, {1, 2}: true,
}

var thirdMoveDiagonal = map[[2]int]bool{
	{-2, -2}: true, {-2, -1}: true, {-2, 0}: true, {-2, 1}: true, {-2, 2}: true,
	{-1, -2}: true, {-1, -1}: true, {-1, 0}: true,
	{0, -2}: true, {0, -1}: true,
	{1, -2}: true, {1, -1}: true,
	{2, -2}: true,
}

func chebyshev(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

// openingMoveAllowed applies the fixed per-move-number constraints. The target
// cell has already been checked playable by the caller.
func (p Position) openingMoveAllowed(color PlayerColor, row, col int) bool {
	centerRow, centerCol := p.board.Center()
	switch p.NextMoveNumber() {
	case 1:
		return color == PlayerBlack && row == centerRow && col == centerCol
	case 2:
		return color == PlayerWhite && chebyshev(row-centerRow, col-centerCol) <= 1
	case 3:
		return color == PlayerBlack && p.thirdMoveAllowed(row, col)
	case 4:
		return color == PlayerWhite
	case 5:
		return color == PlayerBlack
	case 6:
		return color == PlayerBlack
	case 7:
		// White resumes only after the removal phase; the removal entry
		// itself advances the move number past 7, so a placement attempt
		// landing here is always premature.
		return color == PlayerWhite && p.hasRemoval()
	}
	return false
}

// thirdMoveAllowed checks the third-move shape rule. The board orientation is
// normalized by rotating White's second stone (and the candidate with it)
// about the centre until White sits directly above the centre, or failing
// that, up-right across the diagonal. If neither relation holds after four
// rotations the move is illegal.
func (p Position) thirdMoveAllowed(row, col int) bool {
	white, ok := p.moveAt(2)
	if !ok {
		return false
	}
	centerRow, centerCol := p.board.Center()
	whiteRow := white.Row - centerRow
	whiteCol := white.Col - centerCol
	candRow := row - centerRow
	candCol := col - centerCol
	for i := 0; i < 4; i++ {
		if whiteRow == -1 && whiteCol == 0 {
			return thirdMoveVertical[[2]int{candRow, candCol}]
		}
		if whiteRow == -1 && whiteCol == 1 {
			return thirdMoveDiagonal[[2]int{candRow, candCol}]
		}
		whiteRow, whiteCol = whiteCol, -whiteRow
		candRow, candCol = candCol, -candRow
	}
	return false
}

// removalAllowed gates the removal phase: exactly six moves made, and the
// target must be the stone placed by move 5 or move 6. A pass in either slot
// placed no stone, so it can never be a removal target.
func (p Position) removalAllowed(row, col int) bool {
	if !p.board.InBounds(row, col) {
		return false
	}
	if len(p.moves) != 6 {
		return false
	}
	fifth, _ := p.moveAt(5)
	sixth, _ := p.moveAt(6)
	if !fifth.IsPass() && fifth.SameCell(row, col) {
		return true
	}
	return !sixth.IsPass() && sixth.SameCell(row, col)
}

func (p Position) passAllowed(color PlayerColor) bool {
	return len(p.moves) >= 3 && color == p.ColorToMove()
}
