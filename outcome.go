package main

import "fmt"

// Verdict is the engine's answer to a win or draw query. Reason is empty for
// invalid draw checks and carries the rejection message for invalid win
// checks.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

const (
	ReasonFiveBlack   = "Five in a row for Black."
	ReasonFiveWhite   = "Five or more in a row for White."
	ReasonOverline    = "Overline by Black."
	ReasonDoubleFour  = "Double four by Black."
	ReasonDoubleThree = "Double three by Black."
	ReasonBoardFull   = "The board is full."
	ReasonTwoPasses   = "Two passes in a row."
)

// IsMoveValid decides placement legality: the cell must be playable, the
// opening table governs moves 1 through 7, and plain turn order afterwards.
func (p Position) IsMoveValid(color PlayerColor, row, col int) bool {
	if !p.board.PlayableAt(row, col) {
		return false
	}
	if p.NextMoveNumber() <= 7 {
		return p.openingMoveAllowed(color, row, col)
	}
	return color == p.ColorToMove()
}

// AttemptPly places a stone. On success the returned Position is a fresh
// value; on failure the zero Position is returned and the receiver is
// untouched.
func (p Position) AttemptPly(color PlayerColor, row, col int) (Position, bool) {
	if !p.IsMoveValid(color, row, col) {
		return Position{}, false
	}
	next := p.Clone()
	next.board.Set(row, col, CellFromPlayer(color))
	next.moves = append(next.moves, NewMove(color, row, col))
	return next, true
}

// AttemptRemove performs the removal-phase action: marks the targeted move-5
// or move-6 stone as removed and logs the removal.
func (p Position) AttemptRemove(row, col int) (Position, bool) {
	if !p.removalAllowed(row, col) {
		return Position{}, false
	}
	next := p.Clone()
	next.board.Set(row, col, CellRemoved)
	removal := NewMove(PlayerBlack, row, col)
	removal.Removed = true
	next.moves = append(next.moves, removal)
	return next, true
}

// AttemptPass logs a pass for the colour to move. Passing is only available
// once three moves have been made.
func (p Position) AttemptPass(color PlayerColor) (Position, bool) {
	if !p.passAllowed(color) {
		return Position{}, false
	}
	next := p.Clone()
	next.moves = append(next.moves, NewPass(color))
	return next, true
}

// CheckWin evaluates the asymmetric win conditions. Black wins only by a run
// of exactly five. White wins by five or more, or by claiming a forbidden
// Black shape: any overline, or a double four / double three that the last
// move just created.
func (p Position) CheckWin(color PlayerColor) Verdict {
	if color == PlayerBlack {
		if RunLengths(PlayerBlack, p.board)[5] {
			return Verdict{Valid: true, Reason: ReasonFiveBlack}
		}
		return p.noWin(color)
	}
	whiteRuns := RunLengths(PlayerWhite, p.board)
	for length := range whiteRuns {
		if length >= 5 {
			return Verdict{Valid: true, Reason: ReasonFiveWhite}
		}
	}
	if HasOverline(PlayerBlack, p.board) {
		return Verdict{Valid: true, Reason: ReasonOverline}
	}
	prev := p.withLastMoveRetracted()
	if HasDoubleFour(p.board) && !HasDoubleFour(prev.board) {
		return Verdict{Valid: true, Reason: ReasonDoubleFour}
	}
	if HasDoubleThree(p.board) && !HasDoubleThree(prev.board) {
		return Verdict{Valid: true, Reason: ReasonDoubleThree}
	}
	return p.noWin(color)
}

func (p Position) noWin(color PlayerColor) Verdict {
	return Verdict{Reason: fmt.Sprintf("No winning moves for %s.", color)}
}

// CheckDraw is valid once three moves have been made and either the board has
// no empty cell left (removed cells count as occupied) or the two most recent
// logged moves are both passes.
func (p Position) CheckDraw() Verdict {
	if len(p.moves) < 3 {
		return Verdict{}
	}
	if p.board.CountEmpty() == 0 {
		return Verdict{Valid: true, Reason: ReasonBoardFull}
	}
	last := p.moves[len(p.moves)-1]
	prev := p.moves[len(p.moves)-2]
	if last.IsPass() && prev.IsPass() {
		return Verdict{Valid: true, Reason: ReasonTwoPasses}
	}
	return Verdict{}
}
