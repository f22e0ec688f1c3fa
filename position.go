package main

import "fmt"

// Position is the complete game record: the board plus the ordered move log.
// The board is always exactly the fold of the log onto an empty board, and no
// operation ever mutates a Position in place; accepted actions return a fresh
// value built from a clone.
type Position struct {
	board Board
	moves []Move
}

func NewPosition(width, height int) (Position, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return Position{}, err
	}
	return Position{board: board}, nil
}

func DefaultPosition() Position {
	pos, err := NewPosition(15, 15)
	if err != nil {
		panic(err)
	}
	return pos
}

func (p Position) Clone() Position {
	clone := Position{board: p.board.Clone()}
	clone.moves = append([]Move(nil), p.moves...)
	return clone
}

func (p Position) Board() Board {
	return p.board.Clone()
}

func (p Position) Moves() []Move {
	return append([]Move(nil), p.moves...)
}

func (p Position) MoveCount() int {
	return len(p.moves)
}

func (p Position) NextMoveNumber() int {
	return len(p.moves) + 1
}

// ColorToMove reproduces the opening schedule literally: plain alternation
// except that moves 6 and 7 of the log invert it, which forces the
// double-Black pair at moves 5 and 6 and lets alternation resume once the
// removal entry has consumed a parity slot.
func (p Position) ColorToMove() PlayerColor {
	made := len(p.moves)
	if made <= 4 || made >= 7 {
		if made%2 == 0 {
			return PlayerBlack
		}
		return PlayerWhite
	}
	if made%2 == 0 {
		return PlayerWhite
	}
	return PlayerBlack
}

func (p Position) hasRemoval() bool {
	for _, move := range p.moves {
		if move.Removed {
			return true
		}
	}
	return false
}

// moveAt returns the n-th logged move, 1-indexed.
func (p Position) moveAt(n int) (Move, bool) {
	if n < 1 || n > len(p.moves) {
		return Move{}, false
	}
	return p.moves[n-1], true
}

// MoveList renders the log as ordered human-readable entries.
func (p Position) MoveList() []string {
	list := make([]string, 0, len(p.moves))
	for i, move := range p.moves {
		n := i + 1
		switch {
		case move.Removed:
			list = append(list, fmt.Sprintf(" %d: [White removed a black stone]", n))
		case move.IsPass():
			list = append(list, fmt.Sprintf(" %d: [%s passed]", n, move.Color))
		default:
			list = append(list, fmt.Sprintf(" %d: [%s played at %d, %d]", n, move.Color, move.Row, move.Col))
		}
	}
	return list
}

// withLastMoveRetracted pops the most recent move and clears its target cell
// back to empty. Earlier removed markers stay untouched; a pass has no target.
// Retracting an empty log returns the position unchanged.
func (p Position) withLastMoveRetracted() Position {
	prev := p.Clone()
	if len(prev.moves) == 0 {
		return prev
	}
	last := prev.moves[len(prev.moves)-1]
	prev.moves = prev.moves[:len(prev.moves)-1]
	if !last.IsPass() {
		prev.board.Set(last.Row, last.Col, CellEmpty)
	}
	return prev
}
