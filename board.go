package main

import "errors"

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
	CellRemoved
)

// ErrEvenDimension is returned when a board is constructed with an even width
// or height; such a board has no single centre cell.
var ErrEvenDimension = errors.New("board dimensions must be odd")

type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) (Board, error) {
	if width%2 == 0 || height%2 == 0 {
		return Board{}, ErrEvenDimension
	}
	return Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (b Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[b.index(row, col)] = value
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.height && col < b.width
}

// PlayableAt reports whether a stone may be placed on the cell. A removed cell
// counts as empty for placement, but not for CountEmpty.
func (b Board) PlayableAt(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	cell := b.At(row, col)
	return cell == CellEmpty || cell == CellRemoved
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Height() int {
	return b.height
}

// Center returns the row and column of the single middle cell. Both
// dimensions are odd, so the centre is exact.
func (b Board) Center() (int, int) {
	return b.height / 2, b.width / 2
}

func (b Board) Clone() Board {
	clone := Board{width: b.width, height: b.height}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) index(row, col int) int {
	return row*b.width + col
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	case CellRemoved:
		return "Removed"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}
