package main

type PlayerColor int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

func (p PlayerColor) String() string {
	if p == PlayerBlack {
		return "Black"
	}
	return "White"
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Move is one logged event. Row/Col of -1 encode a pass; Removed marks the
// removal action of the opening's removal phase (always recorded as Black,
// matching the stone removed). Moves are immutable once logged.
type Move struct {
	Color   PlayerColor `json:"player"`
	Row     int         `json:"row"`
	Col     int         `json:"col"`
	Removed bool        `json:"removed,omitempty"`
}

func NewMove(color PlayerColor, row, col int) Move {
	return Move{Color: color, Row: row, Col: col}
}

func NewPass(color PlayerColor) Move {
	return Move{Color: color, Row: -1, Col: -1}
}

func (m Move) IsPass() bool {
	return m.Row == -1 && m.Col == -1
}

func (m Move) Equals(other Move) bool {
	return m.Color == other.Color && m.Row == other.Row && m.Col == other.Col && m.Removed == other.Removed
}

func (m Move) SameCell(row, col int) bool {
	return m.Row == row && m.Col == col
}
