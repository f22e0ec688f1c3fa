package main

import "time"

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

// Game wraps the pure Position engine with the state a serving layer needs:
// status, last rejection message, win reason and the turn clock. The engine
// itself holds no clock; timeouts arrive as explicit notifications.
type Game struct {
	settings    GameSettings
	position    Position
	status      GameStatus
	lastMessage string
	endReason   string
	turnStart   time.Time
}

func NewGame(settings GameSettings) (Game, error) {
	g := Game{}
	if err := g.Reset(settings); err != nil {
		return Game{}, err
	}
	return g, nil
}

func (g *Game) Reset(settings GameSettings) error {
	position, err := NewPosition(settings.BoardWidth, settings.BoardHeight)
	if err != nil {
		return err
	}
	g.settings = settings
	g.position = position
	g.status = StatusNotStarted
	g.lastMessage = ""
	g.endReason = ""
	g.turnStart = time.Now()
	return nil
}

func (g *Game) Start() {
	if g.status == StatusNotStarted {
		g.status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) Position() Position {
	return g.position.Clone()
}

func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) LastMessage() string {
	return g.lastMessage
}

func (g *Game) EndReason() string {
	return g.endReason
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(color PlayerColor, row, col int) (bool, string) {
	if g.status != StatusRunning {
		return false, "game not running"
	}
	next, ok := g.position.AttemptPly(color, row, col)
	if !ok {
		g.lastMessage = "Illegal move"
		return false, g.lastMessage
	}
	g.position = next
	g.lastMessage = ""
	g.settleOutcome(color)
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) TryRemove(row, col int) (bool, string) {
	if g.status != StatusRunning {
		return false, "game not running"
	}
	next, ok := g.position.AttemptRemove(row, col)
	if !ok {
		g.lastMessage = "Illegal removal"
		return false, g.lastMessage
	}
	g.position = next
	g.lastMessage = ""
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) TryPass(color PlayerColor) (bool, string) {
	if g.status != StatusRunning {
		return false, "game not running"
	}
	next, ok := g.position.AttemptPass(color)
	if !ok {
		g.lastMessage = "Illegal pass"
		return false, g.lastMessage
	}
	g.position = next
	g.lastMessage = ""
	if draw := g.position.CheckDraw(); draw.Valid {
		g.status = StatusDraw
		g.endReason = draw.Reason
	}
	g.turnStart = time.Now()
	return true, ""
}

// NotifyTimeout is the collaborator's clock speaking: the colour whose turn
// ran out loses.
func (g *Game) NotifyTimeout(color PlayerColor) {
	if g.status != StatusRunning {
		return
	}
	if color == PlayerBlack {
		g.status = StatusWhiteWon
	} else {
		g.status = StatusBlackWon
	}
	g.endReason = "Timeout for " + color.String() + "."
}

// settleOutcome checks the mover's win first, then the opponent's claim off a
// forbidden shape, then the draw conditions.
func (g *Game) settleOutcome(mover PlayerColor) {
	if win := g.position.CheckWin(mover); win.Valid {
		g.endGame(mover, win.Reason)
		return
	}
	opponent := otherPlayer(mover)
	if win := g.position.CheckWin(opponent); win.Valid {
		g.endGame(opponent, win.Reason)
		return
	}
	if draw := g.position.CheckDraw(); draw.Valid {
		g.status = StatusDraw
		g.endReason = draw.Reason
	}
}

func (g *Game) endGame(winner PlayerColor, reason string) {
	if winner == PlayerBlack {
		g.status = StatusBlackWon
	} else {
		g.status = StatusWhiteWon
	}
	g.endReason = reason
}
