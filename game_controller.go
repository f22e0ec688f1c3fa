package main

import (
	"sync"
	"time"
)

// GameController serializes access to the single authoritative game. The
// engine itself needs no locking; sharing one game across HTTP and WS
// handlers does.
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) (*GameController, error) {
	game, err := NewGame(settings)
	if err != nil {
		return nil, err
	}
	return &GameController{game: game}, nil
}

func (gc *GameController) ApplyMove(color PlayerColor, row, col int) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TryApplyMove(color, row, col)
}

func (gc *GameController) ApplyRemove(row, col int) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TryRemove(row, col)
}

func (gc *GameController) ApplyPass(color PlayerColor) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TryPass(color)
}

func (gc *GameController) Position() Position {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Position()
}

func (gc *GameController) Status() GameStatus {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Status()
}

func (gc *GameController) EndReason() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.EndReason()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) TurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) Reset(settings GameSettings) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if err := gc.game.Reset(settings); err != nil {
		return err
	}
	gc.game.Start()
	return nil
}

// CheckTurnClock ends the game against the colour to move when the configured
// turn timeout has expired. Returns true when the tick changed the status.
func (gc *GameController) CheckTurnClock(timeoutMs int) bool {
	if timeoutMs <= 0 {
		return false
	}
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if gc.game.Status() != StatusRunning {
		return false
	}
	elapsed := time.Since(gc.game.turnStart)
	if elapsed < time.Duration(timeoutMs)*time.Millisecond {
		return false
	}
	gc.game.NotifyTimeout(gc.game.position.ColorToMove())
	return true
}
