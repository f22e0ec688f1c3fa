package main

import (
	"testing"
	"time"
)

func TestNewGameRejectsEvenBoard(t *testing.T) {
	_, err := NewGame(GameSettings{BoardWidth: 14, BoardHeight: 15})
	if err == nil {
		t.Fatalf("expected an error for an even board width")
	}
}

func TestGameOpeningFlow(t *testing.T) {
	g, err := NewGame(DefaultGameSettings())
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	if applied, _ := g.TryApplyMove(PlayerBlack, 7, 7); applied {
		t.Fatalf("moves must be rejected before the game starts")
	}
	g.Start()

	plies := []struct {
		color    PlayerColor
		row, col int
	}{
		{PlayerBlack, 7, 7},
		{PlayerWhite, 6, 7},
		{PlayerBlack, 8, 7},
		{PlayerWhite, 3, 7},
		{PlayerBlack, 9, 7},
		{PlayerBlack, 5, 7},
	}
	for _, ply := range plies {
		applied, reason := g.TryApplyMove(ply.color, ply.row, ply.col)
		if !applied {
			t.Fatalf("expected %s at (%d,%d) to apply: %s", ply.color, ply.row, ply.col, reason)
		}
	}
	if applied, _ := g.TryApplyMove(PlayerWhite, 0, 0); applied {
		t.Fatalf("White must be blocked until the removal")
	}
	if applied, reason := g.TryRemove(5, 7); !applied {
		t.Fatalf("expected the removal to apply: %s", reason)
	}
	if applied, reason := g.TryApplyMove(PlayerWhite, 0, 0); !applied {
		t.Fatalf("expected White to resume after the removal: %s", reason)
	}
	if g.Status() != StatusRunning {
		t.Fatalf("expected the game running, got %v", g.Status())
	}
}

func TestGameDetectsBlackWin(t *testing.T) {
	g, err := NewGame(DefaultGameSettings())
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	g.Start()

	// Fabricate a post-opening position with Black to move, one stone short
	// of five in a row.
	placeRun(&g.position.board, CellBlack, 7, 3, 0, 1, 4)
	g.position.moves = make([]Move, 8)

	applied, reason := g.TryApplyMove(PlayerBlack, 7, 7)
	if !applied {
		t.Fatalf("expected the winning ply to apply: %s", reason)
	}
	if g.Status() != StatusBlackWon {
		t.Fatalf("expected Black to win, got status %v", g.Status())
	}
	if g.EndReason() != ReasonFiveBlack {
		t.Fatalf("unexpected end reason %q", g.EndReason())
	}
	if applied, _ := g.TryApplyMove(PlayerWhite, 0, 0); applied {
		t.Fatalf("no moves may be applied after the game ends")
	}
}

func TestGameAwardsWhiteTheForbiddenShape(t *testing.T) {
	g, err := NewGame(DefaultGameSettings())
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	g.Start()

	// Black's next stone at (7,7) completes a three-by-three cross.
	for _, cell := range [][2]int{{7, 5}, {7, 6}, {5, 7}, {6, 7}} {
		g.position.board.Set(cell[0], cell[1], CellBlack)
	}
	g.position.moves = make([]Move, 8)

	applied, reason := g.TryApplyMove(PlayerBlack, 7, 7)
	if !applied {
		t.Fatalf("expected the ply to apply: %s", reason)
	}
	if g.Status() != StatusWhiteWon {
		t.Fatalf("expected White to win off the double three, got %v", g.Status())
	}
	if g.EndReason() != ReasonDoubleThree {
		t.Fatalf("unexpected end reason %q", g.EndReason())
	}
}

func TestGameDrawByPasses(t *testing.T) {
	g, err := NewGame(DefaultGameSettings())
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	g.Start()
	g.position.moves = make([]Move, 8)

	if applied, reason := g.TryPass(PlayerBlack); !applied {
		t.Fatalf("expected Black's pass to apply: %s", reason)
	}
	if g.Status() != StatusRunning {
		t.Fatalf("one pass is not a draw")
	}
	if applied, reason := g.TryPass(PlayerWhite); !applied {
		t.Fatalf("expected White's pass to apply: %s", reason)
	}
	if g.Status() != StatusDraw {
		t.Fatalf("expected a draw after two passes, got %v", g.Status())
	}
	if g.EndReason() != ReasonTwoPasses {
		t.Fatalf("unexpected end reason %q", g.EndReason())
	}
}

func TestGameTimeoutNotification(t *testing.T) {
	g, err := NewGame(DefaultGameSettings())
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	g.Start()
	g.NotifyTimeout(PlayerBlack)
	if g.Status() != StatusWhiteWon {
		t.Fatalf("expected White to win on Black's timeout, got %v", g.Status())
	}
	g.NotifyTimeout(PlayerWhite)
	if g.Status() != StatusWhiteWon {
		t.Fatalf("a finished game must ignore further timeouts")
	}
}

func TestControllerTurnClock(t *testing.T) {
	controller, err := NewGameController(DefaultGameSettings())
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	if err := controller.StartGame(DefaultGameSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if controller.CheckTurnClock(0) {
		t.Fatalf("a zero timeout disables the clock")
	}
	controller.game.turnStart = time.Now().Add(-time.Minute)
	if !controller.CheckTurnClock(1000) {
		t.Fatalf("expected the expired turn to end the game")
	}
	if controller.Status() != StatusWhiteWon {
		t.Fatalf("Black to move timed out; expected a White win, got %v", controller.Status())
	}
}
