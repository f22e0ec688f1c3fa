package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings        GameSettings `json:"settings"`
	Config          Config       `json:"config"`
	Board           [][]int      `json:"board"`
	NextPlayer      int          `json:"next_player"`
	Winner          int          `json:"winner"`
	BoardWidth      int          `json:"board_width"`
	BoardHeight     int          `json:"board_height"`
	Status          string       `json:"status"`
	MoveCount       int          `json:"move_count"`
	Moves           []string     `json:"moves"`
	EndReason       string       `json:"end_reason"`
	TurnStartedAtMs int64        `json:"turn_started_at_ms"`
}

type apiMove struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Player int `json:"player"`
}

type apiPass struct {
	Player int `json:"player"`
}

func main() {
	controller, err := NewGameController(DefaultGameSettings())
	if err != nil {
		log.Fatalf("[backend] invalid default settings: %v", err)
	}
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.CheckTurnClock(GetConfig().TurnTimeoutMs) && hub.HasClients() {
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettings `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := DefaultGameSettings()
		if payload.Settings != nil {
			settings = *payload.Settings
		}
		if err := controller.StartGame(settings); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- controllerStatus(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		if err := controller.Reset(settings); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- controllerStatus(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Config *Config `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controller.Settings(),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyMove(intToPlayer(payload.Player), payload.Row, payload.Col)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		broadcastGameUpdate(hub, controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/remove", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyRemove(payload.Row, payload.Col)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		broadcastGameUpdate(hub, controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/pass", func(w http.ResponseWriter, r *http.Request) {
		var payload apiPass
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyPass(intToPlayer(payload.Player))
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		broadcastGameUpdate(hub, controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
}

func broadcastGameUpdate(hub *Hub, controller *GameController) {
	if !hub.HasClients() {
		return
	}
	hub.broadcastMoves <- movesPayload{Moves: controller.Position().MoveList()}
	hub.broadcastStatus <- controllerStatus(controller)
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWS(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	position := controller.Position()
	status := controller.Status()
	settings := controller.Settings()
	return StatusResponse{
		Settings:        settings,
		Config:          GetConfig(),
		Board:           boardToSlice(position.Board()),
		NextPlayer:      playerToInt(position.ColorToMove()),
		Winner:          winnerFromStatus(status),
		BoardWidth:      settings.BoardWidth,
		BoardHeight:     settings.BoardHeight,
		Status:          statusToString(status),
		MoveCount:       position.MoveCount(),
		Moves:           position.MoveList(),
		EndReason:       controller.EndReason(),
		TurnStartedAtMs: controller.TurnStartedAtMs(),
	}
}

func boardToSlice(board Board) [][]int {
	rows := make([][]int, board.Height())
	for r := 0; r < board.Height(); r++ {
		rows[r] = make([]int, board.Width())
		for c := 0; c < board.Width(); c++ {
			rows[r][c] = cellToInt(board.At(r, c))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	case CellRemoved:
		return 3
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func intToPlayer(value int) PlayerColor {
	if value == 2 {
		return PlayerWhite
	}
	return PlayerBlack
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
