package main

import (
	"encoding/json"
	"sync"
)

type Hub struct {
	mu                sync.Mutex
	clients           map[*Client]struct{}
	broadcastStatus   chan StatusResponse
	broadcastMoves    chan movesPayload
	broadcastReset    chan StatusResponse
	broadcastSettings chan settingsPayload
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type movesPayload struct {
	Moves []string `json:"moves"`
}

type settingsPayload struct {
	Settings GameSettings `json:"settings"`
	Config   Config       `json:"config"`
}

func NewHub() *Hub {
	return &Hub{
		clients:           make(map[*Client]struct{}),
		broadcastStatus:   make(chan StatusResponse, 32),
		broadcastMoves:    make(chan movesPayload, 32),
		broadcastReset:    make(chan StatusResponse, 8),
		broadcastSettings: make(chan settingsPayload, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.fanOut("status", payload)
		case payload := <-h.broadcastMoves:
			h.fanOut("moves", payload)
		case payload := <-h.broadcastReset:
			h.fanOut("reset", payload)
		case payload := <-h.broadcastSettings:
			h.fanOut("settings", payload)
		}
	}
}

func (h *Hub) fanOut(kind string, payload any) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(wsMessage{Type: kind, Payload: mustMarshal(payload)})
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
