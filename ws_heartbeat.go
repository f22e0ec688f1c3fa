package main

import (
	"time"

	"github.com/gorilla/websocket"
)

const wsIdlePingInterval = 30 * time.Second

// writeWS drains the client's send queue onto the connection and keeps idle
// connections alive with ping control frames.
func writeWS(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			deadline := time.Now().Add(5 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
