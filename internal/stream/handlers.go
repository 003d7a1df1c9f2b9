package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes exposes one websocket endpoint per session. Clients only
// listen; inbound frames are drained and dropped.
func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:sessionID", websocket.New(func(conn *websocket.Conn) {
		client := hub.Register(conn.Params("sessionID"))
		// Unregister closes Send, which stops the write pump
		defer hub.Unregister(client)

		go writePump(conn, client)
		drainReads(conn)
	}))
}

func writePump(conn *websocket.Conn, client *Client) {
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func drainReads(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
