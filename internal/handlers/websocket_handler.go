package handlers

import (
	"net/http"

	"contacts-api/internal/utils"
	"contacts-api/internal/wsnotify"
)

// NewWebSocketHandler subscribes the caller to contact change events. Client
// messages are read and discarded until the connection closes.
//
// @Summary Contact change feed
// @Description Websocket stream of contact.created, contact.updated, contact.deleted and contacts.deleted events
// @Tags events
// @Success 101
// @Router /ws [get]
func NewWebSocketHandler(manager *wsnotify.WebSocketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := manager.Upgrade(w, r)
		if err != nil {
			utils.LogDebug("Websocket upgrade failed: %v", err)
			return
		}
		manager.AddClient(conn)
		defer func() {
			manager.RemoveClient(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
