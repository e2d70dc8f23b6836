package session

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/glintkit/glint-events/pkg/internal/log"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// MessageHandler consumes the application messages a session produces. It
// runs on the session's serve goroutine.
type MessageHandler func(msg any)

// WSHandler upgrades incoming connections and serves one session per
// browser, forwarding every dispatched message to consume.
func WSHandler(reg *Registry, consume MessageHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Errorf("websocket upgrade: %s", err)
			return
		}
		log.Infof("session connected from %s", r.RemoteAddr)

		s := New(ws, reg)
		go func() {
			for msg := range s.Messages() {
				consume(msg)
			}
		}()
		if err := s.Serve(); err != nil {
			log.Infof("session from %s closed: %s", r.RemoteAddr, err)
		}
	}
}
