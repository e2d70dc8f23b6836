package session

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/glintkit/glint-events/pkg/bridge"
	"github.com/glintkit/glint-events/pkg/internal/log"
)

// Control frame types sent back to the browser.
const (
	ctrlFlags         = "flags"
	ctrlEffectAllowed = "effectAllowed"
	ctrlDropEffect    = "dropEffect"
)

// ControlFrame is an outbound instruction for the browser side: either the
// propagation flags to apply for a dispatched event, or one of the two drag
// side-channel assignments.
type ControlFrame struct {
	Type            string `json:"type"`
	Seq             uint64 `json:"seq"`
	StopPropagation bool   `json:"stopPropagation,omitempty"`
	PreventDefault  bool   `json:"preventDefault,omitempty"`
	Value           string `json:"value,omitempty"`
}

const (
	writeQueueDepth = 100
	messageDepth    = 128
	readLimit       = 1 << 20
	pongWait        = 60 * time.Second
	pingPeriod      = 45 * time.Second
)

// Session serves one connected browser. Reads happen on the Serve
// goroutine; all writes funnel through a single writer goroutine, which is
// the one concurrent writer gorilla/websocket permits.
type Session struct {
	ws   *websocket.Conn
	reg  *Registry
	msgs chan any
	wq   chan ControlFrame
	done chan struct{}
}

// New wraps an upgraded websocket connection. The caller owns the registry;
// binding more handlers while the session runs is safe.
func New(ws *websocket.Conn, reg *Registry) *Session {
	s := &Session{
		ws:   ws,
		reg:  reg,
		msgs: make(chan any, messageDepth),
		wq:   make(chan ControlFrame, writeQueueDepth),
		done: make(chan struct{}),
	}
	go s.writePump()
	return s
}

// Messages yields the application messages produced by dispatched handlers.
// The channel closes when the session ends.
func (s *Session) Messages() <-chan any { return s.msgs }

// Serve reads event frames until the connection drops, dispatching each one
// synchronously. It always returns a non-nil reason.
func (s *Session) Serve() error {
	defer s.close()

	s.ws.SetReadLimit(readLimit)
	_ = s.ws.SetReadDeadline(time.Now().Add(pongWait))
	s.ws.SetPongHandler(func(string) error {
		return s.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var f EventFrame
		if err := s.ws.ReadJSON(&f); err != nil {
			log.Debugf("session read: %s", err)
			return err
		}
		s.serveFrame(f)
	}
}

// serveFrame dispatches one event occurrence. Flag and side-channel frames
// are queued before the next read so they reach the browser within the
// synchronous window the native event allows.
func (s *Session) serveFrame(f EventFrame) {
	for _, d := range s.reg.Dispatch(f) {
		if d.Start != nil {
			s.ApplyStart(*d.Start)
		}
		if d.Over != nil {
			s.ApplyOver(*d.Over)
		}
		s.queue(ControlFrame{
			Type:            ctrlFlags,
			Seq:             f.Seq,
			StopPropagation: d.Flags.StopPropagation,
			PreventDefault:  d.Flags.PreventDefault,
		})
		if d.Msg == nil {
			continue
		}
		select {
		case s.msgs <- d.Msg:
		case <-s.done:
			return
		}
	}
}

// ApplyStart implements bridge.Sink over the websocket side channel.
func (s *Session) ApplyStart(in bridge.StartInstruction) {
	s.queue(ControlFrame{Type: ctrlEffectAllowed, Seq: handleSeq(in.Event), Value: in.EffectAllowed})
}

// ApplyOver implements bridge.Sink over the websocket side channel.
func (s *Session) ApplyOver(in bridge.OverInstruction) {
	s.queue(ControlFrame{Type: ctrlDropEffect, Seq: handleSeq(in.Event), Value: in.DropEffect})
}

func handleSeq(event any) uint64 {
	if h, ok := event.(Handle); ok {
		return h.Seq
	}
	return 0
}

func (s *Session) queue(f ControlFrame) {
	select {
	case s.wq <- f:
	case <-s.done:
	}
}

func (s *Session) writePump() {
	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()
	for {
		select {
		case f := <-s.wq:
			if err := s.ws.WriteJSON(f); err != nil {
				log.Debugf("session write: %s", err)
				return
			}
		case <-pinger.C:
			if err := s.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) close() {
	close(s.done)
	close(s.msgs)
	_ = s.ws.Close()
}

var _ bridge.Sink = (*Session)(nil)
