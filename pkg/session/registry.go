// Package session is the host-runtime side of the binding layer: it owns the
// registry of bound handlers, reads raw event frames off a websocket, runs
// decode-and-dispatch, and ships propagation flags and drag side-channel
// instructions back to the browser.
package session

import (
	"sync"

	"github.com/glintkit/glint-events/pkg/bind"
	"github.com/glintkit/glint-events/pkg/bridge"
	"github.com/glintkit/glint-events/pkg/decode"
)

// EventFrame is one native event occurrence as shipped by the browser side.
// Seq identifies the live native event for the duration of its dispatch so
// control frames can refer back to it.
type EventFrame struct {
	Name  string     `json:"name"`
	Seq   uint64     `json:"seq"`
	Event decode.Raw `json:"event"`
}

// Handle identifies a live native event across the side channel. It is the
// opaque event handle of the drag bridge in this transport.
type Handle struct {
	Seq uint64 `json:"seq"`
}

// Dispatch is the outcome of one handler firing on one event occurrence.
type Dispatch struct {
	// Msg is the application message, nil for flag-only handlers.
	Msg   any
	Flags bind.Options

	// Side-channel instructions produced by drag handlers, to be applied
	// through the sink before the event's default handling resumes.
	Start *bridge.StartInstruction
	Over  *bridge.OverInstruction
}

// Registry holds the handlers bound per native event name.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]bind.Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]bind.Handler)}
}

// Bind registers handlers. Multiple handlers may share an event name; they
// all run on each occurrence in registration order.
func (r *Registry) Bind(hs ...bind.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range hs {
		r.handlers[h.Name] = append(r.handlers[h.Name], h)
	}
}

// Handlers returns the handlers bound to an event name.
func (r *Registry) Handlers(name string) []bind.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[name]
}

// Dispatch runs every handler bound to the frame's event name. Handlers
// whose decode fails contribute nothing; an event name with no handlers
// yields an empty slice.
func (r *Registry) Dispatch(f EventFrame) []Dispatch {
	hs := r.Handlers(f.Name)
	if len(hs) == 0 {
		return nil
	}
	out := make([]Dispatch, 0, len(hs))
	for _, h := range hs {
		msg, ok := h.Handle(f.Event)
		if !ok {
			continue
		}
		d := Dispatch{Msg: msg, Flags: h.Options}
		if h.EffectAllowed != nil {
			in := bridge.Start(*h.EffectAllowed, Handle{Seq: f.Seq})
			d.Start = &in
		}
		if h.DropEffect != nil {
			in := bridge.Over(*h.DropEffect, Handle{Seq: f.Seq})
			d.Over = &in
		}
		out = append(out, d)
	}
	return out
}
