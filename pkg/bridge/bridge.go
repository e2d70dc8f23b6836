// Package bridge carries the two imperative drag-and-drop mutations that the
// typed layer cannot perform itself: assigning effectAllowed at drag-start
// and dropEffect on drag-over. The encoders here are pure and total; the
// actual field assignment happens behind the Sink, whose outcome is never
// observable back in this layer.
package bridge

import "github.com/glintkit/glint-events/pkg/dom"

// StartInstruction asks the sink to set effectAllowed on the live native
// event. The browser only honors the assignment during the drag-start
// phase; applied at any other time it is silently ignored.
type StartInstruction struct {
	EffectAllowed string `json:"effectAllowed"`
	Event         any    `json:"event"`
}

// OverInstruction asks the sink to set dropEffect on the live native event.
// It must be applied on every drag-over occurrence over a drop target.
type OverInstruction struct {
	DropEffect string `json:"dropEffect"`
	Event      any    `json:"event"`
}

// Start packages an effect-allowed set with the opaque event handle. The
// handle is passed through unexamined.
func Start(effect dom.EffectAllowed, event any) StartInstruction {
	return StartInstruction{EffectAllowed: effect.String(), Event: event}
}

// Over packages a drop effect with the opaque event handle.
func Over(effect dom.DropEffect, event any) OverInstruction {
	return OverInstruction{DropEffect: effect.String(), Event: event}
}

// Sink performs the native field assignments. Implementations must apply
// each instruction synchronously, within the event phase it belongs to; an
// asynchronous sink still works mechanically but the browser ignores the
// late assignment. There is no result or failure signal.
type Sink interface {
	ApplyStart(StartInstruction)
	ApplyOver(OverInstruction)
}
