package bind

import (
	"github.com/glintkit/glint-events/pkg/decode"
	"github.com/glintkit/glint-events/pkg/dom"
)

// DragSourceConfig binds the listeners a draggable element needs. OnStart
// and OnEnd are required; OnDrag fires continuously while dragging and may
// be nil.
type DragSourceConfig struct {
	// EffectAllowed is applied on the native event through the side channel
	// at drag-start. The native API ignores the assignment at any other
	// point in the drag lifecycle.
	EffectAllowed dom.EffectAllowed

	OnStart func(dom.DragEvent) any
	OnEnd   func(dom.DragEvent) any
	OnDrag  func(dom.DragEvent) any
}

// DragSource produces the handlers for a drag source. The drag-start
// handler's flags are forced: without suppressing default action and
// bubbling there the browser never starts the drag correctly, so With
// cannot relax them.
func DragSource(c DragSourceConfig) []Handler {
	start := Drag("dragstart", c.OnStart)
	start.forced = true
	effect := c.EffectAllowed
	start.EffectAllowed = &effect

	hs := []Handler{start, Drag("dragend", c.OnEnd)}
	if c.OnDrag != nil {
		hs = append(hs, Drag("drag", c.OnDrag))
	}
	return hs
}

// DropTargetConfig binds the listeners an element drop target needs. OnDrop
// and OnOver are required; OnEnter and OnLeave may be nil.
type DropTargetConfig struct {
	// DropEffect is applied on the native event through the side channel on
	// every drag-over occurrence, which is the only window in which the
	// browser honors it.
	DropEffect dom.DropEffect

	OnDrop  func(dom.DragEvent) any
	OnOver  func(dom.DragEvent) any
	OnEnter func(dom.DragEvent) any
	OnLeave func(dom.DragEvent) any
}

// DropTarget produces the handlers for an element drop target. The drop and
// drag-over handlers' flags are forced: a drag-over whose default action is
// not prevented disables dropping on the element entirely.
func DropTarget(c DropTargetConfig) []Handler {
	drop := Drag("drop", c.OnDrop)
	drop.forced = true

	over := Drag("dragover", c.OnOver)
	over.forced = true
	effect := c.DropEffect
	over.DropEffect = &effect

	hs := []Handler{drop, over}
	if c.OnEnter != nil {
		hs = append(hs, Drag("dragenter", c.OnEnter))
	}
	if c.OnLeave != nil {
		hs = append(hs, Drag("dragleave", c.OnLeave))
	}
	return hs
}

// FileDropConfig binds page-level listeners for files dragged in from the
// OS. Only OnDrop is required; the drag-over listener exists even without a
// callback because its prevented default is what keeps the browser from
// opening the dropped file.
type FileDropConfig struct {
	OnDrop  func(files []dom.File) any
	OnOver  func(dom.DragEvent) any
	OnEnter func(dom.DragEvent) any
	OnLeave func(dom.DragEvent) any
}

// PageFileDrop produces the handlers for catching files dropped anywhere on
// the page. Drop and drag-over always suppress the browser default
// regardless of caller configuration; enter and leave keep the usual
// overridable defaults.
func PageFileDrop(c FileDropConfig) []Handler {
	drop := Drag("drop", func(ev dom.DragEvent) any {
		return c.OnDrop(ev.DataTransfer.Files)
	})
	drop.forced = true

	var over Handler
	if c.OnOver != nil {
		over = Drag("dragover", c.OnOver)
	} else {
		// No message wanted; the handler only exists to apply the flags.
		over = Handler{
			Name:    "dragover",
			Options: DefaultOptions(),
			decode:  func(decode.Raw) (any, error) { return nil, nil },
		}
	}
	over.forced = true

	hs := []Handler{drop, over}
	if c.OnEnter != nil {
		hs = append(hs, Drag("dragenter", c.OnEnter))
	}
	if c.OnLeave != nil {
		hs = append(hs, Drag("dragleave", c.OnLeave))
	}
	return hs
}
