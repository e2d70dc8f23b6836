// Package bind turns event decoders into bindable handler values.
//
// A Handler pairs a native event name with a decoder and a user callback
// from the decoded record to an application message, plus the two flags the
// host runtime applies to the native event (stop propagation, prevent
// default). Decode failure never reaches the application: the handler simply
// produces no message for that occurrence. Callers who need to observe
// failures can set OnDecodeError or run the dom decoders directly.
package bind

import (
	"github.com/glintkit/glint-events/pkg/decode"
	"github.com/glintkit/glint-events/pkg/dom"
)

// Options are the propagation controls reported to the host runtime when a
// handler fires.
type Options struct {
	StopPropagation bool
	PreventDefault  bool
}

// DefaultOptions suppresses both bubbling and the default browser action,
// the right default for every event kind bound to an application message.
func DefaultOptions() Options {
	return Options{StopPropagation: true, PreventDefault: true}
}

// OnDecodeError, when non-nil, observes decode failures that handlers
// otherwise drop silently. It must not panic; it runs inside dispatch.
var OnDecodeError func(event string, err error)

// Handler is a bindable listener for one native event name.
type Handler struct {
	Name    string
	Options Options

	// EffectAllowed, when set, is applied through the drag side channel at
	// drag-start. DropEffect likewise on every drag-over. Only the drag
	// configurations populate these.
	EffectAllowed *dom.EffectAllowed
	DropEffect    *dom.DropEffect

	// forced marks handlers whose options must not be overridden: relaxing
	// them would disable the browser drop machinery entirely.
	forced bool

	decode func(decode.Raw) (any, error)
}

// With returns a copy of the handler using the given options. Handlers with
// forced options (drag-start, drop targets) are returned unchanged.
func (h Handler) With(opts Options) Handler {
	if h.forced {
		return h
	}
	h.Options = opts
	return h
}

// Handle decodes one raw event occurrence. On success it returns the
// application message produced by the bound callback; a nil message with
// ok=true means the handler wants its flags applied but has nothing to
// dispatch. On decode failure it reports ok=false and the occurrence
// contributes nothing.
func (h Handler) Handle(raw decode.Raw) (msg any, ok bool) {
	msg, err := h.decode(raw)
	if err != nil {
		if OnDecodeError != nil {
			OnDecodeError(h.Name, err)
		}
		return nil, false
	}
	return msg, true
}

func handler[E any](name string, dec func(decode.Raw) (E, error), f func(E) any) Handler {
	return Handler{
		Name:    name,
		Options: DefaultOptions(),
		decode: func(raw decode.Raw) (any, error) {
			ev, err := dec(raw)
			if err != nil {
				return nil, err
			}
			return f(ev), nil
		},
	}
}

// Mouse binds a handler for any mouse-shaped event name.
func Mouse(name string, f func(dom.MouseEvent) any) Handler {
	return handler(name, dom.DecodeMouseEvent, f)
}

// Touch binds a handler for any touch-shaped event name.
func Touch(name string, f func(dom.TouchEvent) any) Handler {
	return handler(name, dom.DecodeTouchEvent, f)
}

// Pointer binds a handler for any pointer-shaped event name.
func Pointer(name string, f func(dom.PointerEvent) any) Handler {
	return handler(name, dom.DecodePointerEvent, f)
}

// Wheel binds a handler for any wheel-shaped event name.
func Wheel(name string, f func(dom.WheelEvent) any) Handler {
	return handler(name, dom.DecodeWheelEvent, f)
}

// Drag binds a handler for any drag-shaped event name.
func Drag(name string, f func(dom.DragEvent) any) Handler {
	return handler(name, dom.DecodeDragEvent, f)
}
