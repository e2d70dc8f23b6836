// Package dom defines the typed records decoded from native pointer-family
// browser events (mouse, touch, pointer, wheel, drag) and the per-kind
// composite decoders that build them.
//
// Every record is a plain immutable value rebuilt from scratch on each event
// occurrence. Composite decoding is all-or-nothing: if any field fails, the
// whole event fails and no partial record is produced.
package dom

import (
	"fmt"

	"github.com/glintkit/glint-events/pkg/decode"
)

// Coords is an (x, y) pair in one coordinate space. The four spaces on a
// mouse event (client, offset, page, screen) are decoded independently and
// never converted into one another.
type Coords struct {
	X, Y float64
}

// Modifiers holds the keyboard modifier state at the time of the event.
// All four flags must be present on the raw event; none defaults to false.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	Meta  bool
}

// Button identifies which mouse button an event refers to.
type Button int

const (
	// ButtonNone covers unrecognized button codes. The native attribute is
	// unreliable for move/enter/leave events, so unknown codes map here
	// instead of failing the decode.
	ButtonNone Button = iota
	ButtonMain
	ButtonMiddle
	ButtonSecondary
	ButtonBack
	ButtonForward
)

func (b Button) String() string {
	switch b {
	case ButtonMain:
		return "main"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	}
	return "none"
}

// ButtonFromCode maps the native button code. The mapping is total: codes
// outside 0..4 yield ButtonNone rather than a decode failure.
func ButtonFromCode(code int) Button {
	switch code {
	case 0:
		return ButtonMain
	case 1:
		return ButtonMiddle
	case 2:
		return ButtonSecondary
	case 3:
		return ButtonBack
	case 4:
		return ButtonForward
	}
	return ButtonNone
}

// MouseEvent is the decoded form of a native mouse event. Touch, pointer,
// wheel and drag events all build on it.
type MouseEvent struct {
	Keys      Modifiers
	Button    Button
	ClientPos Coords
	OffsetPos Coords
	PagePos   Coords
	ScreenPos Coords
}

func decodeModifiers(r decode.Raw) (Modifiers, error) {
	var m Modifiers
	var err error
	if m.Alt, err = r.Bool("altKey"); err != nil {
		return Modifiers{}, err
	}
	if m.Ctrl, err = r.Bool("ctrlKey"); err != nil {
		return Modifiers{}, err
	}
	if m.Shift, err = r.Bool("shiftKey"); err != nil {
		return Modifiers{}, err
	}
	if m.Meta, err = r.Bool("metaKey"); err != nil {
		return Modifiers{}, err
	}
	return m, nil
}

func decodeCoords(r decode.Raw, xField, yField string) (Coords, error) {
	x, y, err := r.Pair(xField, yField)
	if err != nil {
		return Coords{}, err
	}
	return Coords{X: x, Y: y}, nil
}

// DecodeMouseEvent decodes a raw mouse-shaped event.
func DecodeMouseEvent(r decode.Raw) (MouseEvent, error) {
	var ev MouseEvent
	var err error
	if ev.Keys, err = decodeModifiers(r); err != nil {
		return MouseEvent{}, fmt.Errorf("mouse: %w", err)
	}
	code, err := r.Int("button")
	if err != nil {
		return MouseEvent{}, fmt.Errorf("mouse: %w", err)
	}
	ev.Button = ButtonFromCode(code)
	if ev.ClientPos, err = decodeCoords(r, "clientX", "clientY"); err != nil {
		return MouseEvent{}, fmt.Errorf("mouse: %w", err)
	}
	if ev.OffsetPos, err = decodeCoords(r, "offsetX", "offsetY"); err != nil {
		return MouseEvent{}, fmt.Errorf("mouse: %w", err)
	}
	if ev.PagePos, err = decodeCoords(r, "pageX", "pageY"); err != nil {
		return MouseEvent{}, fmt.Errorf("mouse: %w", err)
	}
	if ev.ScreenPos, err = decodeCoords(r, "screenX", "screenY"); err != nil {
		return MouseEvent{}, fmt.Errorf("mouse: %w", err)
	}
	return ev, nil
}
