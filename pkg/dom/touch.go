package dom

import (
	"fmt"

	"github.com/glintkit/glint-events/pkg/decode"
)

// Touch is one finger's contact point. The identifier stays stable for that
// finger across the whole touch interaction and carries no meaning beyond it.
type Touch struct {
	Identifier int
	ClientPos  Coords
	PagePos    Coords
	ScreenPos  Coords
}

// TouchEvent is the decoded form of a native touch event. The three lists
// keep native array order; identifiers are unique within Touches at any
// instant but may repeat across the three lists.
type TouchEvent struct {
	Keys           Modifiers
	ChangedTouches []Touch
	TargetTouches  []Touch
	Touches        []Touch
}

func decodeTouch(r decode.Raw) (Touch, error) {
	var t Touch
	var err error
	if t.Identifier, err = r.Int("identifier"); err != nil {
		return Touch{}, err
	}
	if t.ClientPos, err = decodeCoords(r, "clientX", "clientY"); err != nil {
		return Touch{}, err
	}
	if t.PagePos, err = decodeCoords(r, "pageX", "pageY"); err != nil {
		return Touch{}, err
	}
	if t.ScreenPos, err = decodeCoords(r, "screenX", "screenY"); err != nil {
		return Touch{}, err
	}
	return t, nil
}

// DecodeTouchEvent decodes a raw touch-shaped event. Each touch list is an
// array-like TouchList, never a real array.
func DecodeTouchEvent(r decode.Raw) (TouchEvent, error) {
	var ev TouchEvent
	var err error
	if ev.Keys, err = decodeModifiers(r); err != nil {
		return TouchEvent{}, fmt.Errorf("touch: %w", err)
	}
	if ev.ChangedTouches, err = decode.List(r, "changedTouches", decodeTouch); err != nil {
		return TouchEvent{}, fmt.Errorf("touch: %w", err)
	}
	if ev.TargetTouches, err = decode.List(r, "targetTouches", decodeTouch); err != nil {
		return TouchEvent{}, fmt.Errorf("touch: %w", err)
	}
	if ev.Touches, err = decode.List(r, "touches", decodeTouch); err != nil {
		return TouchEvent{}, fmt.Errorf("touch: %w", err)
	}
	return ev, nil
}
