package dom

import (
	"fmt"

	"github.com/glintkit/glint-events/pkg/decode"
)

// DeltaMode is the unit of a wheel event's delta.
type DeltaMode int

const (
	DeltaPixel DeltaMode = iota
	DeltaLine
	DeltaPage
)

func (m DeltaMode) String() string {
	switch m {
	case DeltaLine:
		return "line"
	case DeltaPage:
		return "page"
	}
	return "pixel"
}

// DeltaModeFrom maps the native deltaMode integer. Per the platform spec the
// values are 0/1/2, but the mapping is kept total: anything other than 1 or 2
// falls back to DeltaPixel.
func DeltaModeFrom(code int) DeltaMode {
	switch code {
	case 1:
		return DeltaLine
	case 2:
		return DeltaPage
	}
	return DeltaPixel
}

// WheelEvent is the decoded form of a native wheel event.
type WheelEvent struct {
	MouseEvent
	DeltaY    float64
	DeltaMode DeltaMode
}

// DecodeWheelEvent decodes a raw wheel-shaped event.
func DecodeWheelEvent(r decode.Raw) (WheelEvent, error) {
	var ev WheelEvent
	var err error
	if ev.MouseEvent, err = DecodeMouseEvent(r); err != nil {
		return WheelEvent{}, fmt.Errorf("wheel: %w", err)
	}
	if ev.DeltaY, err = r.Float("deltaY"); err != nil {
		return WheelEvent{}, fmt.Errorf("wheel: %w", err)
	}
	mode, err := r.Int("deltaMode")
	if err != nil {
		return WheelEvent{}, fmt.Errorf("wheel: %w", err)
	}
	ev.DeltaMode = DeltaModeFrom(mode)
	return ev, nil
}
