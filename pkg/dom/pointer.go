package dom

import (
	"fmt"

	"github.com/glintkit/glint-events/pkg/decode"
)

// DeviceType tags which kind of device produced a pointer event.
type DeviceType int

const (
	DeviceMouse DeviceType = iota
	DeviceTouch
	DevicePen
)

func (d DeviceType) String() string {
	switch d {
	case DeviceTouch:
		return "touch"
	case DevicePen:
		return "pen"
	}
	return "mouse"
}

// DeviceTypeFrom maps the native pointerType string. The vocabulary is
// browser-extensible, so anything unrecognized (including the literal
// "mouse" and the empty string) falls back to DeviceMouse instead of
// failing the decode.
func DeviceTypeFrom(s string) DeviceType {
	switch s {
	case "pen":
		return DevicePen
	case "touch":
		return DeviceTouch
	}
	return DeviceMouse
}

// ContactGeometry describes the contact patch of a pointer.
type ContactGeometry struct {
	Width    float64
	Height   float64
	Pressure float64
	TiltX    float64
	TiltY    float64
}

// PointerEvent is the decoded form of a native pointer event. It carries a
// full mouse record plus pointer-specific fields.
type PointerEvent struct {
	MouseEvent
	Device    DeviceType
	PointerID int
	IsPrimary bool
	Contact   ContactGeometry
}

func decodeContact(r decode.Raw) (ContactGeometry, error) {
	var c ContactGeometry
	var err error
	if c.Width, err = r.Float("width"); err != nil {
		return ContactGeometry{}, err
	}
	if c.Height, err = r.Float("height"); err != nil {
		return ContactGeometry{}, err
	}
	if c.Pressure, err = r.Float("pressure"); err != nil {
		return ContactGeometry{}, err
	}
	if c.TiltX, err = r.Float("tiltX"); err != nil {
		return ContactGeometry{}, err
	}
	if c.TiltY, err = r.Float("tiltY"); err != nil {
		return ContactGeometry{}, err
	}
	return c, nil
}

// DecodePointerEvent decodes a raw pointer-shaped event.
func DecodePointerEvent(r decode.Raw) (PointerEvent, error) {
	var ev PointerEvent
	var err error
	if ev.MouseEvent, err = DecodeMouseEvent(r); err != nil {
		return PointerEvent{}, fmt.Errorf("pointer: %w", err)
	}
	devType, err := r.String("pointerType")
	if err != nil {
		return PointerEvent{}, fmt.Errorf("pointer: %w", err)
	}
	ev.Device = DeviceTypeFrom(devType)
	if ev.PointerID, err = r.Int("pointerId"); err != nil {
		return PointerEvent{}, fmt.Errorf("pointer: %w", err)
	}
	if ev.IsPrimary, err = r.Bool("isPrimary"); err != nil {
		return PointerEvent{}, fmt.Errorf("pointer: %w", err)
	}
	if ev.Contact, err = decodeContact(r); err != nil {
		return PointerEvent{}, fmt.Errorf("pointer: %w", err)
	}
	return ev, nil
}
