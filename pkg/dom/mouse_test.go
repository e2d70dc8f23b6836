package dom

import (
	"testing"

	"github.com/glintkit/glint-events/pkg/decode"
)

// rawMouse builds a fully populated raw mouse event. Tests mutate copies of
// it to probe individual failure paths.
func rawMouse() decode.Raw {
	return decode.Raw{
		"altKey": false, "ctrlKey": false, "shiftKey": false, "metaKey": false,
		"button":  0,
		"clientX": 12.5, "clientY": 7.0,
		"offsetX": 2.0, "offsetY": 3.0,
		"pageX": 112.5, "pageY": 207.0,
		"screenX": 512.5, "screenY": 307.0,
	}
}

func TestDecodeMouseEventRoundTrip(t *testing.T) {
	raw := rawMouse()
	raw["shiftKey"] = true
	raw["button"] = 2

	ev, err := DecodeMouseEvent(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !ev.Keys.Shift || ev.Keys.Alt || ev.Keys.Ctrl || ev.Keys.Meta {
		t.Errorf("Keys = %+v", ev.Keys)
	}
	if ev.Button != ButtonSecondary {
		t.Errorf("Button = %v, want secondary", ev.Button)
	}
	if (ev.ClientPos != Coords{12.5, 7.0}) {
		t.Errorf("ClientPos = %+v", ev.ClientPos)
	}
	if (ev.OffsetPos != Coords{2.0, 3.0}) {
		t.Errorf("OffsetPos = %+v", ev.OffsetPos)
	}
	if (ev.PagePos != Coords{112.5, 207.0}) {
		t.Errorf("PagePos = %+v", ev.PagePos)
	}
	if (ev.ScreenPos != Coords{512.5, 307.0}) {
		t.Errorf("ScreenPos = %+v", ev.ScreenPos)
	}
}

func TestDecodeMouseEventMissingFieldFails(t *testing.T) {
	for field := range rawMouse() {
		raw := rawMouse()
		delete(raw, field)
		if _, err := DecodeMouseEvent(raw); err == nil {
			t.Errorf("decode succeeded with %q missing", field)
		}
	}
}

func TestDecodeMouseEventWrongTypeFails(t *testing.T) {
	raw := rawMouse()
	raw["shiftKey"] = "true"
	if _, err := DecodeMouseEvent(raw); err == nil {
		t.Error("decode succeeded with string shiftKey")
	}
}

func TestButtonFromCodeTotal(t *testing.T) {
	want := map[int]Button{
		0: ButtonMain,
		1: ButtonMiddle,
		2: ButtonSecondary,
		3: ButtonBack,
		4: ButtonForward,
	}
	for code, b := range want {
		if got := ButtonFromCode(code); got != b {
			t.Errorf("ButtonFromCode(%d) = %v, want %v", code, got, b)
		}
	}
	for _, code := range []int{-1, 5, 99} {
		if got := ButtonFromCode(code); got != ButtonNone {
			t.Errorf("ButtonFromCode(%d) = %v, want none", code, got)
		}
	}
}

func TestUnknownButtonCodeIsNotADecodeFailure(t *testing.T) {
	raw := rawMouse()
	raw["button"] = 99
	ev, err := DecodeMouseEvent(raw)
	if err != nil {
		t.Fatalf("unknown button code must not fail decode: %v", err)
	}
	if ev.Button != ButtonNone {
		t.Errorf("Button = %v, want none", ev.Button)
	}
}
