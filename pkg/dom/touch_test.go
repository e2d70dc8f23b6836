package dom

import (
	"testing"

	"github.com/glintkit/glint-events/pkg/decode"
)

func rawTouchPoint(id int, x, y float64) map[string]any {
	return map[string]any{
		"identifier": id,
		"clientX":    x, "clientY": y,
		"pageX": x, "pageY": y,
		"screenX": x, "screenY": y,
	}
}

func TestDecodeTouchEvent(t *testing.T) {
	raw := decode.Raw{
		"altKey": false, "ctrlKey": false, "shiftKey": false, "metaKey": false,
		"changedTouches": map[string]any{"length": 1, "0": rawTouchPoint(7, 3, 4)},
		"targetTouches":  map[string]any{"length": 0},
		"touches":        map[string]any{"length": 1, "0": rawTouchPoint(7, 3, 4)},
	}

	ev, err := DecodeTouchEvent(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(ev.ChangedTouches) != 1 {
		t.Fatalf("ChangedTouches has %d entries", len(ev.ChangedTouches))
	}
	want := Touch{
		Identifier: 7,
		ClientPos:  Coords{3, 4},
		PagePos:    Coords{3, 4},
		ScreenPos:  Coords{3, 4},
	}
	if ev.ChangedTouches[0] != want {
		t.Errorf("ChangedTouches[0] = %+v, want %+v", ev.ChangedTouches[0], want)
	}
	if len(ev.TargetTouches) != 0 {
		t.Errorf("TargetTouches has %d entries, want 0", len(ev.TargetTouches))
	}
	if len(ev.Touches) != 1 || ev.Touches[0] != want {
		t.Errorf("Touches = %+v", ev.Touches)
	}
}

func TestDecodeTouchEventOrderPreserved(t *testing.T) {
	raw := decode.Raw{
		"altKey": false, "ctrlKey": false, "shiftKey": false, "metaKey": false,
		"changedTouches": map[string]any{
			"length": 3,
			"0":      rawTouchPoint(30, 1, 1),
			"1":      rawTouchPoint(10, 2, 2),
			"2":      rawTouchPoint(20, 3, 3),
		},
		"targetTouches": map[string]any{"length": 0},
		"touches":       map[string]any{"length": 0},
	}

	ev, err := DecodeTouchEvent(raw)
	if err != nil {
		t.Fatal(err)
	}
	ids := []int{30, 10, 20}
	for i, want := range ids {
		if ev.ChangedTouches[i].Identifier != want {
			t.Errorf("ChangedTouches[%d].Identifier = %d, want %d", i, ev.ChangedTouches[i].Identifier, want)
		}
	}
}

func TestDecodeTouchEventBadTouchFails(t *testing.T) {
	point := rawTouchPoint(1, 5, 5)
	delete(point, "screenY")
	raw := decode.Raw{
		"altKey": false, "ctrlKey": false, "shiftKey": false, "metaKey": false,
		"changedTouches": map[string]any{"length": 1, "0": point},
		"targetTouches":  map[string]any{"length": 0},
		"touches":        map[string]any{"length": 0},
	}
	if _, err := DecodeTouchEvent(raw); err == nil {
		t.Error("decode succeeded with malformed touch point")
	}
}
