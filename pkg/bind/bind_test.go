package bind

import (
	"testing"

	"github.com/glintkit/glint-events/pkg/decode"
	"github.com/glintkit/glint-events/pkg/dom"
)

type clicked struct{ At dom.Coords }

func rawMouse() decode.Raw {
	return decode.Raw{
		"altKey": false, "ctrlKey": false, "shiftKey": false, "metaKey": false,
		"button":  0,
		"clientX": 12.5, "clientY": 7.0,
		"offsetX": 0.0, "offsetY": 0.0,
		"pageX": 12.5, "pageY": 7.0,
		"screenX": 12.5, "screenY": 7.0,
	}
}

func TestHandlerProducesMessage(t *testing.T) {
	h := OnClick(func(ev dom.MouseEvent) any { return clicked{At: ev.ClientPos} })
	if h.Name != "click" {
		t.Errorf("Name = %q", h.Name)
	}
	msg, ok := h.Handle(rawMouse())
	if !ok {
		t.Fatal("handler dropped a valid event")
	}
	c, isClicked := msg.(clicked)
	if !isClicked {
		t.Fatalf("message is %T", msg)
	}
	if (c.At != dom.Coords{X: 12.5, Y: 7.0}) {
		t.Errorf("At = %+v", c.At)
	}
}

func TestDefaultOptionsSuppressBoth(t *testing.T) {
	h := OnMouseDown(func(dom.MouseEvent) any { return nil })
	if !h.Options.StopPropagation || !h.Options.PreventDefault {
		t.Errorf("Options = %+v, want both true", h.Options)
	}
}

func TestWithOverridesOptions(t *testing.T) {
	h := OnWheel(func(dom.WheelEvent) any { return nil }).
		With(Options{StopPropagation: false, PreventDefault: true})
	if h.Options.StopPropagation || !h.Options.PreventDefault {
		t.Errorf("Options = %+v", h.Options)
	}
}

func TestSilentDropOnDecodeFailure(t *testing.T) {
	var observed []string
	OnDecodeError = func(event string, err error) {
		observed = append(observed, event)
		if err == nil {
			t.Error("hook called with nil error")
		}
	}
	defer func() { OnDecodeError = nil }()

	calls := 0
	h := OnClick(func(dom.MouseEvent) any { calls++; return clicked{} })

	raw := rawMouse()
	delete(raw, "shiftKey")
	msg, ok := h.Handle(raw)
	if ok || msg != nil {
		t.Errorf("Handle = (%v, %v), want silent drop", msg, ok)
	}
	if calls != 0 {
		t.Error("callback ran despite decode failure")
	}
	if len(observed) != 1 || observed[0] != "click" {
		t.Errorf("hook observed %v", observed)
	}
}

func TestSilentDropWithoutHook(t *testing.T) {
	h := OnClick(func(dom.MouseEvent) any { return clicked{} })
	// Must not panic with OnDecodeError unset.
	if _, ok := h.Handle(decode.Raw{}); ok {
		t.Error("empty event decoded successfully")
	}
}

func TestDragSourceForcesStartFlags(t *testing.T) {
	hs := DragSource(DragSourceConfig{
		EffectAllowed: dom.EffectAllowed{Copy: true},
		OnStart:       func(dom.DragEvent) any { return nil },
		OnEnd:         func(dom.DragEvent) any { return nil },
	})
	if len(hs) != 2 {
		t.Fatalf("got %d handlers, want 2 without OnDrag", len(hs))
	}
	start := hs[0]
	if start.Name != "dragstart" {
		t.Fatalf("first handler is %q", start.Name)
	}
	if start.EffectAllowed == nil || start.EffectAllowed.String() != "copy" {
		t.Errorf("EffectAllowed = %v", start.EffectAllowed)
	}
	relaxed := start.With(Options{StopPropagation: false, PreventDefault: false})
	if !relaxed.Options.StopPropagation || !relaxed.Options.PreventDefault {
		t.Error("drag-start flags were overridden")
	}
	end := hs[1]
	if end.Name != "dragend" || end.EffectAllowed != nil {
		t.Errorf("second handler = %q, effect %v", end.Name, end.EffectAllowed)
	}
}

func TestDropTargetForcesDropAndOver(t *testing.T) {
	hs := DropTarget(DropTargetConfig{
		DropEffect: dom.DropCopy,
		OnDrop:     func(dom.DragEvent) any { return nil },
		OnOver:     func(dom.DragEvent) any { return nil },
		OnEnter:    func(dom.DragEvent) any { return nil },
	})
	if len(hs) != 3 {
		t.Fatalf("got %d handlers, want 3 with OnEnter", len(hs))
	}
	byName := map[string]Handler{}
	for _, h := range hs {
		byName[h.Name] = h
	}
	for _, name := range []string{"drop", "dragover"} {
		h, ok := byName[name]
		if !ok {
			t.Fatalf("no %s handler", name)
		}
		relaxed := h.With(Options{})
		if !relaxed.Options.PreventDefault {
			t.Errorf("%s flags were overridden", name)
		}
	}
	over := byName["dragover"]
	if over.DropEffect == nil || *over.DropEffect != dom.DropCopy {
		t.Errorf("dragover DropEffect = %v", over.DropEffect)
	}
	if enter := byName["dragenter"]; enter.DropEffect != nil {
		t.Error("dragenter carries a drop effect")
	}
}

func TestPageFileDropDecodesFiles(t *testing.T) {
	var got []dom.File
	hs := PageFileDrop(FileDropConfig{
		OnDrop: func(files []dom.File) any { got = files; return "dropped" },
	})
	if len(hs) != 2 {
		t.Fatalf("got %d handlers, want drop + dragover", len(hs))
	}

	raw := rawMouse()
	raw["dataTransfer"] = map[string]any{
		"files": map[string]any{
			"length": 1,
			"0":      map[string]any{"name": "a.txt", "type": "text/plain", "size": 3},
		},
		"types":      map[string]any{"length": 1, "0": "Files"},
		"dropEffect": "copy",
	}
	msg, ok := hs[0].Handle(raw)
	if !ok || msg != "dropped" {
		t.Fatalf("Handle = (%v, %v)", msg, ok)
	}
	if len(got) != 1 || got[0].Name != "a.txt" {
		t.Errorf("files = %+v", got)
	}
}

func TestPageFileDropOverIsSilentButFlagged(t *testing.T) {
	hs := PageFileDrop(FileDropConfig{
		OnDrop: func([]dom.File) any { return nil },
	})
	over := hs[1]
	if over.Name != "dragover" {
		t.Fatalf("second handler is %q", over.Name)
	}
	msg, ok := over.Handle(decode.Raw{})
	if !ok {
		t.Error("silent dragover handler must not drop")
	}
	if msg != nil {
		t.Errorf("msg = %v, want nil", msg)
	}
	if !over.Options.PreventDefault {
		t.Error("dragover must prevent default")
	}
}
