// Package inject replays decoded browser pointer activity as local input.
// It is the demo consumer wired up by the bridge binary: the browser's
// mouse and wheel events, decoded by pkg/dom, move and click the local
// cursor through robotgo.
package inject

import (
	"math"

	"github.com/go-vgo/robotgo"

	"github.com/glintkit/glint-events/pkg/bind"
	"github.com/glintkit/glint-events/pkg/dom"
	"github.com/glintkit/glint-events/pkg/internal/log"
)

// Messages produced by Bindings and consumed by Consume.
type (
	MouseMove    struct{ Event dom.MouseEvent }
	MousePress   struct{ Event dom.MouseEvent }
	MouseRelease struct{ Event dom.MouseEvent }
	Scroll       struct{ Event dom.WheelEvent }
)

// Injector maps remote viewport coordinates onto the local screen and
// performs the input calls.
type Injector struct {
	remoteW, remoteH int
	screenW, screenH int
}

// New builds an injector for a remote viewport of the given size. Zero
// dimensions mean the remote viewport already matches the local screen.
func New(remoteW, remoteH int) *Injector {
	sw, sh := robotgo.GetScreenSize()
	return &Injector{remoteW: remoteW, remoteH: remoteH, screenW: sw, screenH: sh}
}

// Bindings returns the handlers that feed this injector. Page coordinates
// are used so scrolled viewports still land on the right spot.
func (in *Injector) Bindings() []bind.Handler {
	return []bind.Handler{
		bind.OnMouseMove(func(ev dom.MouseEvent) any { return MouseMove{Event: ev} }),
		bind.OnMouseDown(func(ev dom.MouseEvent) any { return MousePress{Event: ev} }),
		bind.OnMouseUp(func(ev dom.MouseEvent) any { return MouseRelease{Event: ev} }),
		bind.OnWheel(func(ev dom.WheelEvent) any { return Scroll{Event: ev} }),
	}
}

// Consume is a session.MessageHandler: it performs the local input action
// for one dispatched message. Unknown message types are ignored.
func (in *Injector) Consume(msg any) {
	switch m := msg.(type) {
	case MouseMove:
		x, y := in.scale(m.Event.ClientPos)
		robotgo.Move(x, y)
	case MousePress:
		x, y := in.scale(m.Event.ClientPos)
		robotgo.Move(x, y)
		if name, ok := buttonName(m.Event.Button); ok {
			robotgo.MouseDown(name)
		}
	case MouseRelease:
		if name, ok := buttonName(m.Event.Button); ok {
			robotgo.MouseUp(name)
		}
	case Scroll:
		robotgo.Scroll(0, -scrollSteps(m.Event.DeltaY, m.Event.DeltaMode))
	default:
		log.Debugf("ignoring message %T", msg)
	}
}

// scale maps remote viewport coordinates to local screen coordinates, the
// same way the remote framebuffer is stretched onto the local one.
func (in *Injector) scale(c dom.Coords) (x, y int) {
	x, y = int(math.Round(c.X)), int(math.Round(c.Y))
	if in.remoteW > 0 && in.remoteH > 0 && (in.remoteW != in.screenW || in.remoteH != in.screenH) {
		x = int(math.Round(c.X * float64(in.screenW) / float64(in.remoteW)))
		y = int(math.Round(c.Y * float64(in.screenH) / float64(in.remoteH)))
	}
	return x, y
}

// buttonName maps the decoded button to robotgo's vocabulary. ButtonNone
// and the browser navigation buttons have no local equivalent.
func buttonName(b dom.Button) (string, bool) {
	switch b {
	case dom.ButtonMain:
		return "left", true
	case dom.ButtonMiddle:
		return "middle", true
	case dom.ButtonSecondary:
		return "right", true
	}
	return "", false
}

// pixelsPerLine approximates one wheel notch worth of pixels.
const pixelsPerLine = 40

// scrollSteps converts a wheel delta into whole scroll notches. The sign
// follows the browser convention (positive = down); callers negate for
// robotgo, where positive scrolls up.
func scrollSteps(delta float64, mode dom.DeltaMode) int {
	var lines float64
	switch mode {
	case dom.DeltaLine:
		lines = delta
	case dom.DeltaPage:
		lines = delta * 10
	default:
		lines = delta / pixelsPerLine
	}
	steps := int(math.Round(lines))
	if steps == 0 && delta != 0 {
		// Preserve small movements instead of dropping them.
		if delta > 0 {
			return 1
		}
		return -1
	}
	return steps
}
