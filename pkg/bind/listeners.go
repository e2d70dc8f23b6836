package bind

import "github.com/glintkit/glint-events/pkg/dom"

// Named constructors for the standard listener surface. All use
// DefaultOptions; chain With to change the flags.

func OnClick(f func(dom.MouseEvent) any) Handler { return Mouse("click", f) }

func OnDoubleClick(f func(dom.MouseEvent) any) Handler { return Mouse("dblclick", f) }

func OnMouseDown(f func(dom.MouseEvent) any) Handler { return Mouse("mousedown", f) }

func OnMouseUp(f func(dom.MouseEvent) any) Handler { return Mouse("mouseup", f) }

func OnMouseMove(f func(dom.MouseEvent) any) Handler { return Mouse("mousemove", f) }

func OnMouseEnter(f func(dom.MouseEvent) any) Handler { return Mouse("mouseenter", f) }

func OnMouseLeave(f func(dom.MouseEvent) any) Handler { return Mouse("mouseleave", f) }

func OnMouseOver(f func(dom.MouseEvent) any) Handler { return Mouse("mouseover", f) }

func OnMouseOut(f func(dom.MouseEvent) any) Handler { return Mouse("mouseout", f) }

func OnContextMenu(f func(dom.MouseEvent) any) Handler { return Mouse("contextmenu", f) }

func OnTouchStart(f func(dom.TouchEvent) any) Handler { return Touch("touchstart", f) }

func OnTouchMove(f func(dom.TouchEvent) any) Handler { return Touch("touchmove", f) }

func OnTouchEnd(f func(dom.TouchEvent) any) Handler { return Touch("touchend", f) }

func OnTouchCancel(f func(dom.TouchEvent) any) Handler { return Touch("touchcancel", f) }

func OnPointerDown(f func(dom.PointerEvent) any) Handler { return Pointer("pointerdown", f) }

func OnPointerUp(f func(dom.PointerEvent) any) Handler { return Pointer("pointerup", f) }

func OnPointerMove(f func(dom.PointerEvent) any) Handler { return Pointer("pointermove", f) }

func OnPointerOver(f func(dom.PointerEvent) any) Handler { return Pointer("pointerover", f) }

func OnPointerEnter(f func(dom.PointerEvent) any) Handler { return Pointer("pointerenter", f) }

func OnPointerLeave(f func(dom.PointerEvent) any) Handler { return Pointer("pointerleave", f) }

func OnPointerOut(f func(dom.PointerEvent) any) Handler { return Pointer("pointerout", f) }

func OnPointerCancel(f func(dom.PointerEvent) any) Handler { return Pointer("pointercancel", f) }

func OnGotPointerCapture(f func(dom.PointerEvent) any) Handler {
	return Pointer("gotpointercapture", f)
}

func OnLostPointerCapture(f func(dom.PointerEvent) any) Handler {
	return Pointer("lostpointercapture", f)
}

func OnWheel(f func(dom.WheelEvent) any) Handler { return Wheel("wheel", f) }
