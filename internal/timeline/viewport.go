package timeline

// Viewport owns the zoom level and horizontal scroll position of the
// timeline and the math that keeps them consistent. All operations are
// total: out-of-range inputs are clamped, never rejected.
type Viewport struct {
	Zoom          float64 // pixels per second
	ScrollX       float64 // pixels
	ViewportWidth float64 // pixels
	Duration      float64 // seconds

	zooming      bool
	startingZoom float64
}

// NewViewport starts fully zoomed out for the given geometry.
func NewViewport(viewportWidth, durationSeconds float64) *Viewport {
	v := &Viewport{
		ViewportWidth: viewportWidth,
		Duration:      durationSeconds,
	}
	v.Zoom = v.minZoom()
	return v
}

func (v *Viewport) minZoom() float64 {
	z := MinZoom(v.ViewportWidth, v.Duration)
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// TimelineWidth is the full content width in pixels at the current zoom.
func (v *Viewport) TimelineWidth() float64 {
	return Width(v.Duration, v.Zoom)
}

func (v *Viewport) maxScroll() float64 {
	m := v.TimelineWidth() - v.ViewportWidth
	if m < 0 {
		return 0
	}
	return m
}

// VisibleRange returns the time window currently on screen, clamped to
// the known duration.
func (v *Viewport) VisibleRange() (start, end float64) {
	start = PixelsToTime(v.ScrollX, v.Zoom)
	end = start + PixelsToTime(v.ViewportWidth, v.Zoom)
	if end > v.Duration {
		end = v.Duration
	}
	return start, end
}

// SetZoom clamps the new zoom level into bounds and keeps the scroll
// offset valid at the new content width.
func (v *Viewport) SetZoom(pixelsPerSecond float64) {
	v.Zoom = Clamp(v.minZoom(), pixelsPerSecond, MaxZoom)
	v.ScrollX = Clamp(0, v.ScrollX, v.maxScroll())
}

// ZoomAround rescales around an anchor so the timeline time under
// anchorX stays under anchorX after the zoom change.
func (v *Viewport) ZoomAround(pixelsPerSecond, anchorX float64) {
	oldZoom := v.Zoom
	v.Zoom = Clamp(v.minZoom(), pixelsPerSecond, MaxZoom)
	if oldZoom > 0 {
		v.ScrollX = v.Zoom*(v.ScrollX+anchorX)/oldZoom - anchorX
	}
	v.ScrollX = Clamp(0, v.ScrollX, v.maxScroll())
}

// ScrollTo clamps an absolute scroll position.
func (v *Viewport) ScrollTo(x float64) {
	v.ScrollX = Clamp(0, x, v.maxScroll())
}

// ScrollBy moves the scroll position by a pixel delta.
func (v *Viewport) ScrollBy(dx float64) {
	v.ScrollTo(v.ScrollX + dx)
}

// AutoScroll advances the viewport while a drag pointer is outside it:
// past the right edge it scrolls forward by the overflow, before the
// left edge it scrolls back by the deficit. A pointer inside the
// viewport never scrolls.
func (v *Viewport) AutoScroll(pointerX float64) {
	switch {
	case pointerX > v.ViewportWidth:
		v.ScrollX = Clamp(0, v.ScrollX+(pointerX-v.ViewportWidth), v.maxScroll())
	case pointerX < 0:
		v.ScrollX = Clamp(0, v.ScrollX+pointerX, v.maxScroll())
	}
}

// Resize updates the viewport geometry, re-clamping zoom and scroll so
// the content still covers the viewport.
func (v *Viewport) Resize(viewportWidth, durationSeconds float64) {
	v.ViewportWidth = viewportWidth
	v.Duration = durationSeconds
	v.SetZoom(v.Zoom)
}

// BeginZoom latches the zoom level at the start of a pinch/keyboard
// zoom gesture. Subsequent ZoomGesture calls scale against the latched
// value so repeated change callbacks within one gesture do not
// compound.
func (v *Viewport) BeginZoom() {
	if v.zooming {
		return
	}
	v.zooming = true
	v.startingZoom = v.Zoom
}

// ZoomGesture applies a scale factor relative to the zoom level latched
// by BeginZoom, anchored at anchorX. Without a prior BeginZoom it
// latches implicitly.
func (v *Viewport) ZoomGesture(scale, anchorX float64) {
	if !v.zooming {
		v.BeginZoom()
	}
	v.ZoomAround(v.startingZoom*scale, anchorX)
}

// EndZoom ends the gesture. Safe to call when no gesture is active.
func (v *Viewport) EndZoom() {
	v.zooming = false
}

// Zooming reports whether a zoom gesture is in flight.
func (v *Viewport) Zooming() bool {
	return v.zooming
}
