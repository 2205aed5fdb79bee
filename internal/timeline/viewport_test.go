package timeline

import (
	"math"
	"testing"
)

func newTestViewport(t *testing.T) *Viewport {
	t.Helper()
	// 800px viewport over a 400s video, zoomed in to 10 px/s
	// (content width 4000px, max scroll 3200px).
	v := NewViewport(800, 400)
	v.SetZoom(10)
	return v
}

// ============================================================
// Clamp
// ============================================================

func TestClamp(t *testing.T) {
	if got := Clamp(0, 5, 10); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := Clamp(0, -1, 10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(0, 11, 10); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	// Degenerate bounds: min-then-max composition yields hi.
	if got := Clamp(10, 5, 2); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

// ============================================================
// Zoom
// ============================================================

func TestSetZoomBounds(t *testing.T) {
	v := newTestViewport(t)

	v.SetZoom(100)
	if v.Zoom != MaxZoom {
		t.Fatalf("zoom %v, expected ceiling %v", v.Zoom, MaxZoom)
	}

	v.SetZoom(0.1)
	if v.Zoom != 2 { // 800/400: full duration exactly fits
		t.Fatalf("zoom %v, expected floor 2", v.Zoom)
	}
}

func TestZoomAroundKeepsAnchorTime(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(500)

	anchorX := 300.0
	before := (v.ScrollX + anchorX) / v.Zoom

	v.ZoomAround(20, anchorX)

	after := (v.ScrollX + anchorX) / v.Zoom
	if math.Abs(before-after) > 1e-9 {
		t.Fatalf("anchor time drifted: %v -> %v", before, after)
	}
}

func TestZoomAroundClampsScroll(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(3200) // at max scroll

	v.ZoomAround(2, 400) // zoom all the way out
	if v.ScrollX != 0 {
		t.Fatalf("expected scroll 0 at min zoom, got %v", v.ScrollX)
	}
}

func TestZoomGestureLatchesStart(t *testing.T) {
	v := newTestViewport(t)

	v.BeginZoom()
	v.ZoomGesture(1.5, 0)
	v.ZoomGesture(1.5, 0)
	v.EndZoom()

	// Both callbacks scale the latched 10 px/s, not each other.
	if v.Zoom != 15 {
		t.Fatalf("zoom %v, expected 15", v.Zoom)
	}
	if v.Zooming() {
		t.Fatal("gesture still active after EndZoom")
	}
}

// ============================================================
// Scroll
// ============================================================

func TestScrollBounds(t *testing.T) {
	v := newTestViewport(t)

	v.ScrollTo(-50)
	if v.ScrollX != 0 {
		t.Fatalf("expected 0, got %v", v.ScrollX)
	}

	v.ScrollTo(99999)
	if v.ScrollX != 3200 {
		t.Fatalf("expected 3200, got %v", v.ScrollX)
	}
}

func TestAutoScrollRightOverflow(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(100)

	v.AutoScroll(v.ViewportWidth + 50)
	if v.ScrollX != 150 {
		t.Fatalf("expected 150, got %v", v.ScrollX)
	}
}

func TestAutoScrollLeftDeficit(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(100)

	v.AutoScroll(-30)
	if v.ScrollX != 70 {
		t.Fatalf("expected 70, got %v", v.ScrollX)
	}

	v.AutoScroll(-500)
	if v.ScrollX != 0 {
		t.Fatalf("expected clamp at 0, got %v", v.ScrollX)
	}
}

func TestAutoScrollInsideViewportIsNoop(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(100)

	v.AutoScroll(400)
	if v.ScrollX != 100 {
		t.Fatalf("expected 100, got %v", v.ScrollX)
	}
	v.AutoScroll(0)
	if v.ScrollX != 100 {
		t.Fatalf("pointer exactly at left edge scrolled to %v", v.ScrollX)
	}
}

// ============================================================
// Geometry
// ============================================================

func TestVisibleRange(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(1000)

	start, end := v.VisibleRange()
	if start != 100 || end != 180 {
		t.Fatalf("expected [100,180], got [%v,%v]", start, end)
	}
}

func TestVisibleRangeClampedToDuration(t *testing.T) {
	v := NewViewport(800, 100) // min zoom 8, content exactly fits

	_, end := v.VisibleRange()
	if end > 100 {
		t.Fatalf("visible end %v beyond duration", end)
	}
}

func TestResizeKeepsStateValid(t *testing.T) {
	v := newTestViewport(t)
	v.ScrollTo(3200)

	v.Resize(4000, 400) // viewport now as wide as the content at min zoom
	if v.ScrollX > v.TimelineWidth()-v.ViewportWidth && v.ScrollX != 0 {
		t.Fatalf("scroll %v out of range after resize", v.ScrollX)
	}
	if v.Zoom < MinZoom(v.ViewportWidth, v.Duration) && v.Zoom != MaxZoom {
		t.Fatalf("zoom %v below floor after resize", v.Zoom)
	}
}
