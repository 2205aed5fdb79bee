package timeline

import (
	"math"
	"testing"
)

// ============================================================
// Conversions
// ============================================================

func TestTimeToPixels(t *testing.T) {
	if got := TimeToPixels(10, 12); got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
	if got := PixelsToTime(120, 12); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestWidth(t *testing.T) {
	if got := Width(300, 2); got != 600 {
		t.Fatalf("expected 600, got %v", got)
	}
}

func TestMinZoom(t *testing.T) {
	// 900px viewport over a 450s video: 2 px/s fits exactly.
	if got := MinZoom(900, 450); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	// Zero duration falls back to the ceiling instead of dividing by zero.
	if got := MinZoom(900, 0); got != MaxZoom {
		t.Fatalf("expected MaxZoom, got %v", got)
	}
}

// ============================================================
// Tick settings
// ============================================================

func TestBestTickSettingHighZoom(t *testing.T) {
	s := BestTickSetting(24)
	if s.MinorSeconds != 1 || s.MajorSeconds != 5 {
		t.Fatalf("expected {1,5}, got {%v,%v}", s.MinorSeconds, s.MajorSeconds)
	}
}

func TestBestTickSettingLegibility(t *testing.T) {
	// At every zoom the chosen minor tick must render at least 12px wide,
	// except when even the coarsest setting cannot manage it.
	for _, pps := range []float64{0.5, 1, 2, 4, 8, 12, 16, 24} {
		s := BestTickSetting(pps)
		width := pps * s.MinorSeconds
		if width <= minTickWidth && s != tickSettings[len(tickSettings)-1] {
			t.Errorf("pps=%v: tick width %v below threshold with finer settings left", pps, width)
		}
	}
}

func TestBestTickSettingOne(t *testing.T) {
	s := BestTickSetting(1)
	if 1*s.MinorSeconds < minTickWidth {
		t.Fatalf("minor tick width %v < %v", s.MinorSeconds, minTickWidth)
	}
}

// ============================================================
// Tick generation
// ============================================================

func TestTicksSnapToGrid(t *testing.T) {
	// Zoom 24 selects {1,5}; window starting at 3.2s must begin at 4s.
	ticks := Ticks(3.2, 10, 600, 24)
	if len(ticks) == 0 {
		t.Fatal("no ticks")
	}
	if ticks[0].Time != 4 {
		t.Fatalf("first tick at %v, expected 4", ticks[0].Time)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Time-ticks[i-1].Time != 1 {
			t.Fatalf("irregular spacing between %v and %v", ticks[i-1].Time, ticks[i].Time)
		}
	}
}

func TestTicksMajorMarks(t *testing.T) {
	ticks := Ticks(0, 20, 600, 24)
	for _, tick := range ticks {
		wantMajor := math.Mod(tick.Time, 5) == 0
		if tick.Major != wantMajor {
			t.Errorf("tick at %v: major=%v, want %v", tick.Time, tick.Major, wantMajor)
		}
	}
}

func TestTicksClampedToDuration(t *testing.T) {
	ticks := Ticks(50, 200, 63, 24)
	for _, tick := range ticks {
		if tick.Time > 63 {
			t.Fatalf("tick at %v beyond duration 63", tick.Time)
		}
	}
}

func TestTicksOffsets(t *testing.T) {
	ticks := Ticks(0, 10, 600, 12)
	for _, tick := range ticks {
		if tick.Offset != tick.Time*12 {
			t.Fatalf("tick at %v: offset %v, want %v", tick.Time, tick.Offset, tick.Time*12)
		}
	}
}

func TestTicksEmptyWindow(t *testing.T) {
	if ticks := Ticks(10, 10, 600, 12); ticks != nil {
		t.Fatalf("expected no ticks, got %d", len(ticks))
	}
	if ticks := Ticks(0, 10, 600, 0); ticks != nil {
		t.Fatalf("expected no ticks at zero zoom, got %d", len(ticks))
	}
}

// ============================================================
// Timecode formatting
// ============================================================

func TestTimecode(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{61, "0:01:01"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, c := range cases {
		if got := Timecode(c.seconds); got != c.want {
			t.Errorf("Timecode(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestGeotime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{5, "05\""},
		{65, "01'05\""},
		{600, "10'00\""},
	}
	for _, c := range cases {
		if got := Geotime(c.seconds); got != c.want {
			t.Errorf("Geotime(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
