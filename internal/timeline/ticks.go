package timeline

import "math"

// MaxZoom is the zoom ceiling in pixels per second.
const MaxZoom = 24.0

// minTickWidth is the smallest legible gap between minor ticks, in pixels.
const minTickWidth = 12.0

// TickSetting is a pair of minor/major ruler intervals in seconds.
type TickSetting struct {
	MinorSeconds float64
	MajorSeconds float64
}

// Tick is a single ruler mark at an absolute timeline position.
type Tick struct {
	Time   float64 // seconds
	Offset float64 // pixels from timeline origin
	Major  bool
}

// tickSettings is ordered by increasing minor interval; BestTickSetting
// walks it until a minor tick renders wide enough to read.
var tickSettings = []TickSetting{
	{MinorSeconds: 1, MajorSeconds: 5},
	{MinorSeconds: 2, MajorSeconds: 10},
	{MinorSeconds: 10, MajorSeconds: 30},
	{MinorSeconds: 5, MajorSeconds: 60},
	{MinorSeconds: 10, MajorSeconds: 60},
	{MinorSeconds: 15, MajorSeconds: 60},
	{MinorSeconds: 30, MajorSeconds: 300},
	{MinorSeconds: 60, MajorSeconds: 300},
	{MinorSeconds: 60, MajorSeconds: 600},
	{MinorSeconds: 120, MajorSeconds: 600},
	{MinorSeconds: 300, MajorSeconds: 3600},
	{MinorSeconds: 600, MajorSeconds: 3600},
}

// TimeToPixels converts a time in seconds to a pixel offset at the given
// zoom level (pixels per second).
func TimeToPixels(seconds, pixelsPerSecond float64) float64 {
	return seconds * pixelsPerSecond
}

// PixelsToTime converts a pixel offset back to seconds.
func PixelsToTime(pixels, pixelsPerSecond float64) float64 {
	return pixels / pixelsPerSecond
}

// Width returns the full timeline width in pixels for a duration.
func Width(durationSeconds, pixelsPerSecond float64) float64 {
	return durationSeconds * pixelsPerSecond
}

// MinZoom returns the pixels-per-second at which the whole duration
// exactly fits the viewport. This is the lower zoom bound.
func MinZoom(viewportWidth, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return MaxZoom
	}
	return viewportWidth / durationSeconds
}

// BestTickSetting picks the first candidate whose minor tick renders
// wider than the legibility threshold at the given zoom. Falls through
// to the coarsest setting at very low zoom.
func BestTickSetting(pixelsPerSecond float64) TickSetting {
	setting := tickSettings[0]
	for _, s := range tickSettings {
		setting = s
		if pixelsPerSecond*s.MinorSeconds > minTickWidth {
			break
		}
	}
	return setting
}

// Ticks generates the ruler marks covering the visible window
// [visibleStart, visibleEnd] at the given zoom. The first tick is the
// smallest multiple of the minor interval at or after visibleStart;
// marks advance by the minor interval until they leave the window. The
// window is clamped to duration so no tick implies time beyond the end
// of the video. A tick is major iff its time is an exact multiple of
// the major interval.
func Ticks(visibleStart, visibleEnd, durationSeconds, pixelsPerSecond float64) []Tick {
	if pixelsPerSecond <= 0 || visibleEnd <= visibleStart {
		return nil
	}
	if visibleStart < 0 {
		visibleStart = 0
	}
	if visibleEnd > durationSeconds {
		visibleEnd = durationSeconds
	}

	setting := BestTickSetting(pixelsPerSecond)

	first := math.Ceil(visibleStart/setting.MinorSeconds) * setting.MinorSeconds

	var ticks []Tick
	for t := first; t <= visibleEnd; t += setting.MinorSeconds {
		ticks = append(ticks, Tick{
			Time:   t,
			Offset: t * pixelsPerSecond,
			Major:  math.Mod(t, setting.MajorSeconds) == 0,
		})
	}
	return ticks
}
