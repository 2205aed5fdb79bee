package timeline

import (
	"fmt"
	"math"
)

// Timecode formats seconds as H:MM:SS.
func Timecode(seconds float64) string {
	ss := int(math.Mod(seconds, 60))
	mm := int(math.Mod(seconds, 3600) / 60)
	hh := int(seconds / 3600)
	return fmt.Sprintf("%01d:%02d:%02d", hh, mm, ss)
}

// Geotime formats seconds in the compact MM'SS" style used on event
// labels, omitting the minute part under one minute.
func Geotime(seconds float64) string {
	ss := int(math.Mod(seconds, 60))
	mm := int(seconds / 60)

	if mm > 0 {
		return fmt.Sprintf("%02d'%02d\"", mm, ss)
	}
	return fmt.Sprintf("%02d\"", ss)
}
