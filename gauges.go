package curveplate

import "strings"

// Track gauges of the common modelling scales, in millimetres.
const (
	GaugeN  = 9.0  // N scale (1:160 / 1:148)
	GaugeTT = 12.0 // TT scale (1:120)
	GaugeHO = 16.5 // HO and OO scale
	GaugeO  = 32.0 // O scale (1:43.5 / 1:48)
)

// GaugeForScale returns the track gauge for a named modelling scale.
// Recognized names are "n", "tt", "ho", "oo" and "o", case-insensitive.
func GaugeForScale(name string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "n":
		return GaugeN, true
	case "tt":
		return GaugeTT, true
	case "ho", "h0", "oo":
		return GaugeHO, true
	case "o":
		return GaugeO, true
	}
	return 0, false
}
