// Package education defines the closed set of education tags shared by
// extraction, user profiles and compatibility scoring.
package education

// Tags, lowest to highest. None means no level was stated.
const (
	None       = ""
	HighSchool = "high_school"
	Associate  = "associate"
	Bachelor   = "bachelor"
	Master     = "master"
	Doctorate  = "doctorate"
)

var ordinals = map[string]float64{
	None:       0,
	HighSchool: 0.2,
	Associate:  0.4,
	Bachelor:   0.6,
	Master:     0.8,
	Doctorate:  1.0,
}

// Ordinal maps a tag onto [0, 1]. Unknown tags rate as None rather than
// failing, so stale rows never break scoring.
func Ordinal(tag string) float64 {
	return ordinals[tag]
}

// Known reports whether tag is one of the defined levels.
func Known(tag string) bool {
	_, ok := ordinals[tag]
	return ok
}
