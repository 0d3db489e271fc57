// Package leveldata parses TMX levels into world-space geometry.
// It has no dependencies on donburi or the physics backends, pure data only.
//
// Tiled measures in pixels with Y pointing down. Levels here are in world
// units, one tile per unit, with Y pointing up and the origin at the
// bottom-left corner of the map.
package leveldata

// Level holds the geometry parsed from a TMX level file.
type Level struct {
	Name    string
	Width   float64
	Height  float64
	Solids  []Box
	Spawns  []SpawnPoint
	Targets []TargetSpawn
}

// Box is an axis-aligned box given by its lower-left corner.
type Box struct {
	X, Y, W, H float64
}

// SpawnPoint is a character spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// TargetSpawn places a damageable target. MaxHealth is zero when the map
// does not override it.
type TargetSpawn struct {
	Name      string
	Box       Box
	MaxHealth float64
}

// Spawn returns the spawn point with the given index, falling back to the
// leftmost one.
func (l *Level) Spawn(index int) (SpawnPoint, bool) {
	for _, s := range l.Spawns {
		if s.Index == index {
			return s, true
		}
	}
	if len(l.Spawns) == 0 {
		return SpawnPoint{}, false
	}
	return l.Spawns[0], true
}
