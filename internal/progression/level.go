// Package progression maps cumulative XP to levels with a closed-form
// quadratic threshold: XP for level N = 50*N^2 + 50*N.
package progression

// XP formula constants
const (
	// QuadraticCoefficient and LinearCoefficient define the threshold
	// formula XPForLevel(N) = QuadraticCoefficient*N^2 + LinearCoefficient*N
	QuadraticCoefficient = 50
	LinearCoefficient    = 50

	// MaxIterationLevel bounds the linear scan in LevelFromXP. XP magnitudes
	// in the demo stay far below the level-1000 threshold.
	MaxIterationLevel = 1000
)

// LevelInfo is the derived view of a player's progression. It is computed
// on demand from cumulative XP and never persisted.
type LevelInfo struct {
	Level             int     `json:"level"`
	CurrentXP         int     `json:"current_xp"`
	XPForCurrentLevel int     `json:"xp_for_current_level"`
	XPForNextLevel    int     `json:"xp_for_next_level"`
	ProgressPercent   float64 `json:"progress_percent"`
}

// XPForLevel returns the cumulative XP required to reach a level.
// Level 0 -> 0, level 1 -> 100, level 2 -> 300, level 3 -> 600, ...
func XPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return QuadraticCoefficient*level*level + LinearCoefficient*level
}

// LevelFromXP returns the largest level whose threshold is <= xp.
// A linear scan is fine at demo XP magnitudes; bisection would be a
// drop-in replacement with identical results.
func LevelFromXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	level := 0
	for level < MaxIterationLevel && XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// GetLevelInfo returns the level, the thresholds bounding it, and the
// fractional progress toward the next level clamped to [0,100].
func GetLevelInfo(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := LevelFromXP(xp)
	current := XPForLevel(level)
	next := XPForLevel(level + 1)

	// The quadratic can never produce a zero span, but guard the division
	// anyway so a formula change cannot introduce a panic here.
	progress := 0.0
	if next > current {
		progress = 100 * float64(xp-current) / float64(next-current)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return LevelInfo{
		Level:             level,
		CurrentXP:         xp,
		XPForCurrentLevel: current,
		XPForNextLevel:    next,
		ProgressPercent:   progress,
	}
}
