package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lootvault/vaultsim/internal/domain"
)

func TestXPForLevel_KnownThresholds(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(0))
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 300, XPForLevel(2))
	assert.Equal(t, 600, XPForLevel(3))
	assert.Equal(t, 1000, XPForLevel(4))
}

func TestXPForLevel_StrictlyIncreasing(t *testing.T) {
	for level := 0; level < 100; level++ {
		assert.Less(t, XPForLevel(level), XPForLevel(level+1))
	}
}

func TestLevelFromXP_BoundaryExactness(t *testing.T) {
	for level := 0; level <= 50; level++ {
		assert.Equal(t, level, LevelFromXP(XPForLevel(level)), "level %d", level)
	}
}

func TestLevelFromXP_Monotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		level := LevelFromXP(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestLevelFromXP_NegativeXP(t *testing.T) {
	assert.Equal(t, 0, LevelFromXP(-50))
}

func TestGetLevelInfo_ExactThresholdIsZeroPercent(t *testing.T) {
	info := GetLevelInfo(300)

	assert.Equal(t, 2, info.Level)
	assert.Equal(t, 300, info.XPForCurrentLevel)
	assert.Equal(t, 600, info.XPForNextLevel)
	assert.Equal(t, 0.0, info.ProgressPercent)
}

func TestGetLevelInfo_ProgressAlwaysInRange(t *testing.T) {
	for xp := 0; xp <= 3000; xp += 13 {
		info := GetLevelInfo(xp)
		assert.GreaterOrEqual(t, info.ProgressPercent, 0.0, "xp %d", xp)
		assert.LessOrEqual(t, info.ProgressPercent, 100.0, "xp %d", xp)
	}
}

func TestGetLevelInfo_MidLevelProgress(t *testing.T) {
	// Halfway between level 1 (100) and level 2 (300)
	info := GetLevelInfo(200)

	assert.Equal(t, 1, info.Level)
	assert.InDelta(t, 50.0, info.ProgressPercent, 0.001)
}

func TestApplyXP_LevelUpDetection(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	s.XP = 90

	result := ApplyXP(&s, 20)

	assert.Equal(t, 110, s.XP)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 1, result.Info.Level)
}

func TestApplyXP_NoLevelUp(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	result := ApplyXP(&s, 50)

	assert.False(t, result.LeveledUp)
	assert.Equal(t, 0, result.Info.Level)
}

func TestApplyXP_NegativeAmountIgnored(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	s.XP = 40

	result := ApplyXP(&s, -10)

	assert.Equal(t, 40, s.XP)
	assert.Equal(t, 0, result.Awarded)
}
