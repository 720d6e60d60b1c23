package engine

import "time"

// Message formula constants
const (
	MessageBaseMin       = 8
	MessageBaseMax       = 15
	MessageLengthDivisor = 10.0
	MessageLengthCap     = 5.0
	StreakBonusPerDay    = 0.5
	StreakBonusCap       = 10.0
	DailyFirstBonus      = 5.0
	VoiceBonusDivisor    = 3600.0
	VoiceBonusCap        = 5.0
	MultiplierMin        = 0.8
	MultiplierMax        = 1.3

	SpamWindowStrict  = 30 * time.Second
	SpamFactorStrict  = 0.3
	SpamWindowRelaxed = 60 * time.Second
	SpamFactorRelaxed = 0.7
)

// Voice formula constants
const (
	VoiceXPPerMinute       = 2
	VoiceLongSessionSecs   = 1800
	VoiceLongSessionReward = 5
	VoiceRandomMax         = 2
	// VoiceMinSessionSeconds is the shortest presence that earns anything
	VoiceMinSessionSeconds = 30
)

// LevelForXP is the levelling curve floor(0.1*sqrt(xp)) + 1. It is computed
// with an integer square root so thresholds are exact: level n starts at
// XPForLevel(n) = 100*(n-1)^2.
func LevelForXP(xp int64) int {
	if xp <= 0 {
		return 1
	}
	return int(isqrt(xp)/10) + 1
}

// XPForLevel returns the minimum total XP for the given level
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	n := int64(level-1) * 10
	return n * n
}

// Progress describes how far xp is through its current level
type Progress struct {
	Level         int
	CurrentXP     int64
	LevelStartXP  int64
	NextLevelXP   int64
	XPIntoLevel   int64
	XPToNextLevel int64
}

// ProgressForXP returns the level band xp sits in
func ProgressForXP(xp int64) Progress {
	if xp < 0 {
		xp = 0
	}
	level := LevelForXP(xp)
	start := XPForLevel(level)
	next := XPForLevel(level + 1)
	return Progress{
		Level:         level,
		CurrentXP:     xp,
		LevelStartXP:  start,
		NextLevelXP:   next,
		XPIntoLevel:   xp - start,
		XPToNextLevel: next - xp,
	}
}

func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	// Newton's method from above converges to floor(sqrt(n)).
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
