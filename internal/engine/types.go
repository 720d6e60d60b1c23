package engine

import "time"

// CalculateMessageXPInput carries everything the message formula reads from
// a profile. It is computed before the profile is mutated.
type CalculateMessageXPInput struct {
	MessageLength    int
	StreakDays       int
	VoiceTimeSeconds int64
	// FirstActivityToday is true when the last activity was on an earlier
	// calendar date (or never).
	FirstActivityToday bool
	// SinceLastMessage is ignored when HasPreviousMessage is false.
	SinceLastMessage   time.Duration
	HasPreviousMessage bool
}

// CalculateMessageXPOutput holds the awarded XP and the terms that produced it
type CalculateMessageXPOutput struct {
	XP          int64
	BaseXP      int
	LengthBonus float64
	StreakBonus float64
	DailyBonus  float64
	VoiceBonus  float64
	Multiplier  float64
	// Dampening is 1 for unthrottled messages, 0.7 or 0.3 otherwise
	Dampening float64
}

// CalculateVoiceXPInput is one chunk of continuous voice presence
type CalculateVoiceXPInput struct {
	Seconds int64
}

// CalculateVoiceXPOutput holds the awarded voice XP
type CalculateVoiceXPOutput struct {
	XP          int64
	MinuteXP    int64
	LongSession int64
	RandomBonus int64
}
