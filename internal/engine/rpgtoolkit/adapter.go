// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// multiplierSteps is the resolution of the random message multiplier:
// one die face per 0.001 between MultiplierMin and MultiplierMax.
const multiplierSteps = 500

// Adapter implements the engine.Engine interface using rpg-toolkit dice
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateMessageXP applies the message formula: a random base, capped
// length/streak/voice bonuses, a first-of-the-day bonus, a random
// multiplier and anti-spam dampening. The result is never below 1.
func (a *Adapter) CalculateMessageXP(
	ctx context.Context,
	input *engine.CalculateMessageXPInput,
) (*engine.CalculateMessageXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MessageLength < 0 {
		return nil, errors.InvalidArgument("message length cannot be negative")
	}

	base, err := a.rollBetween(engine.MessageBaseMin, engine.MessageBaseMax)
	if err != nil {
		return nil, err
	}

	out := &engine.CalculateMessageXPOutput{
		BaseXP:      base,
		LengthBonus: math.Min(float64(input.MessageLength)/engine.MessageLengthDivisor, engine.MessageLengthCap),
		StreakBonus: math.Min(float64(input.StreakDays)*engine.StreakBonusPerDay, engine.StreakBonusCap),
		VoiceBonus:  math.Min(float64(input.VoiceTimeSeconds)/engine.VoiceBonusDivisor, engine.VoiceBonusCap),
		Dampening:   1,
	}
	if input.FirstActivityToday {
		out.DailyBonus = engine.DailyFirstBonus
	}

	multiplier, err := a.rollMultiplier()
	if err != nil {
		return nil, err
	}
	out.Multiplier = multiplier

	total := float64(base) + out.LengthBonus + out.StreakBonus + out.DailyBonus + out.VoiceBonus
	xp := math.Floor(total * multiplier)

	if input.HasPreviousMessage {
		switch {
		case input.SinceLastMessage < engine.SpamWindowStrict:
			out.Dampening = engine.SpamFactorStrict
		case input.SinceLastMessage < engine.SpamWindowRelaxed:
			out.Dampening = engine.SpamFactorRelaxed
		}
		if out.Dampening < 1 {
			xp = math.Floor(xp * out.Dampening)
		}
	}

	out.XP = int64(math.Max(xp, 1))

	slog.DebugContext(ctx, "calculated message xp",
		"base", base,
		"multiplier", multiplier,
		"dampening", out.Dampening,
		"xp", out.XP)

	return out, nil
}

// CalculateVoiceXP awards 2 XP per full minute, 5 XP per full half hour
// for chunks longer than 30 minutes, plus 0-2 random XP.
func (a *Adapter) CalculateVoiceXP(
	ctx context.Context,
	input *engine.CalculateVoiceXPInput,
) (*engine.CalculateVoiceXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Seconds < 0 {
		return nil, errors.InvalidArgument("voice seconds cannot be negative")
	}

	out := &engine.CalculateVoiceXPOutput{
		MinuteXP: (input.Seconds / 60) * engine.VoiceXPPerMinute,
	}
	if input.Seconds > engine.VoiceLongSessionSecs {
		out.LongSession = (input.Seconds / engine.VoiceLongSessionSecs) * engine.VoiceLongSessionReward
	}

	bonus, err := a.rollBetween(0, engine.VoiceRandomMax)
	if err != nil {
		return nil, err
	}
	out.RandomBonus = int64(bonus)
	out.XP = out.MinuteXP + out.LongSession + out.RandomBonus

	slog.DebugContext(ctx, "calculated voice xp",
		"seconds", input.Seconds,
		"xp", out.XP)

	return out, nil
}

// rollBetween returns a uniform integer in [low, high] using a single die
func (a *Adapter) rollBetween(low, high int) (int, error) {
	roll, err := a.diceRoller.Roll(high - low + 1)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", high-low+1)
	}
	return low + roll - 1, nil
}

// rollMultiplier returns a factor in [MultiplierMin, MultiplierMax]
func (a *Adapter) rollMultiplier() (float64, error) {
	step, err := a.rollBetween(0, multiplierSteps)
	if err != nil {
		return 0, err
	}
	span := engine.MultiplierMax - engine.MultiplierMin
	return engine.MultiplierMin + span*float64(step)/multiplierSteps, nil
}
