package character

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	"github.com/KirkDiggler/rpg-progression/internal/services/character"
)

// StartAdventure sends an idle character into a dungeon for five minutes
func (o *Orchestrator) StartAdventure(ctx context.Context, input *character.StartAdventureInput) (*character.StartAdventureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var dungeon *entities.Dungeon
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		var err error
		dungeon, err = o.catalog.Dungeon(input.DungeonID)
		if err != nil {
			return err
		}
		if c.Level < dungeon.MinLevel {
			return errors.LevelTooLowf("%s requires level %d", dungeon.Name, dungeon.MinLevel)
		}
		return c.BeginActivity(entities.StatusAdventuring, dungeon.ID, now, entities.AdventureDuration)
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "adventure started",
		"character_id", char.ID,
		"dungeon_id", dungeon.ID,
		"ends_at", char.StatusEndsAt)

	return &character.StartAdventureOutput{
		Character: char,
		Dungeon:   dungeon,
		EndsAt:    char.StatusEndsAt,
	}, nil
}

// CompleteAdventure pays out a finished adventure. The reward is computed
// from the level the character had when it returned.
func (o *Orchestrator) CompleteAdventure(ctx context.Context, input *character.CompleteAdventureInput) (*character.CompleteAdventureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		reward   entities.Reward
		previous int
		dungeon  *entities.Dungeon
	)
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		dungeonID, err := c.FinishActivity(entities.StatusAdventuring, now)
		if err != nil {
			return err
		}
		// the dungeon may have left the catalog since the adventure started
		if d, lookupErr := o.catalog.Dungeon(dungeonID); lookupErr == nil {
			dungeon = d
		}

		previous = c.Level
		reward = entities.AdventureReward(c.Level)
		reward.LevelsGained, err = o.applyXP(c, reward.XP)
		if err != nil {
			return err
		}
		c.Gold += reward.Gold
		c.LastAdventureAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "adventure completed",
		"character_id", char.ID,
		"xp", reward.XP,
		"gold", reward.Gold)

	gameevents.Publish(ctx, o.eventBus, gameevents.AdventureCompleted, char, map[string]interface{}{
		gameevents.KeyXP:   reward.XP,
		gameevents.KeyGold: reward.Gold,
	})
	o.publishLevelUp(ctx, char, previous, reward.LevelsGained)

	return &character.CompleteAdventureOutput{
		Character: char,
		Dungeon:   dungeon,
		Reward:    reward,
	}, nil
}

// StartTraining spends stamina to train one stat for three minutes
func (o *Orchestrator) StartTraining(ctx context.Context, input *character.StartTrainingInput) (*character.StartTrainingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateStat(input.Stat); err != nil {
		return nil, err
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		if err := c.BeginActivity(entities.StatusTraining, string(input.Stat), now, entities.TrainingDuration); err != nil {
			return err
		}
		if !c.SpendStamina(entities.TrainingStaminaCost) {
			return errors.InsufficientResourcef("training needs %d stamina, have %d",
				entities.TrainingStaminaCost, c.Stamina)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.StartTrainingOutput{
		Character: char,
		EndsAt:    char.StatusEndsAt,
	}, nil
}

// CompleteTraining raises the trained stat by one
func (o *Orchestrator) CompleteTraining(ctx context.Context, input *character.CompleteTrainingInput) (*character.CompleteTrainingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Stat != "" {
		if err := validateStat(input.Stat); err != nil {
			return nil, err
		}
	}

	var stat entities.Stat
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		target, err := c.FinishActivity(entities.StatusTraining, now)
		if err != nil {
			return err
		}
		stat = entities.Stat(target)
		if input.Stat != "" && input.Stat != stat {
			return errors.InvalidArgumentf("character is training %s, not %s", stat, input.Stat).
				WithMeta(errors.MetaReason, errors.ReasonInvalidStat)
		}
		if err := validateStat(stat); err != nil {
			return err
		}
		c.Train(stat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.CompleteTrainingOutput{
		Character: char,
		Stat:      stat,
		NewValue:  char.StatValue(stat),
	}, nil
}

// StartRest begins a two minute rest. Rests are limited to one per hour.
func (o *Orchestrator) StartRest(ctx context.Context, input *character.StartRestInput) (*character.StartRestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		if !c.IsIdle() {
			return errors.Busyf("character is %s", c.Status)
		}
		if available := c.RestAvailableAt(); now.Before(available) {
			return errors.CooldownActivef("rest available in %s", available.Sub(now).Round(time.Second))
		}
		if err := c.BeginActivity(entities.StatusResting, "", now, entities.RestDuration); err != nil {
			return err
		}
		c.LastRestAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.StartRestOutput{
		Character: char,
		EndsAt:    char.StatusEndsAt,
	}, nil
}

// CompleteRest refills hp, mana and stamina
func (o *Orchestrator) CompleteRest(ctx context.Context, input *character.CompleteRestInput) (*character.CompleteRestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		if _, err := c.FinishActivity(entities.StatusResting, now); err != nil {
			return err
		}
		c.RestoreAll()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.CompleteRestOutput{Character: char}, nil
}

// ClaimDaily pays the daily reward once per calendar date
func (o *Orchestrator) ClaimDaily(ctx context.Context, input *character.ClaimDailyInput) (*character.ClaimDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		reward   entities.Reward
		previous int
	)
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, now time.Time) error {
		local := now.In(o.location)
		if !c.LastDailyAt.IsZero() && clock.SameDay(local, c.LastDailyAt) {
			return errors.AlreadyClaimedTodayf("daily reward already claimed on %s", local.Format(time.DateOnly))
		}

		previous = c.Level
		reward = entities.DailyReward(c.Level, o.catalog.DailyBag())
		var err error
		reward.LevelsGained, err = o.applyXP(c, reward.XP)
		if err != nil {
			return err
		}
		c.Gold += reward.Gold
		c.AddItems(reward.Items)
		c.LastDailyAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "daily reward claimed",
		"character_id", char.ID,
		"xp", reward.XP,
		"gold", reward.Gold)

	gameevents.Publish(ctx, o.eventBus, gameevents.DailyClaimed, char, map[string]interface{}{
		gameevents.KeyXP:   reward.XP,
		gameevents.KeyGold: reward.Gold,
	})
	o.publishLevelUp(ctx, char, previous, reward.LevelsGained)

	return &character.ClaimDailyOutput{
		Character: char,
		Reward:    reward,
	}, nil
}

func validateStat(stat entities.Stat) error {
	if !stat.IsGrowable() {
		return errors.InvalidArgumentf("unknown stat %q", stat).
			WithMeta(errors.MetaReason, errors.ReasonInvalidStat)
	}
	return nil
}
