// Package character implements the RPG character orchestrator
package character

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/keylock"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       *catalog.Catalog

	// Optional
	Clock    clock.Clock
	EventBus events.EventBus
	Locker   *keylock.Locker
	// Location decides calendar dates for the daily claim; defaults to UTC
	Location *time.Location
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	catalog       *catalog.Catalog
	clock         clock.Clock
	eventBus      events.EventBus
	locker        *keylock.Locker
	location      *time.Location
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		catalog:       cfg.Catalog,
		clock:         cfg.Clock,
		eventBus:      cfg.EventBus,
		locker:        cfg.Locker,
		location:      cfg.Location,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.locker == nil {
		o.locker = keylock.New()
	}
	if o.location == nil {
		o.location = time.UTC
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter creates a level 1 character of the given class
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Identity.Validate(); err != nil {
		return nil, err
	}

	var created *entities.Character
	err := o.locker.Do(input.Identity.ID, func() error {
		_, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.Identity.ID})
		switch {
		case err == nil:
			return errors.AlreadyExistsf("character for user %s already exists", input.Identity.ID)
		case !errors.IsNotFound(err):
			return errors.Wrapf(err, "failed to get character")
		}

		class, err := o.catalog.Class(input.ClassID)
		if err != nil {
			return err
		}

		char := entities.NewCharacter(input.Identity, class, o.catalog.StarterBag(), o.now())
		if char.Name == "" {
			char.Name = input.Identity.ID
		}

		out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
		if err != nil {
			return errors.Wrapf(err, "failed to create character")
		}
		created = out.Character
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"character_id", created.ID,
		"class", created.Class)

	return &character.CreateCharacterOutput{Character: created}, nil
}

// GetCharacter retrieves a character by user ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := entities.ValidateUserID(input.CharacterID); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &character.GetCharacterOutput{Character: out.Character}, nil
}

// AddXP grants experience, applying class growth for every level gained
func (o *Orchestrator) AddXP(ctx context.Context, input *character.AddXPInput) (*character.AddXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	var previous, gained int
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, _ time.Time) error {
		var err error
		previous = c.Level
		gained, err = o.applyXP(c, input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	o.publishLevelUp(ctx, char, previous, gained)

	return &character.AddXPOutput{
		Character:     char,
		PreviousLevel: previous,
		LevelsGained:  gained,
	}, nil
}

// GetTopCharacters returns the character leaderboard
func (o *Orchestrator) GetTopCharacters(ctx context.Context, input *character.GetTopCharactersInput) (*character.GetTopCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.ListTop(ctx, characterrepo.ListTopInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list top characters")
	}

	return &character.GetTopCharactersOutput{Characters: out.Characters}, nil
}

func (o *Orchestrator) now() time.Time {
	return o.clock.Now().UTC()
}

// mutate runs fn against a fresh copy of the character while holding the
// per-user lock and persists the result. Nothing is saved when fn fails.
func (o *Orchestrator) mutate(ctx context.Context, id string, fn func(c *entities.Character, now time.Time) error) (*entities.Character, error) {
	if err := entities.ValidateUserID(id); err != nil {
		return nil, err
	}

	var saved *entities.Character
	err := o.locker.Do(id, func() error {
		got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
		if err != nil {
			return errors.Wrapf(err, "failed to get character")
		}

		if err := fn(got.Character, o.now()); err != nil {
			return err
		}

		out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: got.Character})
		if err != nil {
			slog.ErrorContext(ctx, "failed to save character",
				"character_id", id,
				"error", err.Error())
			return errors.Wrapf(err, "failed to update character")
		}
		saved = out.Character
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (o *Orchestrator) applyXP(c *entities.Character, amount int64) (int, error) {
	class, err := o.catalog.Class(c.Class)
	if err != nil {
		return 0, errors.Wrapf(err, "character %s has an unknown class", c.ID)
	}
	return c.ApplyXP(amount, class.Growth), nil
}

func (o *Orchestrator) publishLevelUp(ctx context.Context, c *entities.Character, previous, gained int) {
	if gained <= 0 {
		return
	}

	slog.InfoContext(ctx, "character leveled up",
		"character_id", c.ID,
		"old_level", previous,
		"new_level", c.Level)

	gameevents.Publish(ctx, o.eventBus, gameevents.LevelUp, c, map[string]interface{}{
		gameevents.KeyOldLevel: previous,
		gameevents.KeyNewLevel: c.Level,
		gameevents.KeyXP:       c.XP,
	})
}
