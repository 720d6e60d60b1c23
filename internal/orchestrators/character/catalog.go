package character

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/character"
)

// ListClasses returns the playable classes
func (o *Orchestrator) ListClasses(_ context.Context, input *character.ListClassesInput) (*character.ListClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListClassesOutput{Classes: o.catalog.Classes()}, nil
}

// ListDungeons returns the dungeons ordered by minimum level
func (o *Orchestrator) ListDungeons(_ context.Context, input *character.ListDungeonsInput) (*character.ListDungeonsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListDungeonsOutput{Dungeons: o.catalog.Dungeons()}, nil
}

// ListQuests returns the quest definitions
func (o *Orchestrator) ListQuests(_ context.Context, input *character.ListQuestsInput) (*character.ListQuestsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListQuestsOutput{Quests: o.catalog.Quests()}, nil
}

// ListItems returns every item definition
func (o *Orchestrator) ListItems(_ context.Context, input *character.ListItemsInput) (*character.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListItemsOutput{Items: o.catalog.Items()}, nil
}
