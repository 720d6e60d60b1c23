// Package character defines the interface for RPG character operations
package character

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Service defines the interface for character operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	AddXP(ctx context.Context, input *AddXPInput) (*AddXPOutput, error)
	GetTopCharacters(ctx context.Context, input *GetTopCharactersInput) (*GetTopCharactersOutput, error)

	// Timed activities
	StartAdventure(ctx context.Context, input *StartAdventureInput) (*StartAdventureOutput, error)
	CompleteAdventure(ctx context.Context, input *CompleteAdventureInput) (*CompleteAdventureOutput, error)
	StartTraining(ctx context.Context, input *StartTrainingInput) (*StartTrainingOutput, error)
	CompleteTraining(ctx context.Context, input *CompleteTrainingInput) (*CompleteTrainingOutput, error)
	StartRest(ctx context.Context, input *StartRestInput) (*StartRestOutput, error)
	CompleteRest(ctx context.Context, input *CompleteRestInput) (*CompleteRestOutput, error)
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)

	// Inventory
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// Catalog
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListDungeons(ctx context.Context, input *ListDungeonsInput) (*ListDungeonsOutput, error)
	ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}

// Character lifecycle types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Identity entities.Identity
	ClassID  string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// AddXPInput defines the request for granting experience
type AddXPInput struct {
	CharacterID string
	Amount      int64
}

// AddXPOutput defines the response for granting experience
type AddXPOutput struct {
	Character     *entities.Character
	PreviousLevel int
	LevelsGained  int
}

// GetTopCharactersInput defines the request for the character leaderboard
type GetTopCharactersInput struct {
	// Limit defaults to 10 when <= 0
	Limit int
}

// GetTopCharactersOutput defines the response for the character leaderboard
type GetTopCharactersOutput struct {
	Characters []*entities.Character
}

// Timed activity types

// StartAdventureInput defines the request for starting an adventure
type StartAdventureInput struct {
	CharacterID string
	DungeonID   string
}

// StartAdventureOutput defines the response for starting an adventure
type StartAdventureOutput struct {
	Character *entities.Character
	Dungeon   *entities.Dungeon
	EndsAt    time.Time
}

// CompleteAdventureInput defines the request for finishing an adventure
type CompleteAdventureInput struct {
	CharacterID string
}

// CompleteAdventureOutput defines the response for finishing an adventure
type CompleteAdventureOutput struct {
	Character *entities.Character
	Dungeon   *entities.Dungeon
	Reward    entities.Reward
}

// StartTrainingInput defines the request for starting training
type StartTrainingInput struct {
	CharacterID string
	Stat        entities.Stat
}

// StartTrainingOutput defines the response for starting training
type StartTrainingOutput struct {
	Character *entities.Character
	EndsAt    time.Time
}

// CompleteTrainingInput defines the request for finishing training
type CompleteTrainingInput struct {
	CharacterID string
	// Stat is optional; when set it must match the stat being trained
	Stat entities.Stat
}

// CompleteTrainingOutput defines the response for finishing training
type CompleteTrainingOutput struct {
	Character *entities.Character
	Stat      entities.Stat
	NewValue  int
}

// StartRestInput defines the request for starting a rest
type StartRestInput struct {
	CharacterID string
}

// StartRestOutput defines the response for starting a rest
type StartRestOutput struct {
	Character *entities.Character
	EndsAt    time.Time
}

// CompleteRestInput defines the request for finishing a rest
type CompleteRestInput struct {
	CharacterID string
}

// CompleteRestOutput defines the response for finishing a rest
type CompleteRestOutput struct {
	Character *entities.Character
}

// ClaimDailyInput defines the request for the daily reward
type ClaimDailyInput struct {
	CharacterID string
}

// ClaimDailyOutput defines the response for the daily reward
type ClaimDailyOutput struct {
	Character *entities.Character
	Reward    entities.Reward
}

// Inventory types

// EquipItemInput defines the request for equipping an item from the bag
type EquipItemInput struct {
	CharacterID string
	ItemID      string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Character *entities.Character
	Slot      entities.Slot
}

// UnequipItemInput defines the request for emptying an equipment slot
type UnequipItemInput struct {
	CharacterID string
	Slot        entities.Slot
}

// UnequipItemOutput defines the response for emptying an equipment slot
type UnequipItemOutput struct {
	Character *entities.Character
	Item      *entities.Equipment
}

// UseItemInput defines the request for using a consumable
type UseItemInput struct {
	CharacterID string
	ItemID      string
}

// UseItemOutput defines the response for using a consumable
type UseItemOutput struct {
	Character *entities.Character
	Restored  entities.Restore
}

// Catalog types

// ListClassesInput defines the request for listing classes
type ListClassesInput struct{}

// ListClassesOutput defines the response for listing classes
type ListClassesOutput struct {
	Classes []*entities.Class
}

// ListDungeonsInput defines the request for listing dungeons
type ListDungeonsInput struct{}

// ListDungeonsOutput defines the response for listing dungeons
type ListDungeonsOutput struct {
	Dungeons []*entities.Dungeon
}

// ListQuestsInput defines the request for listing quests
type ListQuestsInput struct{}

// ListQuestsOutput defines the response for listing quests
type ListQuestsOutput struct {
	Quests []*entities.Quest
}

// ListItemsInput defines the request for listing item definitions
type ListItemsInput struct{}

// ListItemsOutput defines the response for listing item definitions
type ListItemsOutput struct {
	Items []*entities.Item
}
