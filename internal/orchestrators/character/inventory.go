package character

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/character"
)

// EquipItem moves a piece of equipment from the bag into its slot
func (o *Orchestrator) EquipItem(ctx context.Context, input *character.EquipItemInput) (*character.EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(input.ItemID)
	if err != nil {
		return nil, err
	}

	var slot entities.Slot
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, _ time.Time) error {
		var err error
		slot, err = c.Equip(item)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item equipped",
		"character_id", char.ID,
		"item_id", item.ID,
		"slot", slot)

	return &character.EquipItemOutput{
		Character: char,
		Slot:      slot,
	}, nil
}

// UnequipItem returns the item in slot to the bag
func (o *Orchestrator) UnequipItem(ctx context.Context, input *character.UnequipItemInput) (*character.UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var removed *entities.Equipment
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, _ time.Time) error {
		var err error
		removed, err = c.Unequip(input.Slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &character.UnequipItemOutput{
		Character: char,
		Item:      removed,
	}, nil
}

// UseItem consumes one consumable from the bag and applies its restore
func (o *Orchestrator) UseItem(ctx context.Context, input *character.UseItemInput) (*character.UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Kind != entities.ItemKindConsumable {
		return nil, errors.InvalidArgumentf("%s cannot be used", item.ID).
			WithMeta(errors.MetaReason, errors.ReasonInvalidItem)
	}

	var restored entities.Restore
	char, err := o.mutate(ctx, input.CharacterID, func(c *entities.Character, _ time.Time) error {
		if !c.IsIdle() {
			return errors.Busyf("character is %s", c.Status)
		}
		if err := c.RemoveItem(item.ID, 1); err != nil {
			return err
		}

		hp, mana, stamina := c.HP, c.Mana, c.Stamina
		c.Restore(item.Restore)
		restored = entities.Restore{
			HP:      c.HP - hp,
			Mana:    c.Mana - mana,
			Stamina: c.Stamina - stamina,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.UseItemOutput{
		Character: char,
		Restored:  restored,
	}, nil
}
