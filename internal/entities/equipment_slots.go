package entities

import (
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Slot names an equipment slot on a character
type Slot string

// Equipment slots
const (
	SlotWeapon     Slot = "weapon"
	SlotArmor      Slot = "armor"
	SlotHelmet     Slot = "helmet"
	SlotGloves     Slot = "gloves"
	SlotBoots      Slot = "boots"
	SlotAccessory1 Slot = "accessory1"
	SlotAccessory2 Slot = "accessory2"
)

// AllSlots lists every slot in display order
var AllSlots = []Slot{
	SlotWeapon, SlotArmor, SlotHelmet, SlotGloves, SlotBoots, SlotAccessory1, SlotAccessory2,
}

// EquipmentSlots holds what a character is wearing. A nil slot is empty.
type EquipmentSlots struct {
	Weapon     *Equipment `json:"weapon"`
	Armor      *Equipment `json:"armor"`
	Helmet     *Equipment `json:"helmet"`
	Gloves     *Equipment `json:"gloves"`
	Boots      *Equipment `json:"boots"`
	Accessory1 *Equipment `json:"accessory1"`
	Accessory2 *Equipment `json:"accessory2"`
}

// Get returns the equipment in slot, nil when empty or unknown
func (e *EquipmentSlots) Get(slot Slot) *Equipment {
	if p := e.ref(slot); p != nil {
		return *p
	}
	return nil
}

func (e *EquipmentSlots) ref(slot Slot) **Equipment {
	switch slot {
	case SlotWeapon:
		return &e.Weapon
	case SlotArmor:
		return &e.Armor
	case SlotHelmet:
		return &e.Helmet
	case SlotGloves:
		return &e.Gloves
	case SlotBoots:
		return &e.Boots
	case SlotAccessory1:
		return &e.Accessory1
	case SlotAccessory2:
		return &e.Accessory2
	}
	return nil
}

// slotFor picks the slot a piece goes into. Accessories fill accessory1
// first, then accessory2, then replace accessory1.
func (e *EquipmentSlots) slotFor(t SlotType) (Slot, bool) {
	switch t {
	case SlotTypeWeapon:
		return SlotWeapon, true
	case SlotTypeArmor:
		return SlotArmor, true
	case SlotTypeHelmet:
		return SlotHelmet, true
	case SlotTypeGloves:
		return SlotGloves, true
	case SlotTypeBoots:
		return SlotBoots, true
	case SlotTypeAccessory:
		if e.Accessory1 != nil && e.Accessory2 == nil {
			return SlotAccessory2, true
		}
		return SlotAccessory1, true
	}
	return "", false
}

func (e EquipmentSlots) clone() EquipmentSlots {
	cp := EquipmentSlots{}
	for _, slot := range AllSlots {
		if eq := e.Get(slot); eq != nil {
			c := *eq
			if eq.Bonuses != nil {
				c.Bonuses = make(map[string]int, len(eq.Bonuses))
				for k, v := range eq.Bonuses {
					c.Bonuses[k] = v
				}
			}
			*cp.ref(slot) = &c
		}
	}
	return cp
}

// Equip moves item from the bag into its slot. Whatever was in the slot goes
// back into the bag. Combat stats are not touched.
func (c *Character) Equip(item *Item) (Slot, error) {
	if item == nil || item.Kind != ItemKindEquipment || item.Equipment == nil {
		return "", errors.InvalidArgument("item is not equipment").
			WithMeta(errors.MetaReason, errors.ReasonInvalidItem)
	}
	if c.Level < item.Equipment.MinLevel {
		return "", errors.LevelTooLowf("%s requires level %d", item.ID, item.Equipment.MinLevel)
	}
	slot, ok := c.Equipment.slotFor(item.Equipment.SlotType)
	if !ok {
		return "", errors.InvalidArgumentf("unknown slot type %s", item.Equipment.SlotType)
	}
	if err := c.RemoveItem(item.ID, 1); err != nil {
		return "", err
	}

	ref := c.Equipment.ref(slot)
	if prev := *ref; prev != nil {
		c.AddItem(prev.ID, 1)
	}
	eq := *item.Equipment
	*ref = &eq

	return slot, nil
}

// Unequip empties slot and returns its item to the bag
func (c *Character) Unequip(slot Slot) (*Equipment, error) {
	ref := c.Equipment.ref(slot)
	if ref == nil {
		return nil, errors.InvalidArgumentf("unknown slot %s", slot)
	}
	prev := *ref
	if prev == nil {
		return nil, errors.InvalidArgumentf("slot %s is empty", slot)
	}
	*ref = nil
	c.AddItem(prev.ID, 1)
	return prev, nil
}
