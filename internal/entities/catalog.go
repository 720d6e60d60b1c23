package entities

import "time"

// Class is a playable class template
type Class struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Base           StatBlock `json:"base"`
	Growth         StatBlock `json:"growth"`
	CriticalChance float64   `json:"critical_chance"`
	CriticalDamage float64   `json:"critical_damage"`
	StartingSkills []string  `json:"starting_skills"`
}

// SkillType classifies a skill
type SkillType string

// Skill types
const (
	SkillTypeAttack  SkillType = "attack"
	SkillTypeMagic   SkillType = "magic"
	SkillTypeSupport SkillType = "support"
	SkillTypePassive SkillType = "passive"
)

// Skill is a skill definition
type Skill struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        SkillType     `json:"type"`
	ManaCost    int           `json:"mana_cost"`
	StaminaCost int           `json:"stamina_cost"`
	Power       float64       `json:"power"`
	Cooldown    time.Duration `json:"cooldown"`
	MaxLevel    int           `json:"max_level"`
}

// Dungeon is an adventure destination
type Dungeon struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinLevel    int    `json:"min_level"`
}

// QuestType classifies a quest objective
type QuestType string

// Quest types
const (
	QuestTypeAdventure QuestType = "adventure"
	QuestTypeTraining  QuestType = "training"
	QuestTypeLevel     QuestType = "level"
	QuestTypeGold      QuestType = "gold"
)

// Quest is a quest definition. Quests are listed but no operation in this
// engine advances them.
type Quest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        QuestType       `json:"type"`
	Target      int             `json:"target"`
	MinLevel    int             `json:"min_level"`
	RewardXP    int64           `json:"reward_xp"`
	RewardGold  int64           `json:"reward_gold"`
	RewardItems []InventoryItem `json:"reward_items,omitempty"`
}

// ItemKind distinguishes consumables from equipment
type ItemKind string

// Item kinds
const (
	ItemKindConsumable ItemKind = "consumable"
	ItemKindEquipment  ItemKind = "equipment"
)

// Restore is the effect of using a consumable
type Restore struct {
	HP      int `json:"hp,omitempty"`
	Mana    int `json:"mana,omitempty"`
	Stamina int `json:"stamina,omitempty"`
}

// Item is a bag item definition. Equipment items carry an Equipment payload.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Kind        ItemKind   `json:"kind"`
	Value       int64      `json:"value"`
	Restore     Restore    `json:"restore,omitempty"`
	Equipment   *Equipment `json:"equipment,omitempty"`
}

// SlotType is the kind of slot a piece of equipment fits
type SlotType string

// Slot types
const (
	SlotTypeWeapon    SlotType = "weapon"
	SlotTypeArmor     SlotType = "armor"
	SlotTypeHelmet    SlotType = "helmet"
	SlotTypeGloves    SlotType = "gloves"
	SlotTypeBoots     SlotType = "boots"
	SlotTypeAccessory SlotType = "accessory"
)

// Equipment is an equippable definition. Bonuses are recorded but combat
// stats are derived from attributes only.
type Equipment struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	SlotType SlotType       `json:"slot_type"`
	Rarity   string         `json:"rarity"`
	MinLevel int            `json:"min_level"`
	Bonuses  map[string]int `json:"bonuses,omitempty"`
}

// LevelTitle names a level milestone
type LevelTitle struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Color string `json:"color"`
}
