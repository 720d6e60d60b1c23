package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
)

// EntityTypeCharacter is the core.Entity type of RPG characters
const EntityTypeCharacter = "character"

// Skill points granted per level gained
const SkillPointsPerLevel = 2

// CharacterSkill is an owned skill with its own level and cooldown
type CharacterSkill struct {
	SkillID    string    `json:"skill_id"`
	Level      int       `json:"level"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// QuestProgress tracks one quest for a character
type QuestProgress struct {
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}

// Character is a user's RPG persona. Class is fixed at creation; Level
// always equals engine.LevelForXP(XP).
type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
	XP    int64  `json:"xp"`

	HP         int `json:"hp"`
	MaxHP      int `json:"max_hp"`
	Mana       int `json:"mana"`
	MaxMana    int `json:"max_mana"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"max_stamina"`

	Attributes Attributes  `json:"attributes"`
	Combat     CombatStats `json:"combat"`

	Gold        int64 `json:"gold"`
	SkillPoints int   `json:"skill_points"`

	Equipment    EquipmentSlots           `json:"equipment"`
	Inventory    []InventoryItem          `json:"inventory"`
	Skills       []CharacterSkill         `json:"skills"`
	Quests       map[string]QuestProgress `json:"quests"`
	Achievements []string                 `json:"achievements"`

	Status          Status    `json:"status"`
	StatusEndsAt    time.Time `json:"status_ends_at"`
	StatusTarget    string    `json:"status_target,omitempty"`
	LastAdventureAt time.Time `json:"last_adventure_at"`
	LastRestAt      time.Time `json:"last_rest_at"`
	LastDailyAt     time.Time `json:"last_daily_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewCharacter builds a level 1 idle character from a class template
func NewCharacter(identity Identity, class *Class, starter []InventoryItem, now time.Time) *Character {
	c := &Character{
		ID:           identity.ID,
		Name:         identity.DisplayName,
		Class:        class.ID,
		Level:        1,
		MaxHP:        class.Base.MaxHP,
		MaxMana:      class.Base.MaxMana,
		MaxStamina:   class.Base.MaxStamina,
		Attributes:   class.Base.Attributes,
		Inventory:    []InventoryItem{},
		Skills:       make([]CharacterSkill, 0, len(class.StartingSkills)),
		Quests:       map[string]QuestProgress{},
		Achievements: []string{},
		Status:       StatusIdle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	c.Combat = DeriveCombatStats(c.Attributes, class.CriticalChance, class.CriticalDamage)
	c.RestoreAll()

	for _, skillID := range class.StartingSkills {
		c.Skills = append(c.Skills, CharacterSkill{SkillID: skillID, Level: 1})
	}
	for _, item := range starter {
		c.AddItem(item.ItemID, item.Quantity)
	}

	return c
}

// GetID returns the character's user ID
func (c *Character) GetID() string {
	return c.ID
}

// SetID sets the user ID of a record stored without one
func (c *Character) SetID(id string) {
	c.ID = id
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// Normalize fills fields missing from records written by older versions
// and re-establishes the derived invariants.
func (c *Character) Normalize() {
	if c.Inventory == nil {
		c.Inventory = []InventoryItem{}
	}
	if c.Skills == nil {
		c.Skills = []CharacterSkill{}
	}
	if c.Quests == nil {
		c.Quests = map[string]QuestProgress{}
	}
	if c.Achievements == nil {
		c.Achievements = []string{}
	}
	if c.Status == "" {
		c.Status = StatusIdle
	}
	if c.XP < 0 {
		c.XP = 0
	}
	c.Level = engine.LevelForXP(c.XP)
	c.Combat = DeriveCombatStats(c.Attributes, c.Combat.CriticalChance, c.Combat.CriticalDamage)
	c.ClampResources()
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Equipment = c.Equipment.clone()
	cp.Inventory = append([]InventoryItem{}, c.Inventory...)
	cp.Skills = append([]CharacterSkill{}, c.Skills...)
	cp.Achievements = append([]string{}, c.Achievements...)
	cp.Quests = make(map[string]QuestProgress, len(c.Quests))
	for k, v := range c.Quests {
		cp.Quests[k] = v
	}
	return &cp
}

// ApplyXP adds amount to xp and re-derives the level. For every level gained
// the character earns skill points and class growth on all nine growable
// values; any level-up fully restores hp, mana and stamina.
func (c *Character) ApplyXP(amount int64, growth StatBlock) (levelsGained int) {
	if amount <= 0 {
		return 0
	}

	c.XP += amount
	newLevel := engine.LevelForXP(c.XP)
	levelsGained = newLevel - c.Level
	c.Level = newLevel
	if levelsGained <= 0 {
		return 0
	}

	c.SkillPoints += SkillPointsPerLevel * levelsGained
	for _, stat := range GrowableStats {
		c.grow(stat, levelsGained*growth.Get(stat))
	}
	c.deriveCombat()
	c.RestoreAll()

	return levelsGained
}

// Train raises one growable stat by 1. Combat stats are re-derived when the
// stat is a core attribute.
func (c *Character) Train(stat Stat) {
	c.grow(stat, 1)
	if stat.IsCore() {
		c.deriveCombat()
	}
	c.ClampResources()
}

// RestoreAll refills hp, mana and stamina to their maximums
func (c *Character) RestoreAll() {
	c.HP = c.MaxHP
	c.Mana = c.MaxMana
	c.Stamina = c.MaxStamina
}

// Restore adds to the resource pools, clamped to their maximums
func (c *Character) Restore(r Restore) {
	c.HP += r.HP
	c.Mana += r.Mana
	c.Stamina += r.Stamina
	c.ClampResources()
}

// ClampResources keeps hp, mana and stamina within [0, max]
func (c *Character) ClampResources() {
	c.HP = clamp(c.HP, 0, c.MaxHP)
	c.Mana = clamp(c.Mana, 0, c.MaxMana)
	c.Stamina = clamp(c.Stamina, 0, c.MaxStamina)
}

// SpendStamina deducts stamina; it reports false and changes nothing when
// the pool is too low.
func (c *Character) SpendStamina(amount int) bool {
	if c.Stamina < amount {
		return false
	}
	c.Stamina -= amount
	return true
}

// StatValue returns the current value of a growable stat
func (c *Character) StatValue(stat Stat) int {
	return c.statBlock().Get(stat)
}

// Skill returns the owned skill with the given id
func (c *Character) Skill(skillID string) (CharacterSkill, bool) {
	for _, s := range c.Skills {
		if s.SkillID == skillID {
			return s, true
		}
	}
	return CharacterSkill{}, false
}

func (c *Character) statBlock() StatBlock {
	return StatBlock{
		MaxHP:      c.MaxHP,
		MaxMana:    c.MaxMana,
		MaxStamina: c.MaxStamina,
		Attributes: c.Attributes,
	}
}

func (c *Character) grow(stat Stat, delta int) {
	switch stat {
	case StatMaxHP:
		c.MaxHP += delta
	case StatMaxMana:
		c.MaxMana += delta
	case StatMaxStamina:
		c.MaxStamina += delta
	case StatStrength:
		c.Attributes.Strength += delta
	case StatDexterity:
		c.Attributes.Dexterity += delta
	case StatIntelligence:
		c.Attributes.Intelligence += delta
	case StatVitality:
		c.Attributes.Vitality += delta
	case StatWisdom:
		c.Attributes.Wisdom += delta
	case StatCharisma:
		c.Attributes.Charisma += delta
	}
}

func (c *Character) deriveCombat() {
	c.Combat = DeriveCombatStats(c.Attributes, c.Combat.CriticalChance, c.Combat.CriticalDamage)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
