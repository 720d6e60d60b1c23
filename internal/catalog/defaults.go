package catalog

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Item ids referenced by the reward bags
const (
	ItemHealthPotion  = "health_potion"
	ItemManaPotion    = "mana_potion"
	ItemStaminaPotion = "stamina_potion"
	ItemElixir        = "elixir"
)

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConfig returns the built-in tables
func DefaultConfig() *Config {
	return &Config{
		Classes:  defaultClasses(),
		Skills:   defaultSkills(),
		Dungeons: defaultDungeons(),
		Quests:   defaultQuests(),
		Items:    defaultItems(),
		StarterBag: []entities.InventoryItem{
			{ItemID: ItemHealthPotion, Quantity: 3},
			{ItemID: ItemManaPotion, Quantity: 2},
			{ItemID: ItemStaminaPotion, Quantity: 2},
		},
		DailyBag: []entities.InventoryItem{
			{ItemID: ItemHealthPotion, Quantity: 2},
			{ItemID: ItemManaPotion, Quantity: 1},
			{ItemID: ItemStaminaPotion, Quantity: 1},
		},
	}
}

func block(hp, mana, stamina, str, dex, intl, vit, wis, cha int) entities.StatBlock {
	return entities.StatBlock{
		MaxHP:      hp,
		MaxMana:    mana,
		MaxStamina: stamina,
		Attributes: entities.Attributes{
			Strength:     str,
			Dexterity:    dex,
			Intelligence: intl,
			Vitality:     vit,
			Wisdom:       wis,
			Charisma:     cha,
		},
	}
}

func defaultClasses() []*entities.Class {
	return []*entities.Class{
		{
			ID:             "warrior",
			Name:           "Warrior",
			Description:    "A sturdy front-liner who trades finesse for raw strength.",
			Base:           block(120, 30, 100, 15, 10, 5, 14, 6, 8),
			Growth:         block(15, 3, 10, 3, 1, 1, 2, 1, 1),
			CriticalChance: 0.05,
			CriticalDamage: 1.5,
			StartingSkills: []string{"power_strike", "battle_cry"},
		},
		{
			ID:             "mage",
			Name:           "Mage",
			Description:    "A scholar of the arcane with a deep mana pool.",
			Base:           block(70, 120, 60, 5, 8, 16, 7, 13, 9),
			Growth:         block(7, 15, 5, 1, 1, 3, 1, 2, 1),
			CriticalChance: 0.08,
			CriticalDamage: 1.75,
			StartingSkills: []string{"fireball", "arcane_shield"},
		},
		{
			ID:             "rogue",
			Name:           "Rogue",
			Description:    "A quick striker who relies on precision and critical hits.",
			Base:           block(90, 50, 110, 10, 16, 8, 9, 7, 10),
			Growth:         block(10, 5, 12, 2, 3, 1, 1, 1, 1),
			CriticalChance: 0.15,
			CriticalDamage: 2.0,
			StartingSkills: []string{"backstab", "evade"},
		},
		{
			ID:             "cleric",
			Name:           "Cleric",
			Description:    "A devoted healer whose wisdom shields allies.",
			Base:           block(100, 90, 70, 8, 7, 10, 11, 16, 12),
			Growth:         block(11, 10, 7, 1, 1, 1, 2, 3, 2),
			CriticalChance: 0.05,
			CriticalDamage: 1.5,
			StartingSkills: []string{"heal", "smite"},
		},
		{
			ID:             "ranger",
			Name:           "Ranger",
			Description:    "A wilderness hunter balancing bow and blade.",
			Base:           block(95, 60, 100, 11, 15, 9, 10, 10, 8),
			Growth:         block(10, 6, 10, 2, 3, 1, 1, 1, 1),
			CriticalChance: 0.1,
			CriticalDamage: 1.75,
			StartingSkills: []string{"aimed_shot", "trap"},
		},
	}
}

func defaultSkills() []*entities.Skill {
	return []*entities.Skill{
		{ID: "power_strike", Name: "Power Strike", Description: "A heavy two-handed blow.", Type: entities.SkillTypeAttack, StaminaCost: 15, Power: 1.5, Cooldown: 30 * time.Second, MaxLevel: 10},
		{ID: "battle_cry", Name: "Battle Cry", Description: "Rally yourself, raising attack briefly.", Type: entities.SkillTypeSupport, StaminaCost: 10, Power: 1.2, Cooldown: 2 * time.Minute, MaxLevel: 5},
		{ID: "fireball", Name: "Fireball", Description: "Hurl a ball of flame.", Type: entities.SkillTypeMagic, ManaCost: 20, Power: 1.8, Cooldown: 20 * time.Second, MaxLevel: 10},
		{ID: "arcane_shield", Name: "Arcane Shield", Description: "Absorb incoming damage with mana.", Type: entities.SkillTypeSupport, ManaCost: 25, Power: 1.0, Cooldown: time.Minute, MaxLevel: 5},
		{ID: "backstab", Name: "Backstab", Description: "Strike from the shadows.", Type: entities.SkillTypeAttack, StaminaCost: 12, Power: 2.0, Cooldown: 45 * time.Second, MaxLevel: 10},
		{ID: "evade", Name: "Evade", Description: "Sidestep the next attack.", Type: entities.SkillTypePassive, MaxLevel: 5},
		{ID: "heal", Name: "Heal", Description: "Restore health with divine light.", Type: entities.SkillTypeSupport, ManaCost: 20, Power: 1.5, Cooldown: 30 * time.Second, MaxLevel: 10},
		{ID: "smite", Name: "Smite", Description: "Call down holy judgement.", Type: entities.SkillTypeMagic, ManaCost: 15, Power: 1.4, Cooldown: 30 * time.Second, MaxLevel: 10},
		{ID: "aimed_shot", Name: "Aimed Shot", Description: "A careful, piercing arrow.", Type: entities.SkillTypeAttack, StaminaCost: 10, Power: 1.6, Cooldown: 25 * time.Second, MaxLevel: 10},
		{ID: "trap", Name: "Trap", Description: "Set a snare that slows enemies.", Type: entities.SkillTypeSupport, StaminaCost: 15, Power: 1.0, Cooldown: time.Minute, MaxLevel: 5},
	}
}

func defaultDungeons() []*entities.Dungeon {
	return []*entities.Dungeon{
		{ID: "goblin_cave", Name: "Goblin Cave", Description: "A damp cave full of petty thieves.", MinLevel: 1},
		{ID: "dark_forest", Name: "Dark Forest", Description: "Wolves and worse lurk between the trees.", MinLevel: 5},
		{ID: "ancient_ruins", Name: "Ancient Ruins", Description: "Crumbling halls guarded by old magic.", MinLevel: 10},
		{ID: "frozen_peaks", Name: "Frozen Peaks", Description: "Icy cliffs where only the hardy survive.", MinLevel: 15},
		{ID: "dragon_lair", Name: "Dragon's Lair", Description: "The hoard of an ancient wyrm.", MinLevel: 25},
	}
}

func defaultQuests() []*entities.Quest {
	return []*entities.Quest{
		{ID: "first_steps", Name: "First Steps", Description: "Complete your first adventure.", Type: entities.QuestTypeAdventure, Target: 1, MinLevel: 1, RewardXP: 100, RewardGold: 50},
		{ID: "dedicated_student", Name: "Dedicated Student", Description: "Finish five training sessions.", Type: entities.QuestTypeTraining, Target: 5, MinLevel: 1, RewardXP: 250, RewardGold: 100},
		{ID: "seasoned_hero", Name: "Seasoned Hero", Description: "Reach level 10.", Type: entities.QuestTypeLevel, Target: 10, MinLevel: 5, RewardXP: 1000, RewardGold: 500, RewardItems: []entities.InventoryItem{{ItemID: ItemElixir, Quantity: 1}}},
		{ID: "treasure_hunter", Name: "Treasure Hunter", Description: "Amass 5000 gold.", Type: entities.QuestTypeGold, Target: 5000, MinLevel: 5, RewardXP: 750, RewardGold: 0},
	}
}

func equipment(id, name string, slot entities.SlotType, rarity string, minLevel int, value int64, bonuses map[string]int) *entities.Item {
	return &entities.Item{
		ID:    id,
		Name:  name,
		Kind:  entities.ItemKindEquipment,
		Value: value,
		Equipment: &entities.Equipment{
			ID:       id,
			Name:     name,
			SlotType: slot,
			Rarity:   rarity,
			MinLevel: minLevel,
			Bonuses:  bonuses,
		},
	}
}

func defaultItems() []*entities.Item {
	return []*entities.Item{
		{ID: ItemHealthPotion, Name: "Health Potion", Description: "Restores 50 HP.", Kind: entities.ItemKindConsumable, Value: 25, Restore: entities.Restore{HP: 50}},
		{ID: ItemManaPotion, Name: "Mana Potion", Description: "Restores 40 mana.", Kind: entities.ItemKindConsumable, Value: 25, Restore: entities.Restore{Mana: 40}},
		{ID: ItemStaminaPotion, Name: "Stamina Potion", Description: "Restores 40 stamina.", Kind: entities.ItemKindConsumable, Value: 25, Restore: entities.Restore{Stamina: 40}},
		{ID: ItemElixir, Name: "Elixir", Description: "Restores 100 of everything.", Kind: entities.ItemKindConsumable, Value: 150, Restore: entities.Restore{HP: 100, Mana: 100, Stamina: 100}},
		equipment("iron_sword", "Iron Sword", entities.SlotTypeWeapon, "common", 1, 100, map[string]int{"strength": 3}),
		equipment("leather_armor", "Leather Armor", entities.SlotTypeArmor, "common", 1, 80, map[string]int{"vitality": 2}),
		equipment("iron_helmet", "Iron Helmet", entities.SlotTypeHelmet, "common", 3, 60, map[string]int{"vitality": 1}),
		equipment("swift_gloves", "Swift Gloves", entities.SlotTypeGloves, "uncommon", 5, 120, map[string]int{"dexterity": 2}),
		equipment("traveler_boots", "Traveler Boots", entities.SlotTypeBoots, "common", 1, 50, map[string]int{"max_stamina": 10}),
		equipment("sage_ring", "Sage Ring", entities.SlotTypeAccessory, "rare", 10, 400, map[string]int{"wisdom": 3, "intelligence": 2}),
	}
}
