// Package catalog holds the static game-design tables: classes, skills,
// dungeons, quests and items. Everything handed out is a copy.
package catalog

import (
	"sort"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Catalog is a read-only set of reference definitions
type Catalog struct {
	classes  []*entities.Class
	skills   []*entities.Skill
	dungeons []*entities.Dungeon
	quests   []*entities.Quest
	items    []*entities.Item

	classByID   map[string]*entities.Class
	skillByID   map[string]*entities.Skill
	dungeonByID map[string]*entities.Dungeon
	questByID   map[string]*entities.Quest
	itemByID    map[string]*entities.Item

	starter []entities.InventoryItem
	daily   []entities.InventoryItem
}

// Config holds the tables a Catalog is built from
type Config struct {
	Classes    []*entities.Class
	Skills     []*entities.Skill
	Dungeons   []*entities.Dungeon
	Quests     []*entities.Quest
	Items      []*entities.Item
	StarterBag []entities.InventoryItem
	DailyBag   []entities.InventoryItem
}

// Validate checks that the tables are usable and cross-reference correctly
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(cfg.Classes) == 0 {
		vb.RequiredField("Classes")
	}
	if len(cfg.Dungeons) == 0 {
		vb.RequiredField("Dungeons")
	}

	skills := make(map[string]bool, len(cfg.Skills))
	for _, sk := range cfg.Skills {
		skills[sk.ID] = true
	}
	for _, c := range cfg.Classes {
		for _, id := range c.StartingSkills {
			if !skills[id] {
				vb.Fieldf("Classes", "class %s references unknown skill %s", c.ID, id)
			}
		}
	}

	items := make(map[string]*entities.Item, len(cfg.Items))
	for _, it := range cfg.Items {
		items[it.ID] = it
		if it.Kind == entities.ItemKindEquipment && (it.Equipment == nil || it.Equipment.ID != it.ID) {
			vb.Fieldf("Items", "equipment item %s must carry a matching equipment definition", it.ID)
		}
	}
	for _, bag := range [][]entities.InventoryItem{cfg.StarterBag, cfg.DailyBag} {
		for _, inv := range bag {
			if items[inv.ItemID] == nil {
				vb.Fieldf("Items", "bag references unknown item %s", inv.ItemID)
			}
		}
	}

	return vb.Build()
}

// New creates a catalog from cfg
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog config")
	}

	c := &Catalog{
		classes:     cfg.Classes,
		skills:      cfg.Skills,
		dungeons:    append([]*entities.Dungeon{}, cfg.Dungeons...),
		quests:      cfg.Quests,
		items:       cfg.Items,
		classByID:   make(map[string]*entities.Class, len(cfg.Classes)),
		skillByID:   make(map[string]*entities.Skill, len(cfg.Skills)),
		dungeonByID: make(map[string]*entities.Dungeon, len(cfg.Dungeons)),
		questByID:   make(map[string]*entities.Quest, len(cfg.Quests)),
		itemByID:    make(map[string]*entities.Item, len(cfg.Items)),
		starter:     cfg.StarterBag,
		daily:       cfg.DailyBag,
	}
	sort.SliceStable(c.dungeons, func(i, j int) bool {
		return c.dungeons[i].MinLevel < c.dungeons[j].MinLevel
	})

	for _, v := range c.classes {
		c.classByID[v.ID] = v
	}
	for _, v := range c.skills {
		c.skillByID[v.ID] = v
	}
	for _, v := range c.dungeons {
		c.dungeonByID[v.ID] = v
	}
	for _, v := range c.quests {
		c.questByID[v.ID] = v
	}
	for _, v := range c.items {
		c.itemByID[v.ID] = v
	}

	return c, nil
}

// Class looks up a class. Unknown ids are InvalidArgument with reason
// invalid_class.
func (c *Catalog) Class(id string) (*entities.Class, error) {
	v, ok := c.classByID[id]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown class %q", id).
			WithMeta(errors.MetaReason, errors.ReasonInvalidClass)
	}
	return cloneClass(v), nil
}

// Dungeon looks up a dungeon. Unknown ids are InvalidArgument with reason
// dungeon_not_found.
func (c *Catalog) Dungeon(id string) (*entities.Dungeon, error) {
	v, ok := c.dungeonByID[id]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown dungeon %q", id).
			WithMeta(errors.MetaReason, errors.ReasonDungeonNotFound)
	}
	d := *v
	return &d, nil
}

// Item looks up an item definition
func (c *Catalog) Item(id string) (*entities.Item, error) {
	v, ok := c.itemByID[id]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown item %q", id).
			WithMeta(errors.MetaReason, errors.ReasonInvalidItem)
	}
	return cloneItem(v), nil
}

// Skill looks up a skill definition
func (c *Catalog) Skill(id string) (*entities.Skill, error) {
	v, ok := c.skillByID[id]
	if !ok {
		return nil, errors.NotFoundf("skill %q not found", id)
	}
	sk := *v
	return &sk, nil
}

// Quest looks up a quest definition
func (c *Catalog) Quest(id string) (*entities.Quest, error) {
	v, ok := c.questByID[id]
	if !ok {
		return nil, errors.NotFoundf("quest %q not found", id)
	}
	return cloneQuest(v), nil
}

// Classes returns every class in definition order
func (c *Catalog) Classes() []*entities.Class {
	out := make([]*entities.Class, 0, len(c.classes))
	for _, v := range c.classes {
		out = append(out, cloneClass(v))
	}
	return out
}

// Skills returns every skill in definition order
func (c *Catalog) Skills() []*entities.Skill {
	out := make([]*entities.Skill, 0, len(c.skills))
	for _, v := range c.skills {
		sk := *v
		out = append(out, &sk)
	}
	return out
}

// Dungeons returns every dungeon ordered by minimum level
func (c *Catalog) Dungeons() []*entities.Dungeon {
	out := make([]*entities.Dungeon, 0, len(c.dungeons))
	for _, v := range c.dungeons {
		d := *v
		out = append(out, &d)
	}
	return out
}

// Quests returns every quest in definition order
func (c *Catalog) Quests() []*entities.Quest {
	out := make([]*entities.Quest, 0, len(c.quests))
	for _, v := range c.quests {
		out = append(out, cloneQuest(v))
	}
	return out
}

// Items returns every item in definition order
func (c *Catalog) Items() []*entities.Item {
	out := make([]*entities.Item, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, cloneItem(v))
	}
	return out
}

// StarterBag is the inventory a new character starts with
func (c *Catalog) StarterBag() []entities.InventoryItem {
	return append([]entities.InventoryItem{}, c.starter...)
}

// DailyBag is the item part of the daily reward
func (c *Catalog) DailyBag() []entities.InventoryItem {
	return append([]entities.InventoryItem{}, c.daily...)
}

func cloneClass(v *entities.Class) *entities.Class {
	cp := *v
	cp.StartingSkills = append([]string{}, v.StartingSkills...)
	return &cp
}

func cloneQuest(v *entities.Quest) *entities.Quest {
	cp := *v
	cp.RewardItems = append([]entities.InventoryItem(nil), v.RewardItems...)
	return &cp
}

func cloneItem(v *entities.Item) *entities.Item {
	cp := *v
	if v.Equipment != nil {
		eq := *v.Equipment
		if v.Equipment.Bonuses != nil {
			eq.Bonuses = make(map[string]int, len(v.Equipment.Bonuses))
			for k, b := range v.Equipment.Bonuses {
				eq.Bonuses[k] = b
			}
		}
		cp.Equipment = &eq
	}
	return &cp
}
