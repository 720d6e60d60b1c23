package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = catalog.Default()
}

func (s *CatalogTestSuite) TestClasses() {
	classes := s.catalog.Classes()

	ids := make([]string, 0, len(classes))
	for _, c := range classes {
		ids = append(ids, c.ID)
		s.Len(c.StartingSkills, 2, c.ID)
		for _, skillID := range c.StartingSkills {
			_, err := s.catalog.Skill(skillID)
			s.NoError(err, skillID)
		}
		for _, stat := range entities.GrowableStats {
			s.Positive(c.Base.Get(stat), "%s base %s", c.ID, stat)
			s.Positive(c.Growth.Get(stat), "%s growth %s", c.ID, stat)
		}
	}
	s.Equal([]string{"warrior", "mage", "rogue", "cleric", "ranger"}, ids)
}

func (s *CatalogTestSuite) TestUnknownClass() {
	_, err := s.catalog.Class("bard")

	s.True(errors.IsInvalidArgument(err))
	s.Equal(errors.ReasonInvalidClass, errors.GetReason(err))
}

func (s *CatalogTestSuite) TestDungeonsOrderedByLevel() {
	dungeons := s.catalog.Dungeons()

	s.Require().Len(dungeons, 5)
	s.Equal("goblin_cave", dungeons[0].ID)
	s.Equal(1, dungeons[0].MinLevel)
	s.Equal("dragon_lair", dungeons[4].ID)
	s.Equal(25, dungeons[4].MinLevel)
}

func (s *CatalogTestSuite) TestUnknownDungeon() {
	_, err := s.catalog.Dungeon("moon_base")

	s.True(errors.IsInvalidArgument(err))
	s.Equal(errors.ReasonDungeonNotFound, errors.GetReason(err))
}

func (s *CatalogTestSuite) TestLookupsReturnCopies() {
	class, err := s.catalog.Class("mage")
	s.Require().NoError(err)
	class.StartingSkills[0] = "meteor"
	class.Base.MaxHP = 1

	again, err := s.catalog.Class("mage")
	s.Require().NoError(err)
	s.Equal("fireball", again.StartingSkills[0])
	s.Equal(70, again.Base.MaxHP)

	item, err := s.catalog.Item("iron_sword")
	s.Require().NoError(err)
	item.Equipment.Bonuses["strength"] = 99

	again2, err := s.catalog.Item("iron_sword")
	s.Require().NoError(err)
	s.Equal(3, again2.Equipment.Bonuses["strength"])
}

func (s *CatalogTestSuite) TestEverySlotTypeHasEquipment() {
	seen := map[entities.SlotType]bool{}
	for _, it := range s.catalog.Items() {
		if it.Kind == entities.ItemKindEquipment {
			s.Equal(it.ID, it.Equipment.ID)
			seen[it.Equipment.SlotType] = true
		}
	}
	s.Len(seen, 6)
}

func (s *CatalogTestSuite) TestBags() {
	s.Equal([]entities.InventoryItem{
		{ItemID: catalog.ItemHealthPotion, Quantity: 3},
		{ItemID: catalog.ItemManaPotion, Quantity: 2},
		{ItemID: catalog.ItemStaminaPotion, Quantity: 2},
	}, s.catalog.StarterBag())

	daily := s.catalog.DailyBag()
	daily[0].Quantity = 50
	s.Equal(2, s.catalog.DailyBag()[0].Quantity)
}

func (s *CatalogTestSuite) TestQuests() {
	s.Len(s.catalog.Quests(), 4)

	_, err := s.catalog.Quest("nope")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestValidateRejectsBrokenTables() {
	cfg := catalog.DefaultConfig()
	cfg.Classes[0].StartingSkills = []string{"missing_skill"}
	cfg.DailyBag = append(cfg.DailyBag, entities.InventoryItem{ItemID: "ghost", Quantity: 1})

	_, err := catalog.New(cfg)

	s.Error(err)
	s.Contains(err.Error(), "missing_skill")
	s.Contains(err.Error(), "ghost")
}

func (s *CatalogTestSuite) TestNewRequiresConfig() {
	_, err := catalog.New(nil)

	s.True(errors.IsInvalidArgument(err))
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
