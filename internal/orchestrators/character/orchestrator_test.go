package character_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	apperrors "github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/character"
	mockclock "github.com/KirkDiggler/rpg-progression/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/store"
	charactersvc "github.com/KirkDiggler/rpg-progression/internal/services/character"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	ctx       context.Context
	now       time.Time

	repo         characterrepo.Repository
	catalog      *catalog.Catalog
	published    map[string][]events.Event
	orchestrator *character.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = testutils.TestNow
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	st, err := store.New(&store.Config[*entities.Character]{
		Backend: store.NewMemoryBackend(),
		New:     func() *entities.Character { return &entities.Character{} },
	})
	s.Require().NoError(err)
	s.repo, err = characterrepo.NewStore(&characterrepo.Config{Store: st, Clock: s.mockClock})
	s.Require().NoError(err)

	s.catalog = catalog.Default()

	bus := events.NewBus()
	s.published = map[string][]events.Event{}
	for _, eventType := range gameevents.AllTypes {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.published[eventType] = append(s.published[eventType], e)
			return nil
		})
	}

	s.orchestrator, err = character.New(&character.Config{
		CharacterRepo: s.repo,
		Catalog:       s.catalog,
		Clock:         s.mockClock,
		EventBus:      bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) createWarrior() *entities.Character {
	out, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		Identity: testutils.TestIdentity(),
		ClassID:  "warrior",
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) edit(fn func(c *entities.Character)) {
	got, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: testutils.TestUserID})
	s.Require().NoError(err)
	fn(got.Character)
	_, err = s.repo.Update(s.ctx, characterrepo.UpdateInput{Character: got.Character})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) stored() *entities.Character {
	got, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: testutils.TestUserID})
	s.Require().NoError(err)
	return got.Character
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := character.New(&character.Config{})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = character.New(nil)
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	char := s.createWarrior()

	s.Equal(testutils.TestUserID, char.ID)
	s.Equal(testutils.TestDisplayName, char.Name)
	s.Equal("warrior", char.Class)
	s.Equal(1, char.Level)
	s.Equal(entities.StatusIdle, char.Status)
	s.Equal(120, char.MaxHP)
	s.Equal(120, char.HP)
	s.Equal(float64(30), char.Combat.Attack)
	s.Equal(3, char.ItemQuantity(catalog.ItemHealthPotion))
	s.Equal(2, char.ItemQuantity(catalog.ItemManaPotion))
	s.Equal(2, char.ItemQuantity(catalog.ItemStaminaPotion))
	s.Len(char.Skills, 2)
}

func (s *OrchestratorTestSuite) TestCreateCharacterTwice() {
	first := s.createWarrior()

	s.now = s.now.Add(time.Hour)
	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		Identity: testutils.TestIdentity(),
		ClassID:  "mage",
	})

	s.True(apperrors.IsAlreadyExists(err))
	s.Equal(first, s.stored())
}

func (s *OrchestratorTestSuite) TestCreateCharacterUnknownClass() {
	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		Identity: testutils.TestIdentity(),
		ClassID:  "bard",
	})

	s.True(apperrors.IsInvalidArgument(err))
	s.Equal(apperrors.ReasonInvalidClass, apperrors.GetReason(err))

	_, err = s.repo.Get(s.ctx, characterrepo.GetInput{ID: testutils.TestUserID})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetCharacterMissing() {
	_, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsNotFound(err))

	_, err = s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "nope"})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddXPLevelsUp() {
	before := s.createWarrior()
	s.edit(func(c *entities.Character) { c.HP = 10 })

	out, err := s.orchestrator.AddXP(s.ctx, &charactersvc.AddXPInput{
		CharacterID: testutils.TestUserID,
		Amount:      400,
	})

	s.Require().NoError(err)
	char := out.Character
	s.Equal(1, out.PreviousLevel)
	s.Equal(2, out.LevelsGained)
	s.Equal(3, char.Level)
	s.Equal(before.SkillPoints+4, char.SkillPoints)
	s.Equal(before.MaxHP+2*15, char.MaxHP)
	s.Equal(before.MaxMana+2*3, char.MaxMana)
	s.Equal(before.MaxStamina+2*10, char.MaxStamina)
	s.Equal(before.Attributes.Strength+2*3, char.Attributes.Strength)
	s.Equal(before.Attributes.Vitality+2*2, char.Attributes.Vitality)
	s.Equal(float64(char.Attributes.Strength*2), char.Combat.Attack)
	s.Equal(char.MaxHP, char.HP)
	s.Equal(char.MaxMana, char.Mana)
	s.Equal(char.MaxStamina, char.Stamina)

	s.Require().Len(s.published[gameevents.LevelUp], 1)
}

func (s *OrchestratorTestSuite) TestAddXPWithoutLevelUp() {
	s.createWarrior()

	out, err := s.orchestrator.AddXP(s.ctx, &charactersvc.AddXPInput{
		CharacterID: testutils.TestUserID,
		Amount:      50,
	})

	s.Require().NoError(err)
	s.Zero(out.LevelsGained)
	s.Equal(int64(50), out.Character.XP)
	s.Empty(s.published[gameevents.LevelUp])
}

func (s *OrchestratorTestSuite) TestAddXPErrors() {
	_, err := s.orchestrator.AddXP(s.ctx, &charactersvc.AddXPInput{CharacterID: testutils.TestUserID, Amount: 10})
	s.True(apperrors.IsNotFound(err))

	_, err = s.orchestrator.AddXP(s.ctx, &charactersvc.AddXPInput{CharacterID: testutils.TestUserID, Amount: -1})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdventureLifecycle() {
	s.createWarrior()

	start, err := s.orchestrator.StartAdventure(s.ctx, &charactersvc.StartAdventureInput{
		CharacterID: testutils.TestUserID,
		DungeonID:   "goblin_cave",
	})
	s.Require().NoError(err)
	s.Equal(entities.StatusAdventuring, start.Character.Status)
	s.Equal(s.now.Add(entities.AdventureDuration), start.EndsAt)

	_, err = s.orchestrator.CompleteAdventure(s.ctx, &charactersvc.CompleteAdventureInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsNotYetDue(err))

	s.now = s.now.Add(entities.AdventureDuration)
	done, err := s.orchestrator.CompleteAdventure(s.ctx, &charactersvc.CompleteAdventureInput{CharacterID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(int64(150), done.Reward.XP)
	s.Equal(int64(75), done.Reward.Gold)
	s.Equal("goblin_cave", done.Dungeon.ID)
	s.Equal(entities.StatusIdle, done.Character.Status)
	s.Equal(int64(75), done.Character.Gold)
	s.Equal(int64(150), done.Character.XP)
	s.Equal(2, done.Character.Level)
	s.Equal(1, done.Reward.LevelsGained)
	s.Equal(s.now, done.Character.LastAdventureAt)
	s.Len(s.published[gameevents.AdventureCompleted], 1)
	s.Len(s.published[gameevents.LevelUp], 1)

	_, err = s.orchestrator.CompleteAdventure(s.ctx, &charactersvc.CompleteAdventureInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsNotInThisState(err))
	s.Equal(int64(75), s.stored().Gold)
}

func (s *OrchestratorTestSuite) TestStartAdventureErrors() {
	_, err := s.orchestrator.StartAdventure(s.ctx, &charactersvc.StartAdventureInput{
		CharacterID: testutils.TestUserID,
		DungeonID:   "goblin_cave",
	})
	s.True(apperrors.IsNotFound(err))

	s.createWarrior()

	_, err = s.orchestrator.StartAdventure(s.ctx, &charactersvc.StartAdventureInput{
		CharacterID: testutils.TestUserID,
		DungeonID:   "moon_base",
	})
	s.True(apperrors.IsInvalidArgument(err))
	s.Equal(apperrors.ReasonDungeonNotFound, apperrors.GetReason(err))

	_, err = s.orchestrator.StartAdventure(s.ctx, &charactersvc.StartAdventureInput{
		CharacterID: testutils.TestUserID,
		DungeonID:   "dark_forest",
	})
	s.True(apperrors.IsLevelTooLow(err))
	s.Equal(entities.StatusIdle, s.stored().Status)
}

func (s *OrchestratorTestSuite) TestSecondActivityIsBusy() {
	s.createWarrior()
	_, err := s.orchestrator.StartAdventure(s.ctx, &charactersvc.StartAdventureInput{
		CharacterID: testutils.TestUserID,
		DungeonID:   "goblin_cave",
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.StartTraining(s.ctx, &charactersvc.StartTrainingInput{
		CharacterID: testutils.TestUserID,
		Stat:        entities.StatStrength,
	})
	s.True(apperrors.IsBusy(err))

	_, err = s.orchestrator.StartRest(s.ctx, &charactersvc.StartRestInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsBusy(err))

	_, err = s.orchestrator.UseItem(s.ctx, &charactersvc.UseItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      catalog.ItemHealthPotion,
	})
	s.True(apperrors.IsBusy(err))
	s.Equal(entities.StatusAdventuring, s.stored().Status)
}

func (s *OrchestratorTestSuite) TestTrainingLifecycle() {
	before := s.createWarrior()

	start, err := s.orchestrator.StartTraining(s.ctx, &charactersvc.StartTrainingInput{
		CharacterID: testutils.TestUserID,
		Stat:        entities.StatStrength,
	})
	s.Require().NoError(err)
	s.Equal(before.Stamina-entities.TrainingStaminaCost, start.Character.Stamina)
	s.Equal(entities.StatusTraining, start.Character.Status)

	_, err = s.orchestrator.CompleteTraining(s.ctx, &charactersvc.CompleteTrainingInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsNotYetDue(err))

	s.now = s.now.Add(entities.TrainingDuration)
	done, err := s.orchestrator.CompleteTraining(s.ctx, &charactersvc.CompleteTrainingInput{CharacterID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(entities.StatStrength, done.Stat)
	s.Equal(before.Attributes.Strength+1, done.NewValue)
	s.Equal(float64(done.NewValue*2), done.Character.Combat.Attack)
	s.Equal(entities.StatusIdle, done.Character.Status)

	_, err = s.orchestrator.CompleteTraining(s.ctx, &charactersvc.CompleteTrainingInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsNotInThisState(err))
}

func (s *OrchestratorTestSuite) TestTrainingMismatchedStat() {
	s.createWarrior()
	_, err := s.orchestrator.StartTraining(s.ctx, &charactersvc.StartTrainingInput{
		CharacterID: testutils.TestUserID,
		Stat:        entities.StatWisdom,
	})
	s.Require().NoError(err)
	s.now = s.now.Add(entities.TrainingDuration)

	_, err = s.orchestrator.CompleteTraining(s.ctx, &charactersvc.CompleteTrainingInput{
		CharacterID: testutils.TestUserID,
		Stat:        entities.StatStrength,
	})

	s.True(apperrors.IsInvalidArgument(err))
	s.Equal(entities.StatusTraining, s.stored().Status)
}

func (s *OrchestratorTestSuite) TestStartTrainingErrors() {
	s.createWarrior()

	_, err := s.orchestrator.StartTraining(s.ctx, &charactersvc.StartTrainingInput{
		CharacterID: testutils.TestUserID,
		Stat:        "luck",
	})
	s.True(apperrors.IsInvalidArgument(err))
	s.Equal(apperrors.ReasonInvalidStat, apperrors.GetReason(err))

	s.edit(func(c *entities.Character) { c.Stamina = entities.TrainingStaminaCost - 1 })
	_, err = s.orchestrator.StartTraining(s.ctx, &charactersvc.StartTrainingInput{
		CharacterID: testutils.TestUserID,
		Stat:        entities.StatStrength,
	})
	s.True(apperrors.IsInsufficientResource(err))

	char := s.stored()
	s.Equal(entities.StatusIdle, char.Status)
	s.Equal(entities.TrainingStaminaCost-1, char.Stamina)
}

func (s *OrchestratorTestSuite) TestRestLifecycle() {
	s.createWarrior()
	s.edit(func(c *entities.Character) {
		c.HP = 1
		c.Mana = 0
		c.Stamina = 5
	})

	start, err := s.orchestrator.StartRest(s.ctx, &charactersvc.StartRestInput{CharacterID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(s.now, start.Character.LastRestAt)

	s.now = s.now.Add(entities.RestDuration)
	done, err := s.orchestrator.CompleteRest(s.ctx, &charactersvc.CompleteRestInput{CharacterID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(done.Character.MaxHP, done.Character.HP)
	s.Equal(done.Character.MaxMana, done.Character.Mana)
	s.Equal(done.Character.MaxStamina, done.Character.Stamina)

	_, err = s.orchestrator.StartRest(s.ctx, &charactersvc.StartRestInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsCooldownActive(err))

	s.now = start.Character.LastRestAt.Add(entities.RestCooldown)
	_, err = s.orchestrator.StartRest(s.ctx, &charactersvc.StartRestInput{CharacterID: testutils.TestUserID})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestClaimDaily() {
	s.createWarrior()

	out, err := s.orchestrator.ClaimDaily(s.ctx, &charactersvc.ClaimDailyInput{CharacterID: testutils.TestUserID})

	s.Require().NoError(err)
	s.Equal(int64(550), out.Reward.XP)
	s.Equal(int64(220), out.Reward.Gold)
	s.Equal(int64(220), out.Character.Gold)
	s.Equal(3, out.Character.Level)
	s.Equal(5, out.Character.ItemQuantity(catalog.ItemHealthPotion))
	s.Equal(3, out.Character.ItemQuantity(catalog.ItemManaPotion))
	s.Equal(3, out.Character.ItemQuantity(catalog.ItemStaminaPotion))
	s.Len(s.published[gameevents.DailyClaimed], 1)

	s.now = s.now.Add(6 * time.Hour)
	_, err = s.orchestrator.ClaimDaily(s.ctx, &charactersvc.ClaimDailyInput{CharacterID: testutils.TestUserID})
	s.True(apperrors.IsAlreadyClaimedToday(err))
	s.Equal(int64(220), s.stored().Gold)
}

func (s *OrchestratorTestSuite) TestClaimDailyCrossesDateBoundary() {
	s.now = time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	s.createWarrior()

	_, err := s.orchestrator.ClaimDaily(s.ctx, &charactersvc.ClaimDailyInput{CharacterID: testutils.TestUserID})
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour)
	_, err = s.orchestrator.ClaimDaily(s.ctx, &charactersvc.ClaimDailyInput{CharacterID: testutils.TestUserID})
	s.NoError(err)
}

// concurrently runs fn from n goroutines and returns every error
func (s *OrchestratorTestSuite) concurrently(n int, fn func() error) []error {
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn()
		}()
	}
	wg.Wait()
	return errs
}

func (s *OrchestratorTestSuite) TestConcurrentClaimDailyPaysOnce() {
	s.createWarrior()

	errs := s.concurrently(8, func() error {
		_, err := s.orchestrator.ClaimDaily(s.ctx, &charactersvc.ClaimDailyInput{CharacterID: testutils.TestUserID})
		return err
	})

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(apperrors.IsAlreadyClaimedToday(err), err.Error())
	}
	s.Equal(1, succeeded)
	s.Equal(int64(220), s.stored().Gold)
	s.Equal(int64(550), s.stored().XP)
}

func (s *OrchestratorTestSuite) TestConcurrentCompleteAdventurePaysOnce() {
	s.createWarrior()
	_, err := s.orchestrator.StartAdventure(s.ctx, &charactersvc.StartAdventureInput{
		CharacterID: testutils.TestUserID,
		DungeonID:   "goblin_cave",
	})
	s.Require().NoError(err)
	s.now = s.now.Add(entities.AdventureDuration)

	errs := s.concurrently(8, func() error {
		_, err := s.orchestrator.CompleteAdventure(s.ctx, &charactersvc.CompleteAdventureInput{CharacterID: testutils.TestUserID})
		return err
	})

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(apperrors.IsNotInThisState(err), err.Error())
	}
	s.Equal(1, succeeded)
	s.Equal(int64(75), s.stored().Gold)
	s.Equal(int64(150), s.stored().XP)
}

func (s *OrchestratorTestSuite) TestEquipAndUnequip() {
	before := s.createWarrior()
	s.edit(func(c *entities.Character) { c.AddItem("iron_sword", 1) })

	out, err := s.orchestrator.EquipItem(s.ctx, &charactersvc.EquipItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      "iron_sword",
	})
	s.Require().NoError(err)
	s.Equal(entities.SlotWeapon, out.Slot)
	s.Zero(out.Character.ItemQuantity("iron_sword"))
	s.Require().NotNil(out.Character.Equipment.Get(entities.SlotWeapon))
	s.Equal(before.Combat, out.Character.Combat)

	off, err := s.orchestrator.UnequipItem(s.ctx, &charactersvc.UnequipItemInput{
		CharacterID: testutils.TestUserID,
		Slot:        entities.SlotWeapon,
	})
	s.Require().NoError(err)
	s.Equal("iron_sword", off.Item.ID)
	s.Equal(1, off.Character.ItemQuantity("iron_sword"))

	_, err = s.orchestrator.UnequipItem(s.ctx, &charactersvc.UnequipItemInput{
		CharacterID: testutils.TestUserID,
		Slot:        entities.SlotWeapon,
	})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEquipErrors() {
	s.createWarrior()

	_, err := s.orchestrator.EquipItem(s.ctx, &charactersvc.EquipItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      "iron_sword",
	})
	s.True(apperrors.IsNotFound(err))

	s.edit(func(c *entities.Character) { c.AddItem("sage_ring", 1) })
	_, err = s.orchestrator.EquipItem(s.ctx, &charactersvc.EquipItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      "sage_ring",
	})
	s.True(apperrors.IsLevelTooLow(err))

	_, err = s.orchestrator.EquipItem(s.ctx, &charactersvc.EquipItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      catalog.ItemHealthPotion,
	})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUseItem() {
	s.createWarrior()
	s.edit(func(c *entities.Character) { c.HP = c.MaxHP - 20 })

	out, err := s.orchestrator.UseItem(s.ctx, &charactersvc.UseItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      catalog.ItemHealthPotion,
	})

	s.Require().NoError(err)
	s.Equal(20, out.Restored.HP)
	s.Equal(out.Character.MaxHP, out.Character.HP)
	s.Equal(2, out.Character.ItemQuantity(catalog.ItemHealthPotion))

	_, err = s.orchestrator.UseItem(s.ctx, &charactersvc.UseItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      catalog.ItemElixir,
	})
	s.True(apperrors.IsNotFound(err))

	_, err = s.orchestrator.UseItem(s.ctx, &charactersvc.UseItemInput{
		CharacterID: testutils.TestUserID,
		ItemID:      "iron_sword",
	})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetTopCharacters() {
	s.createWarrior()
	_, err := s.orchestrator.CreateCharacter(s.ctx, &charactersvc.CreateCharacterInput{
		Identity: testutils.IdentityFor(testutils.TestOtherUserID),
		ClassID:  "mage",
	})
	s.Require().NoError(err)
	_, err = s.orchestrator.AddXP(s.ctx, &charactersvc.AddXPInput{CharacterID: testutils.TestOtherUserID, Amount: 500})
	s.Require().NoError(err)

	out, err := s.orchestrator.GetTopCharacters(s.ctx, &charactersvc.GetTopCharactersInput{})

	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal(testutils.TestOtherUserID, out.Characters[0].ID)
}

func (s *OrchestratorTestSuite) TestCatalogListings() {
	classes, err := s.orchestrator.ListClasses(s.ctx, &charactersvc.ListClassesInput{})
	s.Require().NoError(err)
	s.Len(classes.Classes, 5)

	dungeons, err := s.orchestrator.ListDungeons(s.ctx, &charactersvc.ListDungeonsInput{})
	s.Require().NoError(err)
	s.Len(dungeons.Dungeons, 5)
	s.Equal("goblin_cave", dungeons.Dungeons[0].ID)

	quests, err := s.orchestrator.ListQuests(s.ctx, &charactersvc.ListQuestsInput{})
	s.Require().NoError(err)
	s.Len(quests.Quests, 4)

	items, err := s.orchestrator.ListItems(s.ctx, &charactersvc.ListItemsInput{})
	s.Require().NoError(err)
	s.Len(items.Items, 10)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
