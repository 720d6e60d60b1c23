package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Snowflake user ids for tests
const (
	TestUserID      = "80351110224678912"
	TestOtherUserID = "175928847299117063"
	TestThirdUserID = "41771983423143937"

	// TestDisplayName is the default display name for test identities
	TestDisplayName = "Thorin"
)

// TestNow is a fixed midday UTC instant used as the default test clock
var TestNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

// TestIdentity returns an identity for TestUserID
func TestIdentity() entities.Identity {
	return entities.Identity{
		ID:          TestUserID,
		DisplayName: TestDisplayName,
		AvatarURL:   "https://cdn.example.com/avatars/thorin.png",
	}
}

// IdentityFor returns an identity with the given id and a derived name
func IdentityFor(id string) entities.Identity {
	return entities.Identity{ID: id, DisplayName: "user-" + id}
}

// CreateTestProfile creates a profile with the given xp
func CreateTestProfile(id string, xp int64) *entities.Profile {
	p := entities.NewProfile(IdentityFor(id), TestNow)
	p.AddXP(xp)
	return p
}

// CreateTestClass returns a small warrior-like class with round numbers
func CreateTestClass() *entities.Class {
	return &entities.Class{
		ID:   "warrior",
		Name: "Warrior",
		Base: entities.StatBlock{
			MaxHP: 120, MaxMana: 30, MaxStamina: 100,
			Attributes: entities.Attributes{
				Strength: 15, Dexterity: 10, Intelligence: 5,
				Vitality: 14, Wisdom: 6, Charisma: 8,
			},
		},
		Growth: entities.StatBlock{
			MaxHP: 15, MaxMana: 3, MaxStamina: 10,
			Attributes: entities.Attributes{
				Strength: 3, Dexterity: 1, Intelligence: 1,
				Vitality: 2, Wisdom: 1, Charisma: 1,
			},
		},
		CriticalChance: 0.05,
		CriticalDamage: 1.5,
		StartingSkills: []string{"power_strike", "battle_cry"},
	}
}

// CreateTestCharacter creates an idle level 1 character from CreateTestClass
func CreateTestCharacter(id string) *entities.Character {
	return entities.NewCharacter(IdentityFor(id), CreateTestClass(),
		[]entities.InventoryItem{{ItemID: "health_potion", Quantity: 3}}, TestNow)
}
