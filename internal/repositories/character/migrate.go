package character

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// ClassLookup resolves a class id to its template
type ClassLookup func(id string) (*entities.Class, error)

// MigrateClassDefaults returns a store migration that fills resource
// maximums and attributes missing from older records with the class's base
// values. Records of unknown classes are left alone.
func MigrateClassDefaults(lookup ClassLookup) func(*entities.Character) {
	return func(c *entities.Character) {
		class, err := lookup(c.Class)
		if err != nil {
			return
		}
		if c.MaxHP == 0 {
			c.MaxHP = class.Base.MaxHP
			c.HP = c.MaxHP
		}
		if c.MaxMana == 0 {
			c.MaxMana = class.Base.MaxMana
			c.Mana = c.MaxMana
		}
		if c.MaxStamina == 0 {
			c.MaxStamina = class.Base.MaxStamina
			c.Stamina = c.MaxStamina
		}
		if c.Attributes == (entities.Attributes{}) {
			c.Attributes = class.Base.Attributes
		}
		if c.Combat.CriticalDamage == 0 {
			c.Combat.CriticalChance = class.CriticalChance
			c.Combat.CriticalDamage = class.CriticalDamage
		}
		c.Normalize()
	}
}
