package entities

// Stat names a growable or trainable value
type Stat string

// Core attributes
const (
	StatStrength     Stat = "strength"
	StatDexterity    Stat = "dexterity"
	StatIntelligence Stat = "intelligence"
	StatVitality     Stat = "vitality"
	StatWisdom       Stat = "wisdom"
	StatCharisma     Stat = "charisma"
)

// Resource maximums
const (
	StatMaxHP      Stat = "max_hp"
	StatMaxMana    Stat = "max_mana"
	StatMaxStamina Stat = "max_stamina"
)

// CoreAttributes are the six attributes combat stats derive from
var CoreAttributes = []Stat{
	StatStrength, StatDexterity, StatIntelligence, StatVitality, StatWisdom, StatCharisma,
}

// GrowableStats are the nine values that grow on level-up and can be trained
var GrowableStats = []Stat{
	StatMaxHP, StatMaxMana, StatMaxStamina,
	StatStrength, StatDexterity, StatIntelligence, StatVitality, StatWisdom, StatCharisma,
}

// IsCore reports whether s is one of the six core attributes
func (s Stat) IsCore() bool {
	for _, c := range CoreAttributes {
		if s == c {
			return true
		}
	}
	return false
}

// IsGrowable reports whether s names one of the nine growable values
func (s Stat) IsGrowable() bool {
	for _, g := range GrowableStats {
		if s == g {
			return true
		}
	}
	return false
}

// Attributes holds the six core attributes
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// StatBlock is a set of the nine growable values. Classes use it both for
// starting values and for per-level growth.
type StatBlock struct {
	MaxHP      int        `json:"max_hp"`
	MaxMana    int        `json:"max_mana"`
	MaxStamina int        `json:"max_stamina"`
	Attributes Attributes `json:"attributes"`
}

// Get returns the value of a growable stat, or 0 for unknown names
func (b StatBlock) Get(stat Stat) int {
	switch stat {
	case StatMaxHP:
		return b.MaxHP
	case StatMaxMana:
		return b.MaxMana
	case StatMaxStamina:
		return b.MaxStamina
	case StatStrength:
		return b.Attributes.Strength
	case StatDexterity:
		return b.Attributes.Dexterity
	case StatIntelligence:
		return b.Attributes.Intelligence
	case StatVitality:
		return b.Attributes.Vitality
	case StatWisdom:
		return b.Attributes.Wisdom
	case StatCharisma:
		return b.Attributes.Charisma
	}
	return 0
}

// CombatStats are derived from attributes and never stored independently.
// Defense values are fractional (vitality * 1.5).
type CombatStats struct {
	Attack         float64 `json:"attack"`
	Defense        float64 `json:"defense"`
	MagicAttack    float64 `json:"magic_attack"`
	MagicDefense   float64 `json:"magic_defense"`
	CriticalChance float64 `json:"critical_chance"`
	CriticalDamage float64 `json:"critical_damage"`
}

// DeriveCombatStats applies attack = str*2, defense = vit*1.5,
// magic attack = int*2, magic defense = wis*1.5. Equipped items are not
// considered.
func DeriveCombatStats(a Attributes, critChance, critDamage float64) CombatStats {
	return CombatStats{
		Attack:         float64(a.Strength) * 2,
		Defense:        float64(a.Vitality) * 1.5,
		MagicAttack:    float64(a.Intelligence) * 2,
		MagicDefense:   float64(a.Wisdom) * 1.5,
		CriticalChance: critChance,
		CriticalDamage: critDamage,
	}
}
