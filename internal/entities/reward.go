package entities

// Reward is what an operation granted a character
type Reward struct {
	XP           int64           `json:"xp"`
	Gold         int64           `json:"gold"`
	Items        []InventoryItem `json:"items,omitempty"`
	LevelsGained int             `json:"levels_gained"`
}

// AdventureReward is the payout for finishing an adventure at level:
// xp = floor(100*(1+level*0.5)), gold = floor(50*(1+level*0.5)).
func AdventureReward(level int) Reward {
	return Reward{
		XP:   int64(100 * (1 + float64(level)*0.5)),
		Gold: int64(50 * (1 + float64(level)*0.5)),
	}
}

// DailyReward is the once-per-day payout: xp = 500+level*50,
// gold = 200+level*20, plus items.
func DailyReward(level int, items []InventoryItem) Reward {
	return Reward{
		XP:    int64(500 + level*50),
		Gold:  int64(200 + level*20),
		Items: append([]InventoryItem{}, items...),
	}
}
