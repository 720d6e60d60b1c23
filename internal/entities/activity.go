package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Status is a character's current activity
type Status string

// Activity statuses. Questing is reserved; no operation enters it.
const (
	StatusIdle        Status = "idle"
	StatusAdventuring Status = "adventuring"
	StatusTraining    Status = "training"
	StatusResting     Status = "resting"
	StatusQuesting    Status = "questing"
)

// Activity timings and costs
const (
	AdventureDuration   = 5 * time.Minute
	TrainingDuration    = 3 * time.Minute
	RestDuration        = 2 * time.Minute
	RestCooldown        = time.Hour
	TrainingStaminaCost = 20
)

// IsIdle reports whether a new activity may start
func (c *Character) IsIdle() bool {
	return c.Status == StatusIdle
}

// BeginActivity moves an idle character into status until now+d. target
// records what the activity is about (dungeon id, trained stat).
func (c *Character) BeginActivity(status Status, target string, now time.Time, d time.Duration) error {
	if !c.IsIdle() {
		return errors.Busyf("character is %s until %s", c.Status, c.StatusEndsAt.Format(time.RFC3339))
	}
	c.Status = status
	c.StatusTarget = target
	c.StatusEndsAt = now.Add(d)
	return nil
}

// FinishActivity returns the character to idle when it is in status and the
// deadline has passed. It returns the target recorded at the start.
func (c *Character) FinishActivity(status Status, now time.Time) (string, error) {
	if c.Status != status {
		return "", errors.NotInThisStatef("character is %s, not %s", c.Status, status)
	}
	if now.Before(c.StatusEndsAt) {
		return "", errors.NotYetDuef("%s finishes in %s", status, c.StatusEndsAt.Sub(now).Round(time.Second))
	}
	target := c.StatusTarget
	c.Status = StatusIdle
	c.StatusTarget = ""
	c.StatusEndsAt = time.Time{}
	return target, nil
}

// RestAvailableAt returns when the rest cooldown expires
func (c *Character) RestAvailableAt() time.Time {
	if c.LastRestAt.IsZero() {
		return time.Time{}
	}
	return c.LastRestAt.Add(RestCooldown)
}
