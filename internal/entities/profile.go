package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
)

// EntityTypeProfile is the core.Entity type of experience profiles
const EntityTypeProfile = "profile"

// Profile is a user's experience-tracking record. Level always equals
// engine.LevelForXP(XP); only the experience orchestrator mutates it.
type Profile struct {
	ID               string    `json:"id"`
	DisplayName      string    `json:"display_name"`
	AvatarURL        string    `json:"avatar_url"`
	XP               int64     `json:"xp"`
	Level            int       `json:"level"`
	VoiceTimeSeconds int64     `json:"voice_time_seconds"`
	MessageCount     int64     `json:"message_count"`
	LastMessageAt    time.Time `json:"last_message_at"`
	StreakDays       int       `json:"streak_days"`
	LastActiveAt     time.Time `json:"last_active_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewProfile creates a level 1 profile for identity
func NewProfile(identity Identity, now time.Time) *Profile {
	return &Profile{
		ID:          identity.ID,
		DisplayName: identity.DisplayName,
		AvatarURL:   identity.AvatarURL,
		Level:       1,
		CreatedAt:   now,
	}
}

// GetID returns the profile's user ID
func (p *Profile) GetID() string {
	return p.ID
}

// SetID sets the user ID of a record stored without one
func (p *Profile) SetID(id string) {
	p.ID = id
}

// GetType returns the entity type for rpg-toolkit
func (p *Profile) GetType() string {
	return EntityTypeProfile
}

// Normalize repairs a record loaded from an older file: negative counters
// are zeroed and the level is re-derived from xp.
func (p *Profile) Normalize() {
	if p.XP < 0 {
		p.XP = 0
	}
	if p.VoiceTimeSeconds < 0 {
		p.VoiceTimeSeconds = 0
	}
	if p.MessageCount < 0 {
		p.MessageCount = 0
	}
	if p.StreakDays < 0 {
		p.StreakDays = 0
	}
	p.Level = engine.LevelForXP(p.XP)
}

// Clone returns an independent copy
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// AddXP adds a non-negative delta and re-derives the level. It returns the
// level before the change.
func (p *Profile) AddXP(delta int64) (previousLevel int) {
	previousLevel = p.Level
	if delta > 0 {
		p.XP += delta
	}
	p.Level = engine.LevelForXP(p.XP)
	return previousLevel
}

// Touch refreshes the display fields from the latest identity
func (p *Profile) Touch(identity Identity) {
	if identity.DisplayName != "" {
		p.DisplayName = identity.DisplayName
	}
	if identity.AvatarURL != "" {
		p.AvatarURL = identity.AvatarURL
	}
}

// IsFirstActivityOf reports whether now is on a later calendar date than the
// last recorded activity, with dates taken in loc.
func (p *Profile) IsFirstActivityOf(now time.Time, loc *time.Location) bool {
	return !clock.SameDay(now.In(loc), p.LastActiveAt)
}

// UpdateStreak extends the streak when the previous activity was yesterday,
// restarts it at 1 after a gap, and leaves it alone on the same date.
func (p *Profile) UpdateStreak(now time.Time, loc *time.Location) {
	if p.IsFirstActivityOf(now, loc) {
		if !p.LastActiveAt.IsZero() && clock.IsYesterday(p.LastActiveAt, now.In(loc)) {
			p.StreakDays++
		} else {
			p.StreakDays = 1
		}
	}
	p.LastActiveAt = now
}
