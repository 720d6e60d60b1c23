// Package experience implements the chat XP tracker: message XP, voice
// sessions, leaderboards and milestone titles
package experience

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/keylock"
	profilerepo "github.com/KirkDiggler/rpg-progression/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/leveltitle"
	"github.com/KirkDiggler/rpg-progression/internal/services/experience"
)

// Config holds the dependencies for the experience orchestrator
type Config struct {
	ProfileRepo profilerepo.Repository
	TitleRepo   leveltitle.Repository
	Engine      engine.Engine

	// Optional
	Clock       clock.Clock
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	Locker      *keylock.Locker
	// Location decides calendar dates for streaks; defaults to UTC
	Location *time.Location
	// MinVoiceSeconds is the shortest voice chunk that earns XP; zero uses
	// engine.VoiceMinSessionSeconds
	MinVoiceSeconds int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.TitleRepo == nil {
		vb.RequiredField("TitleRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.MinVoiceSeconds < 0 {
		vb.Field("MinVoiceSeconds", "cannot be negative")
	}

	return vb.Build()
}

type voiceSession struct {
	id         string
	identity   entities.Identity
	joinedAt   time.Time
	chunkStart time.Time
}

// Orchestrator implements the experience.Service interface
type Orchestrator struct {
	profileRepo     profilerepo.Repository
	titleRepo       leveltitle.Repository
	engine          engine.Engine
	clock           clock.Clock
	idGenerator     idgen.Generator
	eventBus        events.EventBus
	locker          *keylock.Locker
	location        *time.Location
	minVoiceSeconds int64

	sessions *xsync.MapOf[string, *voiceSession]
}

// New creates a new experience orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		profileRepo:     cfg.ProfileRepo,
		titleRepo:       cfg.TitleRepo,
		engine:          cfg.Engine,
		clock:           cfg.Clock,
		idGenerator:     cfg.IDGenerator,
		eventBus:        cfg.EventBus,
		locker:          cfg.Locker,
		location:        cfg.Location,
		minVoiceSeconds: cfg.MinVoiceSeconds,
		sessions:        xsync.NewMapOf[string, *voiceSession](),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.idGenerator == nil {
		o.idGenerator = idgen.NewUUID("voice")
	}
	if o.locker == nil {
		o.locker = keylock.New()
	}
	if o.location == nil {
		o.location = time.UTC
	}
	if o.minVoiceSeconds == 0 {
		o.minVoiceSeconds = engine.VoiceMinSessionSeconds
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ experience.Service = (*Orchestrator)(nil)

func (o *Orchestrator) now() time.Time {
	return o.clock.Now().UTC()
}

// GetProfile returns a profile with its level progress, rank and title
func (o *Orchestrator) GetProfile(ctx context.Context, input *experience.GetProfileInput) (*experience.GetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := entities.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	got, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	rank, err := o.profileRepo.GetRank(ctx, profilerepo.GetRankInput{ID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get rank")
	}

	out := &experience.GetProfileOutput{
		Profile:  got.Profile,
		Progress: engine.ProgressForXP(got.Profile.XP),
		Rank:     rank.Rank,
	}

	title, err := o.titleRepo.ForLevel(ctx, got.Profile.Level)
	switch {
	case err == nil:
		out.Title = title
	case !errors.IsNotFound(err):
		return nil, errors.Wrapf(err, "failed to get level title")
	}

	return out, nil
}

// GetTopProfiles returns the leaderboard
func (o *Orchestrator) GetTopProfiles(ctx context.Context, input *experience.GetTopProfilesInput) (*experience.GetTopProfilesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.profileRepo.ListTop(ctx, profilerepo.ListTopInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list top profiles")
	}

	return &experience.GetTopProfilesOutput{Profiles: out.Profiles}, nil
}

// GetRank returns a profile's leaderboard position
func (o *Orchestrator) GetRank(ctx context.Context, input *experience.GetRankInput) (*experience.GetRankOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := entities.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	out, err := o.profileRepo.GetRank(ctx, profilerepo.GetRankInput{ID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get rank")
	}

	return &experience.GetRankOutput{Rank: out.Rank, Total: out.Total}, nil
}

// AddMessageXP awards XP for one chat message. The profile is created on
// first activity.
func (o *Orchestrator) AddMessageXP(ctx context.Context, input *experience.AddMessageXPInput) (*experience.AddMessageXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Identity.Validate(); err != nil {
		return nil, err
	}
	if input.MessageLength < 0 {
		return nil, errors.InvalidArgument("message length cannot be negative")
	}

	var out *experience.AddMessageXPOutput
	err := o.locker.Do(input.Identity.ID, func() error {
		now := o.now()
		p, isNew, err := o.loadOrNew(ctx, input.Identity, now)
		if err != nil {
			return err
		}

		calcInput := &engine.CalculateMessageXPInput{
			MessageLength:      input.MessageLength,
			StreakDays:         p.StreakDays,
			VoiceTimeSeconds:   p.VoiceTimeSeconds,
			FirstActivityToday: p.IsFirstActivityOf(now, o.location),
		}
		if !p.LastMessageAt.IsZero() {
			calcInput.HasPreviousMessage = true
			calcInput.SinceLastMessage = now.Sub(p.LastMessageAt)
		}

		calc, err := o.engine.CalculateMessageXP(ctx, calcInput)
		if err != nil {
			return errors.Wrapf(err, "failed to calculate message xp")
		}

		p.Touch(input.Identity)
		p.MessageCount++
		p.LastMessageAt = now
		p.UpdateStreak(now, o.location)
		previous := p.AddXP(calc.XP)

		if err := o.save(ctx, p, isNew); err != nil {
			return err
		}

		out = &experience.AddMessageXPOutput{
			Profile:       p,
			XPGained:      calc.XP,
			PreviousLevel: previous,
			LeveledUp:     p.Level > previous,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "message xp awarded",
		"user_id", out.Profile.ID,
		"xp_gained", out.XPGained,
		"xp", out.Profile.XP)
	if out.LeveledUp {
		o.publishLevelUp(ctx, out.Profile, out.PreviousLevel)
	}

	return out, nil
}

// AwardVoiceTime applies the voice formula to seconds of presence. Chunks
// shorter than the minimum are discarded without touching the profile.
func (o *Orchestrator) AwardVoiceTime(ctx context.Context, input *experience.AwardVoiceTimeInput) (*experience.AwardVoiceTimeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Identity.Validate(); err != nil {
		return nil, err
	}
	if input.Seconds < 0 {
		return nil, errors.InvalidArgument("seconds cannot be negative")
	}

	var out *experience.AwardVoiceTimeOutput
	err := o.locker.Do(input.Identity.ID, func() error {
		var err error
		out, err = o.awardVoiceLocked(ctx, input.Identity, input.Seconds)
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *Orchestrator) awardVoiceLocked(ctx context.Context, identity entities.Identity, seconds int64) (*experience.AwardVoiceTimeOutput, error) {
	if seconds < o.minVoiceSeconds {
		slog.DebugContext(ctx, "voice chunk discarded",
			"user_id", identity.ID,
			"seconds", seconds)
		return &experience.AwardVoiceTimeOutput{Discarded: true}, nil
	}

	now := o.now()
	p, isNew, err := o.loadOrNew(ctx, identity, now)
	if err != nil {
		return nil, err
	}

	calc, err := o.engine.CalculateVoiceXP(ctx, &engine.CalculateVoiceXPInput{Seconds: seconds})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate voice xp")
	}

	p.Touch(identity)
	p.VoiceTimeSeconds += seconds
	previous := p.AddXP(calc.XP)

	if err := o.save(ctx, p, isNew); err != nil {
		return nil, err
	}

	out := &experience.AwardVoiceTimeOutput{
		Profile:       p,
		XPGained:      calc.XP,
		PreviousLevel: previous,
		LeveledUp:     p.Level > previous,
	}

	slog.DebugContext(ctx, "voice xp awarded",
		"user_id", p.ID,
		"seconds", seconds,
		"xp_gained", calc.XP)
	if out.LeveledUp {
		o.publishLevelUp(ctx, p, previous)
	}

	return out, nil
}

// GetLevelTitle returns the milestone title for a level
func (o *Orchestrator) GetLevelTitle(ctx context.Context, input *experience.GetLevelTitleInput) (*experience.GetLevelTitleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	title, err := o.titleRepo.ForLevel(ctx, input.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get level title")
	}

	return &experience.GetLevelTitleOutput{Title: title}, nil
}

// ListLevelTitles returns the milestone table
func (o *Orchestrator) ListLevelTitles(ctx context.Context, input *experience.ListLevelTitlesInput) (*experience.ListLevelTitlesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	titles, err := o.titleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list level titles")
	}

	return &experience.ListLevelTitlesOutput{Titles: titles}, nil
}

func (o *Orchestrator) loadOrNew(ctx context.Context, identity entities.Identity, now time.Time) (*entities.Profile, bool, error) {
	got, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: identity.ID})
	switch {
	case err == nil:
		return got.Profile, false, nil
	case errors.IsNotFound(err):
		return entities.NewProfile(identity, now), true, nil
	default:
		return nil, false, errors.Wrapf(err, "failed to get profile")
	}
}

func (o *Orchestrator) save(ctx context.Context, p *entities.Profile, isNew bool) error {
	if isNew {
		if _, err := o.profileRepo.Create(ctx, profilerepo.CreateInput{Profile: p}); err != nil {
			return errors.Wrapf(err, "failed to create profile")
		}
		return nil
	}

	if _, err := o.profileRepo.Update(ctx, profilerepo.UpdateInput{Profile: p}); err != nil {
		return errors.Wrapf(err, "failed to update profile")
	}
	return nil
}

func (o *Orchestrator) publishLevelUp(ctx context.Context, p *entities.Profile, previous int) {
	slog.InfoContext(ctx, "profile leveled up",
		"user_id", p.ID,
		"old_level", previous,
		"new_level", p.Level)

	gameevents.Publish(ctx, o.eventBus, gameevents.ExperienceLevelUp, p, map[string]interface{}{
		gameevents.KeyOldLevel: previous,
		gameevents.KeyNewLevel: p.Level,
		gameevents.KeyXP:       p.XP,
	})
}
