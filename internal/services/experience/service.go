// Package experience defines the interface for the chat XP tracker
package experience

//go:generate mockgen -destination=mock/mock_service.go -package=experiencemock github.com/KirkDiggler/rpg-progression/internal/services/experience Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Service defines the interface for experience operations
type Service interface {
	// Profiles
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)
	GetTopProfiles(ctx context.Context, input *GetTopProfilesInput) (*GetTopProfilesOutput, error)
	GetRank(ctx context.Context, input *GetRankInput) (*GetRankOutput, error)

	// Activity
	AddMessageXP(ctx context.Context, input *AddMessageXPInput) (*AddMessageXPOutput, error)
	TrackVoiceJoin(ctx context.Context, input *TrackVoiceJoinInput) (*TrackVoiceJoinOutput, error)
	TrackVoiceLeave(ctx context.Context, input *TrackVoiceLeaveInput) (*TrackVoiceLeaveOutput, error)
	FlushVoiceSessions(ctx context.Context, input *FlushVoiceSessionsInput) (*FlushVoiceSessionsOutput, error)
	AwardVoiceTime(ctx context.Context, input *AwardVoiceTimeInput) (*AwardVoiceTimeOutput, error)

	// Titles
	GetLevelTitle(ctx context.Context, input *GetLevelTitleInput) (*GetLevelTitleOutput, error)
	ListLevelTitles(ctx context.Context, input *ListLevelTitlesInput) (*ListLevelTitlesOutput, error)
}

// GetProfileInput defines the request for getting a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput defines the response for getting a profile
type GetProfileOutput struct {
	Profile  *entities.Profile
	Progress engine.Progress
	Rank     int
	// Title is nil when no milestone applies
	Title *entities.LevelTitle
}

// GetTopProfilesInput defines the request for the leaderboard
type GetTopProfilesInput struct {
	// Limit defaults to 10 when <= 0
	Limit int
}

// GetTopProfilesOutput defines the response for the leaderboard
type GetTopProfilesOutput struct {
	Profiles []*entities.Profile
}

// GetRankInput defines the request for a leaderboard position
type GetRankInput struct {
	UserID string
}

// GetRankOutput defines the response for a leaderboard position
type GetRankOutput struct {
	Rank  int
	Total int
}

// AddMessageXPInput defines the request for awarding message XP
type AddMessageXPInput struct {
	Identity      entities.Identity
	MessageLength int
}

// AddMessageXPOutput defines the response for awarding message XP
type AddMessageXPOutput struct {
	Profile       *entities.Profile
	XPGained      int64
	PreviousLevel int
	LeveledUp     bool
}

// TrackVoiceJoinInput defines the request for opening a voice session
type TrackVoiceJoinInput struct {
	Identity entities.Identity
}

// TrackVoiceJoinOutput defines the response for opening a voice session
type TrackVoiceJoinOutput struct {
	SessionID string
	JoinedAt  time.Time
	// AlreadyTracking is true when the user already had an open session;
	// the original session is kept
	AlreadyTracking bool
}

// TrackVoiceLeaveInput defines the request for closing a voice session
type TrackVoiceLeaveInput struct {
	UserID string
}

// TrackVoiceLeaveOutput defines the response for closing a voice session.
// Award reports the final chunk.
type TrackVoiceLeaveOutput struct {
	SessionID string
	Seconds   int64
	Award     *AwardVoiceTimeOutput
}

// FlushVoiceSessionsInput defines the request for a periodic voice flush
type FlushVoiceSessionsInput struct{}

// FlushVoiceSessionsOutput summarizes a periodic voice flush
type FlushVoiceSessionsOutput struct {
	Sessions  int
	Awarded   int
	XPAwarded int64
	Failed    int
}

// AwardVoiceTimeInput defines the request for awarding measured voice time
type AwardVoiceTimeInput struct {
	Identity entities.Identity
	Seconds  int64
}

// AwardVoiceTimeOutput defines the response for awarding voice time
type AwardVoiceTimeOutput struct {
	// Profile is nil when the time was below the minimum and discarded
	Profile       *entities.Profile
	XPGained      int64
	PreviousLevel int
	LeveledUp     bool
	Discarded     bool
}

// GetLevelTitleInput defines the request for a milestone title
type GetLevelTitleInput struct {
	Level int
}

// GetLevelTitleOutput defines the response for a milestone title
type GetLevelTitleOutput struct {
	Title *entities.LevelTitle
}

// ListLevelTitlesInput defines the request for the title table
type ListLevelTitlesInput struct{}

// ListLevelTitlesOutput defines the response for the title table
type ListLevelTitlesOutput struct {
	Titles []entities.LevelTitle
}
