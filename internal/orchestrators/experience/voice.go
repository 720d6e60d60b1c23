package experience

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/experience"
)

// TrackVoiceJoin opens a voice session. A user already in a session keeps
// the original one.
func (o *Orchestrator) TrackVoiceJoin(ctx context.Context, input *experience.TrackVoiceJoinInput) (*experience.TrackVoiceJoinOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Identity.Validate(); err != nil {
		return nil, err
	}

	now := o.now()
	candidate := &voiceSession{
		id:         o.idGenerator.Generate(),
		identity:   input.Identity,
		joinedAt:   now,
		chunkStart: now,
	}
	session, loaded := o.sessions.LoadOrStore(input.Identity.ID, candidate)

	if !loaded {
		slog.DebugContext(ctx, "voice session opened",
			"user_id", input.Identity.ID,
			"session_id", session.id)
	}

	return &experience.TrackVoiceJoinOutput{
		SessionID:       session.id,
		JoinedAt:        session.joinedAt,
		AlreadyTracking: loaded,
	}, nil
}

// TrackVoiceLeave closes a voice session and awards the time since the last
// flush
func (o *Orchestrator) TrackVoiceLeave(ctx context.Context, input *experience.TrackVoiceLeaveInput) (*experience.TrackVoiceLeaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := entities.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	var out *experience.TrackVoiceLeaveOutput
	err := o.locker.Do(input.UserID, func() error {
		session, ok := o.sessions.LoadAndDelete(input.UserID)
		if !ok {
			return errors.NotFoundf("no voice session for user %s", input.UserID)
		}

		seconds := int64(o.now().Sub(session.chunkStart).Seconds())
		award, err := o.awardVoiceLocked(ctx, session.identity, seconds)
		if err != nil {
			return err
		}

		out = &experience.TrackVoiceLeaveOutput{
			SessionID: session.id,
			Seconds:   seconds,
			Award:     award,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "voice session closed",
		"user_id", input.UserID,
		"session_id", out.SessionID,
		"seconds", out.Seconds)

	return out, nil
}

// FlushVoiceSessions awards every open session the time accrued since its
// last flush and restarts its chunk. Chunks under the minimum keep
// accruing. A failure on one session is logged and does not stop the rest.
func (o *Orchestrator) FlushVoiceSessions(ctx context.Context, input *experience.FlushVoiceSessionsInput) (*experience.FlushVoiceSessionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	userIDs := make([]string, 0, o.sessions.Size())
	o.sessions.Range(func(userID string, _ *voiceSession) bool {
		userIDs = append(userIDs, userID)
		return true
	})

	out := &experience.FlushVoiceSessionsOutput{Sessions: len(userIDs)}
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		err := o.locker.Do(userID, func() error {
			session, ok := o.sessions.Load(userID)
			if !ok {
				return nil
			}

			now := o.now()
			seconds := int64(now.Sub(session.chunkStart).Seconds())
			if seconds < o.minVoiceSeconds {
				return nil
			}

			award, err := o.awardVoiceLocked(ctx, session.identity, seconds)
			if err != nil {
				return err
			}
			session.chunkStart = now
			out.Awarded++
			out.XPAwarded += award.XPGained
			return nil
		})
		if err != nil {
			out.Failed++
			slog.ErrorContext(ctx, "failed to flush voice session",
				"user_id", userID,
				"error", err.Error())
		}
	}

	if out.Awarded > 0 || out.Failed > 0 {
		slog.InfoContext(ctx, "voice sessions flushed",
			"sessions", out.Sessions,
			"awarded", out.Awarded,
			"xp_awarded", out.XPAwarded,
			"failed", out.Failed)
	}

	return out, nil
}
