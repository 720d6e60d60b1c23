// Package engine owns the experience rules: the levelling curve shared by
// profiles and characters, and the message and voice XP formulas.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-progression/internal/engine Engine

import (
	"context"
)

// Engine computes experience deltas. Implementations own the randomness.
type Engine interface {
	// CalculateMessageXP computes the XP earned by one chat message
	CalculateMessageXP(ctx context.Context, input *CalculateMessageXPInput) (*CalculateMessageXPOutput, error)

	// CalculateVoiceXP computes the XP earned by a chunk of voice presence
	CalculateVoiceXP(ctx context.Context, input *CalculateVoiceXPInput) (*CalculateVoiceXPOutput, error)
}
