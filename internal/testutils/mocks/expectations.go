// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-progression/internal/engine/mock"
)

// ExpectMessageXP makes the next message calculation award xp, whatever the input
func ExpectMessageXP(ctx context.Context, mockEngine *enginemock.MockEngine, xp int64) *gomock.Call {
	return mockEngine.EXPECT().
		CalculateMessageXP(ctx, gomock.Any()).
		Return(&engine.CalculateMessageXPOutput{XP: xp}, nil)
}

// ExpectMessageXPFor makes the message calculation for exactly input award xp
func ExpectMessageXPFor(ctx context.Context, mockEngine *enginemock.MockEngine, input *engine.CalculateMessageXPInput, xp int64) *gomock.Call {
	return mockEngine.EXPECT().
		CalculateMessageXP(ctx, input).
		Return(&engine.CalculateMessageXPOutput{XP: xp}, nil)
}

// ExpectVoiceXP makes the voice calculation for a chunk of seconds award xp
func ExpectVoiceXP(ctx context.Context, mockEngine *enginemock.MockEngine, seconds, xp int64) *gomock.Call {
	return mockEngine.EXPECT().
		CalculateVoiceXP(ctx, &engine.CalculateVoiceXPInput{Seconds: seconds}).
		Return(&engine.CalculateVoiceXPOutput{XP: xp}, nil)
}

// ExpectMessageXPError makes the next message calculation fail with err
func ExpectMessageXPError(ctx context.Context, mockEngine *enginemock.MockEngine, err error) *gomock.Call {
	return mockEngine.EXPECT().
		CalculateMessageXP(ctx, gomock.Any()).
		Return(nil, err)
}

// ExpectVoiceXPError makes the next voice calculation fail with err
func ExpectVoiceXPError(ctx context.Context, mockEngine *enginemock.MockEngine, err error) *gomock.Call {
	return mockEngine.EXPECT().
		CalculateVoiceXP(ctx, gomock.Any()).
		Return(nil, err)
}
