// Package gameevents names the progression events published on the
// rpg-toolkit event bus and provides the publish and logging helpers the
// orchestrators share.
package gameevents

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types
const (
	ExperienceLevelUp  = "experience.level_up"
	LevelUp            = "progression.level_up"
	AdventureCompleted = "progression.adventure_completed"
	DailyClaimed       = "progression.daily_claimed"
)

// AllTypes lists every event type published by the engine
var AllTypes = []string{ExperienceLevelUp, LevelUp, AdventureCompleted, DailyClaimed}

// Context keys
const (
	KeyOldLevel = "old_level"
	KeyNewLevel = "new_level"
	KeyXP       = "xp"
	KeyGold     = "gold"
)

// Publish sends an event about source with the given context values. A nil
// bus is a no-op. Failures are logged and never returned: the operation that
// triggered the event has already been persisted.
func Publish(ctx context.Context, bus events.EventBus, eventType string, source core.Entity, values map[string]interface{}) {
	if bus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, nil)
	for k, v := range values {
		event.Context().Set(k, v)
	}

	if err := bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event_type", eventType,
			"source_id", source.GetID(),
			"error", err.Error())
	}
}

// SubscribeLogger logs every engine event at info level. It returns the
// subscription ids.
func SubscribeLogger(bus events.EventBus) []string {
	ids := make([]string, 0, len(AllTypes))
	for _, eventType := range AllTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, func(ctx context.Context, event events.Event) error {
			attrs := []any{"event_type", event.Type()}
			if src := event.Source(); src != nil {
				attrs = append(attrs, "source_id", src.GetID(), "source_type", src.GetType())
			}
			for _, key := range []string{KeyOldLevel, KeyNewLevel, KeyXP, KeyGold} {
				if v, ok := event.Context().Get(key); ok {
					attrs = append(attrs, key, v)
				}
			}
			slog.InfoContext(ctx, "progression event", attrs...)
			return nil
		}))
	}
	return ids
}
