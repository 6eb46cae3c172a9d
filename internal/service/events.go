package service

import (
	"context"
	"encoding/json"
	"time"

	"lmsadmin/internal/pubsub"

	"github.com/rs/zerolog"
)

// ChangeEvent is published whenever mock data changes, so local tooling
// (file watchers, a second console tab, seed scripts) can react.
type ChangeEvent struct {
	Entity string    `json:"entity"` // course | section | lesson
	Action string    `json:"action"` // created | updated | deleted
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// publishChange emits a change event when a publisher is configured.
// Event delivery is best effort: a publish failure is logged and never
// fails the data operation itself.
func publishChange(ctx context.Context, publisher pubsub.Publisher, topic, entity, action, id string, logger zerolog.Logger) {
	if publisher == nil || topic == "" {
		return
	}
	payload, err := json.Marshal(ChangeEvent{Entity: entity, Action: action, ID: id, At: time.Now()})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode change event")
		return
	}
	if _, err := publisher.Publish(ctx, topic, payload); err != nil {
		logger.Error().Err(err).Str("entity", entity).Str("action", action).Msg("Failed to publish change event")
	}
}
