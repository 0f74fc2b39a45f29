package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	zap.L().Info("event",
		zap.String("routing_key", event.RoutingKey()),
		zap.String("resource_id", event.ResourceID),
	)

	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
