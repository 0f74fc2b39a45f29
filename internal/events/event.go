// Package events publishes domain events about restaurants and onboarding
// to the configured broker.
package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/restodesk/backoffice/internal/config"
)

const (
	EntityRestaurant = "restaurant"
	EntityOnboarding = "onboarding"

	ActionArchived  = "archived"
	ActionActivated = "activated"
	ActionDeleted   = "deleted"
	ActionCompleted = "completed"
	ActionStalled   = "stalled"
)

// Event is the envelope shared by every broker. Consumers route on
// Entity and Action.
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

func New(entity, action string, resourceID uint, data interface{}) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ResourceID: strconv.FormatUint(uint64(resourceID), 10),
		Metadata:   map[string]string{},
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// RoutingKey is entity.action, e.g. onboarding.completed.
func (e Event) RoutingKey() string {
	return e.Entity + "." + e.Action
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NewPublisher builds the publisher selected by conf.Driver.
func NewPublisher(conf *config.BrokerConfig) (Publisher, error) {
	if conf == nil {
		return NewLogPublisher(), nil
	}

	switch conf.Driver {
	case "", "none":
		return NewLogPublisher(), nil
	case "rabbitmq":
		return NewRabbitMQPublisher(conf.RabbitMQURL, conf.Exchange)
	case "kafka":
		return NewKafkaPublisher(conf.KafkaBroker, conf.KafkaTopic)
	}

	return nil, fmt.Errorf("unsupported broker driver %q", conf.Driver)
}
