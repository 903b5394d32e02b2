package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petcare/config"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/shared/constant"
	"petcare/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Name string

const (
	BookingCreated       Name = "booking.created"
	BookingUpdated       Name = "booking.updated"
	BookingStatusChanged Name = "booking.status_changed"
	TimeslotsReplaced    Name = "timeslot.replaced"
	ServiceCreated       Name = "service.created"
	ServiceModerated     Name = "service.moderated"
)

// Envelope is the wire shape of every domain event.
type Envelope struct {
	Name       Name      `json:"name"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Actor      string    `json:"actor,omitempty"`
	Payload    any       `json:"payload"`
}

// Publisher emits domain events after their transaction has committed.
type Publisher interface {
	Publish(ctx context.Context, name Name, key string, payload any) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otl,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, name Name, key string, payload any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.name", string(name))

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	envelope := Envelope{
		Name:       name,
		Key:        key,
		OccurredAt: timezone.Now(),
		Actor:      actor,
		Payload:    payload,
	}

	topic := p.topic(name)

	if err = p.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: envelope}); err != nil {
		log.Error().Err(err).Str("event", string(name)).Str("key", key).Msg("failed to publish event")

		return fmt.Errorf("failed to publish event %s: %w", name, err)
	}

	return nil
}

func (p *publisherImpl) topic(name Name) string {
	switch name {
	case TimeslotsReplaced, ServiceCreated, ServiceModerated:
		return p.cfg.Kafka.Topics.Timeslot
	default:
		return p.cfg.Kafka.Topics.Booking
	}
}
