package duereminder

import (
	"context"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/rabbitmq/schema"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of an AMQP channel the publisher needs.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

type RabbitMQ struct {
	log        logging.Logger
	channel    Publisher
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel Publisher, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (s *RabbitMQ) PublishDue(ctx context.Context, r reminder.Reminder, at time.Time) error {
	var petID *string
	if r.PetID.IsPresent {
		id := string(r.PetID.Value)
		petID = &id
	}
	message := schema.DueReminder{
		ID:                string(r.ID),
		OwnerID:           string(r.OwnerID),
		PetID:             petID,
		Title:             r.Title,
		Message:           r.Message.Pointer(),
		FireAt:            r.FireAt,
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: r.RecurrencePattern.Pointer(),
		PublishedAt:       at,
	}
	body, err := message.Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", r.ID))
		return err
	}

	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    string(r.ID) + "@" + r.FireAt.UTC().Format(time.RFC3339),
		Timestamp:    at,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", r.ID))
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("reminderID", r.ID),
	)
	return nil
}
