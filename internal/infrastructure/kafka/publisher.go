package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
	"github.com/taskora/taskora-listing-service/internal/domain"
)

// NotificationPublisher implements domain.NotificationGateway on top of a
// Kafka topic consumed by the delivery service.
type NotificationPublisher struct {
	writer *kafka.Writer
	newID  func() string
}

func NewNotificationPublisher(brokers []string, topic string) (*NotificationPublisher, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		newID: idGenerator,
	}, nil
}

func (p *NotificationPublisher) Notify(ctx context.Context, notification domain.Notification) error {
	event := NotificationEvent{
		EventID:     p.newID(),
		Verb:        notification.Verb,
		SenderID:    notification.SenderID,
		RecipientID: notification.RecipientID,
		TargetKind:  string(notification.TargetKind),
		TargetID:    notification.TargetID,
		Title:       notification.Title,
		Message:     notification.Message,
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.RecipientID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
