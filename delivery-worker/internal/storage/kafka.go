package storage

import (
	"context"
	"encoding/json"
	"log"

	"foodrun/delivery-worker/internal/domain"
	"foodrun/delivery-worker/internal/service"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaNotifier logs each notification and forwards it to the
// notifications topic keyed by user.
type KafkaNotifier struct {
	Writer MessageWriter
}

func NewKafkaNotifier(writer MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{Writer: writer}
}

var (
	_ service.Notifier = (*KafkaNotifier)(nil)
	_ MessageWriter    = (*kafka.Writer)(nil)
)

func (n *KafkaNotifier) Notify(ctx context.Context, notification domain.Notification) error {
	log.Printf("Notification for user %s: %s - %s", notification.UserID, notification.Title, notification.Body)

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return n.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.UserID),
		Value: payload,
	})
}
