package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"restaurant-reservations/reservation-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func EventKey(event domain.Event) []byte {
	return []byte(event.Resource + ":" + strconv.Itoa(event.ID))
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   EventKey(event),
		Value: payload,
	})
}
