package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant-reservations/activity-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

var ErrInvalidEvent = errors.New("invalid event")

const defaultRetryDelay = 500 * time.Millisecond

// Consumer commits an offset only after its event is recorded, so delivery is
// at-least-once. Invalid events are committed and skipped.
type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads change events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Activity Service consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Activity consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		if err := c.handle(ctx, message); err != nil {
			log.Println("Activity consumer stopped")
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				log.Println("Activity consumer stopped")
				return
			}
			log.Printf("Warning: failed to commit offset %d: %v", message.Offset, err)
		}
	}
}

// handle retries store failures until they succeed; it only returns an error
// when ctx ends first.
func (c *Consumer) handle(ctx context.Context, message kafka.Message) error {
	for attempt := 1; ; attempt++ {
		err := c.Process(ctx, message)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrInvalidEvent) {
			log.Printf("Warning: skipping message at offset %d: %v", message.Offset, err)
			return nil
		}
		log.Printf("Error processing message at offset %d (attempt %d): %v", message.Offset, attempt, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.RetryDelay):
		}
	}
}

func (c *Consumer) Process(ctx context.Context, message kafka.Message) error {
	var event domain.Event
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = message.Time
	}
	if !event.Valid() {
		return fmt.Errorf("%w: type %q resource %q timestamp %s", ErrInvalidEvent, event.Type, event.Resource, event.Timestamp)
	}

	if err := c.Store.Record(ctx, event); err != nil {
		return fmt.Errorf("record %s: %w", event.Type, err)
	}
	return nil
}
