package service

import (
	"context"
	"time"

	"restaurant-reservations/activity-svc/internal/domain"
	"restaurant-reservations/activity-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Record(ctx context.Context, event domain.Event) error
	Totals(ctx context.Context) (domain.ResourceTotals, error)
	Daily(ctx context.Context, day time.Time, limit int) ([]domain.EventCount, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, message kafka.Message) error
}

type ActivityInterface interface {
	Totals(ctx context.Context) (domain.ResourceTotals, error)
	Today(ctx context.Context, limit int) ([]domain.EventCount, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ ActivityInterface = (*ActivityService)(nil)
)
