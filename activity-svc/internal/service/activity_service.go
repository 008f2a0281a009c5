package service

import (
	"context"
	"time"

	"restaurant-reservations/activity-svc/internal/domain"
)

type ActivityService struct {
	store StoreInterface
	now   func() time.Time
}

func NewActivityService(store StoreInterface) *ActivityService {
	return &ActivityService{store: store, now: time.Now}
}

func (s *ActivityService) Totals(ctx context.Context) (domain.ResourceTotals, error) {
	return s.store.Totals(ctx)
}

func (s *ActivityService) Today(ctx context.Context, limit int) ([]domain.EventCount, error) {
	return s.store.Daily(ctx, s.now(), limit)
}
