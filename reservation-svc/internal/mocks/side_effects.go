package mocks

import (
	"context"

	"restaurant-reservations/reservation-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type RecordCache struct {
	mock.Mock
}

func NewRecordCache(t testingT) *RecordCache {
	m := &RecordCache{}
	register(&m.Mock, t)
	return m
}

func (_m *RecordCache) RecordKey(resource string, id int) string {
	return _m.Called(resource, id).String(0)
}

func (_m *RecordCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	ret := _m.Called(ctx, key, dest)
	return ret.Bool(0), ret.Error(1)
}

func (_m *RecordCache) Set(ctx context.Context, key string, value interface{}) error {
	return _m.Called(ctx, key, value).Error(0)
}

func (_m *RecordCache) Delete(ctx context.Context, key string) error {
	return _m.Called(ctx, key).Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	register(&m.Mock, t)
	return m
}

func (_m *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	return _m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(&m.Mock, t)
	return m
}

func (_m *QRGenerator) Generate(reservationID int) ([]byte, error) {
	ret := _m.Called(reservationID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}
