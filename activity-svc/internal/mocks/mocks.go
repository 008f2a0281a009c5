// Package mocks holds testify mocks for the activity service interfaces.
package mocks

import (
	"context"
	"time"

	"restaurant-reservations/activity-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StoreInterface) Record(ctx context.Context, event domain.Event) error {
	return _m.Called(ctx, event).Error(0)
}

func (_m *StoreInterface) Totals(ctx context.Context) (domain.ResourceTotals, error) {
	ret := _m.Called(ctx)
	var r0 domain.ResourceTotals
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.ResourceTotals)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) Daily(ctx context.Context, day time.Time, limit int) ([]domain.EventCount, error) {
	ret := _m.Called(ctx, day, limit)
	var r0 []domain.EventCount
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.EventCount)
	}
	return r0, ret.Error(1)
}

type MessageReader struct {
	mock.Mock
}

func NewMessageReader(t testingT) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MessageReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	var r0 kafka.Message
	if v := ret.Get(0); v != nil {
		r0 = v.(kafka.Message)
	}
	return r0, ret.Error(1)
}

func (_m *MessageReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	return _m.Called(ctx, msgs).Error(0)
}

type ActivityInterface struct {
	mock.Mock
}

func NewActivityInterface(t testingT) *ActivityInterface {
	m := &ActivityInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ActivityInterface) Totals(ctx context.Context) (domain.ResourceTotals, error) {
	ret := _m.Called(ctx)
	var r0 domain.ResourceTotals
	if v := ret.Get(0); v != nil {
		r0 = v.(domain.ResourceTotals)
	}
	return r0, ret.Error(1)
}

func (_m *ActivityInterface) Today(ctx context.Context, limit int) ([]domain.EventCount, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.EventCount
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.EventCount)
	}
	return r0, ret.Error(1)
}
