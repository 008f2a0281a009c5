package mocks

import (
	"context"

	"restaurant-reservations/reservation-svc/internal/domain"
	"restaurant-reservations/reservation-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

type UserServiceInterface struct {
	mock.Mock
}

func NewUserServiceInterface(t testingT) *UserServiceInterface {
	m := &UserServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *UserServiceInterface) Create(ctx context.Context, req service.UserRequest) (*domain.User, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserServiceInterface) List(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserServiceInterface) Get(ctx context.Context, id int) (*domain.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserServiceInterface) Update(ctx context.Context, id int, req service.UserRequest) (*domain.User, error) {
	ret := _m.Called(ctx, id, req)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserServiceInterface) Delete(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t testingT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *RestaurantServiceInterface) Create(ctx context.Context, req service.RestaurantRequest) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) List(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) Update(ctx context.Context, id int, req service.RestaurantRequest) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id, req)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) Delete(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

type ReservationServiceInterface struct {
	mock.Mock
}

func NewReservationServiceInterface(t testingT) *ReservationServiceInterface {
	m := &ReservationServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *ReservationServiceInterface) Create(ctx context.Context, req service.ReservationRequest) (*domain.Reservation, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Reservation
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationServiceInterface) List(ctx context.Context) ([]domain.Reservation, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Reservation
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationServiceInterface) Get(ctx context.Context, id int) (*domain.Reservation, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Reservation
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationServiceInterface) Delete(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *ReservationServiceInterface) QRCode(ctx context.Context, id int) ([]byte, error) {
	ret := _m.Called(ctx, id)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *MenuServiceInterface) Create(ctx context.Context, req service.MenuRequest) (*domain.Menu, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) List(ctx context.Context) ([]domain.Menu, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Get(ctx context.Context, id int) (*domain.Menu, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}
