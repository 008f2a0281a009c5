package mocks

import (
	"context"

	"restaurant-reservations/reservation-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return _m.Called(ctx, user).Error(0)
}

func (_m *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	return _m.Called(ctx, user).Error(0)
}

func (_m *UserRepository) DeleteUser(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return _m.Called(ctx, rest).Error(0)
}

func (_m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return _m.Called(ctx, rest).Error(0)
}

func (_m *RestaurantRepository) DeleteRestaurant(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

type ReservationRepository struct {
	mock.Mock
}

func NewReservationRepository(t testingT) *ReservationRepository {
	m := &ReservationRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *ReservationRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	return _m.Called(ctx, res).Error(0)
}

func (_m *ReservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Reservation
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationRepository) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Reservation
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationRepository) DeleteReservation(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *MenuRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	return _m.Called(ctx, menu).Error(0)
}

func (_m *MenuRepository) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenu(ctx context.Context, id int) (*domain.Menu, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}
