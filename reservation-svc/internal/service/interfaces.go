package service

import (
	"context"

	"restaurant-reservations/reservation-svc/internal/domain"
	"restaurant-reservations/reservation-svc/internal/storage"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int) error
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int) error
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, res *domain.Reservation) error
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, id int) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
}

type MenuRepository interface {
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	GetMenu(ctx context.Context, id int) (*domain.Menu, error)
}

type RecordCache interface {
	RecordKey(resource string, id int) string
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type UserServiceInterface interface {
	Create(ctx context.Context, req UserRequest) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, id int, req UserRequest) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, req RestaurantRequest) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	Update(ctx context.Context, id int, req RestaurantRequest) (*domain.Restaurant, error)
	Delete(ctx context.Context, id int) error
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, req ReservationRequest) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id int) (*domain.Reservation, error)
	Delete(ctx context.Context, id int) error
	QRCode(ctx context.Context, id int) ([]byte, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, req MenuRequest) (*domain.Menu, error)
	List(ctx context.Context) ([]domain.Menu, error)
	Get(ctx context.Context, id int) (*domain.Menu, error)
}

var (
	_ UserRepository        = (*storage.PostgresRepository)(nil)
	_ RestaurantRepository  = (*storage.PostgresRepository)(nil)
	_ ReservationRepository = (*storage.PostgresRepository)(nil)
	_ MenuRepository        = (*storage.PostgresRepository)(nil)
	_ RecordCache           = (*storage.RedisCache)(nil)
	_ EventPublisher        = (*storage.KafkaPublisher)(nil)
)
