package service

import (
	"context"
	"log"
	"time"

	"restaurant-reservations/reservation-svc/internal/domain"
)

const (
	resourceUser        = "user"
	resourceRestaurant  = "restaurant"
	resourceReservation = "reservation"
	resourceMenu        = "menu"
)

// sideEffects wraps the optional cache and event publisher. Both may be nil;
// their failures are logged and never change the outcome of a request.
type sideEffects struct {
	cache     RecordCache
	publisher EventPublisher
}

func (s sideEffects) cached(ctx context.Context, resource string, id int, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, s.cache.RecordKey(resource, id), dest)
	if err != nil {
		log.Printf("Warning: cache read for %s %d failed: %v", resource, id, err)
		return false
	}
	return found
}

func (s sideEffects) remember(ctx context.Context, resource string, id int, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.RecordKey(resource, id), value); err != nil {
		log.Printf("Warning: cache write for %s %d failed: %v", resource, id, err)
	}
}

func (s sideEffects) forget(ctx context.Context, resource string, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cache.RecordKey(resource, id)); err != nil {
		log.Printf("Warning: cache eviction for %s %d failed: %v", resource, id, err)
	}
}

func (s sideEffects) emit(ctx context.Context, resource, action string, id int) {
	if s.publisher == nil {
		return
	}
	event := domain.Event{
		Type:      resource + "." + action,
		Resource:  resource,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event.Type, err)
	}
}

type UserService struct {
	repo UserRepository
	sideEffects
}

func NewUserService(repo UserRepository, cache RecordCache, publisher EventPublisher) *UserService {
	return &UserService{repo: repo, sideEffects: sideEffects{cache: cache, publisher: publisher}}
}

func (s *UserService) Create(ctx context.Context, req UserRequest) (*domain.User, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	user := &domain.User{Username: *req.Username, Email: *req.Email, Password: *req.Password}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.remember(ctx, resourceUser, user.ID, user)
	s.emit(ctx, resourceUser, "created", user.ID)
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if s.cached(ctx, resourceUser, id, &user) {
		return &user, nil
	}
	found, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, resourceUser, id, found)
	return found, nil
}

func (s *UserService) Update(ctx context.Context, id int, req UserRequest) (*domain.User, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	user := &domain.User{ID: id, Username: *req.Username, Email: *req.Email, Password: *req.Password}
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	s.remember(ctx, resourceUser, id, user)
	s.emit(ctx, resourceUser, "updated", id)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.forget(ctx, resourceUser, id)
	s.emit(ctx, resourceUser, "deleted", id)
	return nil
}

var _ UserServiceInterface = (*UserService)(nil)

type RestaurantService struct {
	repo RestaurantRepository
	sideEffects
}

func NewRestaurantService(repo RestaurantRepository, cache RecordCache, publisher EventPublisher) *RestaurantService {
	return &RestaurantService{repo: repo, sideEffects: sideEffects{cache: cache, publisher: publisher}}
}

func (s *RestaurantService) Create(ctx context.Context, req RestaurantRequest) (*domain.Restaurant, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	rest := &domain.Restaurant{Name: *req.Name, Location: *req.Location, MaxCapacity: *req.MaxCapacity}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return nil, err
	}
	s.remember(ctx, resourceRestaurant, rest.ID, rest)
	s.emit(ctx, resourceRestaurant, "created", rest.ID)
	return rest, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if s.cached(ctx, resourceRestaurant, id, &rest) {
		return &rest, nil
	}
	found, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, resourceRestaurant, id, found)
	return found, nil
}

func (s *RestaurantService) Update(ctx context.Context, id int, req RestaurantRequest) (*domain.Restaurant, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	rest := &domain.Restaurant{ID: id, Name: *req.Name, Location: *req.Location, MaxCapacity: *req.MaxCapacity}
	if err := s.repo.UpdateRestaurant(ctx, rest); err != nil {
		return nil, err
	}
	s.remember(ctx, resourceRestaurant, id, rest)
	s.emit(ctx, resourceRestaurant, "updated", id)
	return rest, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteRestaurant(ctx, id); err != nil {
		return err
	}
	s.forget(ctx, resourceRestaurant, id)
	s.emit(ctx, resourceRestaurant, "deleted", id)
	return nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type ReservationService struct {
	repo      ReservationRepository
	qrEncoder QRGenerator
	sideEffects
}

func NewReservationService(repo ReservationRepository, qr QRGenerator, cache RecordCache, publisher EventPublisher) *ReservationService {
	return &ReservationService{repo: repo, qrEncoder: qr, sideEffects: sideEffects{cache: cache, publisher: publisher}}
}

// Create stores a reservation as given. Capacity and overlap are not checked.
func (s *ReservationService) Create(ctx context.Context, req ReservationRequest) (*domain.Reservation, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseReservationDate(*req.ReservationDate)
	if err != nil {
		return nil, NewValidationError("reservation_date", "datetime",
			"reservation_date must match YYYY-MM-DDTHH:MM:SS")
	}
	res := &domain.Reservation{
		UserID:          *req.UserID,
		RestaurantID:    *req.RestaurantID,
		ReservationDate: date,
		Guests:          *req.Guests,
	}
	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}
	s.remember(ctx, resourceReservation, res.ID, res)
	s.emit(ctx, resourceReservation, "created", res.ID)
	return res, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx)
}

func (s *ReservationService) Get(ctx context.Context, id int) (*domain.Reservation, error) {
	var res domain.Reservation
	if s.cached(ctx, resourceReservation, id, &res) {
		return &res, nil
	}
	found, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, resourceReservation, id, found)
	return found, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteReservation(ctx, id); err != nil {
		return err
	}
	s.forget(ctx, resourceReservation, id)
	s.emit(ctx, resourceReservation, "deleted", id)
	return nil
}

// QRCode renders a PNG confirmation code for an existing reservation.
func (s *ReservationService) QRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

var _ ReservationServiceInterface = (*ReservationService)(nil)

type MenuService struct {
	repo MenuRepository
	sideEffects
}

func NewMenuService(repo MenuRepository, cache RecordCache, publisher EventPublisher) *MenuService {
	return &MenuService{repo: repo, sideEffects: sideEffects{cache: cache, publisher: publisher}}
}

func (s *MenuService) Create(ctx context.Context, req MenuRequest) (*domain.Menu, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	menu := &domain.Menu{
		RestaurantID: *req.RestaurantID,
		Name:         *req.Name,
		Description:  req.Description,
		Price:        *req.Price,
	}
	if err := s.repo.CreateMenu(ctx, menu); err != nil {
		return nil, err
	}
	s.remember(ctx, resourceMenu, menu.ID, menu)
	s.emit(ctx, resourceMenu, "created", menu.ID)
	return menu, nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.Menu, error) {
	return s.repo.ListMenus(ctx)
}

func (s *MenuService) Get(ctx context.Context, id int) (*domain.Menu, error) {
	var menu domain.Menu
	if s.cached(ctx, resourceMenu, id, &menu) {
		return &menu, nil
	}
	found, err := s.repo.GetMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, resourceMenu, id, found)
	return found, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
