package storage

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-reservations/reservation-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func deleted(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.Password,
	).Scan(&user.ID)
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, username, email, password FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Password); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, email, password FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE users SET username=$1, email=$2, password=$3 WHERE id=$4 RETURNING id, username, email, password",
		user.Username, user.Email, user.Password, user.ID).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	return notFound(err)
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, id int) error {
	return deleted(r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=$1", id))
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, location, max_capacity) VALUES ($1, $2, $3) RETURNING id",
		rest.Name, rest.Location, rest.MaxCapacity,
	).Scan(&rest.ID)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, location, max_capacity FROM restaurants ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.MaxCapacity); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, location, max_capacity FROM restaurants WHERE id = $1", id).
		Scan(&rest.ID, &rest.Name, &rest.Location, &rest.MaxCapacity)
	if err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE restaurants SET name=$1, location=$2, max_capacity=$3 WHERE id=$4 RETURNING id, name, location, max_capacity",
		rest.Name, rest.Location, rest.MaxCapacity, rest.ID).
		Scan(&rest.ID, &rest.Name, &rest.Location, &rest.MaxCapacity)
	return notFound(err)
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id int) error {
	return deleted(r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id=$1", id))
}

func (r *PostgresRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO reservations (user_id, restaurant_id, reservation_date, guests) VALUES ($1, $2, $3, $4) RETURNING id",
		res.UserID, res.RestaurantID, res.ReservationDate, res.Guests,
	).Scan(&res.ID)
}

func (r *PostgresRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, user_id, restaurant_id, reservation_date, guests FROM reservations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.RestaurantID, &res.ReservationDate, &res.Guests); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, user_id, restaurant_id, reservation_date, guests FROM reservations WHERE id = $1", id).
		Scan(&res.ID, &res.UserID, &res.RestaurantID, &res.ReservationDate, &res.Guests)
	if err != nil {
		return nil, notFound(err)
	}
	return &res, nil
}

func (r *PostgresRepository) DeleteReservation(ctx context.Context, id int) error {
	return deleted(r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id=$1", id))
}

func (r *PostgresRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO menus (restaurant_id, name, description, price) VALUES ($1, $2, $3, $4) RETURNING id",
		menu.RestaurantID, menu.Name, menu.Description, menu.Price,
	).Scan(&menu.ID)
}

func (r *PostgresRepository) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, restaurant_id, name, description, price FROM menus ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]domain.Menu, 0)
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *menu)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) GetMenu(ctx context.Context, id int) (*domain.Menu, error) {
	menu, err := scanMenu(r.DB.QueryRowContext(ctx,
		"SELECT id, restaurant_id, name, description, price FROM menus WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return menu, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMenu(row scanner) (*domain.Menu, error) {
	var menu domain.Menu
	var description sql.NullString
	if err := row.Scan(&menu.ID, &menu.RestaurantID, &menu.Name, &description, &menu.Price); err != nil {
		return nil, err
	}
	if description.Valid {
		menu.Description = &description.String
	}
	return &menu, nil
}
