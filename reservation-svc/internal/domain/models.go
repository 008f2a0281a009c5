package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ReservationDateLayout is the only accepted textual form of a reservation date.
const ReservationDateLayout = "2006-01-02T15:04:05"

var ErrNotFound = errors.New("record not found")

// ParseReservationDate accepts exactly ReservationDateLayout. time.Parse on its
// own lets a fractional-seconds suffix through after the seconds field.
func ParseReservationDate(value string) (time.Time, error) {
	parsed, err := time.Parse(ReservationDateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.Format(ReservationDateLayout) != value {
		return time.Time{}, fmt.Errorf("reservation date %q does not match %s", value, ReservationDateLayout)
	}
	return parsed, nil
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Restaurant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	MaxCapacity int    `json:"max_capacity"`
}

type Menu struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
}

type Reservation struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	RestaurantID    int       `json:"restaurant_id"`
	ReservationDate time.Time `json:"reservation_date"`
	Guests          int       `json:"guests"`
}

func (r Reservation) MarshalJSON() ([]byte, error) {
	type alias Reservation
	return json.Marshal(struct {
		alias
		ReservationDate string `json:"reservation_date"`
	}{
		alias:           alias(r),
		ReservationDate: r.ReservationDate.Format(ReservationDateLayout),
	})
}

func (r *Reservation) UnmarshalJSON(data []byte) error {
	type alias Reservation
	aux := struct {
		*alias
		ReservationDate string `json:"reservation_date"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ReservationDate == "" {
		r.ReservationDate = time.Time{}
		return nil
	}
	parsed, err := ParseReservationDate(aux.ReservationDate)
	if err != nil {
		return err
	}
	r.ReservationDate = parsed
	return nil
}

// Event is published after every successful write.
type Event struct {
	Type      string    `json:"type"`
	Resource  string    `json:"resource"`
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
