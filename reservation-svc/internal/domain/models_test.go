package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation_JSONDateLayout(t *testing.T) {
	reservation := Reservation{
		ID:              3,
		UserID:          1,
		RestaurantID:    2,
		ReservationDate: time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC),
		Guests:          4,
	}

	body, err := json.Marshal(reservation)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"user_id":1,"restaurant_id":2,"reservation_date":"2024-12-31T20:00:00","guests":4}`, string(body))

	var decoded Reservation
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, reservation, decoded)
}

func TestReservation_UnmarshalRejectsOtherLayouts(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "day first", date: "31/12/2024"},
		{name: "fractional seconds", date: "2024-12-31T20:00:00.999999"},
		{name: "comma fraction", date: "2024-12-31T20:00:00,5"},
		{name: "trailing zone", date: "2024-12-31T20:00:00Z"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var decoded Reservation
			err := json.Unmarshal([]byte(`{"id":1,"reservation_date":"`+testCase.date+`"}`), &decoded)
			assert.Error(t, err)
		})
	}
}

func TestParseReservationDate(t *testing.T) {
	parsed, err := ParseReservationDate("2024-12-31T20:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), parsed)

	_, err = ParseReservationDate("2024-12-31T20:00:00.5")
	assert.Error(t, err)
}

func TestMenu_NullDescription(t *testing.T) {
	body, err := json.Marshal(Menu{ID: 1, RestaurantID: 2, Name: "Lunch", Price: 9.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"restaurant_id":2,"name":"Lunch","description":null,"price":9.5}`, string(body))
}
