package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-reservations/activity-svc/internal/api/http"
	"restaurant-reservations/activity-svc/internal/domain"
	"restaurant-reservations/activity-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serveActivity(svc *mocks.ActivityInterface, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	httpapi.NewHandler(svc).RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetTotalsHandler(t *testing.T) {
	tests := []struct {
		name      string
		totals    domain.ResourceTotals
		mockError error
		wantCode  int
	}{
		{
			name:     "totals",
			totals:   domain.ResourceTotals{"user": {"created": 2}},
			wantCode: http.StatusOK,
		},
		{
			name:      "redis down",
			mockError: errors.New("connection refused"),
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := mocks.NewActivityInterface(t)
			svc.On("Totals", mock.Anything).Return(testCase.totals, testCase.mockError).Once()

			w := serveActivity(svc, "/api/activity")

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var body domain.ResourceTotals
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(2), body["user"]["created"])
			}
		})
	}
}

func TestGetTodayHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantCode  int
	}{
		{name: "default limit", query: "", wantLimit: 10, wantCode: http.StatusOK},
		{name: "explicit limit", query: "?limit=3", wantLimit: 3, wantCode: http.StatusOK},
		{name: "non-numeric limit", query: "?limit=many", wantCode: http.StatusBadRequest},
		{name: "limit too large", query: "?limit=1000", wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := mocks.NewActivityInterface(t)
			if testCase.wantLimit > 0 {
				svc.On("Today", mock.Anything, testCase.wantLimit).Return([]domain.EventCount{}, nil).Once()
			}

			w := serveActivity(svc, "/api/activity/today"+testCase.query)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.JSONEq(t, `[]`, w.Body.String())
			}
		})
	}
}

func TestActivityHealthCheck(t *testing.T) {
	w := serveActivity(mocks.NewActivityInterface(t), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"activity-svc"`)
}
