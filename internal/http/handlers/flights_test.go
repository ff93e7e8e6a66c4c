package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travels/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlightSearchRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := FlightHandler{Flights: repositories.FlightRepository{DB: db}}
	r := gin.New()
	r.GET("/api/flights/search", h.Search)
	return r, mock
}

func TestFlightSearchMissingParams(t *testing.T) {
	r, _ := newFlightSearchRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flights/search?departureAirport=CGK", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "required")
}

func TestFlightSearchOneWay(t *testing.T) {
	r, mock := newFlightSearchRouter(t)

	dep := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM FLIGHT f").
		WithArgs("CGK", "DPS", "2026-03-10", 2).
		WillReturnRows(sqlmock.NewRows([]string{
			"Flight_ID", "Flight_Number", "Departure_Time", "Arrival_Time",
			"Base_Price", "Available_Seats", "Airline_Name", "Logo_URL",
			"Departure_Code", "Departure_City", "Arrival_Code", "Arrival_City",
		}).AddRow("FL1", "GA100", dep, dep.Add(2*time.Hour), 120.5, 10,
			"Garuda", "", "CGK", "Jakarta", "DPS", "Denpasar"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/flights/search?departureAirport=CGK&arrivalAirport=DPS&departureDate=2026-03-10&passengers=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Outbound []json.RawMessage `json:"outboundFlights"`
		Return   []json.RawMessage `json:"returnFlights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Outbound, 1)
	assert.Empty(t, body.Return)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlightSearchBadDate(t *testing.T) {
	r, _ := newFlightSearchRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/flights/search?departureAirport=CGK&arrivalAirport=DPS&departureDate=next-tuesday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
