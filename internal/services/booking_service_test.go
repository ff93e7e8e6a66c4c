package services

import (
	"context"
	"testing"
	"time"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return BookingService{
		DB:       db,
		Flights:  repositories.FlightRepository{DB: db},
		Bookings: repositories.FlightBookingRepository{DB: db},
	}, mock
}

func flightRow(id string, price float64, seats int) *sqlmock.Rows {
	dep := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"Flight_ID", "Flight_Number", "Airline_ID", "Departure_Airport", "Arrival_Airport",
		"Departure_Time", "Arrival_Time", "Base_Price", "Available_Seats",
	}).AddRow(id, "GA100", "AL1", "CGK", "DPS", dep, dep.Add(2*time.Hour), price, seats)
}

func passengers(n int) []models.Passenger {
	out := make([]models.Passenger, n)
	for i := range out {
		out[i] = models.Passenger{
			Title:          "Mr",
			FirstName:      "Test",
			LastName:       "Passenger",
			DateOfBirth:    "1990-01-01",
			PassportNumber: "A1234567",
		}
	}
	return out
}

func TestFlightBookingOneWay(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL1").
		WillReturnRows(flightRow("FL1", 120.50, 10))
	mock.ExpectExec("INSERT INTO FLIGHT_BOOKING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO FLIGHT_PASSENGER").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO FLIGHT_PASSENGER").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE FLIGHT").WithArgs(2, "FL1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.Create(context.Background(), "U000001", FlightBookingInput{
		OutboundFlightID: "FL1",
		Passengers:       2,
		PassengerDetails: passengers(2),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.TotalAmount != 241.0 {
		t.Fatalf("total amount = %v, want 241", booking.TotalAmount)
	}
	if booking.PaymentStatus != models.PaymentPending {
		t.Fatalf("payment status = %q, want Pending", booking.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightBookingRoundTripPricing(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL1").
		WillReturnRows(flightRow("FL1", 100, 10))
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL2").
		WillReturnRows(flightRow("FL2", 150, 10))
	mock.ExpectExec("INSERT INTO FLIGHT_BOOKING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO FLIGHT_PASSENGER").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("UPDATE FLIGHT").WithArgs(3, "FL1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE FLIGHT").WithArgs(3, "FL2", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.Create(context.Background(), "U000001", FlightBookingInput{
		OutboundFlightID: "FL1",
		ReturnFlightID:   "FL2",
		Passengers:       3,
		PassengerDetails: passengers(3),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.TotalAmount != 750 {
		t.Fatalf("total amount = %v, want 750", booking.TotalAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightBookingInsufficientSeats(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL1").
		WillReturnRows(flightRow("FL1", 100, 1))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "U000001", FlightBookingInput{
		OutboundFlightID: "FL1",
		Passengers:       2,
		PassengerDetails: passengers(2),
	})
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightBookingDecrementGuardLoses(t *testing.T) {
	// The early seat check passes but a concurrent booking drains the row
	// before the guarded decrement; zero affected rows must roll everything
	// back as a capacity failure.
	svc, mock := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL1").
		WillReturnRows(flightRow("FL1", 100, 2))
	mock.ExpectExec("INSERT INTO FLIGHT_BOOKING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO FLIGHT_PASSENGER").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE FLIGHT").WithArgs(1, "FL1", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "U000001", FlightBookingInput{
		OutboundFlightID: "FL1",
		Passengers:       1,
		PassengerDetails: passengers(1),
	})
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightBookingReturnFlightMissing(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL1").
		WillReturnRows(flightRow("FL1", 100, 10))
	mock.ExpectQuery("SELECT Flight_ID, Flight_Number").WithArgs("FL9").
		WillReturnRows(sqlmock.NewRows([]string{
			"Flight_ID", "Flight_Number", "Airline_ID", "Departure_Airport", "Arrival_Airport",
			"Departure_Time", "Arrival_Time", "Base_Price", "Available_Seats",
		}))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "U000001", FlightBookingInput{
		OutboundFlightID: "FL1",
		ReturnFlightID:   "FL9",
		Passengers:       1,
		PassengerDetails: passengers(1),
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightBookingPassengerCountMismatch(t *testing.T) {
	svc, mock := newBookingService(t)

	_, err := svc.Create(context.Background(), "U000001", FlightBookingInput{
		OutboundFlightID: "FL1",
		Passengers:       3,
		PassengerDetails: passengers(2),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}
