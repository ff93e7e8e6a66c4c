package repositories

import (
	"context"
	"database/sql"
	"errors"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type FlightBookingRepository struct {
	DB *sql.DB
}

// InsertTx writes the booking row inside the booking transaction. Returns
// an ID-collision error for the service to regenerate the identifier.
func (r FlightBookingRepository) InsertTx(ctx context.Context, tx *sql.Tx, b models.FlightBooking) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO FLIGHT_BOOKING
			(Booking_ID, User_ID, Outbound_Flight_ID, Return_Flight_ID,
			 Booking_Date, Number_Of_Passengers, Total_Amount, Payment_Status)
		VALUES (?, ?, ?, ?, CURDATE(), ?, ?, ?)
	`, b.ID, b.UserID, b.OutboundID, nullable(b.ReturnID), b.PassengerCount, b.TotalAmount, b.PaymentStatus)
	if isDuplicatePrimaryKey(err) {
		return errIDCollision
	}
	return err
}

// InsertPassengerTx writes one passenger row; callers insert rows in the
// order the client provided them.
func (r FlightBookingRepository) InsertPassengerTx(ctx context.Context, tx *sql.Tx, p models.Passenger) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO FLIGHT_PASSENGER
			(Passenger_ID, Booking_ID, Title, First_Name, Last_Name, Date_Of_Birth, Passport_Number)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.BookingID, p.Title, p.FirstName, p.LastName, p.DateOfBirth, p.PassportNumber)
	if isDuplicatePrimaryKey(err) {
		return errIDCollision
	}
	return err
}

const flightBookingListQuery = `
	SELECT fb.Booking_ID, fb.User_ID, fb.Outbound_Flight_ID, COALESCE(fb.Return_Flight_ID, ''),
	       fb.Booking_Date, fb.Number_Of_Passengers, fb.Total_Amount, fb.Payment_Status,
	       outbound.Flight_Number, outbound.Departure_Time, outbound.Arrival_Time,
	       outbound_dep.City, outbound_arr.City, outbound_airline.Name,
	       return_flight.Flight_Number, return_flight.Departure_Time, return_flight.Arrival_Time,
	       return_dep.City, return_arr.City, return_airline.Name
	FROM FLIGHT_BOOKING fb
	JOIN FLIGHT outbound ON fb.Outbound_Flight_ID = outbound.Flight_ID
	JOIN AIRPORT outbound_dep ON outbound.Departure_Airport = outbound_dep.Airport_Code
	JOIN AIRPORT outbound_arr ON outbound.Arrival_Airport = outbound_arr.Airport_Code
	JOIN AIRLINE outbound_airline ON outbound.Airline_ID = outbound_airline.Airline_ID
	LEFT JOIN FLIGHT return_flight ON fb.Return_Flight_ID = return_flight.Flight_ID
	LEFT JOIN AIRPORT return_dep ON return_flight.Departure_Airport = return_dep.Airport_Code
	LEFT JOIN AIRPORT return_arr ON return_flight.Arrival_Airport = return_arr.Airport_Code
	LEFT JOIN AIRLINE return_airline ON return_flight.Airline_ID = return_airline.Airline_ID
	WHERE fb.User_ID = ?
	ORDER BY fb.Booking_Date DESC`

// ListByUser returns all bookings owned by a user with joined display
// fields for both legs, newest booking date first.
func (r FlightBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.FlightBookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx, flightBookingListQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FlightBookingDetail{}
	for rows.Next() {
		var d models.FlightBookingDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.OutboundID, &d.ReturnID,
			&d.BookingDate, &d.PassengerCount, &d.TotalAmount, &d.PaymentStatus,
			&d.OutboundFlightNumber, &d.OutboundDeparture, &d.OutboundArrival,
			&d.OutboundFromCity, &d.OutboundToCity, &d.OutboundAirline,
			&d.ReturnFlightNumber, &d.ReturnDeparture, &d.ReturnArrival,
			&d.ReturnFromCity, &d.ReturnToCity, &d.ReturnAirline,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetForUser loads a single booking scoped to its owner, plus its
// passengers, for the e-ticket document.
func (r FlightBookingRepository) GetForUser(ctx context.Context, bookingID, userID string) (models.FlightBooking, []models.Passenger, error) {
	var b models.FlightBooking
	var returnID sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT Booking_ID, User_ID, Outbound_Flight_ID, Return_Flight_ID,
		       Booking_Date, Number_Of_Passengers, Total_Amount, Payment_Status
		FROM FLIGHT_BOOKING
		WHERE Booking_ID = ? AND User_ID = ?
	`, bookingID, userID).Scan(
		&b.ID, &b.UserID, &b.OutboundID, &returnID,
		&b.BookingDate, &b.PassengerCount, &b.TotalAmount, &b.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FlightBooking{}, nil, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.FlightBooking{}, nil, err
	}
	b.ReturnID = returnID.String

	rows, err := r.DB.QueryContext(ctx, `
		SELECT Passenger_ID, Booking_ID, Title, First_Name, Last_Name, Date_Of_Birth, Passport_Number
		FROM FLIGHT_PASSENGER
		WHERE Booking_ID = ?
		ORDER BY Passenger_ID ASC
	`, bookingID)
	if err != nil {
		return models.FlightBooking{}, nil, err
	}
	defer rows.Close()

	passengers := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Title, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.PassportNumber); err != nil {
			return models.FlightBooking{}, nil, err
		}
		passengers = append(passengers, p)
	}
	return b, passengers, rows.Err()
}
