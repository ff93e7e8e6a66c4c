package repositories

import (
	"context"
	"database/sql"
	"errors"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type FlightRepository struct {
	DB *sql.DB
}

const flightSearchQuery = `
	SELECT f.Flight_ID, f.Flight_Number, f.Departure_Time, f.Arrival_Time,
	       f.Base_Price, f.Available_Seats, a.Name AS Airline_Name, COALESCE(a.Logo_URL, ''),
	       dep.Airport_Code, dep.City, arr.Airport_Code, arr.City
	FROM FLIGHT f
	JOIN AIRLINE a ON f.Airline_ID = a.Airline_ID
	JOIN AIRPORT dep ON f.Departure_Airport = dep.Airport_Code
	JOIN AIRPORT arr ON f.Arrival_Airport = arr.Airport_Code
	WHERE f.Departure_Airport = ?
	  AND f.Arrival_Airport = ?
	  AND DATE(f.Departure_Time) = ?
	  AND f.Available_Seats >= ?
	ORDER BY f.Base_Price ASC`

// Search returns candidate flights for one leg, cheapest first. Flights
// without enough remaining seats for the party are filtered out.
func (r FlightRepository) Search(ctx context.Context, q models.FlightSearch) ([]models.FlightCandidate, error) {
	rows, err := r.DB.QueryContext(ctx, flightSearchQuery,
		q.DepartureAirport, q.ArrivalAirport, q.DepartureDate, q.Passengers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FlightCandidate{}
	for rows.Next() {
		var c models.FlightCandidate
		if err := rows.Scan(
			&c.ID, &c.FlightNumber, &c.DepartureTime, &c.ArrivalTime,
			&c.BasePrice, &c.AvailableSeats, &c.AirlineName, &c.AirlineLogo,
			&c.DepartureCode, &c.DepartureCity, &c.ArrivalCode, &c.ArrivalCity,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetTx reads a flight row inside the booking transaction.
func (r FlightRepository) GetTx(ctx context.Context, tx *sql.Tx, id string) (models.Flight, error) {
	var f models.Flight
	err := tx.QueryRowContext(ctx, `
		SELECT Flight_ID, Flight_Number, Airline_ID, Departure_Airport, Arrival_Airport,
		       Departure_Time, Arrival_Time, Base_Price, Available_Seats
		FROM FLIGHT
		WHERE Flight_ID = ?
	`, id).Scan(
		&f.ID, &f.FlightNumber, &f.AirlineID, &f.DepartureAirport, &f.ArrivalAirport,
		&f.DepartureTime, &f.ArrivalTime, &f.BasePrice, &f.AvailableSeats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flight{}, domain.NotFoundError{Resource: "flight", Err: err}
		}
		return models.Flight{}, err
	}
	return f, nil
}

// DecrementSeatsTx atomically takes n seats from a flight. The WHERE guard
// keeps Available_Seats from ever going negative regardless of isolation
// level; a false return means capacity ran out between check and decrement.
func (r FlightRepository) DecrementSeatsTx(ctx context.Context, tx *sql.Tx, id string, n int) (bool, error) {
	res, err := tx.ExecContext(ctx, `
		UPDATE FLIGHT
		SET Available_Seats = Available_Seats - ?
		WHERE Flight_ID = ? AND Available_Seats >= ?
	`, n, id, n)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
