package services

import (
	"context"
	"database/sql"
	"strings"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"
	"travels/internal/utils"
)

// idRetries bounds regeneration attempts when a random identifier collides
// with an existing row.
const idRetries = 3

// FlightBookingInput is the request body for POST /api/flights/booking.
type FlightBookingInput struct {
	OutboundFlightID string             `json:"outboundFlightId"`
	ReturnFlightID   string             `json:"returnFlightId"`
	Passengers       int                `json:"passengers"`
	PassengerDetails []models.Passenger `json:"passengerDetails"`
}

// BookingService is the flight booking engine. A booking, its passenger
// rows and the seat decrement(s) commit together or not at all; the seat
// counter can never go negative because the decrement itself is guarded.
type BookingService struct {
	DB       *sql.DB
	Flights  repositories.FlightRepository
	Bookings repositories.FlightBookingRepository
}

// Create validates the request, then runs the reservation transaction:
// flight lookups, price computation, booking + passenger inserts and the
// conditional seat decrements. Lookup and capacity failures keep their
// classification even when detected mid-transaction.
func (s BookingService) Create(ctx context.Context, userID string, in FlightBookingInput) (models.FlightBooking, error) {
	if strings.TrimSpace(in.OutboundFlightID) == "" {
		return models.FlightBooking{}, domain.ValidationError{Field: "outboundFlightId", Msg: "required"}
	}
	if in.Passengers < 1 {
		return models.FlightBooking{}, domain.ValidationError{Field: "passengers", Msg: "must be a positive integer"}
	}
	if len(in.PassengerDetails) == 0 {
		return models.FlightBooking{}, domain.ValidationError{Field: "passengerDetails", Msg: "required"}
	}
	if len(in.PassengerDetails) != in.Passengers {
		return models.FlightBooking{}, domain.ValidationError{
			Field: "passengerDetails",
			Msg:   "must contain one entry per passenger",
		}
	}

	var (
		booking models.FlightBooking
		err     error
	)
	for attempt := 0; attempt < idRetries; attempt++ {
		booking, err = s.createOnce(ctx, userID, in)
		if !repositories.IsIDCollision(err) {
			break
		}
	}
	if err != nil {
		if repositories.IsIDCollision(err) {
			return models.FlightBooking{}, domain.InternalError{Msg: "could not allocate booking identifier", Err: err}
		}
		return models.FlightBooking{}, err
	}
	return booking, nil
}

func (s BookingService) createOnce(ctx context.Context, userID string, in FlightBookingInput) (models.FlightBooking, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.FlightBooking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	outbound, err := s.Flights.GetTx(ctx, tx, in.OutboundFlightID)
	if err != nil {
		return models.FlightBooking{}, err
	}
	if outbound.AvailableSeats < in.Passengers {
		return models.FlightBooking{}, domain.CapacityError{Resource: "outbound flight"}
	}

	total := outbound.BasePrice * float64(in.Passengers)

	// The return leg is checked independently; booking the same flight for
	// both legs is allowed and decrements it twice.
	if in.ReturnFlightID != "" {
		ret, err := s.Flights.GetTx(ctx, tx, in.ReturnFlightID)
		if err != nil {
			if domain.IsNotFound(err) {
				return models.FlightBooking{}, domain.NotFoundError{Resource: "return flight"}
			}
			return models.FlightBooking{}, err
		}
		if ret.AvailableSeats < in.Passengers {
			return models.FlightBooking{}, domain.CapacityError{Resource: "return flight"}
		}
		total += ret.BasePrice * float64(in.Passengers)
	}

	booking := models.FlightBooking{
		ID:             utils.NewFlightBookingID(),
		UserID:         userID,
		OutboundID:     in.OutboundFlightID,
		ReturnID:       in.ReturnFlightID,
		PassengerCount: in.Passengers,
		TotalAmount:    total,
		PaymentStatus:  models.PaymentPending,
	}
	if err := s.Bookings.InsertTx(ctx, tx, booking); err != nil {
		return models.FlightBooking{}, err
	}

	for _, detail := range in.PassengerDetails {
		p := detail
		p.BookingID = booking.ID
		if err := s.insertPassenger(ctx, tx, p); err != nil {
			return models.FlightBooking{}, err
		}
	}

	ok, err := s.Flights.DecrementSeatsTx(ctx, tx, in.OutboundFlightID, in.Passengers)
	if err != nil {
		return models.FlightBooking{}, domain.InternalError{Err: err}
	}
	if !ok {
		return models.FlightBooking{}, domain.CapacityError{Resource: "outbound flight"}
	}

	if in.ReturnFlightID != "" {
		ok, err := s.Flights.DecrementSeatsTx(ctx, tx, in.ReturnFlightID, in.Passengers)
		if err != nil {
			return models.FlightBooking{}, domain.InternalError{Err: err}
		}
		if !ok {
			return models.FlightBooking{}, domain.CapacityError{Resource: "return flight"}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.FlightBooking{}, domain.InternalError{Err: err}
	}
	return booking, nil
}

// insertPassenger retries with a fresh passenger ID on a primary-key
// collision; a retry here stays inside the surrounding transaction.
func (s BookingService) insertPassenger(ctx context.Context, tx *sql.Tx, p models.Passenger) error {
	var err error
	for attempt := 0; attempt < idRetries; attempt++ {
		p.ID = utils.NewPassengerID()
		err = s.Bookings.InsertPassengerTx(ctx, tx, p)
		if !repositories.IsIDCollision(err) {
			return err
		}
	}
	return err
}

// ListForUser returns the caller's flight bookings with display fields.
func (s BookingService) ListForUser(ctx context.Context, userID string) ([]models.FlightBookingDetail, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

// GetForUser loads one booking and its passengers, owner-scoped.
func (s BookingService) GetForUser(ctx context.Context, bookingID, userID string) (models.FlightBooking, []models.Passenger, error) {
	return s.Bookings.GetForUser(ctx, bookingID, userID)
}
