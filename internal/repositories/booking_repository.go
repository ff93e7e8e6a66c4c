package repositories

import (
	"context"
	"database/sql"
	"errors"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

// BookingRepository covers package bookings and their payment rows. The
// package path carries no inventory, so writes here are single statements.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) Insert(ctx context.Context, b models.Booking) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO BOOKING
			(Booking_ID, User_ID, Package_ID, Booking_Date, Travel_Date,
			 Number_Of_Travelers, Total_Amount, Payment_Status)
		VALUES (?, ?, ?, CURDATE(), ?, ?, ?, ?)
	`, b.ID, b.UserID, b.PackageID, b.TravelDate, b.Travelers, b.TotalAmount, b.PaymentStatus)
	if isDuplicatePrimaryKey(err) {
		return errIDCollision
	}
	return err
}

// GetForUser loads a booking scoped to its owner.
func (r BookingRepository) GetForUser(ctx context.Context, bookingID, userID string) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRowContext(ctx, `
		SELECT Booking_ID, User_ID, Package_ID, Booking_Date, Travel_Date,
		       Number_Of_Travelers, Total_Amount, Payment_Status
		FROM BOOKING
		WHERE Booking_ID = ? AND User_ID = ?
	`, bookingID, userID).Scan(
		&b.ID, &b.UserID, &b.PackageID, &b.BookingDate, &b.TravelDate,
		&b.Travelers, &b.TotalAmount, &b.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// GetPayment returns the payment row for a booking when one exists.
func (r BookingRepository) GetPayment(ctx context.Context, bookingID string) (*models.Payment, error) {
	var p models.Payment
	err := r.DB.QueryRowContext(ctx, `
		SELECT Booking_ID, COALESCE(Amount, 0), Payment_Status
		FROM PAYMENT
		WHERE Booking_ID = ?
	`, bookingID).Scan(&p.BookingID, &p.Amount, &p.PaymentStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// SetStatus updates the booking's payment status field.
func (r BookingRepository) SetStatus(ctx context.Context, bookingID, status string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE BOOKING SET Payment_Status = ? WHERE Booking_ID = ?`, status, bookingID)
	return err
}

// SetPaymentStatus updates the payment row tied to a booking.
func (r BookingRepository) SetPaymentStatus(ctx context.Context, bookingID, status string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE PAYMENT SET Payment_Status = ? WHERE Booking_ID = ?`, status, bookingID)
	return err
}

// ListByUser returns the caller's package bookings with package display
// fields, newest first.
func (r BookingRepository) ListByUser(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT b.Booking_ID, b.User_ID, b.Package_ID, b.Booking_Date, b.Travel_Date,
		       b.Number_Of_Travelers, b.Total_Amount, b.Payment_Status,
		       p.Package_Name, p.Location, COALESCE(p.Image_URL, '')
		FROM BOOKING b
		JOIN PACKAGE p ON b.Package_ID = p.Package_ID
		WHERE b.User_ID = ?
		ORDER BY b.Booking_Date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		var d models.BookingDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.PackageID, &d.BookingDate, &d.TravelDate,
			&d.Travelers, &d.TotalAmount, &d.PaymentStatus,
			&d.PackageName, &d.Location, &d.ImageURL,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
