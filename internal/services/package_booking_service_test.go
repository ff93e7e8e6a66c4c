package services

import (
	"context"
	"testing"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPackageBookingService(t *testing.T) (PackageBookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return PackageBookingService{
		Packages: repositories.PackageRepository{DB: db},
		Bookings: repositories.BookingRepository{DB: db},
	}, mock
}

func packageRow(id string, price float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"Package_ID", "Package_Name", "Location", "Description",
		"Price", "Duration", "Image_URL", "Destination_ID",
	}).AddRow(id, "Island Escape", "Bali", "", price, "3 days", "", "D1")
}

func bookingRow(id, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"Booking_ID", "User_ID", "Package_ID", "Booking_Date", "Travel_Date",
		"Number_Of_Travelers", "Total_Amount", "Payment_Status",
	}).AddRow(id, "U000001", "PKG0000001", "2026-03-01", "2026-04-01", 2, 500.0, status)
}

func TestPackageBookingCreatePricing(t *testing.T) {
	svc, mock := newPackageBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM PACKAGE").WithArgs("PKG0000001").
		WillReturnRows(packageRow("PKG0000001", 250))
	mock.ExpectExec("INSERT INTO BOOKING").
		WillReturnResult(sqlmock.NewResult(0, 1))

	booking, err := svc.Create(context.Background(), "U000001", PackageBookingInput{
		PackageID:  "PKG0000001",
		TravelDate: "2026-04-01",
		Travelers:  2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.TotalAmount != 500 {
		t.Fatalf("total amount = %v, want 500", booking.TotalAmount)
	}
	if booking.PaymentStatus != models.PaymentPending {
		t.Fatalf("payment status = %q, want Pending", booking.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageBookingCancel(t *testing.T) {
	svc, mock := newPackageBookingService(t)

	mock.ExpectQuery("SELECT Booking_ID, User_ID, Package_ID").
		WithArgs("BK0000001", "U000001").
		WillReturnRows(bookingRow("BK0000001", models.PaymentPending))
	mock.ExpectExec("UPDATE BOOKING SET Payment_Status").
		WithArgs(models.PaymentCancelled, "BK0000001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE PAYMENT SET Payment_Status").
		WithArgs(models.PaymentRefunded, "BK0000001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Cancel(context.Background(), "BK0000001", "U000001"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageBookingCancelTwiceRejected(t *testing.T) {
	svc, mock := newPackageBookingService(t)

	mock.ExpectQuery("SELECT Booking_ID, User_ID, Package_ID").
		WithArgs("BK0000001", "U000001").
		WillReturnRows(bookingRow("BK0000001", models.PaymentCancelled))

	err := svc.Cancel(context.Background(), "BK0000001", "U000001")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageBookingCancelNotOwned(t *testing.T) {
	svc, mock := newPackageBookingService(t)

	mock.ExpectQuery("SELECT Booking_ID, User_ID, Package_ID").
		WithArgs("BK0000001", "U000002").
		WillReturnRows(sqlmock.NewRows([]string{
			"Booking_ID", "User_ID", "Package_ID", "Booking_Date", "Travel_Date",
			"Number_Of_Travelers", "Total_Amount", "Payment_Status",
		}))

	err := svc.Cancel(context.Background(), "BK0000001", "U000002")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
