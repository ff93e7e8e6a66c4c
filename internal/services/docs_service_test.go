package services

import (
	"context"
	"testing"

	"travels/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{
		FlightLoader: func(ctx context.Context, bookingID, userID string) (models.FlightBooking, []models.Passenger, error) {
			return models.FlightBooking{
					ID:             bookingID,
					UserID:         userID,
					OutboundID:     "FL1",
					BookingDate:    "2026-03-01",
					PassengerCount: 1,
					TotalAmount:    120.50,
					PaymentStatus:  models.PaymentPending,
				}, []models.Passenger{
					{ID: "FP0000001", Title: "Ms", FirstName: "Test", LastName: "Passenger"},
				}, nil
		},
		PackageLoader: func(ctx context.Context, bookingID, userID string) (models.Booking, models.Package, error) {
			return models.Booking{
					ID:            bookingID,
					UserID:        userID,
					PackageID:     "PKG0000001",
					TravelDate:    "2026-04-01",
					Travelers:     2,
					TotalAmount:   500,
					PaymentStatus: models.PaymentPending,
				}, models.Package{
					ID:       "PKG0000001",
					Name:     "Island Escape",
					Location: "Bali",
					Price:    250,
				}, nil
		},
	}

	ctx := context.Background()

	pdf, filename, err := svc.GenerateETicket(ctx, "FB0000001", "U000001")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}

	invoice, invName, err := svc.GenerateInvoice(ctx, "BK0000001", "U000001")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
}
