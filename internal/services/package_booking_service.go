package services

import (
	"context"
	"strings"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"
	"travels/internal/utils"
)

type PackageBookingInput struct {
	PackageID  string `json:"packageId"`
	TravelDate string `json:"travelDate"`
	Travelers  int    `json:"travelers"`
}

// PackageBookingService handles the package booking path. There is no
// inventory on packages, so creation is a single insert.
type PackageBookingService struct {
	Packages repositories.PackageRepository
	Bookings repositories.BookingRepository
}

// Create prices the booking at package price times travelers and records it
// with a Pending payment status.
func (s PackageBookingService) Create(ctx context.Context, userID string, in PackageBookingInput) (models.Booking, error) {
	if strings.TrimSpace(in.PackageID) == "" || strings.TrimSpace(in.TravelDate) == "" || in.Travelers < 1 {
		return models.Booking{}, domain.ValidationError{Msg: "package ID, travel date, and number of travelers are required"}
	}

	pkg, err := s.Packages.GetByID(ctx, in.PackageID)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		UserID:        userID,
		PackageID:     pkg.ID,
		TravelDate:    in.TravelDate,
		Travelers:     in.Travelers,
		TotalAmount:   pkg.Price * float64(in.Travelers),
		PaymentStatus: models.PaymentPending,
	}
	for attempt := 0; attempt < idRetries; attempt++ {
		booking.ID = utils.NewBookingID()
		err = s.Bookings.Insert(ctx, booking)
		if !repositories.IsIDCollision(err) {
			break
		}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return booking, nil
}

// BookingDetail is the composite returned by GET /api/bookings/:id.
type BookingDetail struct {
	Booking models.Booking  `json:"booking"`
	Package models.Package  `json:"package"`
	Payment *models.Payment `json:"payment"`
}

// Detail loads a booking with its package and payment, owner-scoped.
func (s PackageBookingService) Detail(ctx context.Context, bookingID, userID string) (BookingDetail, error) {
	booking, err := s.Bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return BookingDetail{}, err
	}
	pkg, err := s.Packages.GetByID(ctx, booking.PackageID)
	if err != nil {
		return BookingDetail{}, err
	}
	payment, err := s.Bookings.GetPayment(ctx, bookingID)
	if err != nil {
		return BookingDetail{}, domain.InternalError{Err: err}
	}
	return BookingDetail{Booking: booking, Package: pkg, Payment: payment}, nil
}

// Cancel marks the booking Cancelled and its payment Refunded. Cancelling
// twice is rejected. Flight bookings have no cancellation path.
func (s PackageBookingService) Cancel(ctx context.Context, bookingID, userID string) error {
	booking, err := s.Bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return err
	}
	if booking.PaymentStatus == models.PaymentCancelled {
		return domain.ValidationError{Msg: "booking is already cancelled"}
	}
	if err := s.Bookings.SetStatus(ctx, bookingID, models.PaymentCancelled); err != nil {
		return domain.InternalError{Err: err}
	}
	if err := s.Bookings.SetPaymentStatus(ctx, bookingID, models.PaymentRefunded); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// ListForUser returns the caller's package bookings.
func (s PackageBookingService) ListForUser(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	return s.Bookings.ListByUser(ctx, userID)
}
