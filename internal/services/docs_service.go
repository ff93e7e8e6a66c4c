package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travels/internal/domain/models"
	"travels/internal/repositories"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders PDF documents for bookings: an e-ticket per flight
// booking and an invoice per package booking.
type DocsService struct {
	FlightBookings  repositories.FlightBookingRepository
	PackageBookings repositories.BookingRepository
	Packages        repositories.PackageRepository

	// Loaders can be overridden in tests.
	FlightLoader  func(ctx context.Context, bookingID, userID string) (models.FlightBooking, []models.Passenger, error)
	PackageLoader func(ctx context.Context, bookingID, userID string) (models.Booking, models.Package, error)
}

// GenerateETicket produces the e-ticket PDF for a caller-owned flight
// booking. Returns the document bytes and a download filename.
func (s DocsService) GenerateETicket(ctx context.Context, bookingID, userID string) ([]byte, string, error) {
	load := s.FlightLoader
	if load == nil {
		load = s.FlightBookings.GetForUser
	}
	booking, passengers, err := load(ctx, bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	return buildETicketPDF(booking, passengers)
}

// GenerateInvoice produces the invoice PDF for a caller-owned package
// booking.
func (s DocsService) GenerateInvoice(ctx context.Context, bookingID, userID string) ([]byte, string, error) {
	load := s.PackageLoader
	if load == nil {
		load = s.loadPackageBooking
	}
	booking, pkg, err := load(ctx, bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	return buildInvoicePDF(booking, pkg)
}

func (s DocsService) loadPackageBooking(ctx context.Context, bookingID, userID string) (models.Booking, models.Package, error) {
	booking, err := s.PackageBookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return models.Booking{}, models.Package{}, err
	}
	pkg, err := s.Packages.GetByID(ctx, booking.PackageID)
	if err != nil {
		return models.Booking{}, models.Package{}, err
	}
	return booking, pkg, nil
}

func buildETicketPDF(b models.FlightBooking, passengers []models.Passenger) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLIGHT E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Reference : %s", b.ID),
		fmt.Sprintf("Outbound Flight   : %s", b.OutboundID),
	}
	if b.ReturnID != "" {
		lines = append(lines, fmt.Sprintf("Return Flight     : %s", b.ReturnID))
	}
	lines = append(lines,
		fmt.Sprintf("Passengers        : %d", b.PassengerCount),
		fmt.Sprintf("Total Amount      : %.2f", b.TotalAmount),
		fmt.Sprintf("Payment Status    : %s", b.PaymentStatus),
	)
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Travelers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range passengers {
		name := strings.TrimSpace(fmt.Sprintf("%s %s %s", p.Title, p.FirstName, p.LastName))
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s  (passport %s)", i+1, name, p.PassportNumber))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket together with a valid passport at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("ETICKET_%s.pdf", b.ID), nil
}

func buildInvoicePDF(b models.Booking, pkg models.Package) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Invoice No    : INV-%s", b.ID),
		fmt.Sprintf("Date          : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Package       : %s (%s)", pkg.Name, pkg.Location),
		fmt.Sprintf("Travel Date   : %s", b.TravelDate),
		fmt.Sprintf("Travelers     : %d", b.Travelers),
		fmt.Sprintf("Price / pax   : %.2f", pkg.Price),
		fmt.Sprintf("Total Amount  : %.2f", b.TotalAmount),
		fmt.Sprintf("Status        : %s", b.PaymentStatus),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("INVOICE_%s.pdf", b.ID), nil
}
