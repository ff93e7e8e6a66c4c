package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"travels/internal/domain/models"
	"travels/internal/http/middleware"
	"travels/internal/repositories"
	"travels/internal/services"
	"travels/internal/utils"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	Flights  repositories.FlightRepository
	Bookings services.BookingService
	Docs     services.DocsService
}

// normalizeDate accepts a bare date or an RFC3339 timestamp and returns
// YYYY-MM-DD.
func normalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// GET /api/flights/search
func (h FlightHandler) Search(c *gin.Context) {
	departureAirport := c.Query("departureAirport")
	arrivalAirport := c.Query("arrivalAirport")
	departureDate := c.Query("departureDate")
	if departureAirport == "" || arrivalAirport == "" || departureDate == "" {
		RespondError(c, http.StatusBadRequest, "Departure airport, arrival airport, and departure date are required")
		return
	}

	depDate, ok := normalizeDate(departureDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "Invalid departure date")
		return
	}

	passengers := 1
	if raw := c.Query("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			RespondError(c, http.StatusBadRequest, "Invalid passenger count")
			return
		}
		passengers = n
	}

	ctx := c.Request.Context()
	outbound, err := h.Flights.Search(ctx, models.FlightSearch{
		DepartureAirport: departureAirport,
		ArrivalAirport:   arrivalAirport,
		DepartureDate:    depDate,
		Passengers:       passengers,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	returnFlights := []models.FlightCandidate{}
	if raw := c.Query("returnDate"); raw != "" {
		retDate, ok := normalizeDate(raw)
		if !ok {
			RespondError(c, http.StatusBadRequest, "Invalid return date")
			return
		}
		returnFlights, err = h.Flights.Search(ctx, models.FlightSearch{
			DepartureAirport: arrivalAirport,
			ArrivalAirport:   departureAirport,
			DepartureDate:    retDate,
			Passengers:       passengers,
		})
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"outboundFlights": outbound,
		"returnFlights":   returnFlights,
	})
}

// POST /api/flights/booking
func (h FlightHandler) CreateBooking(c *gin.Context) {
	var req services.FlightBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	userID := middleware.CurrentUserID(c)
	booking, err := h.Bookings.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "flights", "booking_created",
		"booking_id="+booking.ID+" user_id="+userID)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Flight booking created successfully",
		"bookingId":   booking.ID,
		"totalAmount": booking.TotalAmount,
	})
}

// GET /api/users/flight-bookings
func (h FlightHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListForUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/users/flight-bookings/:id/e-ticket
func (h FlightHandler) ETicket(c *gin.Context) {
	pdf, filename, err := h.Docs.GenerateETicket(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
