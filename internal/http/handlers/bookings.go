package handlers

import (
	"net/http"

	"travels/internal/http/middleware"
	"travels/internal/services"
	"travels/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Svc  services.PackageBookingService
	Docs services.DocsService
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var req services.PackageBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	userID := middleware.CurrentUserID(c)
	booking, err := h.Svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "created",
		"booking_id="+booking.ID+" user_id="+userID)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking created successfully",
		"bookingId":   booking.ID,
		"totalAmount": booking.TotalAmount,
	})
}

// GET /api/bookings/:id
func (h BookingHandler) Detail(c *gin.Context) {
	detail, err := h.Svc.Detail(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PUT /api/bookings/:id/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), userID); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "cancelled",
		"booking_id="+c.Param("id")+" user_id="+userID)
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// GET /api/users/bookings
func (h BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Svc.ListForUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id/invoice
func (h BookingHandler) Invoice(c *gin.Context) {
	pdf, filename, err := h.Docs.GenerateInvoice(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
