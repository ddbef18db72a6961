package handlers

import (
	"net/http"
	"strconv"

	"parkwise/models"
	"parkwise/services/parking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves check-in/check-out and ledger endpoints.
type BookingHandler struct {
	BookingService parking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc parking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// BookSlotHandler handles POST /api/slots/:id/book.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	var req struct {
		UserID           string `json:"userId"`
		UserName         string `json:"userName"`
		VehicleNumber    string `json:"vehicleNumber"`
		VehicleType      string `json:"vehicleType"`
		ExpectedDuration int    `json:"expectedDuration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, parking.ValidationError{Message: "Missing required booking information"})
		return
	}

	result, err := h.BookingService.Book(c.Request.Context(), parking.BookRequest{
		SlotID:           c.Param("id"),
		UserID:           req.UserID,
		UserName:         req.UserName,
		VehicleNumber:    req.VehicleNumber,
		VehicleType:      req.VehicleType,
		ExpectedDuration: req.ExpectedDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"slot":    result.Slot,
		"booking": result.Booking,
	})
}

// FreeSlotHandler handles POST /api/slots/:id/free.
func (h *BookingHandler) FreeSlotHandler(c *gin.Context) {
	slot, err := h.BookingService.Free(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slot": slot})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.BookingService.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// BookingHistoryHandler handles GET /api/bookings?limit=.
func (h *BookingHandler) BookingHistoryHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	bookings, err := h.BookingService.BookingHistory(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// ActiveBookingsHandler handles GET /api/bookings/active.
func (h *BookingHandler) ActiveBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ActiveBookings()
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// UserBookingsHandler handles GET /api/users/:id/bookings.
func (h *BookingHandler) UserBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.UserBookings(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// BookingStatsHandler handles GET /api/bookings/stats.
func (h *BookingHandler) BookingStatsHandler(c *gin.Context) {
	stats, err := h.BookingService.BookingStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
