package handlers

import (
	"net/http"

	"parkwise/models"
	"parkwise/services/parking"

	"github.com/gin-gonic/gin"
)

// SlotHandler serves slot inventory endpoints.
type SlotHandler struct {
	SlotService parking.SlotService
}

// NewSlotHandler creates a new SlotHandler.
func NewSlotHandler(svc parking.SlotService) *SlotHandler {
	return &SlotHandler{SlotService: svc}
}

// ListSlotsHandler handles GET /api/slots?status=.
func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	var (
		slots []models.ParkingSlot
		err   error
	)
	if status := c.Query("status"); status != "" {
		slots, err = h.SlotService.ListSlotsByStatus(status)
	} else {
		slots, err = h.SlotService.ListSlots()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if slots == nil {
		slots = []models.ParkingSlot{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "slots": slots})
}

// ListAvailableSlotsHandler handles GET /api/slots/available.
func (h *SlotHandler) ListAvailableSlotsHandler(c *gin.Context) {
	slots, err := h.SlotService.ListSlotsByStatus(models.SlotStatusAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	if slots == nil {
		slots = []models.ParkingSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slots": slots})
}

// CreateSlotHandler handles POST /api/slots.
func (h *SlotHandler) CreateSlotHandler(c *gin.Context) {
	var req models.ParkingSlot
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, parking.ValidationError{Message: "Invalid slot payload"})
		return
	}

	slot, err := h.SlotService.CreateSlot(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "slot": slot})
}

// GetSlotHandler handles GET /api/slots/:id.
func (h *SlotHandler) GetSlotHandler(c *gin.Context) {
	slot, err := h.SlotService.GetSlot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slot": slot})
}

// UpdateSlotHandler handles PUT /api/slots/:id.
func (h *SlotHandler) UpdateSlotHandler(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, parking.ValidationError{Message: "Invalid update payload"})
		return
	}

	slot, err := h.SlotService.UpdateSlot(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slot": slot})
}

// DeleteSlotHandler handles DELETE /api/slots/:id.
func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.SlotService.DeleteSlot(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BlockSlotHandler handles POST /api/slots/:id/block.
func (h *SlotHandler) BlockSlotHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	// A body is optional; the reason defaults to Maintenance.
	_ = c.ShouldBindJSON(&req)

	slot, err := h.SlotService.BlockSlot(c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slot": slot})
}

// UnblockSlotHandler handles POST /api/slots/:id/unblock.
func (h *SlotHandler) UnblockSlotHandler(c *gin.Context) {
	slot, err := h.SlotService.UnblockSlot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slot": slot})
}

// SlotStatsHandler handles GET /api/slots/stats.
func (h *SlotHandler) SlotStatsHandler(c *gin.Context) {
	stats, err := h.SlotService.SlotStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
