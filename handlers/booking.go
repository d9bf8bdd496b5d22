package handlers

import (
	"net/http"

	"driveline/models"
	"driveline/services/availability"
	"driveline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the non-conversational booking endpoints.
type BookingHandler struct {
	Gateway availability.Gateway
}

func NewBookingHandler(gateway availability.Gateway) *BookingHandler {
	return &BookingHandler{Gateway: gateway}
}

// ListInstructorsHandler returns the active instructor directory.
func (h *BookingHandler) ListInstructorsHandler(c *gin.Context) {
	instructors := h.Gateway.ListActiveInstructors(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"instructors": instructors})
}

// SubmitBookingHandler takes a fully specified booking request, bypassing
// the dialogue.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.InstructorEmail == "" || req.Date == "" || req.StartTime == "" ||
		req.EndTime == "" || req.StudentName == "" || req.StudentPhone == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "all booking fields are required")
		return
	}

	if err := h.Gateway.SubmitPendingBooking(c.Request.Context(), req); err != nil {
		utils.GetLogger().Error("direct booking submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.SubmitResult{
			Success: false,
			Message: "Failed to submit the booking. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, models.SubmitResult{
		Success: true,
		Message: "Booking submitted, pending instructor approval.",
	})
}
