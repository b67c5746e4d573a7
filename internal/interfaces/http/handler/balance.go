package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfees "github.com/skolair/backend/internal/application/fees"
)

// BalanceHandler handles on-demand balance endpoints
type BalanceHandler struct {
	BaseHandler
	balanceService *appfees.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler
func NewBalanceHandler(balanceService *appfees.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetStudentPricingBalance handles GET /api/v1/students/:id/balances/:pricingId
func (h *BalanceHandler) GetStudentPricingBalance(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}
	pricingID, err := uuid.Parse(c.Param("pricingId"))
	if err != nil {
		h.BadRequest(c, "Invalid pricing ID")
		return
	}

	resp, err := h.balanceService.CalculateBalance(c.Request.Context(), schoolID, studentID, pricingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetStudentYearBalance handles GET /api/v1/students/:id/balances?year_id=...
func (h *BalanceHandler) GetStudentYearBalance(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}
	yearID, err := uuid.Parse(c.Query("year_id"))
	if err != nil {
		h.BadRequest(c, "Invalid or missing year_id")
		return
	}

	resp, err := h.balanceService.CalculateStudentYearBalance(c.Request.Context(), schoolID, studentID, yearID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
