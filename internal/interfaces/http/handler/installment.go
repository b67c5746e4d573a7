package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfees "github.com/skolair/backend/internal/application/fees"
)

// InstallmentHandler handles installment plan endpoints
type InstallmentHandler struct {
	BaseHandler
	installmentService *appfees.InstallmentService
}

// NewInstallmentHandler creates a new InstallmentHandler
func NewInstallmentHandler(installmentService *appfees.InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{installmentService: installmentService}
}

// AddInstallments handles POST /api/v1/pricings/:id/installments
func (h *InstallmentHandler) AddInstallments(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	pricingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pricing ID")
		return
	}

	var req appfees.AddInstallmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.installmentService.AddInstallments(c.Request.Context(), schoolID, pricingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListInstallments handles GET /api/v1/pricings/:id/installments
func (h *InstallmentHandler) ListInstallments(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	pricingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pricing ID")
		return
	}

	resp, err := h.installmentService.ListInstallments(c.Request.Context(), schoolID, pricingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateInstallment handles PUT /api/v1/installments/:id
func (h *InstallmentHandler) UpdateInstallment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	installmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid installment ID")
		return
	}

	var req appfees.UpdateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.installmentService.UpdateInstallment(c.Request.Context(), schoolID, installmentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteInstallment handles DELETE /api/v1/installments/:id
func (h *InstallmentHandler) DeleteInstallment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	installmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid installment ID")
		return
	}

	if err := h.installmentService.DeleteInstallment(c.Request.Context(), schoolID, installmentID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
