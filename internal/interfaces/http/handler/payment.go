package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfees "github.com/skolair/backend/internal/application/fees"
)

// PaymentHandler handles payment ledger endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *appfees.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *appfees.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePayment handles POST /api/v1/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	var req appfees.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.paymentService.CreatePayment(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdatePayment handles PUT /api/v1/payments/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req appfees.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.ModifiedBy = userID

	resp, err := h.paymentService.UpdatePayment(c.Request.Context(), schoolID, paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CancelPayment handles POST /api/v1/payments/:id/cancel
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req appfees.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CancelledBy = userID

	resp, err := h.paymentService.CancelPayment(c.Request.Context(), schoolID, paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetPayment handles GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	resp, err := h.paymentService.GetPayment(c.Request.Context(), schoolID, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPayments handles GET /api/v1/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}

	var filter appfees.PaymentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.paymentService.ListPayments(c.Request.Context(), schoolID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListAmendments handles GET /api/v1/payments/:id/amendments
func (h *PaymentHandler) ListAmendments(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	resp, err := h.paymentService.ListAmendments(c.Request.Context(), schoolID, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
