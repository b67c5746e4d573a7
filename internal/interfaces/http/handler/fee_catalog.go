package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfees "github.com/skolair/backend/internal/application/fees"
)

// FeeCatalogHandler handles fee type and pricing endpoints
type FeeCatalogHandler struct {
	BaseHandler
	catalogService *appfees.CatalogService
}

// NewFeeCatalogHandler creates a new FeeCatalogHandler
func NewFeeCatalogHandler(catalogService *appfees.CatalogService) *FeeCatalogHandler {
	return &FeeCatalogHandler{catalogService: catalogService}
}

// CreateFeeType handles POST /api/v1/fee-types
func (h *FeeCatalogHandler) CreateFeeType(c *gin.Context) {
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

	var req appfees.CreateFeeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.catalogService.CreateFeeType(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateFeeType handles PUT /api/v1/fee-types/:id
func (h *FeeCatalogHandler) UpdateFeeType(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	feeTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fee type ID")
		return
	}

	var req appfees.UpdateFeeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.catalogService.UpdateFeeType(c.Request.Context(), schoolID, feeTypeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeactivateFeeType handles DELETE /api/v1/fee-types/:id
func (h *FeeCatalogHandler) DeactivateFeeType(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	feeTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fee type ID")
		return
	}

	if err := h.catalogService.DeactivateFeeType(c.Request.Context(), schoolID, feeTypeID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetFeeType handles GET /api/v1/fee-types/:id
func (h *FeeCatalogHandler) GetFeeType(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	feeTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fee type ID")
		return
	}

	resp, err := h.catalogService.GetFeeType(c.Request.Context(), schoolID, feeTypeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListFeeTypes handles GET /api/v1/fee-types
func (h *FeeCatalogHandler) ListFeeTypes(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}

	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.catalogService.ListFeeTypes(c.Request.Context(), schoolID, includeInactive)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreatePricing handles POST /api/v1/pricings
func (h *FeeCatalogHandler) CreatePricing(c *gin.Context) {
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

	var req appfees.CreatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.catalogService.CreatePricing(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// DeactivatePricing handles DELETE /api/v1/pricings/:id
func (h *FeeCatalogHandler) DeactivatePricing(c *gin.Context) {
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

	if err := h.catalogService.DeactivatePricing(c.Request.Context(), schoolID, pricingID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetPricing handles GET /api/v1/pricings/:id
func (h *FeeCatalogHandler) GetPricing(c *gin.Context) {
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

	resp, err := h.catalogService.GetPricing(c.Request.Context(), schoolID, pricingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPricings handles GET /api/v1/pricings
func (h *FeeCatalogHandler) ListPricings(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}

	var filter appfees.PricingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.catalogService.ListPricings(c.Request.Context(), schoolID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
