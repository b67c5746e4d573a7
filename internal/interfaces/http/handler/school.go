package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appschool "github.com/skolair/backend/internal/application/school"
)

// SchoolHandler handles academic year, class, student and enrollment endpoints
type SchoolHandler struct {
	BaseHandler
	schoolService *appschool.SchoolService
}

// NewSchoolHandler creates a new SchoolHandler
func NewSchoolHandler(schoolService *appschool.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// CreateAcademicYear handles POST /api/v1/years
func (h *SchoolHandler) CreateAcademicYear(c *gin.Context) {
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

	var req appschool.CreateAcademicYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.schoolService.CreateAcademicYear(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListAcademicYears handles GET /api/v1/years
func (h *SchoolHandler) ListAcademicYears(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}

	resp, err := h.schoolService.ListAcademicYears(c.Request.Context(), schoolID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateClass handles POST /api/v1/classes
func (h *SchoolHandler) CreateClass(c *gin.Context) {
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

	var req appschool.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.schoolService.CreateClass(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListClasses handles GET /api/v1/classes
func (h *SchoolHandler) ListClasses(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}

	resp, err := h.schoolService.ListClasses(c.Request.Context(), schoolID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateStudent handles POST /api/v1/students
func (h *SchoolHandler) CreateStudent(c *gin.Context) {
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

	var req appschool.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.schoolService.CreateStudent(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetStudent handles GET /api/v1/students/:id
func (h *SchoolHandler) GetStudent(c *gin.Context) {
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

	resp, err := h.schoolService.GetStudent(c.Request.Context(), schoolID, studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListStudents handles GET /api/v1/students
func (h *SchoolHandler) ListStudents(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}

	resp, err := h.schoolService.ListStudents(c.Request.Context(), schoolID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// EnrollStudent handles POST /api/v1/enrollments
func (h *SchoolHandler) EnrollStudent(c *gin.Context) {
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

	var req appschool.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.CreatedBy = userID

	resp, err := h.schoolService.EnrollStudent(c.Request.Context(), schoolID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// WithdrawEnrollment handles POST /api/v1/enrollments/:id/withdraw
func (h *SchoolHandler) WithdrawEnrollment(c *gin.Context) {
	schoolID, err := getSchoolID(c)
	if err != nil {
		h.Unauthorized(c, "School context required")
		return
	}
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID")
		return
	}

	resp, err := h.schoolService.WithdrawEnrollment(c.Request.Context(), schoolID, enrollmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListEnrollments handles GET /api/v1/students/:id/enrollments
func (h *SchoolHandler) ListEnrollments(c *gin.Context) {
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

	resp, err := h.schoolService.ListEnrollments(c.Request.Context(), schoolID, studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
