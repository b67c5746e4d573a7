package school

import (
	"time"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/school"
)

// CreateAcademicYearRequest represents a request to open an academic year
type CreateAcademicYearRequest struct {
	Label     string `json:"label" binding:"required,min=1,max=20"`
	IsCurrent bool   `json:"is_current"`
	CreatedBy uuid.UUID
}

// AcademicYearResponse represents an academic year in API responses
type AcademicYearResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	Label     string    `json:"label"`
	IsCurrent bool      `json:"is_current"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAcademicYearResponse converts a domain AcademicYear to AcademicYearResponse
func ToAcademicYearResponse(y *school.AcademicYear) AcademicYearResponse {
	return AcademicYearResponse{
		ID:        y.ID,
		SchoolID:  y.SchoolID,
		Label:     y.Label,
		IsCurrent: y.IsCurrent,
		CreatedAt: y.CreatedAt,
	}
}

// CreateClassRequest represents a request to create a class
type CreateClassRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Level     string `json:"level" binding:"max=50"`
	CreatedBy uuid.UUID
}

// ClassResponse represents a class in API responses
type ClassResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// ToClassResponse converts a domain SchoolClass to ClassResponse
func ToClassResponse(c *school.SchoolClass) ClassResponse {
	return ClassResponse{
		ID:        c.ID,
		SchoolID:  c.SchoolID,
		Name:      c.Name,
		Level:     c.Level,
		CreatedAt: c.CreatedAt,
	}
}

// CreateStudentRequest represents a request to register a student
type CreateStudentRequest struct {
	FirstName          string `json:"first_name" binding:"required,min=1,max=100"`
	LastName           string `json:"last_name" binding:"required,min=1,max=100"`
	RegistrationNumber string `json:"registration_number" binding:"max=50"`
	CreatedBy          uuid.UUID
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	ID                 uuid.UUID `json:"id"`
	SchoolID           uuid.UUID `json:"school_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToStudentResponse converts a domain Student to StudentResponse
func ToStudentResponse(s *school.Student) StudentResponse {
	return StudentResponse{
		ID:                 s.ID,
		SchoolID:           s.SchoolID,
		FirstName:          s.FirstName,
		LastName:           s.LastName,
		FullName:           s.FullName(),
		RegistrationNumber: s.RegistrationNumber,
		CreatedAt:          s.CreatedAt,
	}
}

// EnrollStudentRequest represents a request to enroll a student in a class
// for an academic year
type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	ClassID   uuid.UUID `json:"class_id" binding:"required"`
	YearID    uuid.UUID `json:"year_id" binding:"required"`
	CreatedBy uuid.UUID
}

// EnrollmentResponse represents an enrollment in API responses
type EnrollmentResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	StudentID uuid.UUID `json:"student_id"`
	ClassID   uuid.UUID `json:"class_id"`
	YearID    uuid.UUID `json:"year_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToEnrollmentResponse converts a domain Enrollment to EnrollmentResponse
func ToEnrollmentResponse(e *school.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        e.ID,
		SchoolID:  e.SchoolID,
		StudentID: e.StudentID,
		ClassID:   e.ClassID,
		YearID:    e.YearID,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
