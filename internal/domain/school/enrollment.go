package school

import (
	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// EnrollmentStatus represents the state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "ACTIVE"
	EnrollmentStatusWithdrawn EnrollmentStatus = "WITHDRAWN"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
)

// IsValid checks if the status is a valid EnrollmentStatus
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusWithdrawn, EnrollmentStatusCompleted:
		return true
	}
	return false
}

// Enrollment places a student in a class for an academic year. A student has
// at most one active enrollment per year; year balances resolve the class
// through it.
type Enrollment struct {
	shared.SchoolAggregateRoot
	StudentID uuid.UUID        `json:"student_id"`
	ClassID   uuid.UUID        `json:"class_id"`
	YearID    uuid.UUID        `json:"year_id"`
	Status    EnrollmentStatus `json:"status"`
}

// NewEnrollment creates an active enrollment
func NewEnrollment(schoolID, createdBy, studentID, classID, yearID uuid.UUID) (*Enrollment, error) {
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Student ID cannot be empty")
	}
	if classID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASS", "Class ID cannot be empty")
	}
	if yearID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_YEAR", "Academic year ID cannot be empty")
	}
	return &Enrollment{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		StudentID:           studentID,
		ClassID:             classID,
		YearID:              yearID,
		Status:              EnrollmentStatusActive,
	}, nil
}

// IsActive reports whether the enrollment is the student's live one
func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentStatusActive
}

// Withdraw ends the enrollment
func (e *Enrollment) Withdraw() {
	e.Status = EnrollmentStatusWithdrawn
	e.Touch()
}
