package school

import (
	"strings"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// Student is a person the school bills fees for
type Student struct {
	shared.SchoolAggregateRoot
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	RegistrationNumber string `json:"registration_number"`
}

// NewStudent creates a new student record
func NewStudent(schoolID, createdBy uuid.UUID, firstName, lastName, registrationNumber string) (*Student, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Student first and last name are required")
	}
	return &Student{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		FirstName:           firstName,
		LastName:            lastName,
		RegistrationNumber:  strings.TrimSpace(registrationNumber),
	}, nil
}

// FullName returns the display name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
