package school

import (
	"context"

	"github.com/google/uuid"
)

// AcademicYearRepository persists academic years
type AcademicYearRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*AcademicYear, error)
	FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]AcademicYear, error)
	Save(ctx context.Context, year *AcademicYear) error
}

// SchoolClassRepository persists classes
type SchoolClassRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*SchoolClass, error)
	FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]SchoolClass, error)
	Save(ctx context.Context, class *SchoolClass) error
}

// StudentRepository persists students
type StudentRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*Student, error)
	FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]Student, error)
	Save(ctx context.Context, student *Student) error
}

// EnrollmentRepository persists enrollments
type EnrollmentRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*Enrollment, error)
	// FindActiveByStudentAndYear returns the student's single active
	// enrollment for a year, or nil when there is none.
	FindActiveByStudentAndYear(ctx context.Context, schoolID, studentID, yearID uuid.UUID) (*Enrollment, error)
	FindByStudent(ctx context.Context, schoolID, studentID uuid.UUID) ([]Enrollment, error)
	Save(ctx context.Context, enrollment *Enrollment) error
}
