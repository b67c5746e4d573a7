package school

import (
	"context"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/school"
	"github.com/skolair/backend/internal/domain/shared"
)

// SchoolService manages the structural records of a school that billing
// hangs off: academic years, classes, students and enrollments.
type SchoolService struct {
	yearRepo    school.AcademicYearRepository
	classRepo   school.SchoolClassRepository
	studentRepo school.StudentRepository
	enrollRepo  school.EnrollmentRepository
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(
	yearRepo school.AcademicYearRepository,
	classRepo school.SchoolClassRepository,
	studentRepo school.StudentRepository,
	enrollRepo school.EnrollmentRepository,
) *SchoolService {
	return &SchoolService{
		yearRepo:    yearRepo,
		classRepo:   classRepo,
		studentRepo: studentRepo,
		enrollRepo:  enrollRepo,
	}
}

// CreateAcademicYear opens a new academic year for the school
func (s *SchoolService) CreateAcademicYear(ctx context.Context, schoolID uuid.UUID, req CreateAcademicYearRequest) (*AcademicYearResponse, error) {
	year, err := school.NewAcademicYear(schoolID, req.CreatedBy, req.Label)
	if err != nil {
		return nil, err
	}
	if req.IsCurrent {
		year.MarkCurrent()
	}
	if err := s.yearRepo.Save(ctx, year); err != nil {
		return nil, err
	}

	response := ToAcademicYearResponse(year)
	return &response, nil
}

// ListAcademicYears lists the school's academic years
func (s *SchoolService) ListAcademicYears(ctx context.Context, schoolID uuid.UUID) ([]AcademicYearResponse, error) {
	years, err := s.yearRepo.FindAllForSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]AcademicYearResponse, 0, len(years))
	for i := range years {
		responses = append(responses, ToAcademicYearResponse(&years[i]))
	}
	return responses, nil
}

// CreateClass adds a class to the school
func (s *SchoolService) CreateClass(ctx context.Context, schoolID uuid.UUID, req CreateClassRequest) (*ClassResponse, error) {
	class, err := school.NewSchoolClass(schoolID, req.CreatedBy, req.Name, req.Level)
	if err != nil {
		return nil, err
	}
	if err := s.classRepo.Save(ctx, class); err != nil {
		return nil, err
	}

	response := ToClassResponse(class)
	return &response, nil
}

// ListClasses lists the school's classes
func (s *SchoolService) ListClasses(ctx context.Context, schoolID uuid.UUID) ([]ClassResponse, error) {
	classes, err := s.classRepo.FindAllForSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, ToClassResponse(&classes[i]))
	}
	return responses, nil
}

// CreateStudent registers a student with the school
func (s *SchoolService) CreateStudent(ctx context.Context, schoolID uuid.UUID, req CreateStudentRequest) (*StudentResponse, error) {
	student, err := school.NewStudent(schoolID, req.CreatedBy, req.FirstName, req.LastName, req.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	response := ToStudentResponse(student)
	return &response, nil
}

// GetStudent retrieves a student by ID
func (s *SchoolService) GetStudent(ctx context.Context, schoolID, studentID uuid.UUID) (*StudentResponse, error) {
	student, err := s.studentRepo.FindByIDForSchool(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, shared.ErrNotFound
	}

	response := ToStudentResponse(student)
	return &response, nil
}

// ListStudents lists the school's students
func (s *SchoolService) ListStudents(ctx context.Context, schoolID uuid.UUID) ([]StudentResponse, error) {
	students, err := s.studentRepo.FindAllForSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, ToStudentResponse(&students[i]))
	}
	return responses, nil
}

// EnrollStudent places a student in a class for an academic year. A student
// may hold at most one active enrollment per year.
func (s *SchoolService) EnrollStudent(ctx context.Context, schoolID uuid.UUID, req EnrollStudentRequest) (*EnrollmentResponse, error) {
	student, err := s.studentRepo.FindByIDForSchool(ctx, schoolID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, shared.ErrNotFound
	}

	class, err := s.classRepo.FindByIDForSchool(ctx, schoolID, req.ClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, shared.ErrNotFound
	}

	year, err := s.yearRepo.FindByIDForSchool(ctx, schoolID, req.YearID)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, shared.ErrNotFound
	}

	existing, err := s.enrollRepo.FindActiveByStudentAndYear(ctx, schoolID, req.StudentID, req.YearID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicateEnrollment
	}

	enrollment, err := school.NewEnrollment(schoolID, req.CreatedBy, req.StudentID, req.ClassID, req.YearID)
	if err != nil {
		return nil, err
	}
	if err := s.enrollRepo.Save(ctx, enrollment); err != nil {
		return nil, err
	}

	response := ToEnrollmentResponse(enrollment)
	return &response, nil
}

// WithdrawEnrollment ends a student's enrollment. Payments recorded against
// it are untouched.
func (s *SchoolService) WithdrawEnrollment(ctx context.Context, schoolID, enrollmentID uuid.UUID) (*EnrollmentResponse, error) {
	enrollment, err := s.enrollRepo.FindByIDForSchool(ctx, schoolID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, shared.ErrNotFound
	}

	enrollment.Withdraw()
	if err := s.enrollRepo.Save(ctx, enrollment); err != nil {
		return nil, err
	}

	response := ToEnrollmentResponse(enrollment)
	return &response, nil
}

// ListEnrollments lists a student's enrollments across years
func (s *SchoolService) ListEnrollments(ctx context.Context, schoolID, studentID uuid.UUID) ([]EnrollmentResponse, error) {
	enrollments, err := s.enrollRepo.FindByStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		responses = append(responses, ToEnrollmentResponse(&enrollments[i]))
	}
	return responses, nil
}
