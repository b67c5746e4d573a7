package school

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainschool "github.com/skolair/backend/internal/domain/school"
	"github.com/skolair/backend/internal/domain/shared"
)

type MockAcademicYearRepository struct {
	mock.Mock
}

func (m *MockAcademicYearRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainschool.AcademicYear, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainschool.AcademicYear), args.Error(1)
}

func (m *MockAcademicYearRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]domainschool.AcademicYear, error) {
	args := m.Called(ctx, schoolID)
	return args.Get(0).([]domainschool.AcademicYear), args.Error(1)
}

func (m *MockAcademicYearRepository) Save(ctx context.Context, year *domainschool.AcademicYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

type MockSchoolClassRepository struct {
	mock.Mock
}

func (m *MockSchoolClassRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainschool.SchoolClass, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainschool.SchoolClass), args.Error(1)
}

func (m *MockSchoolClassRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]domainschool.SchoolClass, error) {
	args := m.Called(ctx, schoolID)
	return args.Get(0).([]domainschool.SchoolClass), args.Error(1)
}

func (m *MockSchoolClassRepository) Save(ctx context.Context, class *domainschool.SchoolClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainschool.Student, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainschool.Student), args.Error(1)
}

func (m *MockStudentRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]domainschool.Student, error) {
	args := m.Called(ctx, schoolID)
	return args.Get(0).([]domainschool.Student), args.Error(1)
}

func (m *MockStudentRepository) Save(ctx context.Context, student *domainschool.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainschool.Enrollment, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainschool.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindActiveByStudentAndYear(ctx context.Context, schoolID, studentID, yearID uuid.UUID) (*domainschool.Enrollment, error) {
	args := m.Called(ctx, schoolID, studentID, yearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainschool.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByStudent(ctx context.Context, schoolID, studentID uuid.UUID) ([]domainschool.Enrollment, error) {
	args := m.Called(ctx, schoolID, studentID)
	return args.Get(0).([]domainschool.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) Save(ctx context.Context, enrollment *domainschool.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

type schoolServiceFixture struct {
	svc         *SchoolService
	yearRepo    *MockAcademicYearRepository
	classRepo   *MockSchoolClassRepository
	studentRepo *MockStudentRepository
	enrollRepo  *MockEnrollmentRepository
}

func newSchoolServiceFixture() *schoolServiceFixture {
	f := &schoolServiceFixture{
		yearRepo:    new(MockAcademicYearRepository),
		classRepo:   new(MockSchoolClassRepository),
		studentRepo: new(MockStudentRepository),
		enrollRepo:  new(MockEnrollmentRepository),
	}
	f.svc = NewSchoolService(f.yearRepo, f.classRepo, f.studentRepo, f.enrollRepo)
	return f
}

func TestSchoolService_CreateAcademicYear(t *testing.T) {
	schoolID := uuid.New()
	f := newSchoolServiceFixture()
	f.yearRepo.On("Save", mock.Anything, mock.AnythingOfType("*school.AcademicYear")).Return(nil)

	resp, err := f.svc.CreateAcademicYear(context.Background(), schoolID, CreateAcademicYearRequest{
		Label: "2025-2026", IsCurrent: true, CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-2026", resp.Label)
	assert.True(t, resp.IsCurrent)
}

func TestSchoolService_EnrollStudent(t *testing.T) {
	schoolID := uuid.New()

	setup := func(t *testing.T) (*schoolServiceFixture, EnrollStudentRequest) {
		t.Helper()
		f := newSchoolServiceFixture()

		student, err := domainschool.NewStudent(schoolID, uuid.New(), "Awa", "Diallo", "REG-001")
		require.NoError(t, err)
		class, err := domainschool.NewSchoolClass(schoolID, uuid.New(), "CM2 A", "CM2")
		require.NoError(t, err)
		year, err := domainschool.NewAcademicYear(schoolID, uuid.New(), "2025-2026")
		require.NoError(t, err)

		f.studentRepo.On("FindByIDForSchool", mock.Anything, schoolID, student.ID).Return(student, nil)
		f.classRepo.On("FindByIDForSchool", mock.Anything, schoolID, class.ID).Return(class, nil)
		f.yearRepo.On("FindByIDForSchool", mock.Anything, schoolID, year.ID).Return(year, nil)

		return f, EnrollStudentRequest{
			StudentID: student.ID, ClassID: class.ID, YearID: year.ID, CreatedBy: uuid.New(),
		}
	}

	t.Run("enrolls student", func(t *testing.T) {
		f, req := setup(t)
		f.enrollRepo.On("FindActiveByStudentAndYear", mock.Anything, schoolID, req.StudentID, req.YearID).Return(nil, nil)
		f.enrollRepo.On("Save", mock.Anything, mock.AnythingOfType("*school.Enrollment")).Return(nil)

		resp, err := f.svc.EnrollStudent(context.Background(), schoolID, req)
		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, req.ClassID, resp.ClassID)
	})

	t.Run("rejects second active enrollment for the year", func(t *testing.T) {
		f, req := setup(t)
		existing, err := domainschool.NewEnrollment(schoolID, uuid.New(), req.StudentID, uuid.New(), req.YearID)
		require.NoError(t, err)
		f.enrollRepo.On("FindActiveByStudentAndYear", mock.Anything, schoolID, req.StudentID, req.YearID).Return(existing, nil)

		_, err = f.svc.EnrollStudent(context.Background(), schoolID, req)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_ENROLLMENT", domainErr.Code)
		f.enrollRepo.AssertNotCalled(t, "Save")
	})

	t.Run("unknown student is not found", func(t *testing.T) {
		f := newSchoolServiceFixture()
		studentID := uuid.New()
		f.studentRepo.On("FindByIDForSchool", mock.Anything, schoolID, studentID).Return(nil, nil)

		_, err := f.svc.EnrollStudent(context.Background(), schoolID, EnrollStudentRequest{
			StudentID: studentID, ClassID: uuid.New(), YearID: uuid.New(),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestSchoolService_WithdrawEnrollment(t *testing.T) {
	schoolID := uuid.New()
	f := newSchoolServiceFixture()
	enrollment, err := domainschool.NewEnrollment(schoolID, uuid.New(), uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	f.enrollRepo.On("FindByIDForSchool", mock.Anything, schoolID, enrollment.ID).Return(enrollment, nil)
	f.enrollRepo.On("Save", mock.Anything, enrollment).Return(nil)

	resp, err := f.svc.WithdrawEnrollment(context.Background(), schoolID, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, "WITHDRAWN", resp.Status)
}
