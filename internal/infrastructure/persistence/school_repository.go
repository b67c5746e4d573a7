package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/school"
	"github.com/skolair/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAcademicYearRepository implements AcademicYearRepository using GORM
type GormAcademicYearRepository struct {
	db *gorm.DB
}

// NewGormAcademicYearRepository creates a new GormAcademicYearRepository
func NewGormAcademicYearRepository(db *gorm.DB) *GormAcademicYearRepository {
	return &GormAcademicYearRepository{db: db}
}

// FindByIDForSchool finds an academic year by ID scoped to a school
func (r *GormAcademicYearRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.AcademicYear, error) {
	var model models.AcademicYearModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForSchool lists a school's academic years, newest first
func (r *GormAcademicYearRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]school.AcademicYear, error) {
	var yearModels []models.AcademicYearModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("label desc").
		Find(&yearModels).Error; err != nil {
		return nil, err
	}

	years := make([]school.AcademicYear, len(yearModels))
	for i, model := range yearModels {
		years[i] = *model.ToDomain()
	}
	return years, nil
}

// Save creates or updates an academic year
func (r *GormAcademicYearRepository) Save(ctx context.Context, year *school.AcademicYear) error {
	model := models.AcademicYearModelFromDomain(year)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormSchoolClassRepository implements SchoolClassRepository using GORM
type GormSchoolClassRepository struct {
	db *gorm.DB
}

// NewGormSchoolClassRepository creates a new GormSchoolClassRepository
func NewGormSchoolClassRepository(db *gorm.DB) *GormSchoolClassRepository {
	return &GormSchoolClassRepository{db: db}
}

// FindByIDForSchool finds a class by ID scoped to a school
func (r *GormSchoolClassRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.SchoolClass, error) {
	var model models.SchoolClassModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForSchool lists a school's classes
func (r *GormSchoolClassRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]school.SchoolClass, error) {
	var classModels []models.SchoolClassModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("name asc").
		Find(&classModels).Error; err != nil {
		return nil, err
	}

	classes := make([]school.SchoolClass, len(classModels))
	for i, model := range classModels {
		classes[i] = *model.ToDomain()
	}
	return classes, nil
}

// Save creates or updates a class
func (r *GormSchoolClassRepository) Save(ctx context.Context, class *school.SchoolClass) error {
	model := models.SchoolClassModelFromDomain(class)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormStudentRepository implements StudentRepository using GORM
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GormStudentRepository
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// FindByIDForSchool finds a student by ID scoped to a school
func (r *GormStudentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForSchool lists a school's students
func (r *GormStudentRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]school.Student, error) {
	var studentModels []models.StudentModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("last_name asc, first_name asc").
		Find(&studentModels).Error; err != nil {
		return nil, err
	}

	students := make([]school.Student, len(studentModels))
	for i, model := range studentModels {
		students[i] = *model.ToDomain()
	}
	return students, nil
}

// Save creates or updates a student
func (r *GormStudentRepository) Save(ctx context.Context, student *school.Student) error {
	model := models.StudentModelFromDomain(student)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormEnrollmentRepository implements EnrollmentRepository using GORM
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GormEnrollmentRepository
func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// FindByIDForSchool finds an enrollment by ID scoped to a school
func (r *GormEnrollmentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByStudentAndYear returns the student's single active enrollment
// for a year, or nil when there is none
func (r *GormEnrollmentRepository) FindActiveByStudentAndYear(ctx context.Context, schoolID, studentID, yearID uuid.UUID) (*school.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		First(&model, "school_id = ? AND student_id = ? AND year_id = ? AND status = ?",
			schoolID, studentID, yearID, school.EnrollmentStatusActive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStudent lists a student's enrollments across years
func (r *GormEnrollmentRepository) FindByStudent(ctx context.Context, schoolID, studentID uuid.UUID) ([]school.Enrollment, error) {
	var enrollmentModels []models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND student_id = ?", schoolID, studentID).
		Order("created_at desc").
		Find(&enrollmentModels).Error; err != nil {
		return nil, err
	}

	enrollments := make([]school.Enrollment, len(enrollmentModels))
	for i, model := range enrollmentModels {
		enrollments[i] = *model.ToDomain()
	}
	return enrollments, nil
}

// Save creates or updates an enrollment
func (r *GormEnrollmentRepository) Save(ctx context.Context, enrollment *school.Enrollment) error {
	model := models.EnrollmentModelFromDomain(enrollment)
	return r.db.WithContext(ctx).Save(model).Error
}
