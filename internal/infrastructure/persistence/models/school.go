package models

import (
	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/school"
)

// AcademicYearModel is the persistence model for academic years. SchoolID is
// declared on the model itself so it can lead the composite unique index that
// scopes labels per school.
type AcademicYearModel struct {
	BaseModel
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_year_school_label,priority:1"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	Label     string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_year_school_label,priority:2"`
	IsCurrent bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (AcademicYearModel) TableName() string {
	return "academic_years"
}

// ToDomain converts the persistence model to a domain AcademicYear entity.
func (m *AcademicYearModel) ToDomain() *school.AcademicYear {
	y := &school.AcademicYear{
		Label:     m.Label,
		IsCurrent: m.IsCurrent,
	}
	y.BaseEntity = m.BaseModel.ToDomain()
	y.SchoolID = m.SchoolID
	y.CreatedBy = m.CreatedBy
	return y
}

// FromDomain populates the persistence model from a domain AcademicYear entity.
func (m *AcademicYearModel) FromDomain(y *school.AcademicYear) {
	m.FromDomainBaseEntity(y.BaseEntity)
	m.SchoolID = y.SchoolID
	m.CreatedBy = y.CreatedBy
	m.Label = y.Label
	m.IsCurrent = y.IsCurrent
}

// AcademicYearModelFromDomain creates a new persistence model from a domain AcademicYear.
func AcademicYearModelFromDomain(y *school.AcademicYear) *AcademicYearModel {
	m := &AcademicYearModel{}
	m.FromDomain(y)
	return m
}

// SchoolClassModel is the persistence model for classes.
type SchoolClassModel struct {
	SchoolAggregateModel
	Name  string `gorm:"type:varchar(100);not null"`
	Level string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (SchoolClassModel) TableName() string {
	return "school_classes"
}

// ToDomain converts the persistence model to a domain SchoolClass entity.
func (m *SchoolClassModel) ToDomain() *school.SchoolClass {
	c := &school.SchoolClass{
		Name:  m.Name,
		Level: m.Level,
	}
	m.PopulateSchoolAggregateRoot(&c.SchoolAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain SchoolClass entity.
func (m *SchoolClassModel) FromDomain(c *school.SchoolClass) {
	m.FromDomainSchoolAggregateRoot(c.SchoolAggregateRoot)
	m.Name = c.Name
	m.Level = c.Level
}

// SchoolClassModelFromDomain creates a new persistence model from a domain SchoolClass.
func SchoolClassModelFromDomain(c *school.SchoolClass) *SchoolClassModel {
	m := &SchoolClassModel{}
	m.FromDomain(c)
	return m
}

// StudentModel is the persistence model for students.
type StudentModel struct {
	SchoolAggregateModel
	FirstName          string `gorm:"type:varchar(100);not null"`
	LastName           string `gorm:"type:varchar(100);not null"`
	RegistrationNumber string `gorm:"type:varchar(50);index"`
}

// TableName returns the table name for GORM
func (StudentModel) TableName() string {
	return "students"
}

// ToDomain converts the persistence model to a domain Student entity.
func (m *StudentModel) ToDomain() *school.Student {
	s := &school.Student{
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		RegistrationNumber: m.RegistrationNumber,
	}
	m.PopulateSchoolAggregateRoot(&s.SchoolAggregateRoot)
	return s
}

// FromDomain populates the persistence model from a domain Student entity.
func (m *StudentModel) FromDomain(s *school.Student) {
	m.FromDomainSchoolAggregateRoot(s.SchoolAggregateRoot)
	m.FirstName = s.FirstName
	m.LastName = s.LastName
	m.RegistrationNumber = s.RegistrationNumber
}

// StudentModelFromDomain creates a new persistence model from a domain Student.
func StudentModelFromDomain(s *school.Student) *StudentModel {
	m := &StudentModel{}
	m.FromDomain(s)
	return m
}

// EnrollmentModel is the persistence model for enrollments. The partial
// unique index keeping one ACTIVE enrollment per (school, student, year)
// lives in the SQL migrations.
type EnrollmentModel struct {
	SchoolAggregateModel
	StudentID uuid.UUID               `gorm:"type:uuid;not null;index"`
	ClassID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	YearID    uuid.UUID               `gorm:"type:uuid;not null;index"`
	Status    school.EnrollmentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// ToDomain converts the persistence model to a domain Enrollment entity.
func (m *EnrollmentModel) ToDomain() *school.Enrollment {
	e := &school.Enrollment{
		StudentID: m.StudentID,
		ClassID:   m.ClassID,
		YearID:    m.YearID,
		Status:    m.Status,
	}
	m.PopulateSchoolAggregateRoot(&e.SchoolAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain Enrollment entity.
func (m *EnrollmentModel) FromDomain(e *school.Enrollment) {
	m.FromDomainSchoolAggregateRoot(e.SchoolAggregateRoot)
	m.StudentID = e.StudentID
	m.ClassID = e.ClassID
	m.YearID = e.YearID
	m.Status = e.Status
}

// EnrollmentModelFromDomain creates a new persistence model from a domain Enrollment.
func EnrollmentModelFromDomain(e *school.Enrollment) *EnrollmentModel {
	m := &EnrollmentModel{}
	m.FromDomain(e)
	return m
}
