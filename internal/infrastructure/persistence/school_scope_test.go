package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/school"
)

// TestFeeTypeCode_ScopedPerSchool verifies the unique constraint on fee type
// codes includes the school, so two schools can each have their own TUITION.
func TestFeeTypeCode_ScopedPerSchool(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormFeeTypeRepository(db)

	schoolA := uuid.New()
	schoolB := uuid.New()

	newFeeType := func(schoolID uuid.UUID) *fees.FeeType {
		ft, err := fees.NewFeeType(schoolID, uuid.New(), "TUITION", "Tuition")
		require.NoError(t, err)
		return ft
	}

	require.NoError(t, repo.Save(context.Background(), newFeeType(schoolA)))
	assert.NoError(t, repo.Save(context.Background(), newFeeType(schoolB)),
		"a second school must be able to reuse the code")
	assert.Error(t, repo.Save(context.Background(), newFeeType(schoolA)),
		"the same school reusing a code must hit the unique constraint")
}

// TestYearLabel_ScopedPerSchool verifies academic year labels are unique per
// school, not globally.
func TestYearLabel_ScopedPerSchool(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormAcademicYearRepository(db)

	schoolA := uuid.New()
	schoolB := uuid.New()

	newYear := func(schoolID uuid.UUID) *school.AcademicYear {
		year, err := school.NewAcademicYear(schoolID, uuid.New(), "2025-2026")
		require.NoError(t, err)
		return year
	}

	require.NoError(t, repo.Save(context.Background(), newYear(schoolA)))
	assert.NoError(t, repo.Save(context.Background(), newYear(schoolB)))
	assert.Error(t, repo.Save(context.Background(), newYear(schoolA)))
}
