package fees

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeeType(t *testing.T) {
	t.Run("normalizes code", func(t *testing.T) {
		ft, err := NewFeeType(uuid.New(), uuid.New(), " tuition ", "Frais de scolarité")
		require.NoError(t, err)
		assert.Equal(t, "TUITION", ft.Code)
		assert.True(t, ft.IsActive)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewFeeType(uuid.New(), uuid.New(), "  ", "Tuition")
		assert.Error(t, err)
	})

	t.Run("rejects oversized code", func(t *testing.T) {
		_, err := NewFeeType(uuid.New(), uuid.New(), strings.Repeat("A", 31), "Tuition")
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewFeeType(uuid.New(), uuid.New(), "TUITION", " ")
		assert.Error(t, err)
	})
}

func TestFeeType_Rename(t *testing.T) {
	ft, err := NewFeeType(uuid.New(), uuid.New(), "TUITION", "Tuition")
	require.NoError(t, err)

	require.NoError(t, ft.Rename("School fees"))
	assert.Equal(t, "School fees", ft.Name)

	assert.Error(t, ft.Rename(" "))
	assert.Equal(t, "School fees", ft.Name)
}

func TestFeeType_Deactivate(t *testing.T) {
	ft, err := NewFeeType(uuid.New(), uuid.New(), "TUITION", "Tuition")
	require.NoError(t, err)

	ft.Deactivate()
	assert.False(t, ft.IsActive)
}
