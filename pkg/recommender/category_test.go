package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		input    string
		expected Category
	}{
		{"Sports", Sports},
		{"formal", Formal},
		{"  CASUAL ", Casual},
	}

	for _, tc := range testCases {
		got, err := ParseCategory(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, got)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("wedding")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), `"wedding"`)

	_, err = ParseCategory("")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Sports", Sports.String())
	assert.Equal(t, "Formal", Formal.String())
	assert.Equal(t, "Casual", Casual.String())
	assert.Equal(t, "Category(9)", Category(9).String())
	assert.Equal(t, []Category{Sports, Formal, Casual}, Categories())
}
