package banking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_SingleCategory(t *testing.T) {
	detection := Detect("I want to reset password for online banking")

	assert.Equal(t, "password", detection.Type)
	require.NotNil(t, detection.Guide)
	assert.Equal(t, "forgot-password", detection.Guide.ID)
	assert.NotEmpty(t, detection.Links)
}

func TestDetect_LastMatchingCategoryWins(t *testing.T) {
	// Both the lost-card and balance groups match; the balance group runs
	// later, so it owns the type and guide while links accumulate from both.
	detection := Detect("I have a lost card and also want to check balance")

	assert.Equal(t, "balance", detection.Type)
	require.NotNil(t, detection.Guide)
	assert.Equal(t, "check-balance", detection.Guide.ID)

	categories := map[Category]bool{}
	for _, link := range detection.Links {
		categories[link.Category] = true
	}
	assert.True(t, categories[CategoryCard], "expected card links from the earlier match")
	assert.True(t, categories[CategoryAccount], "expected account links from the later match")
}

func TestDetect_CaseInsensitive(t *testing.T) {
	detection := Detect("LOST CARD")

	assert.Equal(t, "lost-card", detection.Type)
	require.NotNil(t, detection.Guide)
	assert.Equal(t, "lost-card", detection.Guide.ID)
}

func TestDetect_NoMatchFallsBackToGeneralLinks(t *testing.T) {
	detection := Detect("hello there")

	assert.Empty(t, detection.Type)
	assert.Nil(t, detection.Guide)
	assert.Len(t, detection.Links, 3)
}
