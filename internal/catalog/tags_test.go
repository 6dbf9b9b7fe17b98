package catalog_test

import (
	"testing"

	"luxemart/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestValidateTags_AllAllowed(t *testing.T) {
	assert.NoError(t, catalog.ValidateTags([]string{"Watches", "Perfume", "Flip Flop"}))
	assert.NoError(t, catalog.ValidateTags(nil))
}

func TestValidateTags_UnknownTag(t *testing.T) {
	err := catalog.ValidateTags([]string{"Watches", "Hat"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Hat")
}

func TestValidateTags_TooMany(t *testing.T) {
	// Rejected on count alone, even though every member is valid.
	err := catalog.ValidateTags([]string{"Watches", "Perfume", "Belt & Wallet", "Sunglasses", "Shoes", "Formal Shoes"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestIsAllowedTag(t *testing.T) {
	assert.True(t, catalog.IsAllowedTag("Electronic Items"))
	assert.False(t, catalog.IsAllowedTag("electronic items"))
	assert.False(t, catalog.IsAllowedTag(""))
}
