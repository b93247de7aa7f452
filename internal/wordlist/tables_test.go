package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopCommonSize(t *testing.T) {
	assert.GreaterOrEqual(t, len(TopCommon), 125)
}

func TestRouterDefaultsCoverage(t *testing.T) {
	assert.GreaterOrEqual(t, len(RouterDefaults), 10)
	for vendor, defaults := range RouterDefaults {
		assert.Equal(t, strings.ToLower(vendor), vendor, "vendor keys are lowercase")
		assert.NotEmpty(t, defaults, "vendor %s has defaults", vendor)
	}
}

func TestSSIDPatternsPlaceholder(t *testing.T) {
	for _, p := range SSIDPatterns {
		assert.Contains(t, p, "{ssid}", "pattern %q carries the placeholder", p)
	}
}

func TestDefaultsFor(t *testing.T) {
	assert.NotEmpty(t, DefaultsFor("netgear"))
	assert.Nil(t, DefaultsFor("nonexistent-vendor"))
}

func TestVendors(t *testing.T) {
	vendors := Vendors()
	assert.Len(t, vendors, len(RouterDefaults))
	assert.Contains(t, vendors, "cisco")
}
