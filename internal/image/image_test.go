package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedCatalog resembles the raw ubuntu-os-cloud listing: Standard builds
// mixed with Pro, Minimal, accelerator and ARM64 variants.
var mixedCatalog = []string{
	"ubuntu-2404-noble-amd64-v20250819",
	"ubuntu-2204-jammy-pro-v20250801",
	"ubuntu-2204-jammy-v20250815",
	"ubuntu-2404-noble-arm64-v20250819",
	"ubuntu-2204-jammy-minimal-v20250815",
	"ubuntu-accelerator-2204-jammy-v20250710",
	"ubuntu-2004-focal-v20250701",
}

func TestFilter(t *testing.T) {
	got := Filter(mixedCatalog)

	assert.ElementsMatch(t, []string{
		"ubuntu-2204-jammy-v20250815",
		"ubuntu-2404-noble-amd64-v20250819",
	}, got)
}

func TestSort_AscendingByRelease(t *testing.T) {
	names := []string{
		"ubuntu-2404-noble-amd64-v20250819",
		"ubuntu-2204-jammy-v20250815",
		"ubuntu-2204-jammy-v20250701",
	}
	Sort(names)

	assert.Equal(t, []string{
		"ubuntu-2204-jammy-v20250701",
		"ubuntu-2204-jammy-v20250815",
		"ubuntu-2404-noble-amd64-v20250819",
	}, names)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ubuntu-2204-jammy-v20250815", "Ubuntu 22.04 LTS Standard"},
		{"ubuntu-2404-noble-amd64-v20250819", "Ubuntu 24.04 LTS Standard"},
		{"debian-12-bookworm-v20250814", "debian-12-bookworm-v20250814"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.name))
		})
	}
}

func TestCatalog(t *testing.T) {
	entries := Catalog(mixedCatalog, "ubuntu-2204-jammy-v20250815")

	// Exactly the two AMD64 LTS Standard entries, ascending by release,
	// with the configured default marked.
	require.Len(t, entries, 2)

	assert.Equal(t, "ubuntu-2204-jammy-v20250815", entries[0].Name)
	assert.Equal(t, "Ubuntu 22.04 LTS Standard", entries[0].Description)
	assert.True(t, entries[0].Default)

	assert.Equal(t, "ubuntu-2404-noble-amd64-v20250819", entries[1].Name)
	assert.Equal(t, "Ubuntu 24.04 LTS Standard", entries[1].Description)
	assert.False(t, entries[1].Default)
}

func TestCatalog_NoDefaultMatch(t *testing.T) {
	entries := Catalog(mixedCatalog, "ubuntu-2204-jammy-v19990101")
	for _, e := range entries {
		assert.False(t, e.Default)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1. img-a (default)", Format(1, Entry{Name: "img-a", Default: true}))
	assert.Equal(t, "2. img-b", Format(2, Entry{Name: "img-b"}))
}

func TestFallback_IsValidCatalog(t *testing.T) {
	// The offline fallback must survive its own filter.
	assert.Equal(t, Fallback(), Filter(Fallback()))
}
