// Package image selects and describes Ubuntu LTS boot images.
//
// The public ubuntu-os-cloud catalog carries many variants (Pro, Minimal,
// accelerator builds, ARM64). This tool only offers the two AMD64 LTS
// Standard families that are Free Tier friendly: 22.04 (jammy) and
// 24.04 (noble).
package image

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one selectable image in the catalog.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Default     bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// supported LTS release numbers as they appear in image names.
var supportedReleases = []string{"2204", "2404"}

// excluded name markers. Pro, Minimal and accelerator builds are not Free
// Tier friendly; ARM64 images do not run on e2-micro.
var excludedMarkers = []string{"accelerator", "pro", "minimal", "arm64"}

// Filter keeps only the supported AMD64 LTS Standard image names.
func Filter(names []string) []string {
	var kept []string
	for _, name := range names {
		if !isSupportedRelease(name) {
			continue
		}
		if hasExcludedMarker(name) {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func isSupportedRelease(name string) bool {
	for _, release := range supportedReleases {
		if strings.Contains(name, release) {
			return true
		}
	}
	return false
}

func hasExcludedMarker(name string) bool {
	for _, marker := range excludedMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// Sort orders image names ascending by release, then by the dated version
// suffix within a release.
func Sort(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ri, rj := releaseOf(names[i]), releaseOf(names[j])
		if ri != rj {
			return ri < rj
		}
		return versionOf(names[i]) < versionOf(names[j])
	})
}

// releaseOf extracts the release number ("2204", "2404") from an image name.
func releaseOf(name string) string {
	for _, release := range supportedReleases {
		if strings.Contains(name, release) {
			return release
		}
	}
	return ""
}

// versionOf extracts the trailing vYYYYMMDD version from an image name.
// Names without one sort first within their release.
func versionOf(name string) string {
	idx := strings.LastIndex(name, "-v")
	if idx < 0 {
		return ""
	}
	return name[idx+2:]
}

// Describe returns a user-friendly description for an image name.
func Describe(name string) string {
	switch {
	case strings.Contains(name, "2204"):
		return "Ubuntu 22.04 LTS Standard"
	case strings.Contains(name, "2404"):
		return "Ubuntu 24.04 LTS Standard"
	default:
		return name
	}
}

// Catalog filters and sorts raw image names into display entries, marking
// the configured default image.
func Catalog(names []string, defaultImage string) []Entry {
	kept := Filter(names)
	Sort(kept)

	entries := make([]Entry, 0, len(kept))
	for _, name := range kept {
		entries = append(entries, Entry{
			Name:        name,
			Description: Describe(name),
			Default:     name == defaultImage,
		})
	}
	return entries
}

// Fallback returns known LTS image names, offered when the live catalog
// cannot be queried so configuration still works offline.
func Fallback() []string {
	return []string{
		"ubuntu-2204-jammy-v20250815",
		"ubuntu-2404-noble-amd64-v20250819",
	}
}

// Format renders an entry as a numbered list line.
func Format(idx int, e Entry) string {
	marker := ""
	if e.Default {
		marker = " (default)"
	}
	return fmt.Sprintf("%d. %s%s", idx, e.Name, marker)
}
