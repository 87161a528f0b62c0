package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tchung/gcpfree/internal/gcloud"
	"github.com/tchung/gcpfree/internal/image"
)

var testInstances = []gcloud.Instance{
	{
		Name:        "free-tier",
		Zone:        "us-west1-a",
		MachineType: "e2-micro",
		InternalIP:  "10.138.0.2",
		ExternalIP:  "34.83.1.2",
		Status:      "RUNNING",
	},
}

var testImages = []image.Entry{
	{Name: "ubuntu-2204-jammy-v20250815", Description: "Ubuntu 22.04 LTS Standard", Default: true},
	{Name: "ubuntu-2404-noble-amd64-v20250819", Description: "Ubuntu 24.04 LTS Standard"},
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatTable, false},
		{FormatYAML, false},
		{FormatJSON, false},
		{Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := NewFormatter(Options{Format: tt.format})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("table"))
	assert.NoError(t, ValidateFormat("yaml"))
	assert.NoError(t, ValidateFormat("json"))
	assert.Error(t, ValidateFormat("csv"))
}

func TestTableFormatter_Instances(t *testing.T) {
	f := &TableFormatter{}

	out, err := f.FormatInstances(testInstances)
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "free-tier")
	assert.Contains(t, out, "RUNNING")
}

func TestTableFormatter_InstancesNoHeaders(t *testing.T) {
	f := &TableFormatter{NoHeaders: true}

	out, err := f.FormatInstances(testInstances)
	require.NoError(t, err)

	assert.NotContains(t, out, "NAME")
	assert.Contains(t, out, "free-tier")
}

func TestTableFormatter_EmptyInstances(t *testing.T) {
	f := &TableFormatter{}

	out, err := f.FormatInstances(nil)
	require.NoError(t, err)
	assert.Equal(t, "Listed 0 items.\n", out)
}

func TestTableFormatter_MissingIPsShowDash(t *testing.T) {
	f := &TableFormatter{NoHeaders: true}

	out, err := f.FormatInstances([]gcloud.Instance{
		{Name: "free-tier", Zone: "us-west1-a", MachineType: "e2-micro", Status: "TERMINATED"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "-")
}

func TestTableFormatter_Images(t *testing.T) {
	f := &TableFormatter{}

	out, err := f.FormatImages(testImages)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1. ubuntu-2204-jammy-v20250815 (default)", lines[0])
	assert.Equal(t, "2. ubuntu-2404-noble-amd64-v20250819", lines[1])
}

func TestJSONFormatter_Instances(t *testing.T) {
	f := &JSONFormatter{}

	out, err := f.FormatInstances(testInstances)
	require.NoError(t, err)

	var decoded []gcloud.Instance
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testInstances, decoded)
}

func TestJSONFormatter_Empty(t *testing.T) {
	f := &JSONFormatter{}

	out, err := f.FormatInstances(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestYAMLFormatter_Instances(t *testing.T) {
	f := &YAMLFormatter{}

	out, err := f.FormatInstances(testInstances)
	require.NoError(t, err)

	var decoded []gcloud.Instance
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testInstances, decoded)
}

func TestYAMLFormatter_Images(t *testing.T) {
	f := &YAMLFormatter{}

	out, err := f.FormatImages(testImages)
	require.NoError(t, err)

	var decoded []image.Entry
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testImages, decoded)
}
