package output

import (
	"encoding/json"
	"fmt"

	"github.com/tchung/gcpfree/internal/gcloud"
	"github.com/tchung/gcpfree/internal/image"
)

// JSONFormatter formats resources as JSON.
type JSONFormatter struct{}

// FormatInstances formats the instance table as a JSON array.
func (f *JSONFormatter) FormatInstances(instances []gcloud.Instance) (string, error) {
	if len(instances) == 0 {
		return "[]\n", nil
	}

	data, err := json.MarshalIndent(instances, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal instances to JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// FormatImages formats the image catalog as a JSON array.
func (f *JSONFormatter) FormatImages(entries []image.Entry) (string, error) {
	if len(entries) == 0 {
		return "[]\n", nil
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal images to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
