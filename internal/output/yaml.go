package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tchung/gcpfree/internal/gcloud"
	"github.com/tchung/gcpfree/internal/image"
)

// YAMLFormatter formats resources as YAML.
type YAMLFormatter struct{}

// FormatInstances formats the instance table as a YAML list.
func (f *YAMLFormatter) FormatInstances(instances []gcloud.Instance) (string, error) {
	if len(instances) == 0 {
		return "[]\n", nil
	}

	data, err := yaml.Marshal(instances)
	if err != nil {
		return "", fmt.Errorf("failed to marshal instances to YAML: %w", err)
	}
	return string(data), nil
}

// FormatImages formats the image catalog as a YAML list.
func (f *YAMLFormatter) FormatImages(entries []image.Entry) (string, error) {
	if len(entries) == 0 {
		return "[]\n", nil
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to marshal images to YAML: %w", err)
	}
	return string(data), nil
}
