// Package config reads and writes the tool's settings file.
//
// Settings live in ~/.env as plain KEY=value lines. Only two keys are
// managed: GCP_PROJECT (required) and GCP_IMAGE (optional). The file may
// hold unrelated keys belonging to other tools; their values are preserved
// on save, though comments and ordering are not (see SaveTo).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// DefaultImage is the image used when GCP_IMAGE is not configured.
	DefaultImage = "ubuntu-2204-jammy-v20250815"

	// FileName is the settings file in the user's home directory.
	FileName = ".env"

	keyProject = "GCP_PROJECT"
	keyImage   = "GCP_IMAGE"
)

// ErrProjectNotSet indicates no GCP project has been configured yet.
var ErrProjectNotSet = errors.New("GCP_PROJECT is not set")

// Config holds the tool's settings for a single invocation. It is loaded
// once at startup and passed explicitly into each command.
type Config struct {
	// Project is the GCP project id. Required for every command except set.
	Project string

	// Image is the boot image for new instances. Defaults to DefaultImage.
	Image string
}

// Path returns the settings file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the settings file from the user's home directory. A missing
// file is not an error; it yields an empty project and the default image.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Config{Image: DefaultImage}

	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.Project = env[keyProject]
	if img := env[keyImage]; img != "" {
		cfg.Image = img
	}
	return cfg, nil
}

// Validate checks that the configuration is usable for instance operations.
func (c Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("%w: run 'gcpfree set' to configure your project", ErrProjectNotSet)
	}
	return nil
}

// Save writes the configuration to the settings file in the user's home
// directory.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path. Keys other than
// GCP_PROJECT and GCP_IMAGE already present in the file keep their values,
// but the file is rewritten as a whole: keys come out sorted and quoted,
// comments and blank lines are not preserved, and GCP_IMAGE is always
// written even when the user never set it.
func (c Config) SaveTo(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		env = map[string]string{}
	}

	env[keyProject] = c.Project
	env[keyImage] = c.Image

	if err := godotenv.Write(env, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
