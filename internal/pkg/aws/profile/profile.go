// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profile provides functionality to parse AWS named profiles.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/cfn-shapes/internal/pkg/ini"
)

const (
	awsConfigEnvVar = "AWS_CONFIG_FILE"
	profilePrefix   = "profile "
)

type sectionsParser interface {
	Sections() []string
}

// Config represents the local AWS config file.
type Config struct {
	f sectionsParser
}

// NewConfig returns a new parsed Config object from $AWS_CONFIG_FILE or $HOME/.aws/config.
func NewConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	f, err := ini.New(path)
	if err != nil {
		return nil, err
	}
	return &Config{f: f}, nil
}

// Names returns a list of profile names available in the user's config file.
// An empty list is returned if there are no profiles.
func (c *Config) Names() []string {
	var profiles []string
	for _, section := range c.f.Sections() {
		profiles = append(profiles, strings.TrimPrefix(section, profilePrefix))
	}
	return profiles
}

func configPath() (string, error) {
	if path, ok := os.LookupEnv(awsConfigEnvVar); ok && path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".aws", "config"), nil
}
