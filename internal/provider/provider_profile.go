// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// connectionProfile is the YAML file form of the connection attributes.
// Unknown keys are rejected so typos do not silently drop a field.
type connectionProfile struct {
	DataSource    string   `yaml:"data_source"`
	DataSourceEnv []string `yaml:"data_source_env"`
	URL           string   `yaml:"url"`
	Host          string   `yaml:"host"`
	Port          string   `yaml:"port"`
	DatabaseName  string   `yaml:"database_name"`
	SubProtocol   string   `yaml:"sub_protocol"`
	DriverName    string   `yaml:"driver_name"`
	AdminUser     string   `yaml:"admin_user"`
	AdminPassword *string  `yaml:"admin_password"`
}

// loadProfile reads the profile at path. An empty file yields an empty profile.
func loadProfile(path string) (connectionProfile, error) {
	var p connectionProfile
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return connectionProfile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return p, nil
}
