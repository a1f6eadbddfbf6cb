// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

// Package config handles .paymap.yaml configuration files.
package config

// Config represents the contents of a .paymap.yaml file. Every field is
// optional; flags set explicitly on the command line win over file values.
type Config struct {
	Input      string `yaml:"input,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Format     string `yaml:"format,omitempty"`
	AllSystems *bool  `yaml:"all_systems,omitempty"`
	Overrides  string `yaml:"overrides,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".paymap.yaml"
