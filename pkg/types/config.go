// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultMarker is the README token after which generated tables are written.
const DefaultMarker = "<!-- TABLES_START -->"

// Config holds the settings for one generation run.
type Config struct {
	// CSVPath is a header-bearing CSV file with a topic column.
	CSVPath string `json:"csv" yaml:"csv"`

	// YAMLPath is a YAML list of records, each carrying a topic key.
	YAMLPath string `json:"yaml" yaml:"yaml"`

	// Entries are manual records, each seven semicolon-separated fields:
	// topic;title;authors;code;arxiv page;project page;summary.
	Entries []string `json:"entries,omitempty" yaml:"entries,omitempty"`

	// Output is the README file to patch.
	Output string `json:"output" yaml:"output"`

	// Marker is the token after which tables are written (default DefaultMarker).
	Marker string `json:"marker" yaml:"marker"`
}

// HasInput reports whether any input source is configured.
func (c Config) HasInput() bool {
	return c.CSVPath != "" || c.YAMLPath != "" || len(c.Entries) > 0
}

// ValidateSource checks that at least one input source is configured.
func (c Config) ValidateSource() error {
	if !c.HasInput() {
		return &ConfigError{Msg: "no input provided; use --csv, --yaml, or --entries"}
	}
	return nil
}

// Validate checks the full configuration for a run that writes Output.
func (c Config) Validate() error {
	if err := c.ValidateSource(); err != nil {
		return err
	}
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Output, validation.Required.Error("an output path is required")),
		validation.Field(&c.Marker, validation.Required.Error("the marker token must not be empty")),
	)
	if err != nil {
		return &ConfigError{Msg: "invalid configuration", Err: err}
	}
	return nil
}
