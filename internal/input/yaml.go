// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-tables/pkg/types"
)

// yamlRecord is the on-disk form of one entry in a YAML records file.
type yamlRecord struct {
	Topic        string `yaml:"topic"`
	types.Record `yaml:",inline"`
}

// LoadYAML reads a YAML list of records, each with a topic key, and groups
// them by topic. An entry without a topic is a *types.ConfigError.
func LoadYAML(path string) (*types.TopicGroups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}
	var entries []yamlRecord
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing records file: %w", err)
	}

	groups := types.NewTopicGroups()
	for i, e := range entries {
		if e.Topic == "" {
			return nil, &types.ConfigError{Msg: fmt.Sprintf("records file entry %d has no topic", i+1)}
		}
		groups.Add(e.Topic, e.Record)
	}
	return groups, nil
}
