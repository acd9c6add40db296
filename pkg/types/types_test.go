// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicGroups(t *testing.T) {
	g := NewTopicGroups()
	g.Add("b", Record{Title: "1"})
	g.Add("a", Record{Title: "2"})
	g.Add("b", Record{Title: "3"})

	assert.Equal(t, []string{"b", "a"}, g.Topics())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.Count())
	assert.Equal(t, []Record{{Title: "1"}, {Title: "3"}}, g.Records("b"))
	assert.Nil(t, g.Records("missing"))

	topics := g.Topics()
	topics[0] = "mutated"
	assert.Equal(t, "b", g.Topics()[0])
}

func TestTopicGroupsZeroValue(t *testing.T) {
	var g TopicGroups
	g.Add("x", Record{Title: "t"})
	assert.Equal(t, 1, g.Count())
}

func TestRecordValidate(t *testing.T) {
	assert.NoError(t, Record{Title: "ViT"}.Validate())
	err := Record{Authors: "Anon"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must not be empty")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{
			name: "csv input",
			cfg:  Config{CSVPath: "papers.csv", Output: "README.md", Marker: DefaultMarker},
		},
		{
			name: "entries input",
			cfg:  Config{Entries: []string{"a;b;c;d;e;f;g"}, Output: "README.md", Marker: DefaultMarker},
		},
		{
			name:   "no input",
			cfg:    Config{Output: "README.md", Marker: DefaultMarker},
			errMsg: "no input provided",
		},
		{
			name:   "no output",
			cfg:    Config{CSVPath: "papers.csv", Marker: DefaultMarker},
			errMsg: "an output path is required",
		},
		{
			name:   "no marker",
			cfg:    Config{YAMLPath: "papers.yaml", Output: "README.md"},
			errMsg: "the marker token must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &ConfigError{Msg: "bad", Err: cause}
	assert.Equal(t, "bad: cause", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "bad", (&ConfigError{Msg: "bad"}).Error())
}
