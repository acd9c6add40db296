// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-tables/pkg/types"
)

const papersCSV = `topic,title,authors,code,arxiv page,project page,summary
Vision,ViT,Dosovitskiy,https://github.com/google-research/vision_transformer,https://arxiv.org/abs/2010.11929,,"Images as 16x16 words, no convolutions."
Language,GPT-3,Brown,,https://arxiv.org/abs/2005.14165,,Few-shot learners.
Vision,DeiT,Touvron,,,https://deit.dev,Distilled ViT.
`

func TestReadCSV(t *testing.T) {
	var diag bytes.Buffer
	groups, err := ReadCSV(strings.NewReader(papersCSV), &diag)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vision", "Language"}, groups.Topics())
	assert.Equal(t, 3, groups.Count())

	vision := groups.Records("Vision")
	require.Len(t, vision, 2)
	assert.Equal(t, types.Record{
		Title:     "ViT",
		Authors:   "Dosovitskiy",
		Code:      "https://github.com/google-research/vision_transformer",
		ArxivPage: "https://arxiv.org/abs/2010.11929",
		Summary:   "Images as 16x16 words, no convolutions.",
	}, vision[0])
	assert.Equal(t, "https://deit.dev", vision[1].ProjectPage)
	assert.Contains(t, diag.String(), "Detected column names: [topic title authors code arxiv page project page summary]")
}

func TestReadCSVBareQuotes(t *testing.T) {
	input := "topic,title,authors,code,arxiv page,project page,summary\n" +
		"Vision,The \"Best\" Model,Anon,,,,Uses 5\" patches.\n"
	groups, err := ReadCSV(strings.NewReader(input), &bytes.Buffer{})
	require.NoError(t, err)
	r := groups.Records("Vision")
	require.Len(t, r, 1)
	assert.Equal(t, `The "Best" Model`, r[0].Title)
	assert.Equal(t, `Uses 5" patches.`, r[0].Summary)
}

func TestReadCSVWithBOM(t *testing.T) {
	input := "\ufeff\"topic\",title\nVision,ViT\n"
	groups, err := ReadCSV(strings.NewReader(input), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Vision"}, groups.Topics())
	assert.Equal(t, "ViT", groups.Records("Vision")[0].Title)
}

func TestReadCSVHeaderNormalization(t *testing.T) {
	input := " Topic , TITLE ,Arxiv Page\nVision,ViT,https://arxiv.org/abs/1\n"
	groups, err := ReadCSV(strings.NewReader(input), &bytes.Buffer{})
	require.NoError(t, err)
	r := groups.Records("Vision")[0]
	assert.Equal(t, "ViT", r.Title)
	assert.Equal(t, "https://arxiv.org/abs/1", r.ArxivPage)
	assert.Empty(t, r.Code)
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "topic,title,authors\nVision,ViT\nVision,DeiT,Touvron,extra\n"
	groups, err := ReadCSV(strings.NewReader(input), &bytes.Buffer{})
	require.NoError(t, err)
	rs := groups.Records("Vision")
	require.Len(t, rs, 2)
	assert.Empty(t, rs[0].Authors)
	assert.Equal(t, "Touvron", rs[1].Authors)
}

func TestReadCSVTopicVerbatim(t *testing.T) {
	input := "topic,title\nVision ,A\nVision,B\n"
	groups, err := ReadCSV(strings.NewReader(input), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Vision ", "Vision"}, groups.Topics())
}

func TestReadCSVMissingTopic(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no topic column", input: "title,authors\nViT,Dosovitskiy\n"},
		{name: "empty file", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), &bytes.Buffer{})
			require.Error(t, err)
			var cfgErr *types.ConfigError
			assert.True(t, errors.As(err, &cfgErr), "want *types.ConfigError, got %T", err)
			assert.Contains(t, err.Error(), "topic")
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseEntries(t *testing.T) {
	var diag bytes.Buffer
	entries := []string{
		"Vision; ViT ;Dosovitskiy;https://github.com/a/b;https://arxiv.org/abs/2010.11929;;Patches, as words.",
		"Vision;too;few;fields",
		"Language;GPT;Brown;;;;Few-shot.",
		"Language;A;B;C;D;E;F;G",
	}

	groups := ParseEntries(entries, &diag)

	assert.Equal(t, []string{"Vision", "Language"}, groups.Topics())
	assert.Equal(t, 2, groups.Count())
	assert.Equal(t, types.Record{
		Title:     "ViT",
		Authors:   "Dosovitskiy",
		Code:      "https://github.com/a/b",
		ArxivPage: "https://arxiv.org/abs/2010.11929",
		Summary:   "Patches, as words.",
	}, groups.Records("Vision")[0])
	assert.Contains(t, diag.String(), "Skipping malformed entry: Vision;too;few;fields")
	assert.Contains(t, diag.String(), "Skipping malformed entry: Language;A;B;C;D;E;F;G")
}

func TestParseEntriesTopicVerbatim(t *testing.T) {
	groups := ParseEntries([]string{
		"Vision;A;;;;;",
		" Vision;B;;;;;",
	}, &bytes.Buffer{})
	assert.Equal(t, []string{"Vision", " Vision"}, groups.Topics())
}

func TestParseEntriesAllMalformed(t *testing.T) {
	groups := ParseEntries([]string{"a;b", ""}, &bytes.Buffer{})
	assert.Equal(t, 0, groups.Len())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`- topic: Vision
  title: ViT
  authors: Dosovitskiy
  arxiv_page: https://arxiv.org/abs/2010.11929
  summary: Patches.
- topic: Language
  title: GPT-3
  authors: Brown
  code: https://github.com/openai/gpt-3
  summary: Few-shot.
`), 0o644))

	groups, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vision", "Language"}, groups.Topics())
	assert.Equal(t, "https://arxiv.org/abs/2010.11929", groups.Records("Vision")[0].ArxivPage)
	assert.Equal(t, "https://github.com/openai/gpt-3", groups.Records("Language")[0].Code)
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		configErr bool
	}{
		{name: "missing topic", content: "- title: ViT\n", configErr: true},
		{name: "invalid yaml", content: ":::bad\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "papers.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadYAML(path)
			require.Error(t, err)
			var cfgErr *types.ConfigError
			assert.Equal(t, tt.configErr, errors.As(err, &cfgErr))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "papers.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("topic,title\nFromCSV,A\n"), 0o644))
	yamlPath := filepath.Join(dir, "papers.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- topic: FromYAML\n  title: B\n"), 0o644))
	entries := []string{"FromEntries;C;;;;;"}

	tests := []struct {
		name string
		cfg  types.Config
		want string
	}{
		{name: "csv wins", cfg: types.Config{CSVPath: csvPath, YAMLPath: yamlPath, Entries: entries}, want: "FromCSV"},
		{name: "entries over yaml", cfg: types.Config{YAMLPath: yamlPath, Entries: entries}, want: "FromEntries"},
		{name: "yaml alone", cfg: types.Config{YAMLPath: yamlPath}, want: "FromYAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := Load(tt.cfg, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, groups.Topics())
		})
	}
}

func TestLoadReportsIgnoredSources(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "papers.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("topic,title\nFromCSV,A\n"), 0o644))
	yamlPath := filepath.Join(dir, "papers.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- topic: FromYAML\n  title: B\n"), 0o644))

	var diag bytes.Buffer
	_, err := Load(types.Config{CSVPath: csvPath, YAMLPath: yamlPath, Entries: []string{"chekc"}}, &diag)
	require.NoError(t, err)
	assert.Contains(t, diag.String(), `ignoring 1 manual entries ["chekc"]`)
	assert.Contains(t, diag.String(), "ignoring records file "+yamlPath)

	diag.Reset()
	_, err = Load(types.Config{YAMLPath: yamlPath, Entries: []string{"T;A;;;;;"}}, &diag)
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "manual entries take precedence")

	diag.Reset()
	_, err = Load(types.Config{CSVPath: csvPath}, &diag)
	require.NoError(t, err)
	assert.NotContains(t, diag.String(), "ignoring")
}

func TestLoadNoInput(t *testing.T) {
	_, err := Load(types.Config{Output: "README.md"}, &bytes.Buffer{})
	require.Error(t, err)
	var cfgErr *types.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "no input provided")
}
