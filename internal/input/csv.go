// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input loads paper records from CSV files, YAML files, and manual
// semicolon-delimited entries, grouping them by topic.
package input

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/paper-tables/pkg/types"
)

// Column names recognized in CSV headers. Matching ignores case and
// surrounding whitespace.
const (
	colTopic       = "topic"
	colTitle       = "title"
	colAuthors     = "authors"
	colCode        = "code"
	colArxivPage   = "arxiv page"
	colProjectPage = "project page"
	colSummary     = "summary"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads a header-bearing CSV file and groups its rows by the topic
// column. The detected column names are written to w. A file without a topic
// column is a *types.ConfigError.
func LoadCSV(path string, w io.Writer) (*types.TopicGroups, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, w)
}

// ReadCSV is LoadCSV over an already open reader.
func ReadCSV(r io.Reader, w io.Writer) (*types.TopicGroups, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &types.ConfigError{Msg: "CSV must contain a 'topic' column", Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	fmt.Fprintf(w, "Detected column names: %v\n", header)

	index := columnIndex(header)
	if _, ok := index[colTopic]; !ok {
		return nil, &types.ConfigError{Msg: "CSV must contain a 'topic' column"}
	}

	groups := types.NewTopicGroups()
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		groups.Add(field(colTopic), types.Record{
			Title:       field(colTitle),
			Authors:     field(colAuthors),
			Code:        field(colCode),
			ArxivPage:   field(colArxivPage),
			ProjectPage: field(colProjectPage),
			Summary:     field(colSummary),
		})
	}
	return groups, nil
}

// skipBOM drops a leading UTF-8 byte order mark so a quoted first header
// still parses.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// columnIndex maps normalized header names to their column position. The
// first occurrence of a duplicated name wins.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	return index
}
