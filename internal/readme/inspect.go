// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Section describes one generated topic: its heading text and the number of
// body rows in the table that follows it.
type Section struct {
	Topic string
	Rows  int
}

// ErrNoMarker is returned by Inspect when the file has no marker token.
var ErrNoMarker = errors.New("marker not found")

// Inspect parses the part of the file after marker and returns the level-2
// sections found there. A heading without a following table has zero rows.
func Inspect(path, marker string) ([]Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	_, generated, found := strings.Cut(string(data), marker)
	if !found {
		return nil, fmt.Errorf("%s: %w", path, ErrNoMarker)
	}
	return ParseSections([]byte(generated)), nil
}

// ParseSections walks Markdown source and pairs each "##" heading with the
// row count of the first table beneath it.
func ParseSections(source []byte) []Section {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(source))

	var sections []Section
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				sections = append(sections, Section{Topic: nodeText(node, source)})
			}
		case *east.Table:
			if len(sections) == 0 {
				continue
			}
			last := &sections[len(sections)-1]
			if last.Rows == 0 {
				last.Rows = tableRows(node)
			}
		}
	}
	return sections
}

func tableRows(table *east.Table) int {
	rows := 0
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableRow); ok {
			rows++
		}
	}
	return rows
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
