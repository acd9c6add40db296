// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders generated Markdown for display in a terminal.
package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Options controls terminal rendering.
type Options struct {
	// Style is a glamour standard style name ("auto", "dark", "light", "notty", ...).
	Style string

	// WordWrap is the wrap width in columns; zero disables wrapping.
	WordWrap int
}

// DefaultOptions returns the style used by the preview command.
func DefaultOptions() Options {
	return Options{Style: "auto", WordWrap: 120}
}

// Write renders markdown with glamour and writes the result to w.
func Write(w io.Writer, markdown string, opts Options) error {
	style := opts.Style
	if style == "" {
		style = "auto"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(opts.WordWrap),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
