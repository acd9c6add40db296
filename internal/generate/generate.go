// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the full pipeline: load records, render one table per
// topic, and patch the output README.
package generate

import (
	"fmt"
	"io"

	"github.com/pdiddy/paper-tables/internal/input"
	"github.com/pdiddy/paper-tables/internal/readme"
	"github.com/pdiddy/paper-tables/internal/render"
	"github.com/pdiddy/paper-tables/pkg/types"
)

// Result summarizes a generation run.
type Result struct {
	Topics   int
	Records  int
	Sections string
}

// Render loads the configured input and returns the rendered sections without
// touching the output file. Diagnostics are written to w.
func Render(cfg types.Config, w io.Writer) (Result, error) {
	if err := cfg.ValidateSource(); err != nil {
		return Result{}, err
	}
	groups, err := input.Load(cfg, w)
	if err != nil {
		return Result{}, err
	}
	warnInvalid(groups, w)
	return Result{
		Topics:   groups.Len(),
		Records:  groups.Count(),
		Sections: render.Sections(groups),
	}, nil
}

// Run renders the configured input and writes it into cfg.Output after the
// marker. Diagnostics are written to w.
func Run(cfg types.Config, w io.Writer) (Result, error) {
	if cfg.Marker == "" {
		cfg.Marker = types.DefaultMarker
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	res, err := Render(cfg, w)
	if err != nil {
		return Result{}, err
	}
	if err := readme.Patch(cfg.Output, res.Sections, cfg.Marker, w); err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "Markdown tables have been written to %s\n", cfg.Output)
	fmt.Fprintf(w, "%s, %s\n", plural(res.Topics, "topic"), plural(res.Records, "record"))
	return res, nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func warnInvalid(groups *types.TopicGroups, w io.Writer) {
	for _, topic := range groups.Topics() {
		for i, r := range groups.Records(topic) {
			if err := r.Validate(); err != nil {
				fmt.Fprintf(w, "warning: %s record %d: %v\n", topic, i+1, err)
			}
		}
	}
}
