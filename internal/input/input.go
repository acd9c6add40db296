// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"fmt"
	"io"

	"github.com/pdiddy/paper-tables/pkg/types"
)

// Load reads records from the source configured in cfg. When several sources
// are set, CSV takes precedence over manual entries, which take precedence
// over a YAML file. Ignored sources are reported to w.
func Load(cfg types.Config, w io.Writer) (*types.TopicGroups, error) {
	switch {
	case cfg.CSVPath != "":
		if len(cfg.Entries) > 0 {
			fmt.Fprintf(w, "note: ignoring %d manual entries %q; the CSV file %s takes precedence\n",
				len(cfg.Entries), cfg.Entries, cfg.CSVPath)
		}
		if cfg.YAMLPath != "" {
			fmt.Fprintf(w, "note: ignoring records file %s; the CSV file %s takes precedence\n", cfg.YAMLPath, cfg.CSVPath)
		}
		return LoadCSV(cfg.CSVPath, w)
	case len(cfg.Entries) > 0:
		if cfg.YAMLPath != "" {
			fmt.Fprintf(w, "note: ignoring records file %s; manual entries take precedence\n", cfg.YAMLPath)
		}
		return ParseEntries(cfg.Entries, w), nil
	case cfg.YAMLPath != "":
		return LoadYAML(cfg.YAMLPath)
	default:
		return nil, cfg.ValidateSource()
	}
}
