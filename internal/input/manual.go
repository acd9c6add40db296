// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-tables/pkg/types"
)

// entryFields is the number of semicolon-separated fields in a manual entry:
// topic, title, authors, code, arXiv page, project page, summary.
const entryFields = 7

// ParseEntries converts manual entries into grouped records. Entries with the
// wrong number of fields are reported to w and skipped. The topic is used
// verbatim; the other fields are trimmed.
func ParseEntries(entries []string, w io.Writer) *types.TopicGroups {
	groups := types.NewTopicGroups()
	for _, entry := range entries {
		parts := strings.Split(entry, ";")
		if len(parts) != entryFields {
			fmt.Fprintf(w, "Skipping malformed entry: %s\n", entry)
			continue
		}
		topic := parts[0]
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		groups.Add(topic, types.Record{
			Title:       parts[1],
			Authors:     parts[2],
			Code:        parts[3],
			ArxivPage:   parts[4],
			ProjectPage: parts[5],
			Summary:     parts[6],
		})
	}
	return groups
}
