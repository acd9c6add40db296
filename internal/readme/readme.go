// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readme splices generated tables into a Markdown file after a marker
// token and inspects the generated region.
package readme

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Splice returns content with everything after the first occurrence of
// marker replaced by sections. When marker is absent, the marker and
// sections are appended to the end and found is false.
func Splice(content, sections, marker string) (updated string, found bool) {
	before, _, found := strings.Cut(content, marker)
	if found {
		return before + marker + sections, true
	}
	return content + "\n" + marker + sections, false
}

// Patch rewrites the file at path so that sections follow the marker.
// The file is overwritten in place; a missing marker is reported to w and the
// tables are appended at the end instead.
func Patch(path, sections, marker string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, found := Splice(string(data), sections, marker)
	if !found {
		fmt.Fprintf(w, "Token '%s' not found in %s. Appending tables at the end.\n", marker, path)
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "README has been updated with new tables at %s\n", path)
	return nil
}
