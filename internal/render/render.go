// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns grouped paper records into Markdown tables.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paper-tables/internal/badge"
	"github.com/pdiddy/paper-tables/pkg/types"
)

const (
	tableHeader = "| Title | Authors | Code / arXiv Page | Summary |\n"
	tableAlign  = "|:-------------------|:-------------------|:-------------------:|:-------------------|\n"
)

// linkEscaper keeps a link target intact inside a table cell.
var linkEscaper = strings.NewReplacer(
	"|", "%7C",
	" ", "%20",
	"(", "%28",
	")", "%29",
	"\r", "",
	"\n", "",
)

// cellEscaper keeps a field inside its table cell and on one row.
var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// Table renders records as a four-column Markdown table: title (linked to the
// project page when present), authors, code and paper badges, and summary.
func Table(records []types.Record) string {
	var b strings.Builder
	b.WriteString(tableHeader)
	b.WriteString(tableAlign)
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			titleCell(r), cell(r.Authors), badgeCell(r), cell(r.Summary))
	}
	return b.String()
}

// Sections renders one "## topic" heading and table per topic, in topic order.
func Sections(groups *types.TopicGroups) string {
	var b strings.Builder
	for _, topic := range groups.Topics() {
		fmt.Fprintf(&b, "\n## %s\n%s\n", cell(topic), Table(groups.Records(topic)))
	}
	return b.String()
}

func titleCell(r types.Record) string {
	title := cell(r.Title)
	if r.ProjectPage != "" {
		return fmt.Sprintf("[%s](%s)", title, linkEscaper.Replace(strings.TrimSpace(r.ProjectPage)))
	}
	return title
}

func badgeCell(r types.Record) string {
	return strings.TrimSpace(badge.Code(r.Code) + " " + badge.Paper(r.ArxivPage))
}

func cell(s string) string {
	return cellEscaper.Replace(s)
}
