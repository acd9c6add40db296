// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package badge builds Markdown image badges for code repositories and paper
// pages. The functions are pure string transforms; URLs are never fetched.
package badge

import (
	"fmt"
	"strings"
)

const (
	githubHost = "github.com"
	arxivHost  = "arxiv.org"
	ar5ivHost  = "ar5iv.labs"
	starsBadge = "https://img.shields.io/github/stars/%s?style=social"
	arxivBadge = "https://img.shields.io/badge/arXiv-%s-b31b1b.svg?style=for-the-badge"
)

// shieldsEscaper escapes the separators of a shields.io static badge path.
var shieldsEscaper = strings.NewReplacer("-", "--", "_", "__")

// Code returns a GitHub stars badge linking to codeURL, or "" when codeURL
// is not a GitHub URL.
func Code(codeURL string) string {
	if !strings.Contains(codeURL, githubHost) {
		return ""
	}
	repo := RepoName(codeURL)
	if repo == "" {
		return ""
	}
	return fmt.Sprintf("[![GitHub]("+starsBadge+")](%s)", repo, codeURL)
}

// RepoName returns the owner/repo part of a GitHub URL with trailing slashes
// removed, or "" when the URL has nothing after the host.
func RepoName(codeURL string) string {
	trimmed := strings.TrimRight(codeURL, "/")
	_, after, found := strings.Cut(trimmed, githubHost+"/")
	if !found {
		return ""
	}
	return strings.Trim(after, "/")
}

// Paper returns an arXiv badge linking to paperURL, or "" when paperURL is not
// an arXiv or ar5iv URL.
func Paper(paperURL string) string {
	if !strings.Contains(paperURL, arxivHost) && !strings.Contains(paperURL, ar5ivHost) {
		return ""
	}
	id := PaperID(paperURL)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("[![arXiv]("+arxivBadge+")](%s)", shieldsEscaper.Replace(id), paperURL)
}

// PaperID returns the last path segment of paperURL, ignoring trailing slashes.
func PaperID(paperURL string) string {
	trimmed := strings.TrimRight(paperURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
