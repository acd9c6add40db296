// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-tables pipeline:
// the paper Record, its grouping by topic, and the run configuration.
package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Record holds the fields of one paper row. A Record has no identity beyond
// its field values and is not modified after parsing.
type Record struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors is the author list as a single display string.
	Authors string `json:"authors" yaml:"authors"`

	// Code is the code repository URL (optional).
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// ArxivPage is the arXiv or ar5iv paper URL (optional).
	ArxivPage string `json:"arxiv_page,omitempty" yaml:"arxiv_page,omitempty"`

	// ProjectPage is the project website URL (optional).
	ProjectPage string `json:"project_page,omitempty" yaml:"project_page,omitempty"`

	// Summary is a short description of the paper.
	Summary string `json:"summary" yaml:"summary"`
}

// Validate reports records that would render as an unusable row. Callers treat
// the result as a warning; invalid records are still rendered.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title must not be empty")),
	)
}

// TopicGroups maps topic labels to their records, keeping topics in order of
// first appearance.
type TopicGroups struct {
	order   []string
	records map[string][]Record
}

// NewTopicGroups returns an empty TopicGroups.
func NewTopicGroups() *TopicGroups {
	return &TopicGroups{records: make(map[string][]Record)}
}

// Add appends r to the list for topic, registering the topic on first use.
func (g *TopicGroups) Add(topic string, r Record) {
	if g.records == nil {
		g.records = make(map[string][]Record)
	}
	if _, ok := g.records[topic]; !ok {
		g.order = append(g.order, topic)
	}
	g.records[topic] = append(g.records[topic], r)
}

// Topics returns the topic labels in order of first appearance.
func (g *TopicGroups) Topics() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Records returns the records filed under topic, in insertion order.
func (g *TopicGroups) Records(topic string) []Record {
	return g.records[topic]
}

// Len returns the number of topics.
func (g *TopicGroups) Len() int {
	return len(g.order)
}

// Count returns the total number of records across all topics.
func (g *TopicGroups) Count() int {
	n := 0
	for _, rs := range g.records {
		n += len(rs)
	}
	return n
}
