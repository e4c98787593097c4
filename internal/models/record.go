// Package models defines the search result types shared by the render and
// export layers.
package models

import "strings"

// Kind identifies the type of hub resource a record describes.
type Kind string

// Supported record kinds.
const (
	KindModel   Kind = "model"
	KindDataset Kind = "dataset"
)

// Singular returns the capitalized singular label, e.g. "Model".
func (k Kind) Singular() string {
	switch k {
	case KindDataset:
		return "Dataset"
	default:
		return "Model"
	}
}

// Plural returns the lowercase plural label, e.g. "models".
func (k Kind) Plural() string {
	return string(k) + "s"
}

// IDHeader returns the column header used for the record identifier.
func (k Kind) IDHeader() string {
	return k.Singular() + " ID"
}

// Record is one search result. It is produced fresh per query and never
// mutated after projection.
type Record struct {
	Kind        Kind     `json:"kind"`
	ID          string   `json:"id"`
	Author      string   `json:"author"`
	Downloads   int      `json:"downloads"`
	Likes       int      `json:"likes"`
	Tags        []string `json:"tags"`
	PipelineTag string   `json:"pipeline_tag,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// TagSummary joins the first max tags with ", ", appending "..." when more
// tags exist. Returns "" for records without tags.
func (r Record) TagSummary(max int) string {
	if len(r.Tags) == 0 || max <= 0 {
		return ""
	}

	if len(r.Tags) <= max {
		return strings.Join(r.Tags, ", ")
	}

	return strings.Join(r.Tags[:max], ", ") + "..."
}

// AllTags joins every tag with ", ".
func (r Record) AllTags() string {
	return strings.Join(r.Tags, ", ")
}
