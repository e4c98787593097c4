package hub

import (
	"net/url"
	"strconv"
)

// Sort directions accepted by the hub API.
const (
	DirectionAscending  = "asc"
	DirectionDescending = "desc"
)

// Query describes one search request against the hub API. Zero-valued
// fields are omitted from the encoded request.
type Query struct {
	// Search is the free-text query matched against ids and card content.
	Search string

	// Author filters by the owning user or organization.
	Author string

	// Tags filters by tag; each entry becomes one filter parameter.
	Tags []string

	// Task filters models by pipeline tag. Ignored for dataset searches.
	Task string

	// Sort names the metadata field to order by (downloads, likes, ...).
	Sort string

	// Direction is "asc" or "desc". Only sent alongside Sort.
	Direction string

	// Limit caps the number of returned results.
	Limit int

	// Full requests the complete tag list instead of the abbreviated one.
	Full bool
}

// Encode converts the query to hub API request parameters. Task is only
// encoded when includeTask is set (dataset searches have no pipeline tag).
func (q Query) Encode(includeTask bool) url.Values {
	vals := url.Values{}

	if q.Search != "" {
		vals.Set("search", q.Search)
	}

	if q.Author != "" {
		vals.Set("author", q.Author)
	}

	for _, tag := range q.Tags {
		if tag != "" {
			vals.Add("filter", tag)
		}
	}

	if includeTask && q.Task != "" {
		vals.Set("pipeline_tag", q.Task)
	}

	if q.Sort != "" {
		vals.Set("sort", q.Sort)

		// The API encodes descending order as -1; ascending is the default.
		if q.Direction == DirectionDescending {
			vals.Set("direction", "-1")
		}
	}

	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Full {
		vals.Set("full", "true")
	}

	return vals
}
