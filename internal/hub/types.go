package hub

// ModelInfo is the wire representation of one model returned by the hub
// search endpoint. Fields the hub may omit are pointers.
type ModelInfo struct {
	ID          *string  `json:"id,omitempty"`
	Author      *string  `json:"author,omitempty"`
	Downloads   *int     `json:"downloads,omitempty"`
	Likes       *int     `json:"likes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PipelineTag *string  `json:"pipeline_tag,omitempty"`
	CreatedAt   *string  `json:"createdAt,omitempty"`
	Private     *bool    `json:"private,omitempty"`
}

// DatasetInfo is the wire representation of one dataset returned by the hub
// search endpoint.
type DatasetInfo struct {
	ID        *string  `json:"id,omitempty"`
	Author    *string  `json:"author,omitempty"`
	Downloads *int     `json:"downloads,omitempty"`
	Likes     *int     `json:"likes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt *string  `json:"createdAt,omitempty"`
	Private   *bool    `json:"private,omitempty"`
}
