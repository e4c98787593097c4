// Package search composes the hub client and projects its wire types into
// flat records for rendering and export.
package search

import (
	"context"
	"strings"

	"hfsearch/internal/config"
	"hfsearch/internal/hub"
	"hfsearch/internal/logger"
	"hfsearch/internal/models"
)

// unknownField is shown for identifiers and authors the hub omitted.
const unknownField = "N/A"

// HubClient is the hub API surface used by the service. Satisfied by
// *hub.Client; narrow so tests can substitute a fake.
type HubClient interface {
	SearchModels(ctx context.Context, q hub.Query) ([]hub.ModelInfo, error)
	SearchDatasets(ctx context.Context, q hub.Query) ([]hub.DatasetInfo, error)
}

// Options describes one search invocation. Zero values fall back to
// configured defaults.
type Options struct {
	Query     string
	Author    string
	Tags      []string
	Task      string
	Sort      string
	Direction string
	Limit     int
}

// Service runs hub searches and shapes the results.
type Service struct {
	client HubClient
	cfg    *config.Config
	logger *logger.Logger
}

// NewService creates a search service.
func NewService(client HubClient, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: log,
	}
}

// Models searches the hub for models and returns projected records.
func (s *Service) Models(ctx context.Context, opts Options) ([]models.Record, error) {
	q := s.buildQuery(opts)

	s.logger.Debug("searching models", "query", opts.Query, "limit", q.Limit)

	infos, err := s.client.SearchModels(ctx, q)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(infos))
	for _, info := range infos {
		records = append(records, projectModel(info))
	}

	return records, nil
}

// Datasets searches the hub for datasets and returns projected records.
func (s *Service) Datasets(ctx context.Context, opts Options) ([]models.Record, error) {
	q := s.buildQuery(opts)
	q.Task = ""

	s.logger.Debug("searching datasets", "query", opts.Query, "limit", q.Limit)

	infos, err := s.client.SearchDatasets(ctx, q)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(infos))
	for _, info := range infos {
		records = append(records, projectDataset(info))
	}

	return records, nil
}

// buildQuery maps options to a hub query, applying configured defaults and
// clamping the limit.
func (s *Service) buildQuery(opts Options) hub.Query {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.cfg.Search.DefaultLimit
	}

	if limit > s.cfg.Search.MaxLimit {
		limit = s.cfg.Search.MaxLimit
	}

	return hub.Query{
		Search:    opts.Query,
		Author:    opts.Author,
		Tags:      opts.Tags,
		Task:      opts.Task,
		Sort:      opts.Sort,
		Direction: opts.Direction,
		Limit:     limit,
		Full:      s.cfg.Search.FullTags,
	}
}

func projectModel(info hub.ModelInfo) models.Record {
	id := stringOr(info.ID, unknownField)

	return models.Record{
		Kind:        models.KindModel,
		ID:          id,
		Author:      resolveAuthor(info.Author, id),
		Downloads:   intOr(info.Downloads, 0),
		Likes:       intOr(info.Likes, 0),
		Tags:        tagsOrEmpty(info.Tags),
		PipelineTag: stringOr(info.PipelineTag, ""),
		CreatedAt:   stringOr(info.CreatedAt, ""),
	}
}

func projectDataset(info hub.DatasetInfo) models.Record {
	id := stringOr(info.ID, unknownField)

	return models.Record{
		Kind:      models.KindDataset,
		ID:        id,
		Author:    resolveAuthor(info.Author, id),
		Downloads: intOr(info.Downloads, 0),
		Likes:     intOr(info.Likes, 0),
		Tags:      tagsOrEmpty(info.Tags),
		CreatedAt: stringOr(info.CreatedAt, ""),
	}
}

// resolveAuthor falls back to the namespace prefix of the id when the hub
// omits the author ("google/bert" -> "google").
func resolveAuthor(author *string, id string) string {
	if author != nil && *author != "" {
		return *author
	}

	if ns, _, found := strings.Cut(id, "/"); found && ns != "" {
		return ns
	}

	return unknownField
}

func stringOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}

	return fallback
}

func intOr(n *int, fallback int) int {
	if n != nil {
		return *n
	}

	return fallback
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}
