// Package pipeline runs the fetch, extract, and aggregate pass over the
// Bullhorn category.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/starford/bullhorn/internal/extract"
	"github.com/starford/bullhorn/internal/models"
	"github.com/starford/bullhorn/internal/report"
)

// Source is the forum surface the pipeline consumes.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Topic, error)
	Raw(ctx context.Context, id int) (string, error)
}

// Run executes one full pass: paginate the listing, fetch each topic's raw
// body, extract mentions, and build the report tables.
//
// A listing failure aborts the run. A raw-content failure only skips that
// topic's mentions; the topic still appears in the views table. Context
// cancellation aborts the run rather than skipping the remaining topics.
//
// The fetch-and-extract stage runs up to concurrency topics at a time;
// results are reassembled into discovery order, so the tables are identical
// regardless of concurrency.
func Run(ctx context.Context, src Source, ex *extract.Extractor, concurrency int, logger *slog.Logger) (report.Tables, error) {
	topics, err := src.FetchAll(ctx)
	if err != nil {
		return report.Tables{}, fmt.Errorf("pipeline: fetch listing: %w", err)
	}

	if concurrency < 1 {
		concurrency = 1
	}

	perTopic := make([][]extract.Match, len(topics))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, t := range topics {
		i, t := i, t
		g.Go(func() error {
			body, err := src.Raw(gctx, t.ID)
			if err != nil {
				// A cancelled run must abort, not complete with
				// truncated tables.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logger.Warn("raw fetch failed, skipping topic",
					slog.Int("id", t.ID),
					slog.String("error", err.Error()))
				return nil
			}
			perTopic[i] = ex.Extract(body)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Tables{}, err
	}

	var mentions []models.Mention
	for i, t := range topics {
		for _, m := range perTopic[i] {
			mentions = append(mentions, models.Mention{
				PostID:     t.ID,
				Title:      t.Title,
				User:       m.User,
				MatrixLink: m.MatrixLink,
			})
		}
	}
	logger.Info("extracted mentions", slog.Int("count", len(mentions)))

	return report.Build(topics, mentions), nil
}
