package forum

import (
	"context"
	"log/slog"
	"strings"

	"github.com/starford/bullhorn/internal/models"
)

// Pager yields listing pages in order until the forum reports an empty one.
// It is a finite, non-restartable sequence: once exhausted (or failed), Next
// issues no further requests.
type Pager struct {
	client *Client
	page   int
	done   bool
}

// Pages returns a Pager starting at page 0.
func (c *Client) Pages() *Pager {
	return &Pager{client: c}
}

// Next returns the topics of the next page. ok is false once a page comes
// back with no records, which is end-of-data, not an error. Records without
// an id are skipped with a warning; a page may therefore yield ok with zero
// topics without ending the sequence.
func (p *Pager) Next(ctx context.Context) (topics []models.Topic, ok bool, err error) {
	if p.done {
		return nil, false, nil
	}

	records, err := p.client.listRecords(ctx, p.page)
	if err != nil {
		p.done = true
		return nil, false, err
	}
	if len(records) == 0 {
		p.client.logger.Info("listing exhausted", slog.Int("page", p.page))
		p.done = true
		return nil, false, nil
	}

	for _, r := range records {
		if r.ID == 0 {
			p.client.logger.Warn("listing record without id, skipping",
				slog.Int("page", p.page),
				slog.String("title", r.Title))
			continue
		}
		topics = append(topics, models.Topic{
			ID:        r.ID,
			Title:     strings.TrimSpace(r.Title),
			Views:     r.Views,
			LikeCount: r.LikeCount,
		})
	}
	p.page++
	return topics, true, nil
}

// FetchAll drains a fresh Pager and returns every topic in discovery order.
func (c *Client) FetchAll(ctx context.Context) ([]models.Topic, error) {
	var all []models.Topic
	p := c.Pages()
	for {
		topics, ok, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.logger.Info("retrieved topics", slog.Int("count", len(all)))
			return all, nil
		}
		all = append(all, topics...)
	}
}
