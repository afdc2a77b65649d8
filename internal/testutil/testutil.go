// Package testutil provides shared test helpers for standing up fake forums.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/starford/bullhorn/internal/forum"
	"github.com/starford/bullhorn/internal/models"
)

// Forum is a fake Discourse-style server plus a client pointed at it.
type Forum struct {
	Server *httptest.Server
	Client *forum.Client

	listingRequests atomic.Int64
}

// ListingRequests reports how many listing pages were requested.
func (f *Forum) ListingRequests() int {
	return int(f.listingRequests.Load())
}

// NewForum starts an httptest server serving the given listing pages and raw
// bodies, and returns it with a ready client. pages[i] answers ?page=i;
// indexes past the slice answer with an empty page. raws maps topic id to its
// raw Markdown; missing ids answer 404.
func NewForum(t *testing.T, pages [][]models.Topic, raws map[int]string) *Forum {
	t.Helper()

	f := &Forum{}
	mux := http.NewServeMux()
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/raw/"))
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		body, ok := raws[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, body)
	})
	mux.HandleFunc("/latest.json", func(w http.ResponseWriter, r *http.Request) {
		f.listingRequests.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		var topics []models.Topic
		if page >= 0 && page < len(pages) {
			topics = pages[page]
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(listingBody(topics))
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)

	f.Client = forum.NewClient(forum.Options{
		ListingURL:     f.Server.URL + "/latest.json",
		RawURL:         f.Server.URL + "/raw",
		Timeout:        5 * time.Second,
		DisableRetries: true,
	}, DiscardLogger())
	return f
}

// DiscardLogger returns a logger whose output goes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// listingBody shapes topics the way the Discourse listing endpoint does.
func listingBody(topics []models.Topic) map[string]any {
	records := make([]map[string]any, 0, len(topics))
	for _, t := range topics {
		records = append(records, map[string]any{
			"id":         t.ID,
			"title":      t.Title,
			"views":      t.Views,
			"like_count": t.LikeCount,
		})
	}
	return map[string]any{
		"topic_list": map[string]any{
			"topics": records,
		},
	}
}

// RawFor builds a raw body with one mention line per user, for fixtures.
func RawFor(users ...string) string {
	var b strings.Builder
	for _, u := range users {
		fmt.Fprintf(&b, "[%s](https://matrix.to/#/@%s:matrix.org) shared an update\n",
			u, strings.ToLower(u))
	}
	return b.String()
}
