// Package report aggregates pipeline output into tabular artifacts.
package report

import (
	"sort"
	"strings"

	"github.com/starford/bullhorn/internal/models"
)

// Tables holds the derived report tables. Views and Mentions preserve
// discovery order; UserCounts follows topic discovery order; UserTotals is
// sorted by contributions descending, then user ascending.
type Tables struct {
	Views      []models.Topic
	Mentions   []models.Mention
	UserCounts []models.UserCount
	UserTotals []models.UserTotal
}

// Build derives every table from the topics (in discovery order) and the
// flat mention list. Mentions must already carry their topic id and title.
func Build(topics []models.Topic, mentions []models.Mention) Tables {
	usersPerTopic := make(map[int]map[string]struct{})
	totals := make(map[string]int)
	for _, m := range mentions {
		set, ok := usersPerTopic[m.PostID]
		if !ok {
			set = make(map[string]struct{})
			usersPerTopic[m.PostID] = set
		}
		set[m.User] = struct{}{}
		totals[strings.TrimSpace(m.User)]++
	}

	var counts []models.UserCount
	for _, t := range topics {
		set := usersPerTopic[t.ID]
		if len(set) == 0 {
			continue
		}
		counts = append(counts, models.UserCount{ID: t.ID, Title: t.Title, Users: len(set)})
	}

	userTotals := make([]models.UserTotal, 0, len(totals))
	for user, n := range totals {
		userTotals = append(userTotals, models.UserTotal{User: user, Contributions: n})
	}
	sort.Slice(userTotals, func(i, j int) bool {
		if userTotals[i].Contributions != userTotals[j].Contributions {
			return userTotals[i].Contributions > userTotals[j].Contributions
		}
		return userTotals[i].User < userTotals[j].User
	})

	return Tables{
		Views:      topics,
		Mentions:   mentions,
		UserCounts: counts,
		UserTotals: userTotals,
	}
}
