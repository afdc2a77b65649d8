package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Artifact file names, matching the report consumers' expectations.
const (
	ViewsFile     = "views_per_edition.csv"
	MentionsFile  = "bullhorn_filtered_lines.csv"
	UserCountFile = "user_count_per_post.csv"
	UserTotalFile = "total_contributions_per_user.csv"
)

// Writer writes report tables as UTF-8 CSV files beneath a root directory.
type Writer struct {
	root string
}

// NewWriter creates the output directory if needed and returns a Writer
// rooted there.
func NewWriter(dir string) (*Writer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("report: resolve output dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}
	return &Writer{root: abs}, nil
}

// WriteAll writes the four artifacts, replacing any previous run's files.
func (w *Writer) WriteAll(t Tables, logger *slog.Logger) error {
	views := make([][]string, 0, len(t.Views))
	for _, v := range t.Views {
		views = append(views, []string{strconv.Itoa(v.ID), v.Title, strconv.Itoa(v.Views), strconv.Itoa(v.LikeCount)})
	}
	if err := w.writeFile(ViewsFile, []string{"id", "title", "views", "like_count"}, views, logger); err != nil {
		return err
	}

	mentions := make([][]string, 0, len(t.Mentions))
	for _, m := range t.Mentions {
		mentions = append(mentions, []string{strconv.Itoa(m.PostID), m.Title, m.User, m.MatrixLink})
	}
	if err := w.writeFile(MentionsFile, []string{"post_id", "title", "user", "matrix_link"}, mentions, logger); err != nil {
		return err
	}

	counts := make([][]string, 0, len(t.UserCounts))
	for _, c := range t.UserCounts {
		counts = append(counts, []string{strconv.Itoa(c.ID), c.Title, strconv.Itoa(c.Users)})
	}
	if err := w.writeFile(UserCountFile, []string{"id", "title", "number_of_users"}, counts, logger); err != nil {
		return err
	}

	totals := make([][]string, 0, len(t.UserTotals))
	for _, u := range t.UserTotals {
		totals = append(totals, []string{u.User, strconv.Itoa(u.Contributions)})
	}
	return w.writeFile(UserTotalFile, []string{"user", "contributions"}, totals, logger)
}

// writeFile writes one CSV artifact with a header row.
func (w *Writer) writeFile(name string, header []string, rows [][]string, logger *slog.Logger) error {
	path := filepath.Join(w.root, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write %s row: %w", name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", name, err)
	}

	logger.Info("wrote report", slog.String("file", name), slog.Int("rows", len(rows)))
	return nil
}
