package extract

import (
	"testing"
)

var defaultKeywords = []string{"shared", "said", "contributed"}

func newExtractor(t *testing.T, keywords []string) *Extractor {
	t.Helper()
	ex, err := New(keywords)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ex
}

func TestExtract_KeywordAndLinkOnSameLine(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	text := "Line A: [Alice](https://matrix.to/#/@alice:matrix.org) shared her notes.\nLine B: see the docs site."
	got := ex.Extract(text)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].User != "Alice" {
		t.Errorf("user = %q, want %q", got[0].User, "Alice")
	}
	if got[0].MatrixLink != "https://matrix.to/#/@alice:matrix.org" {
		t.Errorf("link = %q, want %q", got[0].MatrixLink, "https://matrix.to/#/@alice:matrix.org")
	}
}

func TestExtract_KeywordWithoutLink(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	got := ex.Extract("Alice shared her notes at https://example.com/notes")
	if len(got) != 0 {
		t.Errorf("expected no mentions, got %v", got)
	}
}

func TestExtract_LinkWithoutKeyword(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	got := ex.Extract("[Alice](https://matrix.to/#/@alice:matrix.org) wrote a module")
	if len(got) != 0 {
		t.Errorf("expected no mentions, got %v", got)
	}
}

func TestExtract_NonMatrixLinkIgnored(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	got := ex.Extract("[Alice](https://github.com/alice) shared a release")
	if len(got) != 0 {
		t.Errorf("expected no mentions, got %v", got)
	}
}

func TestExtract_MultipleLinksOnOneLine(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	line := "[Alice](https://matrix.to/#/@alice:matrix.org) and [Bob](https://matrix.to/#/@bob:matrix.org) contributed a fix"
	got := ex.Extract(line)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].User != "Alice" || got[1].User != "Bob" {
		t.Errorf("users = %q, %q, want Alice, Bob", got[0].User, got[1].User)
	}
}

func TestExtract_DuplicateUserAcrossLines(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	text := "[Bob](https://matrix.to/#/@bob:matrix.org) contributed\n[Bob](https://matrix.to/#/@bob:matrix.org) contributed"
	got := ex.Extract(text)
	// Deduplication happens at aggregation, not here.
	if len(got) != 2 {
		t.Errorf("len(got) = %d, want 2", len(got))
	}
}

func TestExtract_KeywordIsCaseSensitive(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	got := ex.Extract("[Alice](https://matrix.to/#/@alice:matrix.org) Shared her notes")
	if len(got) != 0 {
		t.Errorf("capitalized keyword should not match, got %v", got)
	}
}

func TestExtract_KeywordIsWholeWord(t *testing.T) {
	ex := newExtractor(t, defaultKeywords)
	got := ex.Extract("[Alice](https://matrix.to/#/@alice:matrix.org) unsaid things")
	if len(got) != 0 {
		t.Errorf("embedded keyword should not match, got %v", got)
	}
}

func TestExtract_CustomKeywords(t *testing.T) {
	ex := newExtractor(t, []string{"presented"})
	got := ex.Extract("[Carol](https://matrix.to/#/@carol:example.org) presented a talk")
	if len(got) != 1 || got[0].User != "Carol" {
		t.Errorf("got %v, want one mention of Carol", got)
	}
}

func TestNew_RejectsEmptyKeywordSet(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil keywords")
	}
	if _, err := New([]string{" ", ""}); err == nil {
		t.Error("expected error for blank keywords")
	}
}
