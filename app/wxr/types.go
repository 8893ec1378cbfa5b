package wxr

import "time"

// Post is a transient record produced by the parser. It is never persisted
// as-is; the importer maps it onto a database row.
type Post struct {
	SourceID         int    // post id from the export, informational only
	Title            string
	Slug             string
	Content          string
	Excerpt          string
	Author           string
	Status           string // source publication status; the target publish flag comes from ImportOptions
	PublishedAt      *time.Time
	FeaturedImageURL *string
	Categories       []string
	Tags             []string
}

// ParseResult is the full output of one parse pass over a WXR document.
type ParseResult struct {
	Posts      []Post
	Categories []string // deduplicated, sorted ascending
	Tags       []string // deduplicated, sorted ascending
	Errors     []string
}

type ImportOptions struct {
	ImportAsDraft  bool
	SkipDuplicates bool
}

type ImportedPost struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	ID    string `json:"id"`
}

type SkippedPost struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type FailedPost struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

type ImportSummary struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// ImportReport is returned to the operator after a full import pass.
// Partial success is expected: skipped and errored posts are listed
// alongside the imported ones, never swallowed.
type ImportReport struct {
	RunID       string         `json:"run_id"`
	Summary     ImportSummary  `json:"summary"`
	Imported    []ImportedPost `json:"imported"`
	Skipped     []SkippedPost  `json:"skipped"`
	Errors      []FailedPost   `json:"errors"`
	Categories  []string       `json:"categories"`
	Tags        []string       `json:"tags"`
	ParseErrors []string       `json:"parseErrors"`
}
