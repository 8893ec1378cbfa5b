package wxr

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lakelandequipment/site/app/content"
	"github.com/lakelandequipment/site/app/database"
)

const derivedExcerptLength = 160

// Importer persists parsed WXR posts into the blog post table. Each post is
// processed independently and sequentially; a failure on one post is recorded
// in the report and never aborts the batch.
type Importer struct {
	parser *Parser
	posts  database.PostRepository
}

func NewImporter(posts database.PostRepository) *Importer {
	return &Importer{
		parser: NewParser(),
		posts:  posts,
	}
}

// Run parses the document and applies the duplicate-slug and draft policies
// while inserting posts. An interrupted run leaves already-inserted rows
// committed; re-running with SkipDuplicates enabled is the recovery path.
func (im *Importer) Run(ctx context.Context, data []byte, opts ImportOptions) *ImportReport {
	started := time.Now()
	parsed := im.parser.Run(data)

	report := &ImportReport{
		RunID:       uuid.NewString(),
		Imported:    []ImportedPost{},
		Skipped:     []SkippedPost{},
		Errors:      []FailedPost{},
		Categories:  parsed.Categories,
		Tags:        parsed.Tags,
		ParseErrors: parsed.Errors,
	}
	report.Summary.Total = len(parsed.Posts)

	for _, post := range parsed.Posts {
		select {
		case <-ctx.Done():
			report.Errors = append(report.Errors, FailedPost{
				Title: post.Title,
				Error: ctx.Err().Error(),
			})
			continue
		default:
		}

		if opts.SkipDuplicates {
			exists, err := im.posts.SlugExists(post.Slug)
			if err != nil {
				report.Errors = append(report.Errors, FailedPost{Title: post.Title, Error: err.Error()})
				continue
			}
			if exists {
				report.Skipped = append(report.Skipped, SkippedPost{
					Title:  post.Title,
					Reason: "duplicate slug: " + post.Slug,
				})
				continue
			}
		}

		id, err := im.posts.CreatePost(im.buildRow(post, opts))
		if err != nil {
			report.Errors = append(report.Errors, FailedPost{Title: post.Title, Error: err.Error()})
			continue
		}

		report.Imported = append(report.Imported, ImportedPost{
			Title: post.Title,
			Slug:  post.Slug,
			ID:    id,
		})
	}

	report.Summary.Imported = len(report.Imported)
	report.Summary.Skipped = len(report.Skipped)
	report.Summary.Errors = len(report.Errors)

	slog.Info("WordPress import completed",
		"run_id", report.RunID,
		"duration", time.Since(started),
		"total", report.Summary.Total,
		"imported", report.Summary.Imported,
		"skipped", report.Summary.Skipped,
		"errors", report.Summary.Errors,
		"parse_errors", len(report.ParseErrors))

	return report
}

// buildRow maps a parsed post onto a database row under the caller's policy:
// ImportAsDraft forces the publish flag false and the publish timestamp nil
// regardless of the source status. A published post with no source date is
// stamped with the import time.
func (im *Importer) buildRow(post Post, opts ImportOptions) database.Post {
	row := database.Post{
		Title:            post.Title,
		Slug:             post.Slug,
		Excerpt:          post.Excerpt,
		Content:          post.Content,
		Author:           post.Author,
		FeaturedImageURL: post.FeaturedImageURL,
	}

	if row.Excerpt == "" {
		row.Excerpt = content.Summarize(post.Content, derivedExcerptLength)
	}

	if opts.ImportAsDraft {
		row.IsPublished = false
		row.PublishedAt = nil
		return row
	}

	row.IsPublished = true
	if post.PublishedAt != nil {
		row.PublishedAt = post.PublishedAt
	} else {
		now := time.Now().UTC()
		row.PublishedAt = &now
	}

	return row
}
