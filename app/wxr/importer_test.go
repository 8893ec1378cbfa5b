package wxr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakelandequipment/site/app/database"
)

// fakePostRepository keeps created posts in memory and can be primed to fail
// on specific slugs.
type fakePostRepository struct {
	created   []database.Post
	existing  map[string]bool
	failSlugs map[string]error
	nextID    int
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{
		existing:  map[string]bool{},
		failSlugs: map[string]error{},
	}
}

func (r *fakePostRepository) GetPublishedPosts(limit int) ([]database.Post, error) {
	return nil, nil
}

func (r *fakePostRepository) GetPostBySlug(slug string) (*database.Post, error) {
	return nil, nil
}

func (r *fakePostRepository) GetPostCount() (int, error) {
	return len(r.created), nil
}

func (r *fakePostRepository) SlugExists(slug string) (bool, error) {
	return r.existing[slug], nil
}

func (r *fakePostRepository) CreatePost(post database.Post) (string, error) {
	if err, ok := r.failSlugs[post.Slug]; ok {
		return "", err
	}
	r.created = append(r.created, post)
	r.existing[post.Slug] = true
	r.nextID++
	return fmt.Sprintf("id-%d", r.nextID), nil
}

func (r *fakePostRepository) UpdatePost(post database.Post) error { return nil }

func (r *fakePostRepository) DeletePost(id string) error { return nil }

func importDoc(slugs ...string) []byte {
	doc := `<?xml version="1.0"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:wp="http://wordpress.org/export/1.2/">
  <channel>`
	for i, slug := range slugs {
		doc += fmt.Sprintf(`
    <item>
      <title>Post %d</title>
      <content:encoded><![CDATA[<p>Body of %s</p>]]></content:encoded>
      <wp:post_id>%d</wp:post_id>
      <wp:post_date_gmt>2024-01-0%d 08:00:00</wp:post_date_gmt>
      <wp:post_name>%s</wp:post_name>
      <wp:status>publish</wp:status>
      <wp:post_type>post</wp:post_type>
    </item>`, i+1, slug, i+1, i+1, slug)
	}
	doc += `
  </channel>
</rss>`
	return []byte(doc)
}

func TestImporterRun(t *testing.T) {
	repo := newFakePostRepository()
	importer := NewImporter(repo)

	report := importer.Run(context.Background(), importDoc("first", "second"), ImportOptions{})

	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Imported)
	assert.Equal(t, 0, report.Summary.Skipped)
	assert.Equal(t, 0, report.Summary.Errors)

	require.Len(t, repo.created, 2)
	first := repo.created[0]
	assert.Equal(t, "first", first.Slug)
	assert.True(t, first.IsPublished)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, "Body of first", first.Excerpt, "excerpt should be derived from content when the source has none")

	require.Len(t, report.Imported, 2)
	assert.Equal(t, "id-1", report.Imported[0].ID)
}

func TestImporterSkipDuplicates(t *testing.T) {
	repo := newFakePostRepository()
	repo.existing["first"] = true
	importer := NewImporter(repo)

	report := importer.Run(context.Background(), importDoc("first", "second"),
		ImportOptions{SkipDuplicates: true})

	assert.Equal(t, 1, report.Summary.Imported)
	assert.Equal(t, 1, report.Summary.Skipped)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "duplicate slug: first", report.Skipped[0].Reason)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "second", repo.created[0].Slug)
}

func TestImporterRerunIsIdempotent(t *testing.T) {
	repo := newFakePostRepository()
	importer := NewImporter(repo)
	doc := importDoc("first", "second")
	opts := ImportOptions{SkipDuplicates: true}

	first := importer.Run(context.Background(), doc, opts)
	second := importer.Run(context.Background(), doc, opts)

	assert.Equal(t, 2, first.Summary.Imported)
	assert.Equal(t, 0, second.Summary.Imported)
	assert.Equal(t, 2, second.Summary.Skipped)
	assert.Len(t, repo.created, 2)
}

func TestImporterImportAsDraft(t *testing.T) {
	repo := newFakePostRepository()
	importer := NewImporter(repo)

	report := importer.Run(context.Background(), importDoc("first"),
		ImportOptions{ImportAsDraft: true})

	assert.Equal(t, 1, report.Summary.Imported)
	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].IsPublished)
	assert.Nil(t, repo.created[0].PublishedAt)
}

func TestImporterPersistenceErrorIsIsolated(t *testing.T) {
	repo := newFakePostRepository()
	repo.failSlugs["second"] = errors.New("insert failed")
	importer := NewImporter(repo)

	report := importer.Run(context.Background(), importDoc("first", "second", "third"), ImportOptions{})

	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Imported)
	assert.Equal(t, 1, report.Summary.Errors)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Post 2", report.Errors[0].Title)
	assert.Contains(t, report.Errors[0].Error, "insert failed")
}

func TestImporterCancelledContext(t *testing.T) {
	repo := newFakePostRepository()
	importer := NewImporter(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := importer.Run(ctx, importDoc("first", "second"), ImportOptions{})

	assert.Equal(t, 0, report.Summary.Imported)
	assert.Equal(t, 2, report.Summary.Errors)
	assert.Empty(t, repo.created)
}

func TestImporterReportsParseErrors(t *testing.T) {
	repo := newFakePostRepository()
	importer := NewImporter(repo)

	report := importer.Run(context.Background(), []byte("not xml <"), ImportOptions{})

	assert.Equal(t, 0, report.Summary.Total)
	require.Len(t, report.ParseErrors, 1)
	assert.Contains(t, report.ParseErrors[0], "malformed XML document")
}
