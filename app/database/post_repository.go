package database

import (
	"database/sql"
	"fmt"
)

var _ PostRepository = (*PostRepositoryImpl)(nil)

// PostRepositoryImpl handles database operations for blog posts
type PostRepositoryImpl struct {
	db *DB
}

func NewPostRepository(db *DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

const postColumns = `id, title, slug, excerpt, content, author, featured_image_url,
       is_published, published_at, created_at, updated_at`

func (r *PostRepositoryImpl) scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	var post Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content, &post.Author,
		&post.FeaturedImageURL, &post.IsPublished, &post.PublishedAt,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) GetPublishedPosts(limit int) ([]Post, error) {
	rows, err := r.db.Query(`
		SELECT `+postColumns+`
		FROM posts
		WHERE is_published = TRUE
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get published posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		post, err := r.scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetPostBySlug(slug string) (*Post, error) {
	post, err := r.scanPost(r.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts
		WHERE slug = $1
	`, slug))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

func (r *PostRepositoryImpl) GetPostCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}
	return count, nil
}

// SlugExists reports whether a post with the exact slug is already persisted.
// Comparison is exact string equality, matching the unique index on slug.
func (r *PostRepositoryImpl) SlugExists(slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func (r *PostRepositoryImpl) CreatePost(post Post) (string, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO posts (title, slug, excerpt, content, author, featured_image_url, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, post.Title, post.Slug, post.Excerpt, post.Content, post.Author,
		post.FeaturedImageURL, post.IsPublished, post.PublishedAt).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	return id, nil
}

func (r *PostRepositoryImpl) UpdatePost(post Post) error {
	_, err := r.db.Exec(`
		UPDATE posts
		SET title = $2, slug = $3, excerpt = $4, content = $5, author = $6,
		    featured_image_url = $7, is_published = $8, published_at = $9, updated_at = NOW()
		WHERE id = $1
	`, post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.Author,
		post.FeaturedImageURL, post.IsPublished, post.PublishedAt)

	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) DeletePost(id string) error {
	_, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
