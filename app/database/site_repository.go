package database

import (
	"fmt"
)

var _ SiteRepository = (*SiteRepositoryImpl)(nil)

// SiteRepositoryImpl handles database operations for testimonials, settings, and navigation
type SiteRepositoryImpl struct {
	db *DB
}

func NewSiteRepository(db *DB) *SiteRepositoryImpl {
	return &SiteRepositoryImpl{db: db}
}

func (r *SiteRepositoryImpl) GetTestimonials(publishedOnly bool) ([]Testimonial, error) {
	rows, err := r.db.Query(`
		SELECT id, author, company, quote, is_published, created_at
		FROM testimonials
		WHERE ($1 = FALSE OR is_published = TRUE)
		ORDER BY created_at DESC
	`, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []Testimonial
	for rows.Next() {
		var t Testimonial
		err := rows.Scan(&t.ID, &t.Author, &t.Company, &t.Quote, &t.IsPublished, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonial rows: %w", err)
	}

	return testimonials, nil
}

func (r *SiteRepositoryImpl) CreateTestimonial(testimonial Testimonial) (string, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO testimonials (author, company, quote, is_published)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, testimonial.Author, testimonial.Company, testimonial.Quote, testimonial.IsPublished).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create testimonial: %w", err)
	}

	return id, nil
}

func (r *SiteRepositoryImpl) DeleteTestimonial(id string) error {
	_, err := r.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

func (r *SiteRepositoryImpl) GetSettings() ([]Setting, error) {
	rows, err := r.db.Query(`SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", err)
	}

	return settings, nil
}

func (r *SiteRepositoryImpl) UpsertSetting(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)

	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

func (r *SiteRepositoryImpl) GetNavigation(visibleOnly bool) ([]NavigationItem, error) {
	rows, err := r.db.Query(`
		SELECT id, label, url, position, is_visible, created_at, updated_at
		FROM navigation_items
		WHERE ($1 = FALSE OR is_visible = TRUE)
		ORDER BY position, created_at
	`, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation items: %w", err)
	}
	defer rows.Close()

	var items []NavigationItem
	for rows.Next() {
		var item NavigationItem
		err := rows.Scan(&item.ID, &item.Label, &item.URL, &item.Position, &item.IsVisible,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan navigation row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating navigation rows: %w", err)
	}

	return items, nil
}

func (r *SiteRepositoryImpl) CreateNavigationItem(item NavigationItem) (string, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO navigation_items (label, url, position, is_visible)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, item.Label, item.URL, item.Position, item.IsVisible).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create navigation item: %w", err)
	}

	return id, nil
}

func (r *SiteRepositoryImpl) UpdateNavigationItem(item NavigationItem) error {
	_, err := r.db.Exec(`
		UPDATE navigation_items
		SET label = $2, url = $3, position = $4, is_visible = $5, updated_at = NOW()
		WHERE id = $1
	`, item.ID, item.Label, item.URL, item.Position, item.IsVisible)

	if err != nil {
		return fmt.Errorf("failed to update navigation item: %w", err)
	}

	return nil
}

func (r *SiteRepositoryImpl) DeleteNavigationItem(id string) error {
	_, err := r.db.Exec(`DELETE FROM navigation_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete navigation item: %w", err)
	}
	return nil
}

// ReorderNavigation rewrites the position column so items appear in the given
// id order. The whole reorder happens in one transaction; ids not present in
// the list keep their old positions.
func (r *SiteRepositoryImpl) ReorderNavigation(ids []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE navigation_items SET position = $2, updated_at = NOW() WHERE id = $1`)
	if err != nil {
		return fmt.Errorf("failed to prepare reorder statement: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(id, i); err != nil {
			return fmt.Errorf("failed to reorder navigation item %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}

	return nil
}

func (r *SiteRepositoryImpl) GetNavigationCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM navigation_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get navigation count: %w", err)
	}
	return count, nil
}
