package database

import (
	"database/sql"
	"fmt"
)

var _ CatalogRepository = (*CatalogRepositoryImpl)(nil)

// CatalogRepositoryImpl handles database operations for categories and machines
type CatalogRepositoryImpl struct {
	db *DB
}

func NewCatalogRepository(db *DB) *CatalogRepositoryImpl {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) GetCategories() ([]Category, error) {
	rows, err := r.db.Query(`
		SELECT id, name, slug, description, position, created_at, updated_at
		FROM categories
		ORDER BY position, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Position, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *CatalogRepositoryImpl) GetCategoryBySlug(slug string) (*Category, error) {
	var c Category
	err := r.db.QueryRow(`
		SELECT id, name, slug, description, position, created_at, updated_at
		FROM categories
		WHERE slug = $1
	`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Position, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return &c, nil
}

func (r *CatalogRepositoryImpl) CreateCategory(category Category) (string, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO categories (name, slug, description, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, category.Name, category.Slug, category.Description, category.Position).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}

	return id, nil
}

func (r *CatalogRepositoryImpl) UpdateCategory(category Category) error {
	_, err := r.db.Exec(`
		UPDATE categories
		SET name = $2, slug = $3, description = $4, position = $5, updated_at = NOW()
		WHERE id = $1
	`, category.ID, category.Name, category.Slug, category.Description, category.Position)

	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteCategory(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// GetMachines lists machines, optionally restricted to a category or to
// featured ones. The category filter goes through NULLIF so an empty string
// binds as NULL::uuid; a bare ''::uuid would fail the cast during planning
// before the OR guard is ever evaluated.
func (r *CatalogRepositoryImpl) GetMachines(categoryID string, featuredOnly bool) ([]Machine, error) {
	query := `
		SELECT id, category_id, name, slug, brand, model_number, description, image_url, is_featured, created_at, updated_at
		FROM machines
		WHERE ($1 = '' OR category_id = NULLIF($1, '')::uuid)
		  AND ($2 = FALSE OR is_featured = TRUE)
		ORDER BY name
	`

	rows, err := r.db.Query(query, categoryID, featuredOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines: %w", err)
	}
	defer rows.Close()

	var machines []Machine
	for rows.Next() {
		var m Machine
		err := rows.Scan(&m.ID, &m.CategoryID, &m.Name, &m.Slug, &m.Brand, &m.ModelNumber,
			&m.Description, &m.ImageURL, &m.IsFeatured, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machine row: %w", err)
		}
		machines = append(machines, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating machine rows: %w", err)
	}

	return machines, nil
}

func (r *CatalogRepositoryImpl) GetMachineBySlug(slug string) (*Machine, error) {
	var m Machine
	err := r.db.QueryRow(`
		SELECT id, category_id, name, slug, brand, model_number, description, image_url, is_featured, created_at, updated_at
		FROM machines
		WHERE slug = $1
	`, slug).Scan(&m.ID, &m.CategoryID, &m.Name, &m.Slug, &m.Brand, &m.ModelNumber,
		&m.Description, &m.ImageURL, &m.IsFeatured, &m.CreatedAt, &m.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get machine by slug: %w", err)
	}

	return &m, nil
}

func (r *CatalogRepositoryImpl) CreateMachine(machine Machine) (string, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO machines (category_id, name, slug, brand, model_number, description, image_url, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, machine.CategoryID, machine.Name, machine.Slug, machine.Brand, machine.ModelNumber,
		machine.Description, machine.ImageURL, machine.IsFeatured).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create machine: %w", err)
	}

	return id, nil
}

func (r *CatalogRepositoryImpl) UpdateMachine(machine Machine) error {
	_, err := r.db.Exec(`
		UPDATE machines
		SET category_id = $2, name = $3, slug = $4, brand = $5, model_number = $6,
		    description = $7, image_url = $8, is_featured = $9, updated_at = NOW()
		WHERE id = $1
	`, machine.ID, machine.CategoryID, machine.Name, machine.Slug, machine.Brand,
		machine.ModelNumber, machine.Description, machine.ImageURL, machine.IsFeatured)

	if err != nil {
		return fmt.Errorf("failed to update machine: %w", err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteMachine(id string) error {
	_, err := r.db.Exec(`DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete machine: %w", err)
	}
	return nil
}
