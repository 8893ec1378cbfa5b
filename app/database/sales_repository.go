package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

var _ SalesRepository = (*SalesRepositoryImpl)(nil)

// SalesRepositoryImpl handles database operations for salespeople and their county territories
type SalesRepositoryImpl struct {
	db *DB
}

func NewSalesRepository(db *DB) *SalesRepositoryImpl {
	return &SalesRepositoryImpl{db: db}
}

func (r *SalesRepositoryImpl) GetSalespeople() ([]Salesperson, error) {
	rows, err := r.db.Query(`
		SELECT id, name, slug, email, phone, photo_url, created_at, updated_at
		FROM salespeople
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get salespeople: %w", err)
	}
	defer rows.Close()

	var salespeople []Salesperson
	for rows.Next() {
		var s Salesperson
		err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Email, &s.Phone, &s.PhotoURL, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salesperson row: %w", err)
		}
		salespeople = append(salespeople, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salesperson rows: %w", err)
	}

	return salespeople, nil
}

func (r *SalesRepositoryImpl) GetSalespersonBySlug(slug string) (*Salesperson, error) {
	var s Salesperson
	err := r.db.QueryRow(`
		SELECT id, name, slug, email, phone, photo_url, created_at, updated_at
		FROM salespeople
		WHERE slug = $1
	`, slug).Scan(&s.ID, &s.Name, &s.Slug, &s.Email, &s.Phone, &s.PhotoURL, &s.CreatedAt, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get salesperson by slug: %w", err)
	}

	return &s, nil
}

func (r *SalesRepositoryImpl) CreateSalesperson(salesperson Salesperson) (string, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO salespeople (name, slug, email, phone, photo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, salesperson.Name, salesperson.Slug, salesperson.Email, salesperson.Phone, salesperson.PhotoURL).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create salesperson: %w", err)
	}

	return id, nil
}

func (r *SalesRepositoryImpl) DeleteSalesperson(id string) error {
	_, err := r.db.Exec(`DELETE FROM salespeople WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salesperson: %w", err)
	}
	return nil
}

func (r *SalesRepositoryImpl) GetCounties(state string) ([]County, error) {
	rows, err := r.db.Query(`
		SELECT fips, name, state, salesperson_id, updated_at
		FROM counties
		WHERE ($1 = '' OR state = $1)
		ORDER BY state, name
	`, state)
	if err != nil {
		return nil, fmt.Errorf("failed to get counties: %w", err)
	}
	defer rows.Close()

	var counties []County
	for rows.Next() {
		var c County
		err := rows.Scan(&c.FIPS, &c.Name, &c.State, &c.SalespersonID, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan county row: %w", err)
		}
		counties = append(counties, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating county rows: %w", err)
	}

	return counties, nil
}

// AssignCounty sets or clears the salesperson responsible for a single county
func (r *SalesRepositoryImpl) AssignCounty(fips string, salespersonID *string) error {
	result, err := r.db.Exec(`
		UPDATE counties
		SET salesperson_id = $2, updated_at = NOW()
		WHERE fips = $1
	`, fips, salespersonID)
	if err != nil {
		return fmt.Errorf("failed to assign county: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("county %s not found", fips)
	}

	return nil
}

// ReassignCounties moves counties from one salesperson to another in a single
// statement. An empty fips list transfers the entire territory.
func (r *SalesRepositoryImpl) ReassignCounties(fromID, toID string, fips []string) (int64, error) {
	if fips == nil {
		fips = []string{}
	}

	result, err := r.db.Exec(`
		UPDATE counties
		SET salesperson_id = $2, updated_at = NOW()
		WHERE salesperson_id = $1
		  AND (cardinality($3::text[]) = 0 OR fips = ANY($3))
	`, fromID, toID, pq.Array(fips))
	if err != nil {
		return 0, fmt.Errorf("failed to reassign counties: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
