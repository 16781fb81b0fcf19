package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"devdirectory/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresDeveloperRepository struct {
	db *sql.DB
}

func NewDeveloperRepository(db *sql.DB) *PostgresDeveloperRepository {
	return &PostgresDeveloperRepository{
		db,
	}
}

const developerColumns = `id, name, role, tech_stack, experience, about, photo_url, joining_date, created_by, created_at, updated_at`

func scanDeveloper(row interface{ Scan(dest ...any) error }) (*domain.Developer, error) {
	dev := &domain.Developer{}
	err := row.Scan(
		&dev.ID,
		&dev.Name,
		&dev.Role,
		pq.Array((*[]string)(&dev.TechStack)),
		&dev.Experience,
		&dev.About,
		&dev.PhotoURL,
		&dev.JoiningDate,
		&dev.CreatedBy,
		&dev.CreatedAt,
		&dev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

func (r *PostgresDeveloperRepository) CreateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	query := `INSERT INTO developers (name, role, tech_stack, experience, about, photo_url, joining_date, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + developerColumns

	row := r.db.QueryRowContext(ctx, query,
		dev.Name, dev.Role, pq.Array([]string(dev.TechStack)), dev.Experience,
		dev.About, dev.PhotoURL, dev.JoiningDate, dev.CreatedBy)

	created, err := scanDeveloper(row)
	if err != nil {
		return nil, fmt.Errorf("error creating developer: %w", err)
	}
	return created, nil
}

func (r *PostgresDeveloperRepository) GetDeveloperByID(ctx context.Context, id uuid.UUID) (*domain.Developer, error) {
	query := `SELECT ` + developerColumns + ` FROM developers WHERE id = $1`

	dev, err := scanDeveloper(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrDeveloperNotFound
	}
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// ListDevelopers builds the WHERE / ORDER BY / LIMIT / OFFSET triple from
// a normalized query and runs a matching COUNT(*) for the unpaginated
// total.
func (r *PostgresDeveloperRepository) ListDevelopers(ctx context.Context, q domain.ListQuery) ([]domain.Developer, int, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if q.Role != "" {
		args = append(args, q.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR about ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tech_stack) AS tech WHERE tech ILIKE $%d))",
			n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM developers` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := map[string]string{
		domain.SortNewest:   "created_at DESC",
		domain.SortExpAsc:   "experience ASC",
		domain.SortExpDesc:  "experience DESC",
		domain.SortNameAsc:  "name ASC",
		domain.SortNameDesc: "name DESC",
	}[q.Sort]
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	args = append(args, q.Limit, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM developers%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		developerColumns, where, orderBy, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	developers := []domain.Developer{}
	for rows.Next() {
		dev, err := scanDeveloper(rows)
		if err != nil {
			return nil, 0, err
		}
		developers = append(developers, *dev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return developers, total, nil
}

func (r *PostgresDeveloperRepository) UpdateDeveloper(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	query := `UPDATE developers
        SET
        name = $1,
        role = $2,
        tech_stack = $3,
        experience = $4,
        about = $5,
        photo_url = $6,
        joining_date = $7,
        updated_at = CURRENT_TIMESTAMP
        WHERE id = $8
        RETURNING ` + developerColumns

	row := r.db.QueryRowContext(ctx, query,
		dev.Name, dev.Role, pq.Array([]string(dev.TechStack)), dev.Experience,
		dev.About, dev.PhotoURL, dev.JoiningDate, dev.ID)

	updated, err := scanDeveloper(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrDeveloperNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating developer: %w", err)
	}
	return updated, nil
}

func (r *PostgresDeveloperRepository) DeleteDeveloper(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM developers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrDeveloperNotFound
	}
	return nil
}
