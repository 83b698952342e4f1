package projects

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepo reads projects from Postgres.
type PGRepo struct{ pool *pgxpool.Pool }

func NewPGRepo(pool *pgxpool.Pool) *PGRepo { return &PGRepo{pool: pool} }

func (r *PGRepo) Resolve(ctx context.Context, id int64) (Project, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, client, location, start_date, status
		FROM projects
		WHERE id = $1
	`, id)

	var p Project
	if err := row.Scan(&p.ID, &p.Name, &p.Client, &p.Location, &p.StartDate, &p.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PGRepo) ListActive(ctx context.Context) ([]Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, client, location, start_date, status
		FROM projects
		WHERE status = 'active'
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Project{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.Location, &p.StartDate, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
