package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type VoterRepo struct {
	pool *pgxpool.Pool
}

func NewVoterRepo(pool *pgxpool.Pool) *VoterRepo {
	return &VoterRepo{pool: pool}
}

// Add inserts a roster entry in the NOT_VOTED state. A name collision maps
// to ErrDuplicateName rather than being pre-checked, so concurrent adds of
// the same name cannot both succeed.
func (r *VoterRepo) Add(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO voters (name) VALUES ($1)`, name)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrDuplicateName
	}
	return err
}

// Remove deletes a roster entry. The voter's cast submission, if any, is
// left in place and keeps counting in the results.
func (r *VoterRepo) Remove(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM voters WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// List returns the roster ordered by name descending.
func (r *VoterRepo) List(ctx context.Context) ([]model.Voter, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, has_voted, voted_at, created_at
		FROM voters
		ORDER BY name DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var voters []model.Voter
	for rows.Next() {
		var v model.Voter
		if err := rows.Scan(&v.Name, &v.HasVoted, &v.VotedAt, &v.CreatedAt); err != nil {
			return nil, err
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}
