package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
)

// ConfigRepo owns the two singleton rows: the voting window and the site
// header. Writes are single-statement upserts against a fixed key, so both
// fields of the window always change together.
type ConfigRepo struct {
	pool *pgxpool.Pool
}

func NewConfigRepo(pool *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{pool: pool}
}

// GetWindow returns the configured window, or nil when none has been set.
func (r *ConfigRepo) GetWindow(ctx context.Context) (*model.VotingWindow, error) {
	var w model.VotingWindow
	err := r.pool.QueryRow(ctx, `
		SELECT start_date, end_date FROM voting_window WHERE id = 1`).
		Scan(&w.StartDate, &w.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// SetWindow replaces the singleton window. Validation of start <= end
// happens in the service before this is reached.
func (r *ConfigRepo) SetWindow(ctx context.Context, start, end time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO voting_window (id, start_date, end_date, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET start_date = EXCLUDED.start_date,
		    end_date = EXCLUDED.end_date,
		    updated_at = NOW()`,
		start, end)
	return err
}

// GetHeader returns the header message, empty when never set.
func (r *ConfigRepo) GetHeader(ctx context.Context) (string, error) {
	var text string
	err := r.pool.QueryRow(ctx, `
		SELECT header_text FROM site_config WHERE id = 1`).Scan(&text)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return text, err
}

// SetHeader replaces the header message. Last write wins; empty allowed.
func (r *ConfigRepo) SetHeader(ctx context.Context, text string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO site_config (id, header_text, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET header_text = EXCLUDED.header_text,
		    updated_at = NOW()`,
		text)
	return err
}
