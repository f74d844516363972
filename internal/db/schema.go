package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates all tables needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const schema = `
-- Voter roster. A voter's single-vote invariant is enforced by the state
-- machine (has_voted re-read under row lock), not by a constraint here.
CREATE TABLE IF NOT EXISTS voters (
    name TEXT PRIMARY KEY,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    voted_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Vote submissions. Deliberately no foreign key to voters: removing a voter
-- from the roster keeps their already-cast submission in the results.
CREATE TABLE IF NOT EXISTS vote_submissions (
    id UUID PRIMARY KEY,
    voter_name TEXT NOT NULL,
    submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_vote_submissions_voter_name ON vote_submissions(voter_name);

-- Per-submission date picks. Die with their submission.
CREATE TABLE IF NOT EXISTS vote_dates (
    submission_id UUID NOT NULL REFERENCES vote_submissions(id) ON DELETE CASCADE,
    vote_date DATE NOT NULL,
    PRIMARY KEY (submission_id, vote_date)
);

CREATE INDEX IF NOT EXISTS idx_vote_dates_date ON vote_dates(vote_date);

-- Singleton voting window, replaced whole by upsert.
CREATE TABLE IF NOT EXISTS voting_window (
    id INT PRIMARY KEY CHECK (id = 1),
    start_date DATE NOT NULL,
    end_date DATE NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Singleton site configuration (header message).
CREATE TABLE IF NOT EXISTS site_config (
    id INT PRIMARY KEY CHECK (id = 1),
    header_text TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
