package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
)

type VoteRepo struct {
	pool *pgxpool.Pool
}

func NewVoteRepo(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// SubmitVote commits one voter's date picks in a single transaction: the
// voter row is re-read under a row lock so that of two racing submits for
// the same name exactly one passes the eligibility guard. The submission,
// its date rows and the has_voted flip commit together or not at all.
func (r *VoteRepo) SubmitVote(ctx context.Context, voterName string, dates []time.Time) (*model.VoteSubmission, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var voter model.Voter
	err = tx.QueryRow(ctx, `
		SELECT name, has_voted, voted_at FROM voters
		WHERE name = $1
		FOR UPDATE`,
		voterName).Scan(&voter.Name, &voter.HasVoted, &voter.VotedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.CheckEligibility(nil)
	}
	if err != nil {
		return nil, err
	}
	if err := model.CheckEligibility(&voter); err != nil {
		return nil, err
	}

	sub := model.VoteSubmission{
		ID:        uuid.NewString(),
		VoterName: voter.Name,
		Dates:     dates,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO vote_submissions (id, voter_name)
		VALUES ($1, $2)
		RETURNING submitted_at`,
		sub.ID, sub.VoterName).Scan(&sub.SubmittedAt)
	if err != nil {
		return nil, err
	}

	for _, d := range dates {
		_, err = tx.Exec(ctx, `
			INSERT INTO vote_dates (submission_id, vote_date)
			VALUES ($1, $2)`,
			sub.ID, d)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE voters SET has_voted = TRUE, voted_at = NOW()
		WHERE name = $1`,
		voter.Name)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ResetOne withdraws a voter's submission and restores eligibility in one
// transaction. Idempotent: a voter with no submission is a no-op success,
// and names no longer on the roster still get their orphaned submissions
// removed.
func (r *VoteRepo) ResetOne(ctx context.Context, voterName string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Date rows cascade with their submission.
	_, err = tx.Exec(ctx, `DELETE FROM vote_submissions WHERE voter_name = $1`, voterName)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE voters SET has_voted = FALSE, voted_at = NULL
		WHERE name = $1`,
		voterName)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ResetAll clears every submission and every voter flag atomically. No
// reader can observe submissions gone while a flag still reads voted.
func (r *VoteRepo) ResetAll(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM vote_submissions`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE voters SET has_voted = FALSE, voted_at = NULL
		WHERE has_voted OR voted_at IS NOT NULL`)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListEntries returns every (voter, date) pair in submission insertion
// order. The aggregator's per-date voter ordering follows from this.
func (r *VoteRepo) ListEntries(ctx context.Context) ([]model.DateEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.voter_name, d.vote_date
		FROM vote_dates d
		JOIN vote_submissions s ON s.id = d.submission_id
		ORDER BY s.submitted_at, s.id, d.vote_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.DateEntry
	for rows.Next() {
		var e model.DateEntry
		if err := rows.Scan(&e.VoterName, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListSubmissions returns every submission with its dates, oldest first.
func (r *VoteRepo) ListSubmissions(ctx context.Context) ([]model.VoteSubmission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.voter_name, s.submitted_at, d.vote_date
		FROM vote_submissions s
		JOIN vote_dates d ON d.submission_id = s.id
		ORDER BY s.submitted_at, s.id, d.vote_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.VoteSubmission
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, name    string
			submittedAt time.Time
			date        time.Time
		)
		if err := rows.Scan(&id, &name, &submittedAt, &date); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			i = len(subs)
			index[id] = i
			subs = append(subs, model.VoteSubmission{
				ID:          id,
				VoterName:   name,
				SubmittedAt: submittedAt,
			})
		}
		subs[i].Dates = append(subs[i].Dates, date)
	}
	return subs, rows.Err()
}
