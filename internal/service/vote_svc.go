package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/repository"
)

// VoteService is the voting state machine: it guards submissions against
// the roster and the voting window, and routes every vote mutation through
// one transactional path so the has_voted flags never drift from the
// stored submissions.
type VoteService struct {
	votes  *repository.VoteRepo
	window *WindowService
	cache  *CacheService

	// now is the submit-time clock; selectability of "today" is evaluated
	// here, not at render time. Overridable in tests.
	now func() time.Time
}

func NewVoteService(votes *repository.VoteRepo, window *WindowService, cache *CacheService) *VoteService {
	return &VoteService{
		votes:  votes,
		window: window,
		cache:  cache,
		now:    time.Now,
	}
}

// ParseSubmissionDates validates and normalizes a submitted date list:
// non-empty, every element an ISO calendar date, duplicates collapsed while
// keeping first-seen order. Runs before anything touches the store.
func ParseSubmissionDates(raw []string) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, model.Validationf("at least one date is required")
	}

	var dates []time.Time
	seen := make(map[string]bool)
	for _, s := range raw {
		d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
		if err != nil {
			return nil, model.Validationf("invalid date %q", s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		dates = append(dates, d)
	}
	return dates, nil
}

// Submit runs the NOT_VOTED -> VOTED transition. Validation and the window
// check happen before the transaction; eligibility is decided inside it,
// under a row lock, so two concurrent submits for one voter cannot both
// commit.
func (s *VoteService) Submit(ctx context.Context, req model.VoteRequest) (*model.VoteResponse, error) {
	name := strings.TrimSpace(req.VoterName)
	if name == "" {
		return nil, model.Validationf("voter name is required")
	}

	dates, err := ParseSubmissionDates(req.Dates)
	if err != nil {
		return nil, err
	}

	window, err := s.window.Get(ctx)
	if err != nil {
		return nil, err
	}
	today := DateOnly(s.now())
	for _, d := range dates {
		if window == nil || !IsSelectable(d, window.StartDate, window.EndDate, today) {
			return nil, model.Validationf("date %s is not selectable", d.Format(time.DateOnly))
		}
	}

	sub, err := s.votes.SubmitVote(ctx, name, dates)
	if err != nil {
		return nil, err
	}

	s.invalidateOverlap(ctx)

	resp := model.VoteResponse{Success: true}
	for _, d := range sub.Dates {
		resp.Dates = append(resp.Dates, d.Format(time.DateOnly))
	}
	return &resp, nil
}

// ResetOne withdraws one voter's submission and restores eligibility.
// Idempotent: resetting a voter with no submission succeeds as a no-op.
func (s *VoteService) ResetOne(ctx context.Context, voterName string) error {
	name := strings.TrimSpace(voterName)
	if name == "" {
		return model.Validationf("voter name is required")
	}

	if err := s.votes.ResetOne(ctx, name); err != nil {
		return err
	}
	s.invalidateOverlap(ctx)
	return nil
}

// ResetAll wipes every submission and restores every voter's eligibility
// in one transaction.
func (s *VoteService) ResetAll(ctx context.Context) error {
	if err := s.votes.ResetAll(ctx); err != nil {
		return err
	}
	s.invalidateOverlap(ctx)
	return nil
}

// ListVotes returns every submission as voter name plus ISO date list.
func (s *VoteService) ListVotes(ctx context.Context) ([]model.VoterDates, error) {
	subs, err := s.votes.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.VoterDates, 0, len(subs))
	for _, sub := range subs {
		vd := model.VoterDates{VoterName: sub.VoterName}
		for _, d := range sub.Dates {
			vd.Dates = append(vd.Dates, d.Format(time.DateOnly))
		}
		out = append(out, vd)
	}
	return out, nil
}

func (s *VoteService) invalidateOverlap(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOverlap(ctx); err != nil {
		log.Warn().Err(err).Msg("cache: overlap invalidation failed")
	}
}
