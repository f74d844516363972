package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/repository"
	"github.com/rs/zerolog/log"
)

// Aggregate folds (voter, date) entries into per-date counts and voter
// lists. Pure: same entries in, same results out, no matter how often it
// runs. Result order is first appearance of each date; per-date voter order
// is entry order.
func Aggregate(entries []model.DateEntry) []model.DateOverlap {
	var results []model.DateOverlap
	index := make(map[string]int)
	for _, e := range entries {
		key := e.Date.Format(time.DateOnly)
		i, ok := index[key]
		if !ok {
			i = len(results)
			index[key] = i
			results = append(results, model.DateOverlap{Date: key})
		}
		results[i].Count++
		results[i].Voters = append(results[i].Voters, e.VoterName)
	}
	return results
}

// MaxCount returns the highest per-date count, floor 1, for intensity
// scaling on the results view. Ties at the max are all equally "best".
func MaxCount(results []model.DateOverlap) int {
	max := 1
	for _, r := range results {
		if r.Count > max {
			max = r.Count
		}
	}
	return max
}

// PartitionVoters splits the voters who submitted anything into those
// available on the given date and those not. Roster members who never
// submitted appear in neither list: only participants get per-date status.
func PartitionVoters(results []model.DateOverlap, date string) (available, unavailable []string) {
	onDate := make(map[string]bool)
	for _, r := range results {
		if r.Date == date {
			available = append(available, r.Voters...)
			for _, v := range r.Voters {
				onDate[v] = true
			}
		}
	}

	seen := make(map[string]bool)
	for _, r := range results {
		for _, v := range r.Voters {
			if !seen[v] {
				seen[v] = true
				if !onDate[v] {
					unavailable = append(unavailable, v)
				}
			}
		}
	}
	return available, unavailable
}

// OverlapService serves the aggregated results, recomputing from the stored
// entries on every cache miss. The tally is never stored, so it cannot
// drift from the submissions.
type OverlapService struct {
	votes *repository.VoteRepo
	cache *CacheService
}

func NewOverlapService(votes *repository.VoteRepo, cache *CacheService) *OverlapService {
	return &OverlapService{votes: votes, cache: cache}
}

func (s *OverlapService) Overlap(ctx context.Context) ([]model.DateOverlap, error) {
	if s.cache != nil {
		if data, err := s.cache.GetOverlap(ctx); err != nil {
			log.Warn().Err(err).Msg("cache: overlap read failed")
		} else if data != nil {
			var cached []model.DateOverlap
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	entries, err := s.votes.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	results := Aggregate(entries)

	if s.cache != nil {
		if err := s.cache.SetOverlap(ctx, results); err != nil {
			log.Warn().Err(err).Msg("cache: overlap write failed")
		}
	}
	return results, nil
}
