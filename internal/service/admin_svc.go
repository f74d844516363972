package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/andripeetso/group-calendar-scheduler/internal/model"
	"github.com/andripeetso/group-calendar-scheduler/internal/repository"
)

// AdminService covers the roster and header mutations. Roster changes are
// independent of voting state: a removed voter's cast submission stays in
// the results under the removed name.
type AdminService struct {
	voters *repository.VoterRepo
	config *repository.ConfigRepo
	cache  *CacheService
}

func NewAdminService(voters *repository.VoterRepo, config *repository.ConfigRepo, cache *CacheService) *AdminService {
	return &AdminService{voters: voters, config: config, cache: cache}
}

// AddVoter creates a roster entry in the NOT_VOTED state.
func (s *AdminService) AddVoter(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Validationf("voter name is required")
	}
	return s.voters.Add(ctx, name)
}

// RemoveVoter deletes a roster entry. Submissions are not cascaded.
func (s *AdminService) RemoveVoter(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Validationf("voter name is required")
	}
	return s.voters.Remove(ctx, name)
}

// ListVoters returns the roster with per-voter voted status.
func (s *AdminService) ListVoters(ctx context.Context) ([]model.Voter, error) {
	return s.voters.List(ctx)
}

// GetHeader serves the header message, cache-aside.
func (s *AdminService) GetHeader(ctx context.Context) (string, error) {
	if s.cache != nil {
		if data, err := s.cache.GetHeader(ctx); err != nil {
			log.Warn().Err(err).Msg("cache: header read failed")
		} else if data != nil {
			var text string
			if err := json.Unmarshal(data, &text); err == nil {
				return text, nil
			}
		}
	}

	text, err := s.config.GetHeader(ctx)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetHeader(ctx, text); err != nil {
			log.Warn().Err(err).Msg("cache: header write failed")
		}
	}
	return text, nil
}

// SetHeader replaces the header message. Any string is accepted, empty
// included; last write wins.
func (s *AdminService) SetHeader(ctx context.Context, text string) error {
	if err := s.config.SetHeader(ctx, text); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateHeader(ctx); err != nil {
			log.Warn().Err(err).Msg("cache: header invalidation failed")
		}
	}
	return nil
}
