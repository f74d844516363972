package model

import "time"

// Voter is one entry in the admin-managed roster.
// HasVoted is true iff exactly one committed submission exists for the name,
// and VotedAt is set iff HasVoted.
type Voter struct {
	Name      string     `json:"name"`
	HasVoted  bool       `json:"hasVoted"`
	VotedAt   *time.Time `json:"votedAt"`
	CreatedAt time.Time  `json:"-"`
}

// CheckEligibility is the submit guard: nil means the name was never on the
// roster (or was removed after the form was rendered). Called by the vote
// repository after re-reading the row under lock, so two racing submits
// cannot both pass.
func CheckEligibility(v *Voter) error {
	if v == nil {
		return ErrUnknownVoter
	}
	if v.HasVoted {
		return ErrAlreadyVoted
	}
	return nil
}

// AddVoterRequest is the API request body for adding a roster entry.
type AddVoterRequest struct {
	Name string `json:"name"`
}

// RemoveVoterRequest is the API request body for removing a roster entry.
type RemoveVoterRequest struct {
	Name string `json:"name"`
}
