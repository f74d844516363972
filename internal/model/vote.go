package model

import "time"

// VoteSubmission is the set of dates one voter picked, committed atomically.
type VoteSubmission struct {
	ID          string      `json:"id"`
	VoterName   string      `json:"voterName"`
	Dates       []time.Time `json:"dates"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

// DateEntry is one (voter, date) pair, the unit the aggregator consumes.
// Entries come out of storage in submission insertion order, which fixes the
// per-date voter ordering in the results.
type DateEntry struct {
	VoterName string
	Date      time.Time
}

// DateOverlap is the derived per-date tally. Never persisted; recomputed
// from the stored entries on every read.
type DateOverlap struct {
	Date   string   `json:"date"`
	Count  int      `json:"count"`
	Voters []string `json:"voters"`
}

// VoteRequest is the API request body for submitting a vote.
type VoteRequest struct {
	VoterName string   `json:"voterName"`
	Dates     []string `json:"dates"`
}

// VoteDeleteRequest is the API request body for withdrawing a vote.
type VoteDeleteRequest struct {
	VoterName string `json:"voterName"`
}

// VoteResponse is the API response after a successful submission.
type VoteResponse struct {
	Success bool     `json:"success"`
	Dates   []string `json:"dates"`
}

// VoterDates is one row of the admin vote listing.
type VoterDates struct {
	VoterName string   `json:"voterName"`
	Dates     []string `json:"dates"`
}
