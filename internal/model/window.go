package model

import "time"

// VotingWindow is the admin-configured inclusive date range bounding which
// dates may ever be selected. Singleton: at most one exists at a time.
type VotingWindow struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// WindowRequest is the API request body for replacing the voting window.
// Dates are ISO calendar dates (YYYY-MM-DD).
type WindowRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// WindowResponse mirrors the stored window back to clients.
type WindowResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// MonthDates is one calendar month of the voting window together with the
// dates still selectable in it. A month may have an empty date list when
// the window has already passed.
type MonthDates struct {
	Month string   `json:"month"`
	Dates []string `json:"dates"`
}

// HeaderRequest is the API request body for replacing the header message.
type HeaderRequest struct {
	Text string `json:"text"`
}

// HeaderResponse carries the current header message. Empty when unset.
type HeaderResponse struct {
	Text string `json:"text"`
}
