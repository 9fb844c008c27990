package models

import "time"

// EvaluationRecord is one persisted ticket evaluation row.
type EvaluationRecord struct {
	ID             int64
	TicketNumber   string
	RubricID       string
	BaseScore      int
	DeductionTotal int
	AutoFail       bool
	AutoFailReason string
	FinalScore     int
	MaxScore       int
	Percentage     float64
	Band           string
	Passed         bool
	Strengths      string
	Improvements   string
	EvaluatedAt    time.Time
	EvaluationMS   int64
}

// OutcomeRecord is one persisted criterion outcome belonging to an
// evaluation row.
type OutcomeRecord struct {
	ID           int64
	EvaluationID int64
	CriterionID  string
	Kind         string
	Points       int
	MaxPoints    int
	Evidence     string
	Reasoning    string
	Coaching     string
}

// BandCount is a per-band evaluation count over a window.
type BandCount struct {
	Band  string
	Count int64
}

// PassRateResult is the pass/total tally over a window, computed in SQL.
type PassRateResult struct {
	Total  int64
	Passed int64
}

// ImprovementCount is how often a criterion surfaced as an improvement area
// over a window.
type ImprovementCount struct {
	CriterionID string
	Count       int64
}
