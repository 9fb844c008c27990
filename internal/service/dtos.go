package service

import (
	"strings"
	"time"

	"github.com/godilite/review-server/internal/repository/models"
	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/scoring"
)

// PassRateReport is the pass/total tally for a window.
type PassRateReport struct {
	Total    int64
	Passed   int64
	PassRate float64
}

// BandSlice is one band's share of a window's evaluations.
type BandSlice struct {
	Band  string
	Count int64
}

// ImprovementArea is a criterion that recurs below the improvement threshold.
type ImprovementArea struct {
	CriterionID string
	Count       int64
}

// UsageReport is the judge's accumulated token usage and estimated spend.
type UsageReport struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	RequestCount     int64
	EstimatedCost    float64
}

const highlightSeparator = "\n"

func toRecord(result scoring.EvaluationResult) models.EvaluationRecord {
	return models.EvaluationRecord{
		TicketNumber:   result.TicketNumber,
		RubricID:       result.RubricID,
		BaseScore:      result.BaseScore,
		DeductionTotal: result.DeductionTotal,
		AutoFail:       result.AutoFail,
		AutoFailReason: result.AutoFailReason,
		FinalScore:     result.FinalScore,
		MaxScore:       result.MaxScore,
		Percentage:     result.Percentage,
		Band:           string(result.Band),
		Passed:         result.Passed,
		Strengths:      strings.Join(result.Strengths, highlightSeparator),
		Improvements:   strings.Join(result.Improvements, highlightSeparator),
		EvaluatedAt:    result.EvaluatedAt,
		EvaluationMS:   result.EvaluationTime.Milliseconds(),
	}
}

func toOutcomeRecords(outcomes []rubric.CriterionOutcome) []models.OutcomeRecord {
	records := make([]models.OutcomeRecord, len(outcomes))
	for i, o := range outcomes {
		records[i] = models.OutcomeRecord{
			CriterionID: o.CriterionID,
			Kind:        o.Kind.String(),
			Points:      o.Points,
			MaxPoints:   o.MaxPoints,
			Evidence:    o.Evidence,
			Reasoning:   o.Reasoning,
			Coaching:    o.Coaching,
		}
	}
	return records
}

func fromRecord(rec models.EvaluationRecord, outcomes []models.OutcomeRecord) scoring.EvaluationResult {
	result := scoring.EvaluationResult{
		TicketNumber:   rec.TicketNumber,
		RubricID:       rec.RubricID,
		BaseScore:      rec.BaseScore,
		DeductionTotal: rec.DeductionTotal,
		AutoFail:       rec.AutoFail,
		AutoFailReason: rec.AutoFailReason,
		FinalScore:     rec.FinalScore,
		MaxScore:       rec.MaxScore,
		Percentage:     rec.Percentage,
		Band:           scoring.Band(rec.Band),
		Passed:         rec.Passed,
		EvaluatedAt:    rec.EvaluatedAt,
		EvaluationTime: time.Duration(rec.EvaluationMS) * time.Millisecond,
	}
	if rec.Strengths != "" {
		result.Strengths = strings.Split(rec.Strengths, highlightSeparator)
	}
	if rec.Improvements != "" {
		result.Improvements = strings.Split(rec.Improvements, highlightSeparator)
	}
	for _, o := range outcomes {
		result.Outcomes = append(result.Outcomes, rubric.CriterionOutcome{
			CriterionID: o.CriterionID,
			Kind:        rubric.ParseOutcomeKind(o.Kind),
			Points:      o.Points,
			MaxPoints:   o.MaxPoints,
			Evidence:    o.Evidence,
			Reasoning:   o.Reasoning,
			Coaching:    o.Coaching,
		})
	}
	return result
}
