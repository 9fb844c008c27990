// Package rubric defines the scoring rubric model: the ordered criteria a
// ticket is evaluated against, and the tagged outcome type each evaluation
// produces. Rubrics are static configuration, loaded once and read-only
// afterwards, so they can be shared across concurrent evaluations without
// locking.
package rubric

// EvaluationType says how a criterion is scored.
type EvaluationType string

const (
	// EvalRules marks criteria scored by deterministic pattern matching.
	EvalRules EvaluationType = "rules"
	// EvalJudge marks criteria scored by the external language-model judge.
	EvalJudge EvaluationType = "judge"
)

// Criterion is one scored dimension of a rubric.
type Criterion struct {
	ID             string
	Name           string
	MaxPoints      int
	IsDeduction    bool
	EvaluationType EvaluationType
}

// Rubric is the ordered set of criteria defining how a ticket is scored.
// A rubric with no deduction criteria behaves as a plain additive rubric:
// the deduction and auto-fail machinery simply never engages.
type Rubric struct {
	ID       string
	Name     string
	Criteria []Criterion
}

// MaxScore is the sum of max points across non-deduction criteria.
func (r Rubric) MaxScore() int {
	total := 0
	for _, c := range r.Criteria {
		if !c.IsDeduction {
			total += c.MaxPoints
		}
	}
	return total
}

// Criterion returns the criterion with the given id, if present.
func (r Rubric) Criterion(id string) (Criterion, bool) {
	for _, c := range r.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}

// ScoringCriteria returns the criteria contributing to the base score.
func (r Rubric) ScoringCriteria() []Criterion {
	out := make([]Criterion, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		if !c.IsDeduction {
			out = append(out, c)
		}
	}
	return out
}

// DeductionCriteria returns the deduction-flagged criteria.
func (r Rubric) DeductionCriteria() []Criterion {
	var out []Criterion
	for _, c := range r.Criteria {
		if c.IsDeduction {
			out = append(out, c)
		}
	}
	return out
}

// JudgeCriteria returns the criteria evaluated by the external judge.
func (r Rubric) JudgeCriteria() []Criterion {
	var out []Criterion
	for _, c := range r.Criteria {
		if c.EvaluationType == EvalJudge {
			out = append(out, c)
		}
	}
	return out
}
