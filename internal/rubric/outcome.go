package rubric

// OutcomeKind discriminates the tagged CriterionOutcome variant. The source
// of a kind is irrelevant to the aggregator: rule evaluators and the judge
// produce the same type.
type OutcomeKind int

const (
	// Numeric awards points in [0, criterion max].
	Numeric OutcomeKind = iota
	// Pass marks a binary criterion as satisfied. Worth zero points.
	Pass
	// Fail forces the whole ticket to zero. Reserved for severe policy
	// violations.
	Fail
	// NotApplicable marks a criterion that does not apply to this ticket.
	NotApplicable
	// Deduction carries a negative point adjustment applied after base
	// scoring.
	Deduction
)

func (k OutcomeKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case NotApplicable:
		return "n/a"
	case Deduction:
		return "deduction"
	default:
		return "unknown"
	}
}

// ParseOutcomeKind is the inverse of String. Unknown labels come back as
// NotApplicable so stored data can never force a score.
func ParseOutcomeKind(s string) OutcomeKind {
	switch s {
	case "numeric":
		return Numeric
	case "pass":
		return Pass
	case "fail":
		return Fail
	case "deduction":
		return Deduction
	default:
		return NotApplicable
	}
}

// CriterionOutcome is the result of evaluating one criterion for one ticket.
// Points is meaningful only for Numeric (>= 0) and Deduction (<= 0) kinds.
type CriterionOutcome struct {
	CriterionID string
	Kind        OutcomeKind
	Points      int
	MaxPoints   int
	Evidence    string
	Reasoning   string
	Coaching    string
}

// NumericOutcome builds a Numeric outcome, clamping points into
// [0, maxPoints] so malformed inputs cannot inflate or invert a score.
func NumericOutcome(criterionID string, points, maxPoints int, evidence, reasoning, coaching string) CriterionOutcome {
	if points < 0 {
		points = 0
	}
	if maxPoints > 0 && points > maxPoints {
		points = maxPoints
	}
	return CriterionOutcome{
		CriterionID: criterionID,
		Kind:        Numeric,
		Points:      points,
		MaxPoints:   maxPoints,
		Evidence:    evidence,
		Reasoning:   reasoning,
		Coaching:    coaching,
	}
}

// PassOutcome builds a Pass outcome.
func PassOutcome(criterionID, evidence, reasoning, coaching string) CriterionOutcome {
	return CriterionOutcome{
		CriterionID: criterionID,
		Kind:        Pass,
		Evidence:    evidence,
		Reasoning:   reasoning,
		Coaching:    coaching,
	}
}

// FailOutcome builds a Fail outcome. The reasoning becomes the auto-fail
// reason when the aggregator zeroes the ticket.
func FailOutcome(criterionID, evidence, reasoning, coaching string) CriterionOutcome {
	return CriterionOutcome{
		CriterionID: criterionID,
		Kind:        Fail,
		Evidence:    evidence,
		Reasoning:   reasoning,
		Coaching:    coaching,
	}
}

// NotApplicableOutcome builds a NotApplicable outcome.
func NotApplicableOutcome(criterionID, evidence, reasoning string) CriterionOutcome {
	return CriterionOutcome{
		CriterionID: criterionID,
		Kind:        NotApplicable,
		Evidence:    evidence,
		Reasoning:   reasoning,
	}
}

// DeductionOutcome builds a Deduction outcome. Positive magnitudes are
// negated so Points is always <= 0.
func DeductionOutcome(criterionID string, points int, evidence, reasoning, coaching string) CriterionOutcome {
	if points > 0 {
		points = -points
	}
	return CriterionOutcome{
		CriterionID: criterionID,
		Kind:        Deduction,
		Points:      points,
		Evidence:    evidence,
		Reasoning:   reasoning,
		Coaching:    coaching,
	}
}

// IsPerfect reports whether the outcome awarded its full value.
func (o CriterionOutcome) IsPerfect() bool {
	switch o.Kind {
	case Pass:
		return true
	case Numeric:
		return o.MaxPoints > 0 && o.Points == o.MaxPoints
	default:
		return false
	}
}
