package rubric

// The two built-in rubric generations. IncidentReview carries the deduction
// and auto-fail criteria; OnsiteReview is a plain additive 90-point rubric.
// Callers may also supply their own rubric: the engine only reads the
// IsDeduction and EvaluationType flags.

// IncidentReview returns the incident logging rubric with validation and
// critical-process deductions.
func IncidentReview() Rubric {
	return Rubric{
		ID:   "incident_review",
		Name: "Incident Review",
		Criteria: []Criterion{
			{ID: "short_description_format", Name: "Short Description Format", MaxPoints: 8, EvaluationType: EvalRules},
			{ID: "category_selection", Name: "Category Selection", MaxPoints: 5, EvaluationType: EvalRules},
			{ID: "subcategory_selection", Name: "Subcategory Selection", MaxPoints: 5, EvaluationType: EvalRules},
			{ID: "service_selection", Name: "Service Selection", MaxPoints: 5, EvaluationType: EvalRules},
			{ID: "ci_selection", Name: "Configuration Item Selection", MaxPoints: 10, EvaluationType: EvalRules},
			{ID: "incident_notes", Name: "Incident Notes Quality", MaxPoints: 20, EvaluationType: EvalJudge},
			{ID: "incident_handling", Name: "Incident Handling", MaxPoints: 15, EvaluationType: EvalJudge},
			{ID: "resolution_notes", Name: "Resolution Notes Quality", MaxPoints: 20, EvaluationType: EvalJudge},
			{ID: "validation_performed", Name: "Caller Validation", IsDeduction: true, EvaluationType: EvalRules},
			{ID: "critical_process_followed", Name: "Critical Process Compliance", IsDeduction: true, EvaluationType: EvalRules},
		},
	}
}

// OnsiteReview returns the onsite support rubric: 90 points, no deductions,
// auto-fail unreachable.
func OnsiteReview() Rubric {
	return Rubric{
		ID:   "onsite_review",
		Name: "Onsite Support Review",
		Criteria: []Criterion{
			{ID: "correct_category", Name: "Correct Category", MaxPoints: 5, EvaluationType: EvalJudge},
			{ID: "correct_subcategory", Name: "Correct Subcategory", MaxPoints: 5, EvaluationType: EvalJudge},
			{ID: "correct_service", Name: "Correct Service", MaxPoints: 5, EvaluationType: EvalJudge},
			{ID: "correct_ci", Name: "Correct Configuration Item", MaxPoints: 10, EvaluationType: EvalJudge},
			{ID: "opened_for_correct", Name: "Opened For", MaxPoints: 10, EvaluationType: EvalRules},
			{ID: "incident_notes", Name: "Incident Notes Quality", MaxPoints: 20, EvaluationType: EvalJudge},
			{ID: "incident_handling", Name: "Incident Handling", MaxPoints: 15, EvaluationType: EvalJudge},
			{ID: "resolution_notes", Name: "Resolution Notes Quality", MaxPoints: 20, EvaluationType: EvalJudge},
		},
	}
}
