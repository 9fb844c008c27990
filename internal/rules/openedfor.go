package rules

import (
	"fmt"
	"strings"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// CriterionOpenedFor is the criterion id the validator reports under.
const CriterionOpenedFor = "opened_for_correct"

// OpenedForValidator checks that the Opened For reference field identifies
// the affected colleague. All points or nothing.
type OpenedForValidator struct{}

// NewOpenedForValidator returns a validator ready for concurrent use.
func NewOpenedForValidator() *OpenedForValidator {
	return &OpenedForValidator{}
}

// Evaluate scores the opened-for field.
func (v *OpenedForValidator) Evaluate(t ticket.Ticket, maxPoints int) rubric.CriterionOutcome {
	value := strings.TrimSpace(t.OpenedFor)
	if value != "" {
		return rubric.NumericOutcome(CriterionOpenedFor, maxPoints, maxPoints,
			fmt.Sprintf("Opened For field set to: %s", value),
			"Opened For field is populated with a profile reference",
			"")
	}
	return rubric.NumericOutcome(CriterionOpenedFor, 0, maxPoints,
		"Opened For field is empty",
		"The Opened For field must identify the affected colleague",
		"Set the Opened For field to the affected colleague's profile")
}
