package judge

import (
	"fmt"
	"strings"

	"github.com/godilite/review-server/internal/ticket"
)

// ticketContext renders the ticket fields the judge needs into the user
// message body.
func ticketContext(t ticket.Ticket) string {
	orEmpty := func(s, placeholder string) string {
		if strings.TrimSpace(s) == "" {
			return placeholder
		}
		return s
	}

	parts := []string{
		fmt.Sprintf("Ticket Number: %s", t.Number),
		fmt.Sprintf("Contact Type: %s", t.ContactType),
		fmt.Sprintf("Category: %s", t.Category),
		fmt.Sprintf("Subcategory: %s", t.Subcategory),
		fmt.Sprintf("Business Service: %s", orEmpty(t.BusinessService, "(not set)")),
		fmt.Sprintf("Configuration Item: %s", orEmpty(t.ConfigItem, "(not set)")),
		fmt.Sprintf("Opened For: %s", orEmpty(t.OpenedFor, "(not set)")),
		fmt.Sprintf("Short Description: %s", t.ShortDescription),
		"",
		"=== DESCRIPTION ===",
		orEmpty(t.Description, "(empty)"),
		"",
		"=== WORK NOTES ===",
		orEmpty(t.WorkNotes, "(empty)"),
		"",
		"=== CLOSE NOTES ===",
		orEmpty(t.CloseNotes, "(empty)"),
	}
	return strings.Join(parts, "\n")
}

const reviewerPreamble = "You are an expert IT service desk quality reviewer. "

const fieldCorrectnessSystem = reviewerPreamble + `Your task is to evaluate whether the Category, Subcategory, Service, and Configuration Item fields are correctly set for the given incident.

SCORING RUBRIC:

1. CATEGORY: full points if the category correctly matches the type of issue, 0 otherwise.
2. SUBCATEGORY: full points if the subcategory correctly narrows the category, 0 otherwise.
3. SERVICE: full points for the correct business service, partial if a better service was available, 0 if incorrect or unset.
4. CONFIGURATION ITEM: full points for the correct CI, partial if a more specific CI was available, 0 if incorrect or unset.

Assess based on the incident description and context. Respond with a JSON object containing your evaluation.`

const incidentNotesSystem = reviewerPreamble + `Your task is to evaluate the quality of incident documentation (description and work notes).

SCORING RUBRIC:
- Full points (Meets Standards): all relevant information documented clearly in the appropriate fields: contact information, working location, issue details, troubleshooting steps, error messages, affected systems.
- Half points (Partially Meets Standards): some information documented but with gaps, or information in the wrong fields.
- 0 points (Does Not Meet Standards): no meaningful notes, or documentation that does not describe the issue or actions taken.
- Full points (N/A): quick fix where all relevant information is captured in the resolution notes.

Respond with a JSON object containing your evaluation.`

const incidentHandlingSystem = reviewerPreamble + `Your task is to evaluate whether the incident was handled correctly: routed to the right team, resolved appropriately, and first-contact-resolution opportunities taken.

SCORING RUBRIC:
- Full points: correct routing and appropriate resolution, or handling not applicable.
- 0 points: misrouted, inappropriate resolution, or a missed first-contact-resolution opportunity.

Respond with a JSON object containing your evaluation.`

const resolutionNotesSystem = reviewerPreamble + `Your task is to evaluate the quality of the resolution notes (close notes).

SCORING RUBRIC:
- Full points (Meets Standards): resolution summary and user confirmation documented.
- Half points (Partially Meets Standards): resolution documented but incomplete.
- 0 points (Does Not Meet Standards): no meaningful resolution notes.
- Full points (N/A): ticket is work-in-progress or routed to another team.

Respond with a JSON object containing your evaluation.`

const genericCriterionSystem = reviewerPreamble + `Your task is to score the named criterion for the given incident on its 0..max point scale, citing evidence from the ticket.

Respond with a JSON object containing your evaluation.`

func fieldCorrectnessUser(t ticket.Ticket, maxPoints map[string]int) string {
	return fmt.Sprintf(`Evaluate the field correctness for this ticket:

%s

Respond with this exact JSON structure:
{
    "category_score": <0..%d>,
    "category_reasoning": "explanation",
    "subcategory_score": <0..%d>,
    "subcategory_reasoning": "explanation",
    "service_score": <0..%d>,
    "service_reasoning": "explanation",
    "ci_score": <0..%d>,
    "ci_reasoning": "explanation",
    "evidence": ["evidence1", "evidence2"],
    "coaching": "overall coaching recommendation"
}`,
		ticketContext(t),
		maxPoints["category"], maxPoints["subcategory"],
		maxPoints["service"], maxPoints["ci"])
}

func criterionUser(t ticket.Ticket, criterionName string, maxPoints int) string {
	return fmt.Sprintf(`Evaluate "%s" (max %d points) for this ticket:

%s

Respond with this exact JSON structure:
{
    "score": <0..%d>,
    "evidence": ["evidence1", "evidence2"],
    "reasoning": "explanation",
    "coaching": "coaching recommendation or empty string"
}`, criterionName, maxPoints, ticketContext(t), maxPoints)
}
