package rules

import (
	"fmt"
	"strings"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// CriterionShortDescription is the criterion id the parser reports under.
const CriterionShortDescription = "short_description_format"

// ShortDescriptionMaxPoints is the fixed value of the format criterion:
// 8 minus 2 per issue, floored at zero.
const ShortDescriptionMaxPoints = 8

const issuePenalty = 2

// descriptionParts is the parsed 4-segment form: LoB - Location - App - Brief.
type descriptionParts struct {
	lob      string
	location string
	app      string
	brief    string
}

// ShortDescriptionParser validates the pipe-delimited short description
// format [LoB] - [Location] - [App] - [Brief Description].
type ShortDescriptionParser struct {
	taxonomy *Taxonomy
}

// NewShortDescriptionParser returns a parser over the given taxonomy.
func NewShortDescriptionParser(tx *Taxonomy) *ShortDescriptionParser {
	if tx == nil {
		tx = DefaultTaxonomy()
	}
	return &ShortDescriptionParser{taxonomy: tx}
}

// Evaluate parses and scores the ticket's short description.
func (p *ShortDescriptionParser) Evaluate(t ticket.Ticket) rubric.CriterionOutcome {
	shortDesc := strings.TrimSpace(t.ShortDescription)

	if shortDesc == "" {
		return rubric.NumericOutcome(CriterionShortDescription, 0, ShortDescriptionMaxPoints,
			"Empty short description",
			"Short description is empty or missing",
			"Always provide a short description following the format: [LoB] - [Location] - [App] - [Brief Description]")
	}

	parts := p.parse(shortDesc)
	issues := p.check(parts, t)
	score := scoreFromIssues(len(issues))

	if len(issues) == 0 {
		return rubric.NumericOutcome(CriterionShortDescription, score, ShortDescriptionMaxPoints,
			fmt.Sprintf("%q", shortDesc),
			fmt.Sprintf("All 4 parts present and correctly formatted: LoB=%s, Location=%s, App=%s, Brief=%s",
				parts.lob, parts.location, parts.app, parts.brief),
			"")
	}

	return rubric.NumericOutcome(CriterionShortDescription, score, ShortDescriptionMaxPoints,
		fmt.Sprintf("%q", shortDesc),
		fmt.Sprintf("Issues found: %s", strings.Join(issues, "; ")),
		coachingForIssues(issues))
}

// parse splits on " - " when present, otherwise on bare "-", assigns the
// first three segments positionally and joins the remainder as the brief
// note. A two-token compound LoB (e.g. MMC-NCL) is re-folded into one
// segment and the rest re-derived.
func (p *ShortDescriptionParser) parse(shortDesc string) descriptionParts {
	var segments []string
	switch {
	case strings.Contains(shortDesc, " - "):
		segments = strings.Split(shortDesc, " - ")
	case strings.Contains(shortDesc, "-"):
		segments = strings.Split(shortDesc, "-")
	default:
		return descriptionParts{brief: shortDesc}
	}

	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	var parts descriptionParts
	if len(segments) >= 1 {
		parts.lob = segments[0]
	}
	if len(segments) >= 2 {
		parts.location = segments[1]
	}
	if len(segments) >= 3 {
		parts.app = segments[2]
	}
	if len(segments) >= 4 {
		parts.brief = strings.Join(segments[3:], " - ")
	}

	if parts.lob != "" && parts.location != "" {
		compound := strings.ToUpper(parts.lob + "-" + parts.location)
		if p.isCompoundLoB(compound) {
			parts.lob = compound
			parts.location = parts.app
			parts.app = parts.brief
			parts.brief = ""
			if len(segments) >= 5 {
				parts.brief = strings.Join(segments[4:], " - ")
			} else if len(segments) == 4 {
				parts.brief = segments[3]
			}
		}
	}

	return parts
}

func (p *ShortDescriptionParser) isCompoundLoB(candidate string) bool {
	for _, code := range p.taxonomy.LineOfBusinessCodes {
		if candidate == code {
			return true
		}
	}
	return false
}

func (p *ShortDescriptionParser) check(parts descriptionParts, t ticket.Ticket) []string {
	var issues []string

	switch {
	case parts.lob == "":
		issues = append(issues, "Missing Line of Business (LoB)")
	case !p.isValidLoB(parts.lob, t):
		issues = append(issues, fmt.Sprintf("Unrecognized LoB: '%s'", parts.lob))
	}

	switch {
	case parts.location == "":
		issues = append(issues, "Missing location")
	case !isValidLocation(parts.location):
		issues = append(issues, fmt.Sprintf("Invalid location: '%s'", parts.location))
	}

	switch {
	case parts.app == "":
		issues = append(issues, "Missing application/system")
	case !p.isValidApp(parts.app):
		issues = append(issues, fmt.Sprintf("Invalid application: '%s'", parts.app))
	}

	switch {
	case parts.brief == "":
		issues = append(issues, "Missing brief description")
	case len(parts.brief) < 3:
		issues = append(issues, fmt.Sprintf("Brief description too short: '%s'", parts.brief))
	}

	return issues
}

func (p *ShortDescriptionParser) isValidLoB(lob string, t ticket.Ticket) bool {
	if p.taxonomy.IsKnownLoB(lob) {
		return true
	}
	// The parsed prefix may match the ticket's own line of business even
	// when it is not a standard code.
	ticketLoB := strings.ToUpper(t.LineOfBusiness)
	lobUpper := strings.ToUpper(lob)
	if ticketLoB != "" && (strings.Contains(ticketLoB, lobUpper) || strings.Contains(lobUpper, ticketLoB)) {
		return true
	}
	return false
}

// isValidLocation is deliberately lenient: any segment of at least two
// characters is accepted as a location, lowercase included. The analyst
// gets the benefit of the doubt on office names the taxonomy does not know.
func isValidLocation(location string) bool {
	return len(location) >= 2
}

func (p *ShortDescriptionParser) isValidApp(app string) bool {
	if app == "" {
		return false
	}
	if p.taxonomy.IsKnownApp(app) {
		return true
	}
	return len(app) >= 1 && len(app) <= 50
}

// scoreFromIssues maps issue counts onto the fixed 8/6/4/2/0 table.
func scoreFromIssues(issueCount int) int {
	score := ShortDescriptionMaxPoints - issuePenalty*issueCount
	if score < 0 {
		return 0
	}
	return score
}

func coachingForIssues(issues []string) string {
	parts := []string{"Follow the 4-part format: [LoB] - [Location] - [App] - [Brief Description]"}

	contains := func(substr string) bool {
		for _, issue := range issues {
			if strings.Contains(strings.ToLower(issue), substr) {
				return true
			}
		}
		return false
	}

	if contains("lob") {
		parts = append(parts, "Use standard LoB prefixes: MARSH, MERCER, MMC, MMC-NCL, GC, OW")
	}
	if contains("location") {
		parts = append(parts, "Include the office/city location")
	}
	if contains("application") {
		parts = append(parts, "Specify the affected application/system (e.g., VDI, LAN, AD)")
	}
	if contains("brief") {
		parts = append(parts, "Provide a concise description of the issue")
	}

	return strings.Join(parts, ". ")
}
