package rules

import "strings"

const (
	maxEvidenceLen   = 200
	maxEvidenceLines = 3
)

// extractEvidence pulls the lines of text mentioning any of the keywords,
// joined with " | " and truncated to keep result payloads small. Falls back
// to the given default when nothing matches.
func extractEvidence(text string, keywords []string, fallback string) string {
	var matched []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, strings.TrimSpace(line))
				break
			}
		}
		if len(matched) == maxEvidenceLines {
			break
		}
	}
	if len(matched) == 0 {
		return fallback
	}
	evidence := strings.Join(matched, " | ")
	if len(evidence) > maxEvidenceLen {
		return evidence[:maxEvidenceLen-3] + "..."
	}
	return evidence
}
