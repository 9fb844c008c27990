package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// CriterionCriticalProcess is the criterion id the detector reports under.
const CriterionCriticalProcess = "critical_process_followed"

const processViolationDeduction = 35

// processType enumerates the critical processes the detector recognizes.
type processType string

const (
	processPasswordReset  processType = "password_reset"
	processLostStolen     processType = "lost_stolen"
	processVIP            processType = "vip"
	processVirusMalware   processType = "virus_malware"
	processDataPrivacy    processType = "data_privacy"
	processAccountLockout processType = "account_lockout"
)

// complianceCheck verifies that a detected process was handled correctly.
type complianceCheck func(d *CriticalProcessDetector, t ticket.Ticket) rubric.CriterionOutcome

type processSpec struct {
	description      string
	patterns         []*regexp.Regexp
	subcategoryMatch []string
	check            complianceCheck
}

// processOrder fixes the evaluation order so results are deterministic when
// several processes trigger on the same ticket.
var processOrder = []processType{
	processPasswordReset,
	processLostStolen,
	processVIP,
	processVirusMalware,
	processDataPrivacy,
	processAccountLockout,
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

var processSpecs = map[processType]processSpec{
	processPasswordReset: {
		description: "Password Reset",
		patterns: compileAll(
			`password\s*reset`,
			`reset\s*password`,
			`pwd\s*reset`,
			`lan\s*password`,
			`ad\s*password`,
			`network\s*password`,
		),
		subcategoryMatch: []string{"password reset", "password"},
		check:            (*CriticalProcessDetector).checkPasswordReset,
	},
	processLostStolen: {
		description: "Lost/Stolen Device",
		patterns: compileAll(
			`\blost\b.*\b(device|laptop|phone|mobile|tablet)\b`,
			`\bstolen\b.*\b(device|laptop|phone|mobile|tablet)\b`,
			`\bmissing\b.*\b(device|laptop|phone|mobile)\b`,
			`\b(device|laptop|phone|mobile)\b.*\b(lost|stolen|missing)\b`,
		),
		subcategoryMatch: []string{"lost", "stolen"},
		check:            (*CriticalProcessDetector).checkLostStolen,
	},
	processVIP: {
		description: "VIP/Executive Support",
		patterns: compileAll(
			`\bvip\b`,
			`\bexecutive\b`,
			`\bc-suite\b`,
			`\bsenior\s*leadership\b`,
		),
		check: (*CriticalProcessDetector).checkVIP,
	},
	processVirusMalware: {
		description: "Virus/Malware Incident",
		patterns: compileAll(
			`\bvirus\b`,
			`\bmalware\b`,
			`\bransomware\b`,
			`\binfected\b`,
			`\bsuspicious\s*(file|email|activity)\b`,
		),
		subcategoryMatch: []string{"virus", "malware", "security"},
		check:            securityIncidentCheck("Virus/Malware Incident"),
	},
	processDataPrivacy: {
		description: "Data Privacy/Security Incident",
		patterns: compileAll(
			`data\s*privacy`,
			`security\s*incident`,
			`data\s*breach`,
			`unauthorized\s*access`,
			`pii\s*(exposure|leak)`,
			`gdpr`,
		),
		check: securityIncidentCheck("Data Privacy/Security Incident"),
	},
	processAccountLockout: {
		description: "Account Lockout",
		patterns: compileAll(
			`account\s*(locked|lockout|disabled)`,
			`locked\s*out`,
			`disable[d]?\s*account`,
		),
		subcategoryMatch: []string{"account", "lockout"},
		check:            documentationCheck("Account Lockout"),
	},
}

// Password reset compliance patterns. The trusted-intermediary element is
// the security control: missing it is an automatic fail.
var (
	trustedIntermediaryPatterns = compileAll(
		`trusted\s*colleague`,
		`trusted\s*contact`,
		`manager`,
		`supervisor`,
		`sent\s*(to|via)\s*manager`,
		`shared\s*with\s*manager`,
		`cc[:\s]*manager`,
	)
	passwordDeliveryPatterns = compileAll(
		`(new\s*)?password\s*(sent|shared|provided)`,
		`temporary\s*password`,
		`reset\s*link`,
		`password\s*generator`,
		`norton\s*password`,
	)
	changeInstructionPatterns = compileAll(
		`change\s*(the\s*)?password`,
		`update\s*(the\s*)?password`,
		`reset\s*after`,
		`change\s*after\s*\d+\s*hours`,
	)
	escalationPatterns = compileAll(
		`escalat`,
		`security\s*team`,
		`infosec`,
		`remote\s*wipe`,
		`disabled?\s*(device|account)`,
		`locked?\s*(device|account)`,
	)
	securityActionPatterns = compileAll(
		`escalat`,
		`security\s*team`,
		`infosec`,
		`isolated?`,
		`quarantine`,
		`disconnect`,
		`scan`,
		`report`,
	)
)

// CriticalProcessDetector identifies critical processes on a ticket and
// verifies each was handled per policy. Detection is a set union over
// per-process keyword and subcategory tables; compliance is dispatched
// through the process strategy map.
type CriticalProcessDetector struct{}

// NewCriticalProcessDetector returns a detector ready for concurrent use.
func NewCriticalProcessDetector() *CriticalProcessDetector {
	return &CriticalProcessDetector{}
}

// Evaluate returns the critical-process outcome for the ticket. A Fail from
// any detected process short-circuits; otherwise the most severe outcome is
// reported with every detected process named in the evidence.
func (d *CriticalProcessDetector) Evaluate(t ticket.Ticket) rubric.CriterionOutcome {
	detected := d.detect(t)
	if len(detected) == 0 {
		return rubric.NotApplicableOutcome(
			CriterionCriticalProcess,
			"No critical process indicators found",
			"Ticket does not involve a critical process",
		)
	}

	names := make([]string, 0, len(detected))
	var worst *rubric.CriterionOutcome
	for _, pt := range detected {
		spec := processSpecs[pt]
		names = append(names, spec.description)

		outcome := spec.check(d, t)
		switch outcome.Kind {
		case rubric.Fail:
			return outcome
		case rubric.Deduction:
			if worst == nil {
				o := outcome
				worst = &o
			}
		}
	}

	evidence := fmt.Sprintf("Critical process(es): %s", strings.Join(names, ", "))
	if worst != nil {
		worst.Evidence = evidence
		return *worst
	}

	return rubric.PassOutcome(
		CriterionCriticalProcess,
		evidence,
		"All critical process requirements were followed correctly",
		"",
	)
}

// detect returns the processes applying to this ticket in declaration order,
// deduplicated. Subcategory matches are checked first as the more reliable
// signal, then free-text patterns.
func (d *CriticalProcessDetector) detect(t ticket.Ticket) []processType {
	fullText := t.FullText()
	subcategory := strings.ToLower(t.Subcategory)

	var detected []processType
	for _, pt := range processOrder {
		spec := processSpecs[pt]

		matched := false
		for _, m := range spec.subcategoryMatch {
			if strings.Contains(subcategory, m) {
				matched = true
				break
			}
		}
		if !matched {
			for _, re := range spec.patterns {
				if re.MatchString(fullText) {
					matched = true
					break
				}
			}
		}
		if matched {
			detected = append(detected, pt)
		}
	}
	return detected
}

func (d *CriticalProcessDetector) checkPasswordReset(t ticket.Ticket) rubric.CriterionOutcome {
	notes := t.NotesText()

	hasTrusted := anyMatch(trustedIntermediaryPatterns, notes)
	hasDelivery := anyMatch(passwordDeliveryPatterns, notes)
	hasInstruction := anyMatch(changeInstructionPatterns, notes)

	evidence := d.passwordEvidence(t)

	switch {
	case hasTrusted && (hasDelivery || hasInstruction):
		return rubric.PassOutcome(
			CriterionCriticalProcess,
			evidence,
			"Password reset process followed: trusted intermediary documented, secure delivery method used",
			"",
		)
	case hasTrusted:
		return rubric.PassOutcome(
			CriterionCriticalProcess,
			evidence,
			"Password reset with trusted intermediary documented",
			"Consider also documenting password change instructions",
		)
	case hasDelivery || hasInstruction:
		return rubric.FailOutcome(
			CriterionCriticalProcess,
			evidence,
			"Password reset without trusted intermediary documentation - password may have been sent directly to affected user",
			"CRITICAL: Never send a password directly to the affected user. Always use a trusted intermediary (manager, supervisor)",
		)
	default:
		return rubric.FailOutcome(
			CriterionCriticalProcess,
			"No password reset process documentation found",
			"Password reset detected but no process documentation",
			"Document the password reset process: use a trusted intermediary for delivery, never send to the affected user directly, and instruct the user to change the password",
		)
	}
}

func (d *CriticalProcessDetector) checkVIP(t ticket.Ticket) rubric.CriterionOutcome {
	priority := strings.TrimSpace(t.Priority)
	if priority == "1" || priority == "2" {
		return rubric.PassOutcome(
			CriterionCriticalProcess,
			fmt.Sprintf("VIP ticket with priority %s", priority),
			"VIP ticket handled with appropriate priority level",
			"",
		)
	}
	return rubric.DeductionOutcome(
		CriterionCriticalProcess,
		processViolationDeduction,
		fmt.Sprintf("VIP ticket with priority %s", priority),
		fmt.Sprintf("VIP ticket should have priority 1/2, but has priority %s", priority),
		"Set appropriate priority for VIP/executive support tickets",
	)
}

func (d *CriticalProcessDetector) checkLostStolen(t ticket.Ticket) rubric.CriterionOutcome {
	if anyMatch(escalationPatterns, t.NotesText()) {
		return rubric.PassOutcome(
			CriterionCriticalProcess,
			"Lost/stolen device with security response documented",
			"Lost/stolen device handled with appropriate escalation",
			"",
		)
	}
	return rubric.DeductionOutcome(
		CriterionCriticalProcess,
		processViolationDeduction,
		"Lost/stolen device incident",
		"Lost/stolen device requires security escalation but none documented",
		"For lost/stolen devices: disable the device/account immediately, escalate to the security team, and consider a remote wipe",
	)
}

// securityIncidentCheck builds the compliance check shared by the virus and
// data-privacy processes.
func securityIncidentCheck(name string) complianceCheck {
	return func(d *CriticalProcessDetector, t ticket.Ticket) rubric.CriterionOutcome {
		if anyMatch(securityActionPatterns, t.NotesText()) {
			return rubric.PassOutcome(
				CriterionCriticalProcess,
				fmt.Sprintf("%s with security response documented", name),
				fmt.Sprintf("%s handled with appropriate security measures", name),
				"",
			)
		}
		return rubric.DeductionOutcome(
			CriterionCriticalProcess,
			processViolationDeduction,
			fmt.Sprintf("%s incident", name),
			fmt.Sprintf("%s requires security response but none documented", name),
			fmt.Sprintf("For %s: isolate the affected system, escalate to the security team, and document all actions taken", strings.ToLower(name)),
		)
	}
}

// documentationCheck builds the generic check: resolution notes present and
// non-trivial.
func documentationCheck(name string) complianceCheck {
	return func(d *CriticalProcessDetector, t ticket.Ticket) rubric.CriterionOutcome {
		if len(strings.TrimSpace(t.CloseNotes)) > 20 {
			return rubric.PassOutcome(
				CriterionCriticalProcess,
				fmt.Sprintf("%s with resolution documented", name),
				fmt.Sprintf("%s handled and documented", name),
				"",
			)
		}
		return rubric.DeductionOutcome(
			CriterionCriticalProcess,
			processViolationDeduction,
			fmt.Sprintf("%s with minimal documentation", name),
			fmt.Sprintf("%s requires detailed documentation", name),
			"Document all actions taken for critical processes",
		)
	}
}

func (d *CriticalProcessDetector) passwordEvidence(t ticket.Ticket) string {
	text := strings.Join([]string{t.Description, t.WorkNotes, t.CloseNotes}, "\n")
	return extractEvidence(text,
		[]string{"password", "trusted", "manager", "colleague", "reset", "sent", "shared"},
		"No password process documentation found")
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
