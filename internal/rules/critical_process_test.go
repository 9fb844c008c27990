package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/rules"
	"github.com/godilite/review-server/internal/ticket"
)

func TestCriticalProcessNotDetected(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	outcome := detector.Evaluate(ticket.Ticket{
		Number:           "INC0040001",
		ShortDescription: "MARSH - Sydney - Outlook - Calendar not syncing",
		Description:      "User reports calendar entries missing after update.",
		WorkNotes:        "Re-synced the mailbox profile.",
	})

	assert.Equal(t, rubric.NotApplicable, outcome.Kind)
	assert.Equal(t, rules.CriterionCriticalProcess, outcome.CriterionID)
}

func TestPasswordResetCompliance(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	cases := []struct {
		name      string
		workNotes string
		wantKind  rubric.OutcomeKind
		reasoning string
	}{
		{
			name: "trusted intermediary with secure delivery",
			workNotes: "Temporary password shared with manager Jane Doe. " +
				"User instructed to change the password at first login.",
			wantKind: rubric.Pass,
		},
		{
			name:      "trusted intermediary only",
			workNotes: "Reset completed, details provided to the user's supervisor.",
			wantKind:  rubric.Pass,
		},
		{
			name:      "norton password counts as secure delivery",
			workNotes: "Norton password created and read out to the user's manager.",
			wantKind:  rubric.Pass,
			reasoning: "secure delivery",
		},
		{
			name:      "password sent directly to user",
			workNotes: "New password sent to the user's personal email.",
			wantKind:  rubric.Fail,
			reasoning: "without trusted intermediary",
		},
		{
			name:      "no process documentation at all",
			workNotes: "Done.",
			wantKind:  rubric.Fail,
			reasoning: "no process documentation",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := detector.Evaluate(ticket.Ticket{
				Number:           "INC0040002",
				ShortDescription: "MARSH - Sydney - AD - Password reset request",
				Subcategory:      "Password Reset",
				WorkNotes:        tc.workNotes,
			})
			assert.Equal(t, tc.wantKind, outcome.Kind)
			if tc.reasoning != "" {
				assert.Contains(t, outcome.Reasoning, tc.reasoning)
			}
		})
	}
}

func TestVIPPriorityCheck(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	base := ticket.Ticket{
		Number:      "INC0040003",
		Description: "VIP user unable to access email.",
		WorkNotes:   "Resolved via remote session.",
	}

	t.Run("priority 1 passes", func(t *testing.T) {
		tk := base
		tk.Priority = "1"
		outcome := detector.Evaluate(tk)
		assert.Equal(t, rubric.Pass, outcome.Kind)
	})

	t.Run("low priority deducts", func(t *testing.T) {
		tk := base
		tk.Priority = "4"
		outcome := detector.Evaluate(tk)
		require.Equal(t, rubric.Deduction, outcome.Kind)
		assert.Equal(t, -35, outcome.Points)
		assert.Contains(t, outcome.Reasoning, "priority 4")
	})
}

func TestLostStolenEscalation(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	t.Run("escalation documented passes", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040004",
			Description: "Colleague reported a stolen laptop on the train.",
			WorkNotes:   "Escalated to the security team, remote wipe initiated, account disabled.",
		})
		assert.Equal(t, rubric.Pass, outcome.Kind)
	})

	t.Run("no escalation deducts", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040005",
			Description: "Colleague reported a stolen laptop on the train.",
			WorkNotes:   "Ordered a replacement.",
		})
		require.Equal(t, rubric.Deduction, outcome.Kind)
		assert.Equal(t, -35, outcome.Points)
	})
}

func TestVirusSecurityResponse(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	t.Run("security action documented passes", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040006",
			Description: "Malware alert raised for workstation.",
			WorkNotes:   "Machine isolated from the network and a full scan completed.",
		})
		assert.Equal(t, rubric.Pass, outcome.Kind)
	})

	t.Run("no response deducts", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040007",
			Description: "Malware alert raised for workstation.",
			WorkNotes:   "User advised to restart.",
		})
		assert.Equal(t, rubric.Deduction, outcome.Kind)
	})
}

func TestAccountLockoutDocumentation(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	t.Run("detailed close notes pass", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040008",
			Subcategory: "Account Lockout",
			CloseNotes:  "Account unlocked after verifying identity, cause was expired credentials.",
		})
		assert.Equal(t, rubric.Pass, outcome.Kind)
	})

	t.Run("minimal close notes deduct", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040009",
			Subcategory: "Account Lockout",
			CloseNotes:  "Unlocked.",
		})
		assert.Equal(t, rubric.Deduction, outcome.Kind)
	})
}

func TestMultipleProcesses(t *testing.T) {
	detector := rules.NewCriticalProcessDetector()

	t.Run("any fail short-circuits", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040010",
			Description: "VIP executive needs a password reset.",
			Priority:    "1",
			WorkNotes:   "New password sent to the user directly.",
		})
		assert.Equal(t, rubric.Fail, outcome.Kind)
	})

	t.Run("all compliant names every process", func(t *testing.T) {
		outcome := detector.Evaluate(ticket.Ticket{
			Number:      "INC0040011",
			Description: "VIP colleague locked out of account.",
			Priority:    "2",
			Subcategory: "Account Lockout",
			CloseNotes:  "Verified identity with manager and unlocked the account per policy.",
		})
		require.Equal(t, rubric.Pass, outcome.Kind)
		assert.Contains(t, outcome.Evidence, "VIP/Executive Support")
		assert.Contains(t, outcome.Evidence, "Account Lockout")
	})
}
