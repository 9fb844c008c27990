package ticket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godilite/review-server/internal/ticket"
)

func TestFullText(t *testing.T) {
	tk := ticket.Ticket{
		ShortDescription: "MARSH - Sydney - VDI - Login Failure",
		Description:      "User CANNOT log in.",
		WorkNotes:        "Reset session.",
		CloseNotes:       "Resolved.",
		Subcategory:      "Access",
	}

	full := tk.FullText()

	assert.Contains(t, full, "marsh - sydney - vdi - login failure")
	assert.Contains(t, full, "user cannot log in.")
	assert.Contains(t, full, "access")
	assert.Equal(t, full, tk.FullText(), "stable across calls")
}

func TestNotesTextExcludesShortDescription(t *testing.T) {
	tk := ticket.Ticket{
		ShortDescription: "UNIQUE-MARKER",
		Description:      "Described the problem.",
		WorkNotes:        "Worked the problem.",
		CloseNotes:       "Closed the problem.",
	}

	notes := tk.NotesText()

	assert.NotContains(t, notes, "unique-marker")
	assert.Contains(t, notes, "described the problem.")
	assert.Contains(t, notes, "worked the problem.")
	assert.Contains(t, notes, "closed the problem.")
}
