package ticket

import (
	"strings"
	"time"
)

// Ticket is a parsed service desk incident. It is produced by the ingestion
// layer and treated as immutable by the evaluation engine, so it is safe to
// share across concurrent evaluations.
type Ticket struct {
	// Identifiers
	Number string
	SysID  string

	// Timestamps
	OpenedAt   time.Time
	ResolvedAt time.Time
	ClosedAt   time.Time

	// Classification
	Category    string
	Subcategory string
	ContactType string
	Priority    string

	// Free text
	ShortDescription string
	Description      string
	WorkNotes        string
	CloseNotes       string

	// References
	BusinessService string
	ConfigItem      string
	OpenedFor       string

	// Line of business, resolved by the parser from the source system's flags.
	LineOfBusiness string
}

// FullText concatenates the free-text fields plus the subcategory, lowercased,
// for keyword and pattern scanning.
func (t Ticket) FullText() string {
	return strings.ToLower(strings.Join([]string{
		t.ShortDescription,
		t.Description,
		t.WorkNotes,
		t.CloseNotes,
		t.Subcategory,
	}, " "))
}

// NotesText concatenates description, work notes and close notes, lowercased.
// Compliance checks scan this narrower set so the short description cannot
// satisfy a documentation requirement on its own.
func (t Ticket) NotesText() string {
	return strings.ToLower(strings.Join([]string{
		t.Description,
		t.WorkNotes,
		t.CloseNotes,
	}, " "))
}
