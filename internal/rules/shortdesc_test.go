package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godilite/review-server/internal/rules"
	"github.com/godilite/review-server/internal/ticket"
)

func TestShortDescriptionScoring(t *testing.T) {
	parser := rules.NewShortDescriptionParser(nil)

	cases := []struct {
		name      string
		shortDesc string
		lob       string
		want      int
	}{
		{
			name:      "all four parts valid",
			shortDesc: "MARSH - Sydney - VDI - Unable to connect to desktop",
			want:      8,
		},
		{
			name:      "compound line of business",
			shortDesc: "MMC - NCL - London - VDI",
			want:      8,
		},
		{
			name:      "unrecognized lob",
			shortDesc: "XYZ - Sydney - VDI - Cannot print",
			want:      6,
		},
		{
			name:      "lob matched from ticket line of business",
			shortDesc: "CARPENTER - Sydney - VDI - Cannot print",
			lob:       "Guy Carpenter",
			want:      8,
		},
		{
			name:      "lowercase location is accepted",
			shortDesc: "MARSH - xyz - VDI - printer broken",
			want:      8,
		},
		{
			name:      "bad lob and location",
			shortDesc: "XYZ - x - VDI - Cannot print",
			want:      4,
		},
		{
			name:      "free text with no structure",
			shortDesc: "Printer broken",
			want:      2,
		},
		{
			name:      "too short for anything",
			shortDesc: "xy",
			want:      0,
		},
		{
			name:      "empty",
			shortDesc: "",
			want:      0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := parser.Evaluate(ticket.Ticket{
				ShortDescription: tc.shortDesc,
				LineOfBusiness:   tc.lob,
			})
			assert.Equal(t, tc.want, outcome.Points, outcome.Reasoning)
			assert.Equal(t, rules.ShortDescriptionMaxPoints, outcome.MaxPoints)
		})
	}
}

func TestShortDescriptionCoaching(t *testing.T) {
	parser := rules.NewShortDescriptionParser(nil)

	outcome := parser.Evaluate(ticket.Ticket{ShortDescription: "Printer broken"})

	assert.Contains(t, outcome.Coaching, "[LoB] - [Location] - [App] - [Brief Description]")
	assert.Contains(t, outcome.Coaching, "LoB prefixes")
	assert.Contains(t, outcome.Coaching, "office/city location")
}
