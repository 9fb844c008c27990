package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/godilite/review-server/internal/repository"
	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/rules"
	"github.com/godilite/review-server/internal/ticket"
	dbbuilder "github.com/godilite/review-server/pkg/database"
)

// benchJudge scores every judge criterion at full points without leaving the
// process, so the benchmark measures the pipeline rather than the network.
type benchJudge struct{}

func (benchJudge) Evaluate(_ context.Context, _ ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome {
	var outcomes []rubric.CriterionOutcome
	for _, c := range r.JudgeCriteria() {
		outcomes = append(outcomes, rubric.NumericOutcome(
			c.ID, c.MaxPoints, c.MaxPoints, "evidence", "reasoning", ""))
	}
	return outcomes
}

func setupBenchService(tb testing.TB) *EvaluationService {
	tb.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		tb.Fatalf("failed to create db pool via builder: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	repo := repository.NewEvaluationRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		tb.Fatalf("failed to create schema: %v", err)
	}

	logger := zap.NewNop()
	engine := rules.NewEngine(rules.DefaultTaxonomy(), logger)
	return NewEvaluationService(engine, benchJudge{}, repo, logger)
}

func benchTicket() ticket.Ticket {
	return ticket.Ticket{
		Number:           "INC0070001",
		ShortDescription: "MARSH - Sydney - VDI - Unable to connect to virtual desktop",
		Description:      "Validated by: OKTA Push. User cannot reach the virtual desktop since this morning.",
		WorkNotes:        "Reset the session host assignment and confirmed access restored with the user.",
		CloseNotes:       "User confirmed the virtual desktop is reachable again.",
		Category:         "software",
		Subcategory:      "access",
		ContactType:      "phone",
		BusinessService:  "Virtual Desktop",
		ConfigItem:       "VDI-POOL-03",
		OpenedFor:        "Jane Doe",
	}
}

func BenchmarkEvaluateTicket(b *testing.B) {
	svc := setupBenchService(b)
	tk := benchTicket()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = svc.EvaluateTicket(context.Background(), tk, "")
	}
}
