//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/godilite/review-server/api/v1"
	handler "github.com/godilite/review-server/internal/grpc"
	"github.com/godilite/review-server/internal/judge"
	"github.com/godilite/review-server/internal/repository"
	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/rules"
	"github.com/godilite/review-server/internal/service"
	"github.com/godilite/review-server/internal/ticket"
	"github.com/godilite/review-server/tests/e2e/mocks"
)

// stubJudge replaces the external language model with deterministic scores:
// every judge criterion is awarded fraction*max points, with per-ticket
// fractions configurable. The rule evaluators run for real.
type stubJudge struct {
	fractions map[string]float64
}

func (s *stubJudge) Evaluate(_ context.Context, t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome {
	fraction, ok := s.fractions[t.Number]
	if !ok {
		fraction = 1.0
	}
	var outcomes []rubric.CriterionOutcome
	for _, c := range r.JudgeCriteria() {
		outcomes = append(outcomes, rubric.NumericOutcome(
			c.ID,
			int(float64(c.MaxPoints)*fraction),
			c.MaxPoints,
			"stub evidence",
			"stub reasoning",
			"",
		))
	}
	return outcomes
}

type stubUsage struct{}

func (stubUsage) Usage() judge.UsageSnapshot {
	return judge.UsageSnapshot{PromptTokens: 1000, CompletionTokens: 200, TotalTokens: 1200, RequestCount: 4}
}

func (stubUsage) ResetUsage() judge.UsageSnapshot {
	return judge.UsageSnapshot{}
}

type testEnv struct {
	handler *handler.GRPCHandlers
	db      *sql.DB
}

func setup(t *testing.T, cache handler.Cacher, judgeFractions map[string]float64) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewEvaluationRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	logger := zap.NewNop()
	engine := rules.NewEngine(rules.DefaultTaxonomy(), logger)

	svc := service.NewEvaluationService(engine, &stubJudge{fractions: judgeFractions}, repo, logger,
		service.WithUsageReporter(stubUsage{}))

	return &testEnv{
		handler: handler.NewGRPCHandlers(svc, cache, logger, 5*time.Minute),
		db:      db,
	}
}

// goodTicket passes every rule evaluator; with a full-score judge it lands
// at 88/88.
func goodTicket(number string) *pb.Ticket {
	return &pb.Ticket{
		Number:           number,
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

// weakTicket mentions validation without documenting the method, which
// deducts points instead of failing.
func weakTicket(number string) *pb.Ticket {
	tk := goodTicket(number)
	tk.Description = "Verified the caller before assisting. User cannot reach the virtual desktop."
	return tk
}

// undocumentedTicket has a phone contact with no caller validation at all,
// which is an automatic fail.
func undocumentedTicket(number string) *pb.Ticket {
	return &pb.Ticket{
		Number:           number,
		ShortDescription: "MARSH - Sydney - LAN - Cannot log in",
		Description:      "User cannot log in to the network.",
		WorkNotes:        "Rebooted the machine.",
		Category:         "network",
		Subcategory:      "connectivity",
		ContactType:      "phone",
		BusinessService:  "Corporate Network",
		ConfigItem:       "LAN-SYD-01",
	}
}

func TestE2E_EvaluateTicketAndFetch(t *testing.T) {
	env := setup(t, &mocks.InMemoryCache{}, nil)
	ctx := context.Background()

	resp, err := env.handler.EvaluateTicket(ctx, &pb.EvaluateTicketRequest{
		Ticket: goodTicket("INC0060001"),
	})
	require.NoError(t, err)

	assert.Equal(t, "INC0060001", resp.TicketNumber)
	assert.Equal(t, "incident_review", resp.RubricId)
	assert.Equal(t, int32(88), resp.FinalScore)
	assert.Equal(t, int32(88), resp.MaxScore)
	assert.InDelta(t, 100.0, resp.Percentage, 0.01)
	assert.Equal(t, "blue", resp.Band)
	assert.True(t, resp.Passed)
	assert.False(t, resp.AutoFail)
	assert.Len(t, resp.Outcomes, 10)

	// The evaluation must be readable back through the persistence path.
	fetched, err := env.handler.GetEvaluation(ctx, &pb.GetEvaluationRequest{
		TicketNumber: "INC0060001",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.FinalScore, fetched.FinalScore)
	assert.Equal(t, resp.Band, fetched.Band)
	assert.Len(t, fetched.Outcomes, 10)
}

func TestE2E_AutoFailPersists(t *testing.T) {
	env := setup(t, &mocks.InMemoryCache{}, nil)
	ctx := context.Background()

	resp, err := env.handler.EvaluateTicket(ctx, &pb.EvaluateTicketRequest{
		Ticket: undocumentedTicket("INC0060002"),
	})
	require.NoError(t, err)

	assert.True(t, resp.AutoFail)
	assert.NotEmpty(t, resp.AutoFailReason)
	assert.Zero(t, resp.FinalScore)
	assert.Equal(t, "purple", resp.Band)
	assert.False(t, resp.Passed)

	fetched, err := env.handler.GetEvaluation(ctx, &pb.GetEvaluationRequest{
		TicketNumber: "INC0060002",
	})
	require.NoError(t, err)
	assert.True(t, fetched.AutoFail)
	assert.Equal(t, resp.AutoFailReason, fetched.AutoFailReason)
}

func TestE2E_EvaluateBatch(t *testing.T) {
	env := setup(t, &mocks.InMemoryCache{}, map[string]float64{
		"INC0060012": 0.5,
	})
	ctx := context.Background()

	resp, err := env.handler.EvaluateBatch(ctx, &pb.EvaluateBatchRequest{
		Tickets: []*pb.Ticket{
			goodTicket("INC0060011"),
			goodTicket("INC0060012"),
			undocumentedTicket("INC0060013"),
		},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 3)
	assert.Empty(t, resp.Errors)

	require.NotNil(t, resp.Summary)
	assert.Equal(t, int32(3), resp.Summary.TotalTickets)
	assert.Equal(t, int32(1), resp.Summary.PassedCount)
	assert.Equal(t, int32(2), resp.Summary.FailedCount)
	assert.Equal(t, int64(1), resp.Summary.BandDistribution["blue"])
	assert.Equal(t, int64(1), resp.Summary.BandDistribution["purple"])
}

func TestE2E_ReportingQueries(t *testing.T) {
	env := setup(t, &mocks.InMemoryCache{}, map[string]float64{
		"INC0060022": 0.5,
	})
	ctx := context.Background()

	for _, tk := range []*pb.Ticket{
		goodTicket("INC0060021"),
		weakTicket("INC0060022"),
		undocumentedTicket("INC0060023"),
	} {
		_, err := env.handler.EvaluateTicket(ctx, &pb.EvaluateTicketRequest{Ticket: tk})
		require.NoError(t, err)
	}

	period := &pb.TimePeriodRequest{
		StartDate: timestamppb.New(time.Now().Add(-time.Hour)),
		EndDate:   timestamppb.New(time.Now().Add(time.Hour)),
	}

	t.Run("pass rate", func(t *testing.T) {
		resp, err := env.handler.GetPassRate(ctx, period)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
		assert.Equal(t, int64(1), resp.Passed)
		assert.InDelta(t, 33.3, resp.PassRate, 0.1)
	})

	t.Run("band distribution", func(t *testing.T) {
		resp, err := env.handler.GetBandDistribution(ctx, period)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.BandCounts["blue"])
		assert.Equal(t, int64(1), resp.BandCounts["purple"])
	})

	t.Run("improvement areas", func(t *testing.T) {
		resp, err := env.handler.GetImprovementAreas(ctx, &pb.ImprovementAreasRequest{
			StartDate: period.StartDate,
			EndDate:   period.EndDate,
			Limit:     5,
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Areas)

		// Caller validation recurs: deducted on the half-score ticket and
		// failed on the undocumented one.
		assert.Equal(t, "validation_performed", resp.Areas[0].CriterionId)
		assert.Equal(t, int64(2), resp.Areas[0].Count)
	})
}

func TestE2E_ReportCaching(t *testing.T) {
	cache := mocks.NewTrackingCache()
	env := setup(t, cache, nil)
	ctx := context.Background()

	_, err := env.handler.EvaluateTicket(ctx, &pb.EvaluateTicketRequest{
		Ticket: goodTicket("INC0060031"),
	})
	require.NoError(t, err)

	period := &pb.TimePeriodRequest{
		StartDate: timestamppb.New(time.Now().Add(-time.Hour)),
		EndDate:   timestamppb.New(time.Now().Add(time.Hour)),
	}

	first, err := env.handler.GetPassRate(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.GetCalls())

	// Population happens off the request path.
	require.Eventually(t, func() bool {
		return cache.SetCalls() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	second, err := env.handler.GetPassRate(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.GetCalls())
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Passed, second.Passed)
}

func TestE2E_JudgeUsage(t *testing.T) {
	env := setup(t, &mocks.InMemoryCache{}, nil)

	resp, err := env.handler.GetJudgeUsage(context.Background(), &pb.JudgeUsageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1200), resp.TotalTokens)
	assert.Equal(t, int64(4), resp.RequestCount)
	assert.Greater(t, resp.EstimatedCost, 0.0)
}

func TestE2E_ErrorScenarios(t *testing.T) {
	env := setup(t, &mocks.InMemoryCache{}, nil)
	ctx := context.Background()

	t.Run("unknown ticket is not found", func(t *testing.T) {
		_, err := env.handler.GetEvaluation(ctx, &pb.GetEvaluationRequest{
			TicketNumber: "INC9999999",
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("no evaluations in window", func(t *testing.T) {
		_, err := env.handler.GetPassRate(ctx, &pb.TimePeriodRequest{
			StartDate: timestamppb.New(time.Now().Add(-2 * time.Hour)),
			EndDate:   timestamppb.New(time.Now().Add(-time.Hour)),
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := env.handler.GetPassRate(ctx, &pb.TimePeriodRequest{
			StartDate: timestamppb.New(time.Now()),
			EndDate:   timestamppb.New(time.Now().Add(-time.Hour)),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := env.handler.EvaluateBatch(ctx, &pb.EvaluateBatchRequest{})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown rubric", func(t *testing.T) {
		_, err := env.handler.EvaluateTicket(ctx, &pb.EvaluateTicketRequest{
			Ticket:   goodTicket("INC0060041"),
			RubricId: "nonexistent",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
