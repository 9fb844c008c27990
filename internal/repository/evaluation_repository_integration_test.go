package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/repository"
	"github.com/godilite/review-server/internal/repository/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewEvaluationRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	return db
}

func record(ticket string, final int, band string, passed bool, at time.Time) models.EvaluationRecord {
	return models.EvaluationRecord{
		TicketNumber: ticket,
		RubricID:     "incident_review",
		BaseScore:    final,
		FinalScore:   final,
		MaxScore:     88,
		Percentage:   float64(final) / 88 * 100,
		Band:         band,
		Passed:       passed,
		EvaluatedAt:  at,
		EvaluationMS: 1200,
	}
}

func TestEvaluationRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewEvaluationRepository(db)

	baseTime := time.Date(2026, 7, 3, 10, 0, 0, 0, time.UTC)

	outcomes := []models.OutcomeRecord{
		{CriterionID: "short_description_format", Kind: "numeric", Points: 6, MaxPoints: 8, Evidence: "NA - Berlin - Okta - login loop"},
		{CriterionID: "incident_notes", Kind: "numeric", Points: 10, MaxPoints: 20, Reasoning: "Sparse troubleshooting record"},
		{CriterionID: "validation_performed", Kind: "deduction", Points: -15, MaxPoints: 0, Coaching: "Capture two identity elements"},
	}

	id, err := repo.SaveEvaluation(ctx, record("INC0012001", 70, "yellow", false, baseTime), outcomes)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	_, err = repo.SaveEvaluation(ctx, record("INC0012002", 86, "blue", true, baseTime.Add(time.Hour)), nil)
	require.NoError(t, err)
	_, err = repo.SaveEvaluation(ctx, record("INC0012003", 81, "green", true, baseTime.Add(2*time.Hour)), nil)
	require.NoError(t, err)

	// Re-evaluation of the same ticket; the later row wins on lookup.
	_, err = repo.SaveEvaluation(ctx, record("INC0012001", 84, "green", true, baseTime.Add(26*time.Hour)), nil)
	require.NoError(t, err)

	start := baseTime.Add(-time.Hour)
	end := baseTime.Add(48 * time.Hour)

	t.Run("GetLatestEvaluation", func(t *testing.T) {
		rec, outs, err := repo.GetLatestEvaluation(ctx, "INC0012001")
		require.NoError(t, err)
		require.Equal(t, 84, rec.FinalScore)
		require.Equal(t, "green", rec.Band)
		require.Empty(t, outs, "latest evaluation was stored without outcomes")
	})

	t.Run("GetLatestEvaluation outcomes", func(t *testing.T) {
		first, outs, err := repo.GetLatestEvaluation(ctx, "INC0012002")
		require.NoError(t, err)
		require.Empty(t, outs)
		require.Equal(t, "INC0012002", first.TicketNumber)
	})

	t.Run("GetLatestEvaluation missing ticket", func(t *testing.T) {
		_, _, err := repo.GetLatestEvaluation(ctx, "INC9999999")
		require.ErrorIs(t, err, repository.ErrEvaluationNotFound)
	})

	t.Run("GetBandDistribution", func(t *testing.T) {
		counts, err := repo.GetBandDistribution(ctx, start, end)
		require.NoError(t, err)

		byBand := make(map[string]int64)
		for _, bc := range counts {
			byBand[bc.Band] = bc.Count
		}
		require.Equal(t, int64(2), byBand["green"])
		require.Equal(t, int64(1), byBand["blue"])
		require.Equal(t, int64(1), byBand["yellow"])
	})

	t.Run("GetPassRate", func(t *testing.T) {
		result, err := repo.GetPassRate(ctx, start, end)
		require.NoError(t, err)
		require.Equal(t, int64(4), result.Total)
		require.Equal(t, int64(3), result.Passed)
	})

	t.Run("GetRecurringImprovements", func(t *testing.T) {
		improvements, err := repo.GetRecurringImprovements(ctx, start, end, 5)
		require.NoError(t, err)

		ids := make(map[string]int64)
		for _, ic := range improvements {
			ids[ic.CriterionID] = ic.Count
		}
		require.Equal(t, int64(1), ids["incident_notes"], "10/20 is below the improvement threshold")
		require.Equal(t, int64(1), ids["validation_performed"])
		require.NotContains(t, ids, "short_description_format", "6/8 is above the improvement threshold")
	})
}
