package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/repository"
	"github.com/godilite/review-server/internal/repository/models"
)

// Error-path coverage over a mocked driver; the happy paths run against a
// real SQLite database in the integration test.

func newMockRepo(t *testing.T) (*repository.EvaluationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewEvaluationRepository(db), mock
}

func TestSaveEvaluationRollsBackOnOutcomeFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO evaluations").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO criterion_outcomes").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := repo.SaveEvaluation(context.Background(),
		models.EvaluationRecord{TicketNumber: "INC0050001"},
		[]models.OutcomeRecord{{CriterionID: "incident_notes", Kind: "numeric"}},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert outcome incident_notes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEvaluationBeginFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection closed"))

	_, err := repo.SaveEvaluation(context.Background(), models.EvaluationRecord{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin SaveEvaluation tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestEvaluationQueryFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM evaluations").
		WithArgs("INC0050002").
		WillReturnError(errors.New("database is locked"))

	_, _, err := repo.GetLatestEvaluation(context.Background(), "INC0050002")

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrEvaluationNotFound)
	assert.Contains(t, err.Error(), "query GetLatestEvaluation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestEvaluationOutcomeScanFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	evalColumns := []string{
		"id", "ticket_number", "rubric_id", "base_score", "deduction_total",
		"auto_fail", "auto_fail_reason", "final_score", "max_score",
		"percentage", "band", "passed", "strengths", "improvements",
		"evaluated_at", "evaluation_ms",
	}
	mock.ExpectQuery("FROM evaluations").
		WithArgs("INC0050003").
		WillReturnRows(sqlmock.NewRows(evalColumns).AddRow(
			int64(3), "INC0050003", "incident_review", 80, -5,
			false, "", 75, 88,
			85.2, "yellow", false, "", "",
			time.Now(), int64(1200),
		))
	mock.ExpectQuery("FROM criterion_outcomes").
		WithArgs(int64(3)).
		WillReturnError(errors.New("database is locked"))

	_, _, err := repo.GetLatestEvaluation(context.Background(), "INC0050003")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query outcomes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportingQueryFailures(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("band distribution", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("GROUP BY band").
			WillReturnError(errors.New("database is locked"))

		_, err := repo.GetBandDistribution(context.Background(), start, end)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query GetBandDistribution")
	})

	t.Run("pass rate", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM evaluations").
			WillReturnError(errors.New("database is locked"))

		_, err := repo.GetPassRate(context.Background(), start, end)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query GetPassRate")
	})

	t.Run("recurring improvements", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("JOIN evaluations").
			WillReturnError(errors.New("database is locked"))

		_, err := repo.GetRecurringImprovements(context.Background(), start, end, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query GetRecurringImprovements")
	})
}
