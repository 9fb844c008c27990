package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/review-server/internal/repository/models"
)

// ErrEvaluationNotFound is returned when no evaluation exists for a ticket.
var ErrEvaluationNotFound = errors.New("evaluation not found")

type EvaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// EnsureSchema creates the evaluation tables if they do not exist.
func (r *EvaluationRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS evaluations (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			ticket_number    TEXT    NOT NULL,
			rubric_id        TEXT    NOT NULL,
			base_score       INTEGER NOT NULL,
			deduction_total  INTEGER NOT NULL,
			auto_fail        INTEGER NOT NULL,
			auto_fail_reason TEXT    NOT NULL DEFAULT '',
			final_score      INTEGER NOT NULL,
			max_score        INTEGER NOT NULL,
			percentage       REAL    NOT NULL,
			band             TEXT    NOT NULL,
			passed           INTEGER NOT NULL,
			strengths        TEXT    NOT NULL DEFAULT '',
			improvements     TEXT    NOT NULL DEFAULT '',
			evaluated_at     TIMESTAMP NOT NULL,
			evaluation_ms    INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_evaluations_ticket ON evaluations (ticket_number);
		CREATE INDEX IF NOT EXISTS idx_evaluations_evaluated_at ON evaluations (evaluated_at);

		CREATE TABLE IF NOT EXISTS criterion_outcomes (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			evaluation_id INTEGER NOT NULL REFERENCES evaluations (id) ON DELETE CASCADE,
			criterion_id  TEXT    NOT NULL,
			kind          TEXT    NOT NULL,
			points        INTEGER NOT NULL,
			max_points    INTEGER NOT NULL,
			evidence      TEXT    NOT NULL DEFAULT '',
			reasoning     TEXT    NOT NULL DEFAULT '',
			coaching      TEXT    NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_evaluation ON criterion_outcomes (evaluation_id);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create evaluation schema: %w", err)
	}
	return nil
}

// SaveEvaluation inserts an evaluation and its outcomes in one transaction
// and returns the new evaluation id.
func (r *EvaluationRepository) SaveEvaluation(ctx context.Context, rec models.EvaluationRecord, outcomes []models.OutcomeRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin SaveEvaluation tx: %w", err)
	}
	defer tx.Rollback()

	const insertEvaluation = `
		INSERT INTO evaluations (
			ticket_number, rubric_id, base_score, deduction_total,
			auto_fail, auto_fail_reason, final_score, max_score,
			percentage, band, passed, strengths, improvements,
			evaluated_at, evaluation_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := tx.ExecContext(ctx, insertEvaluation,
		rec.TicketNumber, rec.RubricID, rec.BaseScore, rec.DeductionTotal,
		rec.AutoFail, rec.AutoFailReason, rec.FinalScore, rec.MaxScore,
		rec.Percentage, rec.Band, rec.Passed, rec.Strengths, rec.Improvements,
		rec.EvaluatedAt, rec.EvaluationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("insert evaluation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("evaluation id: %w", err)
	}

	const insertOutcome = `
		INSERT INTO criterion_outcomes (
			evaluation_id, criterion_id, kind, points, max_points,
			evidence, reasoning, coaching
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, o := range outcomes {
		if _, err := tx.ExecContext(ctx, insertOutcome,
			id, o.CriterionID, o.Kind, o.Points, o.MaxPoints,
			o.Evidence, o.Reasoning, o.Coaching,
		); err != nil {
			return 0, fmt.Errorf("insert outcome %s: %w", o.CriterionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit SaveEvaluation: %w", err)
	}
	return id, nil
}

// GetLatestEvaluation returns the most recent evaluation for a ticket with
// its outcomes.
func (r *EvaluationRepository) GetLatestEvaluation(ctx context.Context, ticketNumber string) (models.EvaluationRecord, []models.OutcomeRecord, error) {
	const query = `
		SELECT id, ticket_number, rubric_id, base_score, deduction_total,
		       auto_fail, auto_fail_reason, final_score, max_score,
		       percentage, band, passed, strengths, improvements,
		       evaluated_at, evaluation_ms
		FROM evaluations
		WHERE ticket_number = ?
		ORDER BY evaluated_at DESC, id DESC
		LIMIT 1
	`
	var rec models.EvaluationRecord
	err := r.db.QueryRowContext(ctx, query, ticketNumber).Scan(
		&rec.ID, &rec.TicketNumber, &rec.RubricID, &rec.BaseScore, &rec.DeductionTotal,
		&rec.AutoFail, &rec.AutoFailReason, &rec.FinalScore, &rec.MaxScore,
		&rec.Percentage, &rec.Band, &rec.Passed, &rec.Strengths, &rec.Improvements,
		&rec.EvaluatedAt, &rec.EvaluationMS,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EvaluationRecord{}, nil, ErrEvaluationNotFound
		}
		return models.EvaluationRecord{}, nil, fmt.Errorf("query GetLatestEvaluation: %w", err)
	}

	outcomes, err := r.outcomesFor(ctx, rec.ID)
	if err != nil {
		return models.EvaluationRecord{}, nil, err
	}
	return rec, outcomes, nil
}

func (r *EvaluationRepository) outcomesFor(ctx context.Context, evaluationID int64) ([]models.OutcomeRecord, error) {
	const query = `
		SELECT id, evaluation_id, criterion_id, kind, points, max_points,
		       evidence, reasoning, coaching
		FROM criterion_outcomes
		WHERE evaluation_id = ?
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []models.OutcomeRecord
	for rows.Next() {
		var o models.OutcomeRecord
		if err := rows.Scan(&o.ID, &o.EvaluationID, &o.CriterionID, &o.Kind,
			&o.Points, &o.MaxPoints, &o.Evidence, &o.Reasoning, &o.Coaching); err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return outcomes, nil
}

// GetBandDistribution counts evaluations per band over the window, computed
// entirely in SQL.
func (r *EvaluationRepository) GetBandDistribution(ctx context.Context, start, end time.Time) ([]models.BandCount, error) {
	const query = `
		SELECT band, COUNT(id) AS count
		FROM evaluations
		WHERE evaluated_at >= ? AND evaluated_at <= ?
		GROUP BY band
		ORDER BY band
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query GetBandDistribution: %w", err)
	}
	defer rows.Close()

	var results []models.BandCount
	for rows.Next() {
		var bc models.BandCount
		if err := rows.Scan(&bc.Band, &bc.Count); err != nil {
			return nil, fmt.Errorf("scan GetBandDistribution row: %w", err)
		}
		results = append(results, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetBandDistribution: %w", err)
	}
	return results, nil
}

// GetPassRate returns the pass/total tally over the window.
func (r *EvaluationRepository) GetPassRate(ctx context.Context, start, end time.Time) (models.PassRateResult, error) {
	const query = `
		SELECT
			COUNT(id) AS total,
			COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed
		FROM evaluations
		WHERE evaluated_at >= ? AND evaluated_at <= ?
	`
	var result models.PassRateResult
	err := r.db.QueryRowContext(ctx, query, start, end).Scan(&result.Total, &result.Passed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PassRateResult{}, nil
		}
		return models.PassRateResult{}, fmt.Errorf("query GetPassRate: %w", err)
	}
	return result, nil
}

// GetRecurringImprovements ranks criteria by how often they landed below the
// improvement threshold over the window.
func (r *EvaluationRepository) GetRecurringImprovements(ctx context.Context, start, end time.Time, limit int) ([]models.ImprovementCount, error) {
	const query = `
		SELECT co.criterion_id, COUNT(co.id) AS count
		FROM criterion_outcomes AS co
		JOIN evaluations AS e ON co.evaluation_id = e.id
		WHERE e.evaluated_at >= ? AND e.evaluated_at <= ?
		  AND (
			co.kind = 'fail'
			OR co.kind = 'deduction'
			OR (co.kind = 'numeric' AND co.max_points > 0
				AND CAST(co.points AS REAL) / co.max_points < 0.7)
		  )
		GROUP BY co.criterion_id
		ORDER BY count DESC, co.criterion_id
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("query GetRecurringImprovements: %w", err)
	}
	defer rows.Close()

	var results []models.ImprovementCount
	for rows.Next() {
		var ic models.ImprovementCount
		if err := rows.Scan(&ic.CriterionID, &ic.Count); err != nil {
			return nil, fmt.Errorf("scan GetRecurringImprovements row: %w", err)
		}
		results = append(results, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetRecurringImprovements: %w", err)
	}
	return results, nil
}
