// Package batch runs ticket evaluations over a whole batch, sequentially or
// with bounded concurrency, isolating per-ticket failures so one bad ticket
// never aborts the run.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/godilite/review-server/internal/scoring"
	"github.com/godilite/review-server/internal/ticket"
)

// EvaluateFunc evaluates a single ticket end to end.
type EvaluateFunc func(ctx context.Context, t ticket.Ticket) (scoring.EvaluationResult, error)

// TicketError records a ticket whose evaluation failed.
type TicketError struct {
	TicketNumber string
	Message      string
}

// Result holds everything a batch run produced. Every input ticket lands in
// exactly one of Results or Errors.
type Result struct {
	Results []scoring.EvaluationResult
	Errors  []TicketError
	Summary scoring.BatchSummary
}

// Orchestrator fans a batch of tickets through an evaluation pipeline.
type Orchestrator struct {
	evaluate    EvaluateFunc
	concurrency int
	onProgress  ProgressFunc
	logger      *zap.Logger
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithConcurrency sets the number of tickets evaluated in parallel. Values
// below 2 select the sequential mode.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) { o.concurrency = n }
}

// WithProgress registers a progress callback. Sequential mode invokes it
// before each ticket starts and after it completes; concurrent mode invokes
// it on completions only.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Orchestrator) { o.onProgress = fn }
}

// WithLogger sets the orchestrator's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// NewOrchestrator builds an Orchestrator around an evaluation pipeline.
func NewOrchestrator(evaluate EvaluateFunc, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		evaluate:    evaluate,
		concurrency: 1,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run evaluates every ticket in the batch and returns the accumulated
// results, errors and summary. Results keep the input order in sequential
// mode; in concurrent mode only the summary is order-stable.
func (o *Orchestrator) Run(ctx context.Context, tickets []ticket.Ticket) Result {
	start := time.Now()
	if o.concurrency > 1 {
		return o.runConcurrent(ctx, tickets, start)
	}
	return o.runSequential(ctx, tickets, start)
}

func (o *Orchestrator) runSequential(ctx context.Context, tickets []ticket.Ticket, start time.Time) Result {
	var res Result
	for _, t := range tickets {
		// Announce the ticket before evaluating it so consumers can see
		// what is currently in flight.
		o.reportProgress(len(tickets), len(res.Results)+len(res.Errors), len(res.Errors), t.Number, start)

		result, err := o.evaluateOne(ctx, t)
		if err != nil {
			res.Errors = append(res.Errors, TicketError{TicketNumber: t.Number, Message: err.Error()})
			o.logger.Warn("ticket evaluation failed",
				zap.String("ticket", t.Number),
				zap.Error(err))
		} else {
			res.Results = append(res.Results, result)
		}
		o.reportProgress(len(tickets), len(res.Results)+len(res.Errors), len(res.Errors), t.Number, start)
	}
	res.Summary = scoring.Summarize(res.Results, time.Since(start))
	return res
}

func (o *Orchestrator) runConcurrent(ctx context.Context, tickets []ticket.Ticket, start time.Time) Result {
	var (
		mu  sync.Mutex
		res Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for _, t := range tickets {
		t := t
		g.Go(func() error {
			result, err := o.evaluateOne(gctx, t)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Errors = append(res.Errors, TicketError{TicketNumber: t.Number, Message: err.Error()})
				o.logger.Warn("ticket evaluation failed",
					zap.String("ticket", t.Number),
					zap.Error(err))
			} else {
				res.Results = append(res.Results, result)
			}
			o.reportProgress(len(tickets), len(res.Results)+len(res.Errors), len(res.Errors), t.Number, start)
			return nil
		})
	}
	_ = g.Wait()

	res.Summary = scoring.Summarize(res.Results, time.Since(start))
	return res
}

// evaluateOne wraps the pipeline call so a panic in one ticket's evaluation
// surfaces as that ticket's error instead of taking down the batch.
func (o *Orchestrator) evaluateOne(ctx context.Context, t ticket.Ticket) (result scoring.EvaluationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluation panicked: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return scoring.EvaluationResult{}, err
	}
	return o.evaluate(ctx, t)
}

func (o *Orchestrator) reportProgress(total, completed, errCount int, current string, start time.Time) {
	if o.onProgress == nil {
		return
	}
	o.onProgress(snapshot(total, completed, errCount, current, time.Since(start)))
}
