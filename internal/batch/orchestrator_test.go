package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/batch"
	"github.com/godilite/review-server/internal/scoring"
	"github.com/godilite/review-server/internal/ticket"
)

func makeTickets(n int) []ticket.Ticket {
	tickets := make([]ticket.Ticket, n)
	for i := range tickets {
		tickets[i] = ticket.Ticket{Number: fmt.Sprintf("INC%07d", i+1)}
	}
	return tickets
}

func passingEvaluate(_ context.Context, t ticket.Ticket) (scoring.EvaluationResult, error) {
	return scoring.EvaluationResult{
		TicketNumber: t.Number,
		FinalScore:   80,
		MaxScore:     88,
		Percentage:   90.9,
		Band:         scoring.BandGreen,
		Passed:       true,
	}, nil
}

func TestRunSequentialPreservesOrder(t *testing.T) {
	tickets := makeTickets(5)
	orchestrator := batch.NewOrchestrator(passingEvaluate)

	res := orchestrator.Run(context.Background(), tickets)

	require.Len(t, res.Results, 5)
	assert.Empty(t, res.Errors)
	for i, r := range res.Results {
		assert.Equal(t, tickets[i].Number, r.TicketNumber)
	}
	assert.Equal(t, 5, res.Summary.TotalTickets)
	assert.Equal(t, 5, res.Summary.PassedCount)
}

func TestRunConcurrentAccountsForEveryTicket(t *testing.T) {
	tickets := makeTickets(50)
	var inFlight, maxInFlight int32

	evaluate := func(ctx context.Context, tk ticket.Ticket) (scoring.EvaluationResult, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			prev := atomic.LoadInt32(&maxInFlight)
			if n <= prev || atomic.CompareAndSwapInt32(&maxInFlight, prev, n) {
				break
			}
		}
		defer atomic.AddInt32(&inFlight, -1)

		// Tickets whose number ends in 0, 3, 6 or 9 fail.
		if tk.Number[len(tk.Number)-1]%3 == 0 {
			return scoring.EvaluationResult{}, errors.New("pipeline failure")
		}
		return passingEvaluate(ctx, tk)
	}

	orchestrator := batch.NewOrchestrator(evaluate, batch.WithConcurrency(4))
	res := orchestrator.Run(context.Background(), tickets)

	assert.Equal(t, len(tickets), len(res.Results)+len(res.Errors))
	assert.NotEmpty(t, res.Errors)
	assert.LessOrEqual(t, maxInFlight, int32(4))

	seen := make(map[string]bool, len(tickets))
	for _, r := range res.Results {
		seen[r.TicketNumber] = true
	}
	for _, e := range res.Errors {
		assert.False(t, seen[e.TicketNumber], "ticket in both results and errors")
		seen[e.TicketNumber] = true
	}
	assert.Len(t, seen, len(tickets))
}

func TestRunIsolatesPanics(t *testing.T) {
	evaluate := func(ctx context.Context, tk ticket.Ticket) (scoring.EvaluationResult, error) {
		if tk.Number == "INC0000002" {
			panic("index out of range")
		}
		return passingEvaluate(ctx, tk)
	}

	orchestrator := batch.NewOrchestrator(evaluate)
	res := orchestrator.Run(context.Background(), makeTickets(3))

	require.Len(t, res.Results, 2)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "INC0000002", res.Errors[0].TicketNumber)
	assert.Contains(t, res.Errors[0].Message, "panicked")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orchestrator := batch.NewOrchestrator(passingEvaluate)
	res := orchestrator.Run(ctx, makeTickets(3))

	assert.Empty(t, res.Results)
	require.Len(t, res.Errors, 3)
	for _, e := range res.Errors {
		assert.Contains(t, e.Message, context.Canceled.Error())
	}
}

func TestRunProgressReporting(t *testing.T) {
	var snapshots []batch.ProgressSnapshot
	orchestrator := batch.NewOrchestrator(passingEvaluate,
		batch.WithProgress(func(s batch.ProgressSnapshot) {
			snapshots = append(snapshots, s)
		}))

	tickets := makeTickets(4)
	orchestrator.Run(context.Background(), tickets)

	// One snapshot before each ticket starts and one after it completes.
	require.Len(t, snapshots, 8)
	for i, tk := range tickets {
		before := snapshots[2*i]
		assert.Equal(t, 4, before.Total)
		assert.Equal(t, i, before.Completed)
		assert.Equal(t, tk.Number, before.CurrentTicket)

		after := snapshots[2*i+1]
		assert.Equal(t, i+1, after.Completed)
		assert.True(t, after.HasETA)
		assert.Zero(t, after.ErrorCount)
	}
	first := snapshots[0]
	assert.Zero(t, first.Completed)
	assert.False(t, first.HasETA)
	last := snapshots[len(snapshots)-1]
	assert.Equal(t, last.Total, last.Completed)
	assert.Zero(t, last.ETA)
}

func TestRunEmptyBatch(t *testing.T) {
	orchestrator := batch.NewOrchestrator(passingEvaluate, batch.WithConcurrency(8))
	res := orchestrator.Run(context.Background(), nil)

	assert.Empty(t, res.Results)
	assert.Empty(t, res.Errors)
	assert.Zero(t, res.Summary.TotalTickets)
}
