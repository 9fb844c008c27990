package judge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/godilite/review-server/internal/judge"
)

func TestBackoffDelay(t *testing.T) {
	policy := judge.DefaultBackoff()

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{5, 32 * time.Second},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.Delay(tc.attempt), "attempt %d", tc.attempt)
	}
}

func TestBackoffEmptyDelays(t *testing.T) {
	policy := judge.BackoffPolicy{MaxAttempts: 2}
	assert.Equal(t, time.Duration(0), policy.Delay(0))
	assert.Equal(t, time.Duration(0), policy.Delay(7))
}
