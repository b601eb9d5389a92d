package warmup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastyhub/dashboard-manager/internal/period"
)

type recorder struct {
	mu    sync.Mutex
	calls []period.Token
	err   error
}

func (r *recorder) Refresh(ctx context.Context, tok period.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, tok)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestNewNormalizesPeriods(t *testing.T) {
	w := New(&Config{WorkerInterval: time.Second, Periods: []string{"DAY", "bogus", "month", "week"}}, &recorder{})
	assert.Equal(t, []period.Token{period.Day, period.Month, period.Week}, w.periods)

	w = New(nil, &recorder{})
	assert.Equal(t, []period.Token{period.Day, period.Week, period.Month}, w.periods)
	assert.True(t, w.Enabled())
}

func TestWorkerRefreshes(t *testing.T) {
	r := &recorder{}
	w := New(&Config{WorkerInterval: 10 * time.Millisecond, Periods: []string{"day", "year"}}, r)

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))

	assert.Eventually(t, func() bool { return r.count() >= 4 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, period.Day, r.calls[0])
	assert.Equal(t, period.Year, r.calls[1])
}

func TestWorkerKeepsGoingOnError(t *testing.T) {
	r := &recorder{err: errors.New("redis down")}
	w := New(&Config{WorkerInterval: 10 * time.Millisecond, Periods: []string{"day"}}, r)

	require.NoError(t, w.Start(context.Background()))
	assert.Eventually(t, func() bool { return r.count() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Stop())
}

func TestWorkerDisabled(t *testing.T) {
	r := &recorder{}
	w := New(&Config{}, r)
	assert.False(t, w.Enabled())
	require.NoError(t, w.Start(context.Background()))
	assert.Equal(t, 0, r.count())
	assert.Error(t, w.Stop())
}
