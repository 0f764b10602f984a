package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	pingErr error
	pings   int
}

func (f *fakeStore) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeStore) Classify(err error) store.ErrorClassification {
	return store.Retryable
}

func (f *fakeStore) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeStore) pingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

func TestStoreHealthChecker_UnhealthyBeforeFirstCheck(t *testing.T) {
	c := NewStoreHealthChecker(&fakeStore{}, time.Minute, logger.Nop())
	assert.False(t, c.Healthy())
}

func TestStoreHealthChecker_Check_NotifiesOnTransitions(t *testing.T) {
	s := &fakeStore{}
	c := NewStoreHealthChecker(s, time.Minute, logger.Nop())

	var states []bool
	c.Subscribe(func(healthy bool) { states = append(states, healthy) })

	ctx := context.Background()

	assert.True(t, c.Check(ctx))
	assert.True(t, c.Check(ctx)) // unchanged, no notification

	s.setErr(errors.New("connection refused"))
	assert.False(t, c.Check(ctx))
	assert.False(t, c.Healthy())

	s.setErr(nil)
	assert.True(t, c.Check(ctx))

	assert.Equal(t, []bool{true, false, true}, states)
}

func TestStoreHealthChecker_FirstCheckUnhealthyIsReported(t *testing.T) {
	s := &fakeStore{pingErr: errors.New("down")}
	c := NewStoreHealthChecker(s, time.Minute, logger.Nop())

	var states []bool
	c.Subscribe(func(healthy bool) { states = append(states, healthy) })

	c.Check(context.Background())

	assert.Equal(t, []bool{false}, states)
}

func TestStoreHealthChecker_Run(t *testing.T) {
	s := &fakeStore{}
	c := NewStoreHealthChecker(s, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.pingCount() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, c.Healthy())

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
