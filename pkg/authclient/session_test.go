package authclient

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := t.stopped
	t.stopped = true
	return !was
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs the most recently armed timer, as the real one would.
func (c *fakeClock) fire(t *testing.T) {
	t.Helper()
	c.mu.Lock()
	require.NotEmpty(t, c.timers)
	last := c.timers[len(c.timers)-1]
	c.mu.Unlock()
	require.False(t, last.stopped)
	last.fn()
}

func (c *fakeClock) lastDelay(t *testing.T) time.Duration {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.timers)
	return c.timers[len(c.timers)-1].delay
}

func TestSetTokens_SchedulesBeforeExpiry(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	s.SetTokens("acc", "ref", 900)

	assert.Equal(t, 13*time.Minute, clock.lastDelay(t))
	assert.True(t, s.IsAuthenticated())

	access, ok := s.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "acc", access)
}

func TestScheduleRefresh_DefaultWhenExpiryUnknown(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	s.SetTokens("acc", "ref", 0)

	assert.Equal(t, defaultLifetime-refreshBeforeExpiry, clock.lastDelay(t))
}

func TestScheduleRefresh_PastDeadlineFiresImmediately(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	s.SetTokens("acc", "ref", 30)

	assert.Equal(t, time.Duration(0), clock.lastDelay(t))
}

func TestScheduleRefresh_ReArmStopsPreviousTimer(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	s.SetTokens("acc", "ref", 900)
	s.ScheduleRefresh()

	require.Len(t, clock.timers, 2)
	assert.True(t, clock.timers[0].stopped)
	assert.False(t, clock.timers[1].stopped)
}

func TestFireRefresh_RotatesAndReschedules(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	var gotRefresh string
	s.refresh = func(refreshToken string) (string, string, int, error) {
		gotRefresh = refreshToken
		return "acc2", "ref2", 900, nil
	}

	s.SetTokens("acc", "ref", 900)
	clock.fire(t)

	assert.Equal(t, "ref", gotRefresh)
	access, _ := s.AccessToken()
	refresh, _ := s.RefreshToken()
	assert.Equal(t, "acc2", access)
	assert.Equal(t, "ref2", refresh)
	// Rotation armed a fresh timer.
	assert.Len(t, clock.timers, 2)
}

func TestFireRefresh_FailurePurgesAndNotifies(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	expired := false
	s.onExpired = func() { expired = true }
	s.refresh = func(string) (string, string, int, error) {
		return "", "", 0, errors.New("boom")
	}

	s.SetTokens("acc", "ref", 900)
	clock.fire(t)

	assert.True(t, expired)
	assert.False(t, s.IsAuthenticated())
	_, ok := s.AccessToken()
	assert.False(t, ok)
}

func TestFireRefresh_NoopAfterClear(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	called := false
	s.refresh = func(string) (string, string, int, error) {
		called = true
		return "acc2", "ref2", 900, nil
	}

	s.SetTokens("acc", "ref", 900)
	timer := clock.timers[0]
	s.Clear()

	// A fire that slipped past Stop must not resurrect the session.
	timer.fn()
	assert.False(t, called)
	assert.False(t, s.IsAuthenticated())
}

func TestUpdateTokens_RefusedWithoutSession(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionManager(NewMemoryStorage(), clock)

	assert.False(t, s.UpdateTokens("acc", "ref", 900))
	assert.False(t, s.IsAuthenticated())

	s.SetTokens("acc", "ref", 900)
	s.Clear()

	assert.False(t, s.UpdateTokens("acc2", "ref2", 900))
	_, ok := s.AccessToken()
	assert.False(t, ok)
}
