package authclient

import (
	"strconv"
	"sync"
	"time"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyTokenExpiry  = "token_expiry"

	// Refresh this long before the access token expires.
	refreshBeforeExpiry = 2 * time.Minute
	// Assumed access-token lifetime when the server did not report one.
	defaultLifetime = 15 * time.Minute
)

// Storage persists session credentials. MemoryStorage is the default;
// callers embedding the client elsewhere can supply their own.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

type MemoryStorage struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{m: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Timer is the stoppable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so the refresh schedule is testable.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// SessionManager keeps the token pair and re-arms a single timer that
// refreshes the session shortly before the access token expires.
type SessionManager struct {
	mu      sync.Mutex
	storage Storage
	clock   Clock
	timer   Timer

	refresh   func(refreshToken string) (access, newRefresh string, expiresIn int, err error)
	onExpired func()
}

func NewSessionManager(storage Storage, clock Clock) *SessionManager {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	if clock == nil {
		clock = realClock{}
	}
	return &SessionManager{storage: storage, clock: clock}
}

// SetTokens installs a fresh session and arms the refresh timer.
func (s *SessionManager) SetTokens(access, refresh string, expiresIn int) {
	s.mu.Lock()
	s.storage.Set(keyAccessToken, access)
	s.storage.Set(keyRefreshToken, refresh)
	s.setExpiryLocked(expiresIn)
	s.mu.Unlock()

	s.ScheduleRefresh()
}

// UpdateTokens rotates an existing session. It refuses to write when no
// refresh token is stored, so a rotation racing a logout cannot
// repopulate cleared credentials.
func (s *SessionManager) UpdateTokens(access, refresh string, expiresIn int) bool {
	s.mu.Lock()
	if _, ok := s.storage.Get(keyRefreshToken); !ok {
		s.mu.Unlock()
		return false
	}
	s.storage.Set(keyAccessToken, access)
	if refresh != "" {
		s.storage.Set(keyRefreshToken, refresh)
	}
	s.setExpiryLocked(expiresIn)
	s.mu.Unlock()

	s.ScheduleRefresh()
	return true
}

func (s *SessionManager) setExpiryLocked(expiresIn int) {
	if expiresIn <= 0 {
		s.storage.Delete(keyTokenExpiry)
		return
	}
	exp := s.clock.Now().Add(time.Duration(expiresIn) * time.Second)
	s.storage.Set(keyTokenExpiry, strconv.FormatInt(exp.Unix(), 10))
}

// ScheduleRefresh arms the timer for expiry minus the refresh margin,
// replacing any previous schedule. An unknown expiry falls back to the
// default lifetime; an already-due deadline fires immediately.
func (s *SessionManager) ScheduleRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	delay := defaultLifetime - refreshBeforeExpiry
	if raw, ok := s.storage.Get(keyTokenExpiry); ok {
		if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
			delay = time.Unix(unix, 0).Sub(s.clock.Now()) - refreshBeforeExpiry
		}
	}
	if delay < 0 {
		delay = 0
	}
	s.timer = s.clock.AfterFunc(delay, s.fireRefresh)
}

func (s *SessionManager) fireRefresh() {
	// The session may have been cleared between scheduling and firing.
	refresh, ok := s.RefreshToken()
	if !ok || s.refresh == nil {
		return
	}

	access, newRefresh, expiresIn, err := s.refresh(refresh)
	if err != nil {
		s.Clear()
		if s.onExpired != nil {
			s.onExpired()
		}
		return
	}
	s.UpdateTokens(access, newRefresh, expiresIn)
}

// Clear drops the session and cancels any pending refresh.
func (s *SessionManager) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.storage.Delete(keyAccessToken)
	s.storage.Delete(keyRefreshToken)
	s.storage.Delete(keyTokenExpiry)
}

func (s *SessionManager) IsAuthenticated() bool {
	_, ok := s.storage.Get(keyRefreshToken)
	return ok
}

func (s *SessionManager) AccessToken() (string, bool) {
	return s.storage.Get(keyAccessToken)
}

func (s *SessionManager) RefreshToken() (string, bool) {
	return s.storage.Get(keyRefreshToken)
}
