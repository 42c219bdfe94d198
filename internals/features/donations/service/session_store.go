package service

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const DefaultSessionTTL = 30 * time.Minute

// SessionStore keeps open donation sessions in memory. Nothing is persisted.
type SessionStore struct {
	cfg SessionConfig
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessionStore(cfg SessionConfig, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		cfg:      cfg,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (st *SessionStore) Config() SessionConfig { return st.cfg }

func (st *SessionStore) Create() *Session {
	s := NewSession(uuid.New(), st.cfg)
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

// Get returns the session and marks it as recently used.
func (st *SessionStore) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.cfg.now())
	return s, nil
}

// Delete closes the session before forgetting it.
func (st *SessionStore) Delete(id uuid.UUID) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	return nil
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep closes and removes sessions unused for longer than the TTL.
func (st *SessionStore) Sweep(now time.Time) int {
	var expired []*Session
	st.mu.Lock()
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.ttl {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

/* ===================== Reaper ===================== */

const DefaultReaperSchedule = "@every 1m"

// StartSessionReaper schedules Sweep. The caller stops the returned cron on shutdown.
func StartSessionReaper(store *SessionStore, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultReaperSchedule
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		if n := store.Sweep(store.cfg.now()); n > 0 {
			log.Printf("[INFO] 🧹 reaped %d idle donation session(s), %d open", n, store.Len())
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[INFO] ⏱️ donation session reaper scheduled (%s, ttl=%s)", schedule, store.ttl)
	return c, nil
}
