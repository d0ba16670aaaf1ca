package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/chat/repository"
	"ai-chatbot-backend/internal/model"
	pkgLog "ai-chatbot-backend/pkg/log"
)

// Config bounds the in-memory store for long-running processes.
type Config struct {
	SystemPrompt string
	DefaultTurns int
	MaxSessions  int           // 0 = unbounded
	SessionTTL   time.Duration // 0 = never expire
}

// Store keeps sessions in memory behind a size- and idle-time-bounded LRU.
// Idle sessions are evicted; an evicted id simply re-seeds on next touch.
type Store struct {
	l            pkgLog.Logger
	systemPrompt string

	mu           sync.Mutex // guards sessions and defaultTurns
	sessions     *expirable.LRU[string, *session]
	defaultTurns int
}

var _ repository.SessionRepository = (*Store)(nil)

// New creates the in-memory session store.
func New(cfg Config, l pkgLog.Logger) *Store {
	if cfg.DefaultTurns < 1 {
		cfg.DefaultTurns = chat.DefaultMemoryTurns
	}

	s := &Store{
		l:            l,
		systemPrompt: cfg.SystemPrompt,
		defaultTurns: cfg.DefaultTurns,
	}

	onEvict := func(id string, _ *session) {
		s.l.Debugf(context.Background(), "session %q evicted", id)
	}
	s.sessions = expirable.NewLRU[string, *session](cfg.MaxSessions, onEvict, cfg.SessionTTL)

	return s
}

// session holds one conversation. turnCh is a one-slot semaphore serializing
// whole turns; mu guards the data for short reads and writes so snapshots do
// not block behind a live stream.
type session struct {
	turnCh chan struct{}

	mu    sync.RWMutex
	msgs  []model.Message
	turns int // per-session capacity override; 0 = inherit default
}

func (s *session) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneMessages(s.msgs)
}

func (s *session) Append(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *session) Replace(msgs []model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = model.CloneMessages(msgs)
}

// getOrCreate installs a fresh seeded session on first touch. The store mutex
// makes concurrent first-touches of the same id converge on one session.
func (st *Store) getOrCreate(id string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if sess, ok := st.sessions.Get(id); ok {
		return sess
	}

	sess := &session{
		turnCh: make(chan struct{}, 1),
		msgs:   []model.Message{model.SystemMessage(st.systemPrompt)},
	}
	st.sessions.Add(id, sess)
	return sess
}

func (st *Store) Turn(ctx context.Context, id string, fn func(sess repository.Session) error) error {
	sess := st.getOrCreate(id)

	select {
	case sess.turnCh <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-sess.turnCh }()

	return fn(sess)
}

func (st *Store) Snapshot(id string) []model.Message {
	st.mu.Lock()
	sess, ok := st.sessions.Get(id)
	st.mu.Unlock()

	if !ok {
		return []model.Message{model.SystemMessage(st.systemPrompt)}
	}
	return sess.Messages()
}

func (st *Store) Clear(id string) {
	st.getOrCreate(id).Replace([]model.Message{model.SystemMessage(st.systemPrompt)})
}

func (st *Store) Replace(id string, msgs []model.Message) {
	st.getOrCreate(id).Replace(msgs)
}

func (st *Store) Capacity(id string) int {
	st.mu.Lock()
	defaultTurns := st.defaultTurns
	sess, ok := st.sessions.Get(id)
	st.mu.Unlock()

	if ok {
		sess.mu.RLock()
		turns := sess.turns
		sess.mu.RUnlock()
		if turns > 0 {
			return turns
		}
	}
	return defaultTurns
}

func (st *Store) SetCapacity(id string, turns int) {
	sess := st.getOrCreate(id)
	sess.mu.Lock()
	sess.turns = turns
	sess.mu.Unlock()
}

func (st *Store) SetDefaultCapacity(turns int) {
	st.mu.Lock()
	st.defaultTurns = turns
	st.mu.Unlock()
}
