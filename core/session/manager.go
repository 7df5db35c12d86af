package session

import (
	"errors"
	"sync"

	"save-editor/core/codec"
	"save-editor/core/savefile"

	"go.uber.org/zap"
)

// ErrNoSession is returned when an operation needs a loaded save and
// none is present.
var ErrNoSession = errors.New("no save loaded")

// Manager holds the single live session. Opening a new save replaces
// the previous session wholesale; there is no multi-document state.
//
// The engine itself is single-threaded and synchronous. The manager's
// mutex only serializes the HTTP surface onto that single working
// container, so a whole propagation chain is always applied before any
// reader observes the document.
type Manager struct {
	mu      sync.Mutex
	logger  *zap.Logger
	current *Session
}

// NewManager creates an empty session manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Open decodes raw save bytes and installs a new session. The gzip
// path is selected by the filename extension hint, never by sniffing.
func (m *Manager) Open(name string, raw []byte) (*Session, error) {
	container, enc, err := codec.Decode(raw, codec.GzipHint(name))
	if err != nil {
		return nil, err
	}
	return m.install(name, container, enc), nil
}

// OpenContainer installs a session over an already decoded container.
func (m *Manager) OpenContainer(name string, container *savefile.Container, enc codec.Encoding) *Session {
	return m.install(name, container, enc)
}

func (m *Manager) install(name string, container *savefile.Container, enc codec.Encoding) *Session {
	sess := newSession(name, container, enc)

	m.mu.Lock()
	replaced := m.current
	m.current = sess
	m.mu.Unlock()

	if replaced != nil {
		m.logger.Info("Replaced live session",
			zap.String("previous", replaced.Name()),
			zap.String("session_id", sess.ID().String()),
		)
	}
	m.logger.Info("Loaded save",
		zap.String("file", name),
		zap.String("encoding", string(enc)),
		zap.String("session_id", sess.ID().String()),
	)
	return sess
}

// With runs fn against the current session under the manager lock.
// Mutation services use it so every update is atomic relative to the
// working container.
func (m *Manager) With(fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ErrNoSession
	}
	return fn(m.current)
}

// Current returns the live session, or ErrNoSession.
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNoSession
	}
	return m.current, nil
}
