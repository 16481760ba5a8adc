package unidrive

import (
	"context"
	"sync"

	"github.com/deotya/unidrive/data"
	"github.com/deotya/unidrive/log"
)

// Session holds one connection's navigation state: the current virtual
// directory and the native directory it resolves to. Both halves move
// together, only on a successful translation, so the pair stays consistent
// between commands. One instance per connection; never shared.
type Session struct {
	mu sync.Mutex

	id         string
	translator *Translator
	logger     *log.Logger
	closed     bool

	virtual data.VirtualPath
	native  data.NativePath
}

func newSession(id string, translator *Translator, logger *log.Logger) *Session {
	return &Session{
		id:         id,
		translator: translator,
		logger:     logger,

		virtual: data.Root(),
		native:  data.Sentinel,
	}
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// CurrentVirtual returns the current virtual directory, `/` for a fresh
// session. Its string form answers "print working directory" requests.
func (s *Session) CurrentVirtual() data.VirtualPath {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.virtual
}

// CurrentNative returns the current native directory, the sentinel for a
// fresh session.
func (s *Session) CurrentNative() data.NativePath {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.native
}

// Advance applies a navigation command. The incoming address resolves against
// the session's current native directory; the virtual half is recomputed
// through reverse translation rather than trusted from the caller. On any
// failure the state is left untouched and the error surfaces, so a
// half-applied move can never corrupt the session.
func (s *Session) Advance(ctx context.Context, incoming string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return data.ErrSessionClosed
	}

	native, err := s.translator.Resolve(ctx, incoming, s.native)
	if err != nil {
		s.logger.Debug("Advance %q rejected: %v", incoming, err)
		return err
	}

	virtual, err := s.translator.Unresolve(native)
	if err != nil {
		return err
	}

	s.native = native
	s.virtual = virtual

	s.logger.Debug("Advanced to %s (%s)", virtual, native)
	return nil
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}
