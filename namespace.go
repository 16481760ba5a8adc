// Package unidrive exposes a single drive-letter-less hierarchical namespace
// over a host with multiple independent volume roots, so a remote
// file-transfer engine that only understands one `/`-rooted tree can browse
// and address every local volume.
//
// The package provides the address translation (virtual <-> native), the
// per-connection navigation state machine, and the listing virtualization
// that presents drive letters as top-level directories. The transfer protocol
// itself, authentication and the actual file I/O belong to the consuming
// engine.
package unidrive

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/btree"

	"github.com/deotya/unidrive/data"
	"github.com/deotya/unidrive/drives"
	"github.com/deotya/unidrive/log"
)

// Namespace ties the translator, the drive enumerator and the per-connection
// sessions together. One Namespace serves any number of concurrent
// connections; sessions never share mutable state with each other.
type Namespace struct {
	mu sync.RWMutex

	logger     *log.Logger
	drives     drives.Enumerator
	translator *Translator
	reader     DirectoryReader

	sessions *btree.Map[string, *Session]
}

func NewNamespace(opts ...NamespaceOption) (*Namespace, error) {
	options := newDefaultNamespaceOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := log.New("unidrive", options.LogLevel, options.LogFile, options.NoTerminalLog)

	enumerator := options.Enumerator
	if enumerator == nil {
		enumerator = drives.System()
	}

	reader := options.Reader
	if reader == nil {
		reader = osReader{}
	}

	return &Namespace{
		logger:     logger,
		drives:     enumerator,
		translator: NewTranslator(enumerator, logger),
		reader:     reader,
		sessions:   btree.NewMap[string, *Session](0),
	}, nil
}

// OpenSession creates the navigation state for a new connection, rooted at
// the virtual top.
func (ns *Namespace) OpenSession() *Session {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	id := uuid.Must(uuid.NewV7()).String()
	session := newSession(id, ns.translator, ns.logger.Named("session"))
	ns.sessions.Set(id, session)

	ns.logger.Info("Session %s opened", id)
	return session
}

// CloseSession destroys a connection's navigation state. Nothing persists
// across connections.
func (ns *Namespace) CloseSession(id string) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	session, exists := ns.sessions.Get(id)
	if !exists {
		return fmt.Errorf("%w: session %s", data.ErrNotExist, id)
	}

	session.close()
	ns.sessions.Delete(id)

	ns.logger.Info("Session %s closed", id)
	return nil
}

// Session looks up an open session by identifier.
func (ns *Namespace) Session(id string) (*Session, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	return ns.sessions.Get(id)
}

// Sessions returns every open session, ordered by identifier.
func (ns *Namespace) Sessions() []*Session {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	sessions := make([]*Session, 0, ns.sessions.Len())
	ns.sessions.Scan(func(_ string, session *Session) bool {
		sessions = append(sessions, session)
		return true
	})

	return sessions
}

// Resolve is the forward translation: incoming address plus current native
// directory to native path. Invoked for every navigation and file-addressing
// command.
func (ns *Namespace) Resolve(ctx context.Context, incoming string, current data.NativePath) (data.NativePath, error) {
	return ns.translator.Resolve(ctx, incoming, current)
}

// ResolveConcrete resolves an address that must denote an addressable native
// location: upload targets, download sources, delete, rename, mkdir. The
// virtual root is a placeholder, not a directory, so it is rejected here.
func (ns *Namespace) ResolveConcrete(ctx context.Context, incoming string, current data.NativePath) (data.NativePath, error) {
	native, err := ns.translator.Resolve(ctx, incoming, current)
	if err != nil {
		return "", err
	}

	if native.IsSentinel() {
		return "", fmt.Errorf("%w: %q", data.ErrRootVirtual, incoming)
	}

	return native, nil
}

// Unresolve is the reverse translation, used when reporting locations back to
// the client or when virtualizing native listing results.
func (ns *Namespace) Unresolve(native data.NativePath) (data.VirtualPath, error) {
	return ns.translator.Unresolve(native)
}
