package wowproto

import (
	"errors"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// A Server accepts login or world connections and runs Handler for each.
type Server struct {
	Addr    string
	Mode    ConnectionMode
	Handler SessionHandler
	// Sessions is shared by every connection of this server. When nil, Serve
	// creates one.
	Sessions *SessionStore

	TransportConfig TransportConfig
	Logger          *zerolog.Logger
}

type SessionHandler func(s *Session, t *Transport, store *SessionStore) error

type ConnectionMode byte

const (
	_ ConnectionMode = iota
	Login
	World
)

// A Session stores the connection and state of one client.
type Session struct {
	ID         uuid.UUID
	LocalAddr  net.Addr
	RemoteAddr net.Addr

	Mode ConnectionMode
	// Account is set by the handler once the client identified itself.
	Account string
}

func (s *Server) logger() *zerolog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return &log.Logger
}

func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve accepts incoming connections on the Listener l, creating a new
// goroutine for each. It returns when l is closed.
func (s *Server) Serve(l net.Listener) error {
	if s.Sessions == nil {
		s.Sessions = NewSessionStore()
	}
	logger := s.logger()

	for {
		c, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			logger.Warn().Err(err).Msg("accept")
			continue
		}

		go s.serveConn(c)
	}
}

func (s *Server) serveConn(c net.Conn) {
	defer c.Close()

	session := &Session{
		ID:         uuid.New(),
		LocalAddr:  c.LocalAddr(),
		RemoteAddr: c.RemoteAddr(),
		Mode:       s.Mode,
	}
	logger := s.logger().With().
		Str("session", session.ID.String()).
		Stringer("remote", session.RemoteAddr).
		Logger()
	logger.Debug().Msg("session established")

	t := NewTransport(c, c, s.TransportConfig)
	if err := s.Handler(session, t, s.Sessions); err != nil {
		logger.Warn().Err(err).Str("account", session.Account).Msg("session handler")
		return
	}
	logger.Debug().Str("account", session.Account).Msg("session closed")
}

// SessionStore maps account names to the session key negotiated on the
// login server, for the world server to pick up.
type SessionStore struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{keys: make(map[string][]byte)}
}

func (s *SessionStore) Put(account string, key []byte) {
	k := make([]byte, len(key))
	copy(k, key)

	s.mu.Lock()
	s.keys[account] = k
	s.mu.Unlock()
}

func (s *SessionStore) Get(account string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.keys[account]
	return k, ok
}

func (s *SessionStore) Delete(account string) {
	s.mu.Lock()
	delete(s.keys, account)
	s.mu.Unlock()
}
