// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connection owns the persistent, authenticated hub connection of
// the sync client.
//
// A [Manager] dials the hub on demand, serializes connect attempts, bounds
// them with a timeout, and turns every unsolicited close into an abort: the
// observer is notified, pending invocations fail at once, and the abort
// error is handed to the next caller of Invoke. The Manager never retries
// on its own.
package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// Default limits of a connection.
const (
	DefaultConnectTimeout = 30 * time.Second
	DefaultServerTimeout  = 5 * time.Minute
)

// TokenSupplier produces a bearer token for every (re)connect.
type TokenSupplier interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// AbortObserver is told about every unsolicited connection loss and every
// error reported by the server.
type AbortObserver interface {
	SyncAborted(err error)
}

// Handler serves a server invocation. The returned value is sent back to
// the server when the invocation expects a result.
type Handler func(ctx context.Context, args []json.RawMessage) (any, error)

// IDGenerator produces invocation ids.
type IDGenerator interface {
	Generate() string
}

// Config holds the connection settings.
type Config struct {
	URL            string
	ConnectTimeout time.Duration
	ServerTimeout  time.Duration
}

// Manager owns one hub connection. It is safe for concurrent use.
type Manager struct {
	cfg      Config
	dialer   Dialer
	tokens   TokenSupplier
	observer AbortObserver
	ids      IDGenerator
	logger   *logger.Logger

	connect singleflight.Group

	mu       sync.Mutex
	state    models.ConnectionState
	sess     *session
	abortErr error

	handlersMu    sync.RWMutex
	handlers      map[string][]registeredHandler
	nextHandlerID uint64
}

type registeredHandler struct {
	id uint64
	fn Handler
}

// NewManager returns a disconnected Manager.
func NewManager(cfg Config, dialer Dialer, tokens TokenSupplier, observer AbortObserver, ids IDGenerator, log *logger.Logger) *Manager {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.ServerTimeout <= 0 {
		cfg.ServerTimeout = DefaultServerTimeout
	}

	return &Manager{
		cfg:      cfg,
		dialer:   dialer,
		tokens:   tokens,
		observer: observer,
		ids:      ids,
		logger:   log,
		state:    models.Disconnected,
		handlers: make(map[string][]registeredHandler),
	}
}

// State returns the current connection state.
func (m *Manager) State() models.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connected reports whether the connection is established.
func (m *Manager) Connected() bool {
	return m.State() == models.Connected
}

// EnsureConnected connects to the hub unless already connected. Concurrent
// callers share a single connect attempt. A caller whose ctx ends stops
// waiting; the shared attempt itself is bounded by the connect timeout only.
func (m *Manager) EnsureConnected(ctx context.Context) error {
	if m.Connected() {
		return nil
	}

	ch := m.connect.DoChan("connect", func() (any, error) {
		return nil, m.dial()
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) dial() error {
	m.mu.Lock()
	if m.state == models.Connected {
		m.mu.Unlock()
		return nil
	}
	halfOpen := m.sess
	m.sess = nil
	m.state = models.Connecting
	m.mu.Unlock()

	if halfOpen != nil {
		halfOpen.close(ErrConnectionStopped)
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.ConnectTimeout)
	defer cancel()

	token, err := m.tokens.GetAccessToken(ctx)
	if err == nil && token == "" {
		err = errors.New("empty token")
	}
	if err != nil {
		m.setState(models.Disconnected)
		m.logger.Err(err).Str("func", "Manager.EnsureConnected").Msg("no access token for sync connection")
		return fmt.Errorf("%w: %w", ErrAuthRequired, err)
	}

	conn, err := m.dialer.Dial(ctx, m.cfg.URL, token)
	if err != nil {
		m.setState(models.Disconnected)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &TimeoutError{Timeout: m.cfg.ConnectTimeout}
		}
		m.logger.Err(err).Str("func", "Manager.EnsureConnected").Str("url", m.cfg.URL).Msg("could not connect to the sync server")
		return fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
	}

	sess := newSession(conn)
	sess.inactivity = time.AfterFunc(m.cfg.ServerTimeout, func() {
		m.abort(sess, fmt.Errorf("%w: %w", ErrSyncUnavailable, ErrServerTimeout))
	})

	m.mu.Lock()
	m.sess = sess
	m.state = models.Connected
	m.abortErr = nil
	m.mu.Unlock()

	go m.readLoop(sess)

	m.logger.Info().Str("func", "Manager.EnsureConnected").Msg("connected to the sync server")
	return nil
}

// Invoke calls target on the server and decodes its result into result
// (which may be nil). It fails at once when the connection is lost.
func (m *Manager) Invoke(ctx context.Context, target string, result any, args ...any) error {
	sess, err := m.active()
	if err != nil {
		return err
	}

	arguments, err := EncodeArguments(args...)
	if err != nil {
		return fmt.Errorf("encode %s arguments: %w", target, err)
	}

	id := m.ids.Generate()
	reply := sess.register(id)
	defer sess.unregister(id)

	if err = sess.conn.Write(ctx, Frame{Type: FrameInvoke, ID: id, Target: target, Arguments: arguments}); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
		m.abort(sess, err)
		return err
	}

	select {
	case f := <-reply:
		if f.Error != "" {
			return &RemoteError{Message: f.Error}
		}
		if result != nil && len(f.Result) > 0 {
			if err = json.Unmarshal(f.Result, result); err != nil {
				return fmt.Errorf("decode %s result: %w", target, err)
			}
		}
		return nil
	case <-sess.done:
		return sess.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// On subscribes handler to server invocations of target. The returned func
// releases the subscription; calling it more than once is harmless.
func (m *Manager) On(target string, handler Handler) func() {
	m.handlersMu.Lock()
	m.nextHandlerID++
	id := m.nextHandlerID
	m.handlers[target] = append(m.handlers[target], registeredHandler{id: id, fn: handler})
	m.handlersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.handlersMu.Lock()
			defer m.handlersMu.Unlock()
			hs := m.handlers[target]
			for i, h := range hs {
				if h.id == id {
					m.handlers[target] = append(hs[:i:i], hs[i+1:]...)
					break
				}
			}
			if len(m.handlers[target]) == 0 {
				delete(m.handlers, target)
			}
		})
	}
}

// Stop closes the connection. Pending invocations fail with
// [ErrConnectionStopped]; the observer is not notified.
func (m *Manager) Stop() {
	m.mu.Lock()
	sess := m.sess
	m.sess = nil
	m.state = models.Disconnected
	m.mu.Unlock()

	if sess != nil {
		sess.close(ErrConnectionStopped)
		m.logger.Info().Str("func", "Manager.Stop").Msg("sync connection stopped")
	}
}

func (m *Manager) active() (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess != nil && m.state == models.Connected {
		return m.sess, nil
	}
	if m.abortErr != nil {
		err := m.abortErr
		m.abortErr = nil
		return nil, err
	}
	return nil, ErrNotConnected
}

func (m *Manager) setState(s models.ConnectionState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// abort handles an unsolicited close of sess.
func (m *Manager) abort(sess *session, err error) {
	m.mu.Lock()
	if m.sess != sess {
		m.mu.Unlock()
		return
	}
	m.sess = nil
	m.state = models.Disconnected
	m.abortErr = err
	m.mu.Unlock()

	sess.close(err)

	m.logger.Err(err).Str("func", "Manager.abort").Msg("sync connection aborted")
	m.observer.SyncAborted(err)
}

func (m *Manager) readLoop(sess *session) {
	for {
		f, err := sess.conn.Read(sess.ctx)
		if err != nil {
			if sess.ctx.Err() == nil {
				m.abort(sess, fmt.Errorf("%w: %w", ErrSyncUnavailable, err))
			}
			return
		}
		sess.inactivity.Reset(m.cfg.ServerTimeout)

		switch f.Type {
		case FrameResult:
			sess.resolve(f)
		case FrameInvoke:
			m.dispatch(sess, f)
		case FrameLog:
			m.serverLog(f)
		case FrameClose:
			reason := f.Error
			if reason == "" {
				reason = "server closed the connection"
			}
			m.abort(sess, fmt.Errorf("%w: %w", ErrSyncUnavailable, &RemoteError{Message: reason}))
			return
		}
	}
}

// dispatch runs the handlers of an invocation on the read loop, so server
// invocations are served strictly in delivery order.
func (m *Manager) dispatch(sess *session, f Frame) {
	m.handlersMu.RLock()
	hs := append([]registeredHandler(nil), m.handlers[f.Target]...)
	m.handlersMu.RUnlock()

	var (
		result  any
		callErr error
	)
	for _, h := range hs {
		r, err := h.fn(sess.ctx, f.Arguments)
		if err != nil && callErr == nil {
			callErr = err
		}
		result = r
	}

	if f.ID == "" {
		if callErr != nil {
			m.logger.Err(callErr).Str("func", "Manager.dispatch").Str("target", f.Target).Msg("notification handler failed")
		}
		return
	}

	reply := Frame{Type: FrameResult, ID: f.ID}
	if callErr != nil {
		reply.Error = callErr.Error()
	} else if len(hs) == 0 {
		reply.Error = fmt.Sprintf("no handler for %s", f.Target)
	} else {
		raw, err := json.Marshal(result)
		if err != nil {
			reply.Error = err.Error()
		} else {
			reply.Result = raw
		}
	}

	if err := sess.conn.Write(sess.ctx, reply); err != nil && sess.ctx.Err() == nil {
		m.abort(sess, fmt.Errorf("%w: %w", ErrSyncUnavailable, err))
	}
}

func (m *Manager) serverLog(f Frame) {
	switch f.Level {
	case LogCritical:
		m.logger.WithLevel(zerolog.FatalLevel).Str("func", "Manager.serverLog").Msg(f.Message)
	case LogError:
		m.logger.Error().Str("func", "Manager.serverLog").Msg(f.Message)
		m.observer.SyncAborted(&RemoteError{Message: f.Message})
	case LogWarning:
		m.logger.Warn().Str("func", "Manager.serverLog").Msg(f.Message)
	}
}

// session is the state of one established connection.
type session struct {
	conn       Conn
	ctx        context.Context
	cancel     context.CancelFunc
	inactivity *time.Timer

	mu      sync.Mutex
	pending map[string]chan Frame

	closeOnce sync.Once
	done      chan struct{}
	err       error
}

func newSession(conn Conn) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		conn:    conn,
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[string]chan Frame),
		done:    make(chan struct{}),
	}
}

func (s *session) register(id string) chan Frame {
	ch := make(chan Frame, 1)
	s.mu.Lock()
	s.pending[id] = ch
	s.mu.Unlock()
	return ch
}

func (s *session) unregister(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

func (s *session) resolve(f Frame) {
	s.mu.Lock()
	ch, ok := s.pending[f.ID]
	delete(s.pending, f.ID)
	s.mu.Unlock()

	if ok {
		ch <- f
	}
}

// close fails pending invocations with err and closes the connection in
// the background; a close handshake with an unresponsive peer can take
// seconds.
func (s *session) close(err error) {
	s.closeOnce.Do(func() {
		s.err = err
		if s.inactivity != nil {
			s.inactivity.Stop()
		}
		s.cancel()
		close(s.done)
		go s.conn.Close("closing")
	})
}
