// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// hubReadLimit bounds a single frame; pushed batches are the largest.
	hubReadLimit = 32 << 20

	// defaultAckTimeout bounds the wait for the client's answer to a
	// SendItems invocation.
	defaultAckTimeout = time.Minute

	// hubExceptionFormat is how failed invocations are reported to the
	// client. The text after "HubException: " is shown to the user.
	hubExceptionFormat = "An unexpected error occurred invoking '%s' on the server. HubException: %s"
)

var (
	errPushNotInitialized = errors.New("push was not initialized")
	errFetchNotAcked      = errors.New("fetched batch was not acknowledged")
	errUnknownTarget      = errors.New("unknown hub method")
	errMissingArgument    = errors.New("missing invocation argument")
)

// hub serves the sync protocol to every connected device and routes
// PushCompleted notifications between the connections of a user.
type hub struct {
	services   *service.Services
	ackTimeout time.Duration
	logger     *logger.Logger

	mu    sync.Mutex
	conns map[string]map[*hubConn]struct{}
}

func newHub(services *service.Services, logger *logger.Logger) *hub {
	return &hub{
		services:   services,
		ackTimeout: defaultAckTimeout,
		logger:     logger,
		conns:      make(map[string]map[*hubConn]struct{}),
	}
}

// serveHub upgrades an authenticated request to a hub connection and
// serves it until either side closes.
func (h *Handler) serveHub(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.serveHub").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.serveHub").Msg("websocket handshake failed")
		return
	}
	ws.SetReadLimit(hubReadLimit)

	c := &hubConn{
		hub:         h.hub,
		userID:      userID,
		conn:        connection.NewWebsocketConn(ws),
		log:         log,
		pending:     make(map[string]chan connection.Frame),
		invocations: make(chan connection.Frame, 16),
	}

	h.hub.add(c)
	defer h.hub.remove(c)

	log.Info().Str("func", "*Handler.serveHub").Msg("hub connection opened")
	c.serve(r.Context())
	log.Info().Str("func", "*Handler.serveHub").Msg("hub connection closed")
}

func (h *hub) add(c *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[c.userID] == nil {
		h.conns[c.userID] = make(map[*hubConn]struct{})
	}
	h.conns[c.userID][c] = struct{}{}
}

func (h *hub) remove(c *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns[c.userID], c)
	if len(h.conns[c.userID]) == 0 {
		delete(h.conns, c.userID)
	}
}

// peers returns the other connections of the user of c.
func (h *hub) peers(c *hubConn) []*hubConn {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []*hubConn
	for p := range h.conns[c.userID] {
		if p != c {
			out = append(out, p)
		}
	}
	return out
}

// close sends a close frame to every connection and closes it.
func (h *hub) close(reason string) {
	h.mu.Lock()
	var all []*hubConn
	for _, cs := range h.conns {
		for c := range cs {
			all = append(all, c)
		}
	}
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, c := range all {
		_ = c.write(ctx, connection.Frame{Type: connection.FrameClose, Error: reason})
		_ = c.conn.Close(reason)
	}
}

// hubConn is one device connection. Frames are read on the serve loop;
// client invocations are executed one at a time on a worker so that the
// loop stays free to receive the answers to server invocations.
type hubConn struct {
	hub    *hub
	userID string
	conn   connection.Conn
	log    *logger.Logger

	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]chan connection.Frame
	nextID    atomic.Uint64

	invocations chan connection.Frame

	// pushing is only touched by the worker.
	pushing bool
}

func (c *hubConn) serve(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.work(ctx)
	}()
	defer wg.Wait()
	defer cancel()

	for {
		f, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				c.log.Debug().Err(err).Str("func", "hubConn.serve").Msg("read failed")
			}
			return
		}

		switch f.Type {
		case connection.FrameResult:
			c.resolve(f)
		case connection.FrameInvoke:
			select {
			case c.invocations <- f:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (c *hubConn) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-c.invocations:
			c.dispatch(ctx, f)
		}
	}
}

// dispatch runs one client invocation and answers it when it expects a
// result.
func (c *hubConn) dispatch(ctx context.Context, f connection.Frame) {
	result, err := c.call(ctx, f)
	if f.ID == "" {
		return
	}

	reply := connection.Frame{Type: connection.FrameResult, ID: f.ID}
	if err != nil {
		c.log.Err(err).Str("func", "hubConn.dispatch").Str("target", f.Target).Msg("invocation failed")
		reply.Error = fmt.Sprintf(hubExceptionFormat, f.Target, userMessage(err))
	} else {
		raw, mErr := json.Marshal(result)
		if mErr != nil {
			reply.Error = fmt.Sprintf(hubExceptionFormat, f.Target, app.MsgInternalServerError)
		} else {
			reply.Result = raw
		}
	}

	if err = c.write(ctx, reply); err != nil && ctx.Err() == nil {
		c.log.Err(err).Str("func", "hubConn.dispatch").Msg("failed to answer invocation")
	}
}

func (c *hubConn) call(ctx context.Context, f connection.Frame) (any, error) {
	switch f.Target {
	case connection.TargetRequestFetch:
		var deviceID string
		if err := argument(f.Arguments, 0, &deviceID); err != nil {
			return nil, err
		}
		return c.requestFetch(ctx, deviceID)

	case connection.TargetInitializePush:
		var req models.InitializePushRequest
		if err := argument(f.Arguments, 0, &req); err != nil {
			return nil, err
		}
		if err := c.hub.services.SyncService.InitializePush(ctx, c.userID, req); err != nil {
			return nil, err
		}
		c.pushing = true
		return nil, nil

	case connection.TargetPushItems:
		var (
			deviceID string
			batch    models.SyncTransferItem
		)
		if err := argument(f.Arguments, 0, &deviceID); err != nil {
			return nil, err
		}
		if err := argument(f.Arguments, 1, &batch); err != nil {
			return nil, err
		}
		return c.pushItems(ctx, deviceID, batch)

	case connection.TargetPushCompleted:
		c.pushing = false
		for _, p := range c.hub.peers(c) {
			if err := p.notify(ctx, connection.TargetPushCompleted); err != nil {
				c.log.Warn().Err(err).Str("func", "hubConn.call").Msg("failed to notify peer")
			}
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTarget, f.Target)
	}
}

// requestFetch streams the planned batches as SendItems invocations, each
// one after the previous was acknowledged, and advances the device cursor
// only when every batch was accepted.
func (c *hubConn) requestFetch(ctx context.Context, deviceID string) (models.FetchResponse, error) {
	svc := c.hub.services.SyncService

	plan, err := svc.PlanFetch(ctx, c.userID, deviceID)
	if err != nil {
		return models.FetchResponse{}, err
	}

	for _, batch := range plan.Batches {
		var ack bool
		if err = c.invoke(ctx, connection.TargetSendItems, &ack, batch); err != nil {
			return models.FetchResponse{}, fmt.Errorf("send items: %w", err)
		}
		if !ack {
			return models.FetchResponse{}, errFetchNotAcked
		}
	}

	if err = svc.CompleteFetch(ctx, c.userID, deviceID, plan.Checkpoint); err != nil {
		return models.FetchResponse{}, err
	}

	return models.FetchResponse{VaultKey: plan.VaultKey}, nil
}

// pushItems answers false for a batch that failed validation, and warns
// the client with a log frame.
func (c *hubConn) pushItems(ctx context.Context, deviceID string, batch models.SyncTransferItem) (bool, error) {
	if !c.pushing {
		return false, errPushNotInitialized
	}

	ok, err := c.hub.services.SyncService.PushItems(ctx, c.userID, deviceID, batch)
	if errors.Is(err, service.ErrValidation) {
		_ = c.write(ctx, connection.Frame{
			Type:    connection.FrameLog,
			Level:   connection.LogWarning,
			Message: fmt.Sprintf("rejected %s batch: %v", batch.Type, err),
		})
		return false, nil
	}
	return ok, err
}

// invoke calls target on the client and waits for its result.
func (c *hubConn) invoke(ctx context.Context, target string, result any, args ...any) error {
	arguments, err := connection.EncodeArguments(args...)
	if err != nil {
		return err
	}

	id := strconv.FormatUint(c.nextID.Add(1), 10)
	ch := make(chan connection.Frame, 1)
	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	if err = c.write(ctx, connection.Frame{Type: connection.FrameInvoke, ID: id, Target: target, Arguments: arguments}); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.hub.ackTimeout)
	defer cancel()

	select {
	case f := <-ch:
		if f.Error != "" {
			return &connection.RemoteError{Message: f.Error}
		}
		if result != nil && len(f.Result) > 0 {
			return json.Unmarshal(f.Result, result)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// notify sends an invocation that expects no result.
func (c *hubConn) notify(ctx context.Context, target string, args ...any) error {
	arguments, err := connection.EncodeArguments(args...)
	if err != nil {
		return err
	}
	return c.write(ctx, connection.Frame{Type: connection.FrameInvoke, Target: target, Arguments: arguments})
}

func (c *hubConn) resolve(f connection.Frame) {
	c.pendingMu.Lock()
	ch, ok := c.pending[f.ID]
	c.pendingMu.Unlock()

	if ok {
		ch <- f
	}
}

func (c *hubConn) write(ctx context.Context, f connection.Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.Write(ctx, f)
}

func argument(args []json.RawMessage, i int, v any) error {
	if i >= len(args) {
		return errMissingArgument
	}
	if err := json.Unmarshal(args[i], v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrValidation, err)
	}
	return nil
}

// userMessage is the part of err that is safe to show to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrDeviceUnknown):
		return app.MsgDeviceNotRegistered
	case errors.Is(err, errPushNotInitialized):
		return app.MsgPushNotInitialized
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, errUnknownTarget),
		errors.Is(err, errMissingArgument),
		errors.Is(err, errFetchNotAcked):
		return err.Error()
	default:
		return app.MsgInternalServerError
	}
}
