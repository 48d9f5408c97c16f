package connection

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

//go:generate mockgen -source=dialer.go -destination=../mock/connection_mock.go -package=mock

// maxFrameSize bounds a single frame; item batches are the largest frames.
const maxFrameSize = 32 << 20

// Conn is one established hub connection.
type Conn interface {
	Read(ctx context.Context) (Frame, error)
	Write(ctx context.Context, f Frame) error
	Close(reason string) error
}

// Dialer opens hub connections authenticated with a bearer token.
type Dialer interface {
	Dial(ctx context.Context, url, token string) (Conn, error)
}

// WebsocketDialer dials the hub over a websocket.
type WebsocketDialer struct {
	// HTTPClient is used for the opening handshake; nil means
	// http.DefaultClient.
	HTTPClient *http.Client
}

func (d *WebsocketDialer) Dial(ctx context.Context, url, token string) (Conn, error) {
	c, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPClient: d.HTTPClient,
		HTTPHeader: http.Header{"Authorization": []string{"Bearer " + token}},
	})
	if err != nil {
		return nil, err
	}
	c.SetReadLimit(maxFrameSize)

	return NewWebsocketConn(c), nil
}

// NewWebsocketConn adapts an accepted or dialed websocket to [Conn].
func NewWebsocketConn(c *websocket.Conn) Conn {
	return &wsConn{c: c}
}

type wsConn struct {
	c *websocket.Conn
}

func (w *wsConn) Read(ctx context.Context) (Frame, error) {
	var f Frame
	err := wsjson.Read(ctx, w.c, &f)
	return f, err
}

func (w *wsConn) Write(ctx context.Context, f Frame) error {
	return wsjson.Write(ctx, w.c, f)
}

func (w *wsConn) Close(reason string) error {
	return w.c.Close(websocket.StatusNormalClosure, reason)
}
