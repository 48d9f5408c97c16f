package http

import (
	"bufio"
	"net"
	"net/http"
)

// statusRecorder remembers the status and body size of a response for the
// request log. It keeps the websocket upgrade working by forwarding Hijack.
type statusRecorder struct {
	http.ResponseWriter

	status   int
	size     int
	hijacked bool
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Hijack hands the connection over to the hub. The upgrade response is
// written by the websocket library on the raw connection, so it is
// recorded as 101 here.
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(w.ResponseWriter).Hijack()
	if err != nil {
		return nil, nil, err
	}
	w.hijacked = true
	if w.status == 0 {
		w.status = http.StatusSwitchingProtocols
	}
	return conn, rw, nil
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusOrOK is the status to log for a handler that never wrote a header.
func (w *statusRecorder) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
