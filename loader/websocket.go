package loader

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"bookmark/engine"
)

// WebSocket is a Loader that materializes a value by sending the request as
// a JSON message over an already-established connection and decoding the
// reply the same way.
type WebSocket struct {
	conn    *websocket.Conn
	timeout time.Duration
}

// DialWebSocket connects to url and wraps the connection as a Loader.
func DialWebSocket(url string, timeout time.Duration) (*WebSocket, error) {
	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: dial %q", url)
	}
	return &WebSocket{conn: conn, timeout: timeout}, nil
}

// Close closes the underlying connection.
func (w *WebSocket) Close() error {
	return w.conn.Close()
}

// Load implements engine.Loader: it writes request's JSON encoding as a
// text frame, then reads and decodes one reply frame as the result value.
func (w *WebSocket) Load(request engine.Value) (engine.Value, error) {
	if w.timeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
		_ = w.conn.SetReadDeadline(time.Now().Add(w.timeout))
	}

	data, err := json.Marshal(request)
	if err != nil {
		return engine.Value{}, unloadable(request)
	}
	if err := w.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return engine.Value{}, unloadable(request)
	}

	_, reply, err := w.conn.ReadMessage()
	if err != nil {
		return engine.Value{}, unloadable(request)
	}

	var v engine.Value
	if err := json.Unmarshal(reply, &v); err != nil {
		return engine.Value{}, unloadable(request)
	}
	return v, nil
}
