package loader

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"bookmark/engine"
)

// echoUpperServer replies to every request with the upper-cased String it
// receives, exercising the same request/reply JSON envelope loader.WebSocket
// uses.
func echoUpperServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var v engine.Value
			if err := json.Unmarshal(data, &v); err != nil {
				return
			}
			reply, _ := json.Marshal(engine.String(strings.ToUpper(v.StringValue())))
			if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return
			}
		}
	}))
}

func TestWebSocketLoaderRoundTrip(t *testing.T) {
	srv := echoUpperServer(t)
	defer srv.Close()

	wsURL, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	wsURL.Scheme = "ws"

	l, err := DialWebSocket(wsURL.String(), 2*time.Second)
	if err != nil {
		t.Fatalf("DialWebSocket: %v", err)
	}
	defer l.Close()

	got, err := l.Load(engine.String("hi"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(engine.String("HI")) {
		t.Fatalf("got %v", got)
	}
}
