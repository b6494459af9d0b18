package wsnotify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, m *WebSocketManager) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := m.Upgrade(w, r)
		if err != nil {
			return
		}
		m.AddClient(conn)
		defer func() {
			m.RemoveClient(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	return websocket.DefaultDialer.Dial(url, header)
}

func TestPublishReachesClients(t *testing.T) {
	m := NewManager(func(*http.Request) bool { return true })
	srv := newTestServer(t, m)

	conn, _, err := dial(t, srv, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	m.Publish("contact.created", map[string]interface{}{"id": 1})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "contact.created", got.Type)
	assert.Equal(t, 1, got.Payload["id"])
}

func TestUpgradeRejectsOrigin(t *testing.T) {
	m := NewManager(func(r *http.Request) bool { return r.Header.Get("Origin") == "https://ok.example" })
	srv := newTestServer(t, m)

	_, resp, err := dial(t, srv, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := dial(t, srv, http.Header{"Origin": {"https://ok.example"}})
	require.NoError(t, err)
	conn.Close()
}

func TestCloseAll(t *testing.T) {
	m := NewManager(func(*http.Request) bool { return true })
	srv := newTestServer(t, m)

	conn, _, err := dial(t, srv, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	m.CloseAll()
	assert.Zero(t, m.ClientCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestPublishDoesNotWaitOnSlowClient(t *testing.T) {
	m := NewManager(func(*http.Request) bool { return true })
	srv := newTestServer(t, m)

	stalled, _, err := dial(t, srv, nil)
	require.NoError(t, err)
	defer stalled.Close()
	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	payload := strings.Repeat("x", 64<<10)
	start := time.Now()
	for i := 0; i < 512; i++ {
		m.Publish("contact.updated", payload)
	}
	assert.Less(t, time.Since(start), writeWait)

	require.Eventually(t, func() bool { return m.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRemoveClientTwice(t *testing.T) {
	m := NewManager(func(*http.Request) bool { return true })
	srv := newTestServer(t, m)

	conn, _, err := dial(t, srv, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	m.CloseAll()
	assert.NotPanics(t, func() {
		m.CloseAll()
		m.Publish("contact.created", nil)
	})
	assert.Zero(t, m.ClientCount())
}
