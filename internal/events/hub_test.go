package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSocketPair upgrades one connection on an httptest server and returns
// both ends of it.
func newSocketPair(t *testing.T) (server, client *websocket.Conn) {
	upgraded := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		upgraded <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientConn.Close() })

	select {
	case serverConn := <-upgraded:
		return serverConn, clientConn
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server side of the connection")
		return nil, nil
	}
}

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	serverConn, clientConn := newSocketPair(t)
	hub.Register(serverConn)
	require.Equal(t, 1, hub.ClientCount())

	hub.BookingCancelled(42)

	require.NoError(t, clientConn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, clientConn.ReadJSON(&ev))
	assert.Equal(t, EventBookingCancelled, ev.Type)
	assert.Equal(t, int64(42), ev.BookingID)
}

// Broadcasts run on the booking handler's goroutine while pings run on the
// connection's ping loop; both must be able to write at once without racing.
func TestHub_ConcurrentBroadcastsAndPings(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	serverConn, clientConn := newSocketPair(t)
	hub.Register(serverConn)

	// Drain the client side so writes never block on a full buffer.
	go func() {
		for {
			if _, _, err := clientConn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				hub.BookingCancelled(int64(i))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			if err := hub.Ping(serverConn); err != nil {
				return
			}
		}
	}()
	wg.Wait()

	assert.Equal(t, 1, hub.ClientCount(), "healthy connection must survive concurrent writes")
}

func TestHub_PingAfterUnregisterFails(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	serverConn, _ := newSocketPair(t)
	hub.Register(serverConn)
	hub.Unregister(serverConn)

	assert.Error(t, hub.Ping(serverConn))
}

func TestHub_DropsClientOnWriteFailure(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	serverConn, _ := newSocketPair(t)
	hub.Register(serverConn)
	require.NoError(t, serverConn.Close())

	hub.BookingCancelled(7)

	assert.Equal(t, 0, hub.ClientCount())
}
