package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(zap.NewNop(), "http://localhost:3000")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.ServeWS(w, r); err != nil {
			t.Logf("upgrade failed: %v", err)
		}
	}))
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})
	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func join(t *testing.T, hub *Hub, conn *websocket.Conn, userID interface{}, address string, want int) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(Envelope{Event: "join", Data: userID}))
	require.Eventually(t, func() bool { return hub.RoomSize(address) == want }, 2*time.Second, 10*time.Millisecond)
}

type pushed struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func TestPublishReachesJoinedSession(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	join(t, hub, conn, "2", UserAddress("2"), 1)

	hub.Publish(context.Background(), UserAddress("2"), EventNewNotification, map[string]string{"message": "hi"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg pushed
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventNewNotification, msg.Event)
	assert.JSONEq(t, `{"message":"hi"}`, string(msg.Data))
}

func TestJoinAcceptsNumericUserID(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	join(t, hub, conn, 7, UserAddress("7"), 1)
}

func TestPublishSkipsOtherRooms(t *testing.T) {
	hub, url := startHub(t)
	joined := dial(t, url)
	other := dial(t, url)
	join(t, hub, joined, "1", UserAddress("1"), 1)
	join(t, hub, other, "3", UserAddress("3"), 1)

	hub.Publish(context.Background(), UserAddress("1"), EventNewNotification, "only for one")

	joined.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg pushed
	require.NoError(t, joined.ReadJSON(&msg))

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestSessionsShareAddress(t *testing.T) {
	hub, url := startHub(t)
	first := dial(t, url)
	second := dial(t, url)
	join(t, hub, first, "5", UserAddress("5"), 1)
	join(t, hub, second, "5", UserAddress("5"), 2)

	hub.Publish(context.Background(), UserAddress("5"), EventNewNotification, 1)

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg pushed
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "1", string(msg.Data))
	}
}

func TestDisconnectLeavesRoom(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	join(t, hub, conn, "9", UserAddress("9"), 1)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.RoomSize(UserAddress("9")) == 0 }, 2*time.Second, 10*time.Millisecond)

	// Publishing to an empty room is a no-op.
	hub.Publish(context.Background(), UserAddress("9"), EventNewNotification, nil)
}

func TestMalformedFramesAreIgnored(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteJSON(Envelope{Event: "join", Data: ""}))
	require.NoError(t, conn.WriteJSON(Envelope{Event: "wave", Data: "4"}))
	join(t, hub, conn, "4", UserAddress("4"), 1)
}

func TestRejectsForeignOrigin(t *testing.T) {
	_, url := startHub(t)
	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

type recordingPublisher struct {
	addresses []string
}

func (r *recordingPublisher) Publish(_ context.Context, address, _ string, _ interface{}) {
	r.addresses = append(r.addresses, address)
}

func TestFanoutPublishesToAll(t *testing.T) {
	a, b := &recordingPublisher{}, &recordingPublisher{}
	Fanout{a, b}.Publish(context.Background(), "user_1", EventNewNotification, nil)
	assert.Equal(t, []string{"user_1"}, a.addresses)
	assert.Equal(t, []string{"user_1"}, b.addresses)
}

func TestUserAddress(t *testing.T) {
	assert.Equal(t, "user_42", UserAddress("42"))
}
