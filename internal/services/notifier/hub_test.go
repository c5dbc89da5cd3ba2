package notifier

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

	"github.com/wpc/servicesync/internal/models"
)

// dialHub starts the hub, serves it over a test server, and connects one
// subscriber
func dialHub(t *testing.T) (*Hub, *websocket.Conn, context.CancelFunc) {
	t.Helper()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(hub.HandleSubscribe))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Registration runs in the server goroutine after the handshake
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	return hub, conn, cancel
}

func TestHubDeliversEvents(t *testing.T) {
	hub, conn, cancel := dialHub(t)
	defer cancel()

	published := &Event{
		Type:      EventKitchenExit,
		SessionID: "SS-1234-A1-20250601-073000",
		Status:    models.SessionStatusInTransit,
		WardName:  "A1",
		Timestamp: time.Date(2025, 6, 1, 7, 40, 0, 0, time.UTC),
	}

	err := hub.Publish(context.Background(), published)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal(message, &got))
	assert.Equal(t, EventKitchenExit, got.Type)
	assert.Equal(t, published.SessionID, got.SessionID)
	assert.Equal(t, models.SessionStatusInTransit, got.Status)
	assert.Equal(t, "A1", got.WardName)
	assert.True(t, published.Timestamp.Equal(got.Timestamp))
}

func TestHubOmitsEmptyNurseName(t *testing.T) {
	hub, conn, cancel := dialHub(t)
	defer cancel()

	err := hub.Publish(context.Background(), &Event{
		Type:      EventNurseAlert,
		SessionID: "SS-1234-A1-20250601-073000",
		Status:    models.SessionStatusInTransit,
	})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	assert.NotContains(t, string(message), "nurseName")
}

func TestHubBroadcastsToAllSubscribers(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(hub.HandleSubscribe))
	defer server.Close()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	conns := make([]*websocket.Conn, 0, 3)
	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		defer conn.Close()
		conns = append(conns, conn)
	}

	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 3
	}, time.Second, 5*time.Millisecond)

	err := hub.Publish(context.Background(), &Event{
		Type:      EventSessionCompleted,
		SessionID: "SS-1234-A1-20250601-073000",
		Status:    models.SessionStatusCompleted,
	})
	require.NoError(t, err)

	for _, conn := range conns {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, message, err := conn.ReadMessage()
		require.NoError(t, err)

		var got Event
		require.NoError(t, json.Unmarshal(message, &got))
		assert.Equal(t, EventSessionCompleted, got.Type)
	}
}

func TestPublishNilEvent(t *testing.T) {
	hub := NewHub(nil)

	err := hub.Publish(context.Background(), nil)
	assert.Error(t, err)
}

func TestPublishRespectsContext(t *testing.T) {
	// No Run loop draining the broadcast channel; fill it so Publish blocks
	hub := NewHub(nil)
	for i := 0; i < 64; i++ {
		require.NoError(t, hub.Publish(context.Background(), &Event{Type: EventNurseAlert}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := hub.Publish(ctx, &Event{Type: EventNurseAlert})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
