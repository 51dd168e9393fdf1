// server/internal/socket/hub_test.go
package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyOfflineClientIsNoop(t *testing.T) {
	hub := NewHub()

	err := hub.Notify("nobody", "listing_inquiry", map[string]string{"listingId": "abc"})
	assert.NoError(t, err)
}

func TestRegisterSendUnregister(t *testing.T) {
	hub := NewHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register("user-1", conn)
		close(registered)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()
	<-registered

	require.NoError(t, hub.Notify("user-1", "suggestions_generated", map[string]int{"count": 5}))

	_, message, err := client.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"suggestions_generated","payload":{"count":5}}`, string(message))

	hub.Unregister("user-1")
	assert.NoError(t, hub.Send("user-1", []byte("dropped")))
}
