package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestAdminWebSocketReceivesStoreRefreshed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { c.Set("user_id", "u1") }, HandleAdminWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello map[string]string
	if err := conn.ReadJSON(&hello); err != nil || hello["type"] != "connected" {
		t.Fatalf("hello = %v, err = %v", hello, err)
	}
	if stats := H.GetStats(); stats["connections"] != 1 || stats["users"] != 1 {
		t.Errorf("stats = %v", stats)
	}

	BroadcastStoreRefreshed(time.Now(), map[string]int{"properties": 7})

	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var msg StoreRefreshed
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "store_refreshed" || msg.Counts["properties"] != 7 {
		t.Errorf("msg = %+v", msg)
	}
}
