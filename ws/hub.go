package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn   *websocket.Conn
	UserID string
	Send   chan []byte
}

// Hub giữ các kết nối của trang quản trị và phát thông báo khi dữ liệu đổi
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{Clients: make(map[*websocket.Conn]*Client)}
}

var H = NewHub()

// StoreRefreshed là thông báo gửi sau mỗi lần nạp lại dữ liệu
type StoreRefreshed struct {
	Type     string         `json:"type"`
	LoadedAt time.Time      `json:"loaded_at"`
	Counts   map[string]int `json:"counts"`
}

const writeWait = 10 * time.Second

func (h *Hub) Register(userID string, conn *websocket.Conn) *Client {
	client := &Client{
		Conn:   conn,
		UserID: userID,
		Send:   make(chan []byte, 256),
	}

	h.Mutex.Lock()
	h.Clients[conn] = client
	h.Mutex.Unlock()

	go h.writePump(client)
	return client
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

// Broadcast gửi tới mọi client; client đầy hàng đợi thì bỏ qua message
func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

func (h *Hub) BroadcastJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	h.Broadcast(data)
}

// Public function gửi signal dữ liệu vừa được nạp lại
func BroadcastStoreRefreshed(loadedAt time.Time, counts map[string]int) {
	H.BroadcastJSON(StoreRefreshed{Type: "store_refreshed", LoadedAt: loadedAt, Counts: counts})
}

// GetStats trả số kết nối hiện tại
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	users := map[string]bool{}
	for _, c := range h.Clients {
		users[c.UserID] = true
	}
	return map[string]int{
		"connections": len(h.Clients),
		"users":       len(users),
	}
}

// Read pump: chỉ để phát hiện client đóng kết nối
func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.Unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(client *Client) {
	defer func() {
		client.Conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
		client.Conn.Close()
	}()
	for msg := range client.Send {
		client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
