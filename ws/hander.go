package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin đã được CORS và token kiểm soát
	},
}

// gửi message dạng JSON qua hàng đợi của client
func sendJSON(client *Client, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("Lỗi JSON marshal:", err)
		return
	}
	select {
	case client.Send <- msg:
	default:
	}
}

// HandleAdminWebSocket nhận kết nối từ trang quản trị.
// Route phải đi qua middleware xác thực (token lấy từ ?token=).
func HandleAdminWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade thất bại:", err)
		return
	}
	log.Printf("Admin WS connected: userID=%s\n", userID)

	client := H.Register(userID, conn)
	sendJSON(client, gin.H{"type": "connected", "message": "Connected to admin WebSocket"})

	// Chặn tới khi client ngắt kết nối
	H.readPump(conn)
	log.Printf("Admin WS disconnected: userID=%s\n", userID)
}
