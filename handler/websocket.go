package handler

import (
	"context"
	"encoding/json"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/logger"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/store"
	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// kênh Redis phát danh sách phòng mỗi khi có mutation
const roomsChannel = "rooms:updates"

// PublishRoomsUpdate đẩy danh sách phòng hiện tại lên kênh Redis để các
// dashboard đang mở nhận realtime. Best-effort: lỗi chỉ log.
func PublishRoomsUpdate() {
	rooms, err := store.Rooms.List()
	if err != nil {
		logger.L.Warn("không đọc được bảng phòng để publish", zap.Error(err))
		return
	}

	payload, err := json.Marshal(rooms)
	if err != nil {
		return
	}

	if err := redisClient.Publish(context.Background(), roomsChannel, payload).Err(); err != nil {
		logger.L.Warn("lỗi publish cập nhật phòng lên Redis", zap.Error(err))
	}
}

type wsWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// forwardUpdates đẩy message từ kênh pubsub xuống client cho tới khi client
// ngắt (done đóng), kênh đóng, hoặc write lỗi
func forwardUpdates(w wsWriter, ch <-chan *redis.Message, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := w.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}

// RoomsWebsocket xử lý một kết nối dashboard: gửi danh sách phòng lần đầu
// rồi forward mọi message từ kênh Redis cho tới khi client ngắt
func RoomsWebsocket(c *websocket.Conn) {
	defer c.Close()

	// Gửi snapshot lần đầu
	if rooms, err := store.Rooms.List(); err == nil {
		c.WriteJSON(rooms)
	}

	pubsub := redisClient.Subscribe(context.Background(), roomsChannel)
	defer pubsub.Close()

	// read pump chỉ để phát hiện client ngắt, không dùng message từ client;
	// không có nó goroutine forward sẽ kẹt tới lần publish kế tiếp
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	forwardUpdates(c, pubsub.Channel(), done)
}
