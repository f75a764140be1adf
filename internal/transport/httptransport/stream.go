package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/interfaces"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// StreamFrame — сообщение websocket-потока
type StreamFrame struct {
	Type         string `json:"type"` // status
	ConnectionID string `json:"connection_id"`
	Status
}

// StreamHandler — GET /api/stream: статус при подключении и после каждого изменения
type StreamHandler struct {
	logger       *slog.Logger
	feed         interfaces.MarketFeed
	upgrader     websocket.Upgrader
	WriteTimeout time.Duration
	PingInterval time.Duration
}

func NewStreamHandler(logger *slog.Logger, feed interfaces.MarketFeed) *StreamHandler {
	return &StreamHandler{
		logger: logger,
		feed:   feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		WriteTimeout: 5 * time.Second,
		PingInterval: 30 * time.Second,
	}
}

func (h *StreamHandler) RegisterRoutes(r Router) {
	r.GET("/stream", h.Stream)
}

func (h *StreamHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// ответ уже записан апгрейдером
		h.logger.Warn("stream upgrade failed", slog.String("error", err.Error()))
		return nil
	}
	defer conn.Close()

	id := uuid.NewString()
	log := h.logger.With(slog.String("conn_id", id))
	log.Debug("stream connected", slog.String("remote", c.RealIP()))

	updates, cancel := h.feed.Subscribe()
	defer cancel()

	// читатель нужен только чтобы заметить закрытие соединения клиентом
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(st Status) error {
		_ = conn.SetWriteDeadline(time.Now().Add(h.WriteTimeout))
		return conn.WriteJSON(StreamFrame{Type: "status", ConnectionID: id, Status: st})
	}

	if err := send(makeStatus(h.feed.State(), h.feed.Currency())); err != nil {
		log.Warn("stream write failed", slog.String("error", err.Error()))
		return nil
	}

	ping := time.NewTicker(h.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-closed:
			log.Debug("stream closed by client")
			return nil
		case st := <-updates:
			if err := send(makeStatus(st, h.feed.Currency())); err != nil {
				log.Warn("stream write failed", slog.String("error", err.Error()))
				return nil
			}
		case <-ping.C:
			deadline := time.Now().Add(h.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return nil
			}
		}
	}
}
