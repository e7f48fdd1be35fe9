package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/workers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// auth happens via the bearer token before the upgrade
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
)

// WSHandler streams import progress events for one document over a
// websocket, forwarding the redis pub/sub channel the worker publishes to.
type WSHandler struct {
	rdb    *redis.Client
	editor services.EditorService
	log    *logrus.Logger
}

func NewWSHandler(rdb *redis.Client, editor services.EditorService, log *logrus.Logger) *WSHandler {
	return &WSHandler{rdb: rdb, editor: editor, log: log}
}

func (h *WSHandler) DocumentEvents(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	docID := c.Param("doc_id")

	if _, err := h.editor.Get(accountID, docID); err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, workers.EventChannel(docID))
	defer sub.Close()

	// drain client frames so close handshakes are noticed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
