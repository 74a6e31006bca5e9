package wsclient

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// PongWait is how long a connection may stay silent before it is dropped;
// the hub pings more often than that.
const PongWait = 60 * time.Second

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// WsClient owns the read side of a notification socket. Notifications only flow
// to the client, so inbound frames are drained and dropped.
type WsClient struct {
	conn   *websocket.Conn
	userID string
}

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

// Dispatch blocks until the peer disconnects or stops answering pings.
func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	logger := log.WithField("user_id", c.userID)
	c.extendDeadline()
	c.conn.SetPongHandler(func(string) error {
		c.extendDeadline()
		return nil
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Warn("notification socket closed")
			}
			return
		}
		c.extendDeadline()
		logger.WithField("size", len(data)).Debug("inbound ws frame dropped")
	}
}

func (c *WsClient) extendDeadline() {
	if err := c.conn.SetReadDeadline(time.Now().Add(PongWait)); err != nil {
		log.WithError(err).WithField("user_id", c.userID).Debug("ws read deadline not set")
	}
}
