package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// Client - посредник между Websocket и партией
type Client struct {
	Game     *engine.GameService
	Conn     *websocket.Conn
	Send     chan api.ServerEvent
	PartyID  string
	PlayerID string

	codec codec
	log   *logrus.Entry
}

// NewClient подписывает соединение на события партии
func NewClient(game *engine.GameService, conn *websocket.Conn, partyID, playerID string, c codec) *Client {
	return &Client{
		Game:     game,
		Conn:     conn,
		Send:     game.Hub.Register(partyID, playerID),
		PartyID:  partyID,
		PlayerID: playerID,
		codec:    c,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "client",
			"party_id":  partyID,
			"player_id": playerID,
			"codec":     c.Name(),
		}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		// Если канал уже заменен новым подключением или партия закрыта, игрок не сдается
		if c.Game.Hub.Unregister(c.PartyID, c.PlayerID, c.Send) {
			c.Game.Disconnect(c.PartyID, c.PlayerID)
		}
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log.Info("Client connected")
	// Первый снимок состояния
	c.Game.Submit(c.PartyID, c.PlayerID, api.ClientCommand{Action: "SYNC"})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			break
		}
		cmd, err := c.codec.Decode(data)
		if err != nil {
			c.log.WithError(err).Warn("Bad command frame")
			continue
		}
		c.Game.Submit(c.PartyID, c.PlayerID, cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// Партия закрыта или игрок переподключился
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			frameType, data, err := c.codec.Encode(message)
			if err != nil {
				c.log.WithError(err).WithField("event", message.Type).Error("encode event failed")
				continue
			}
			if err := c.Conn.WriteMessage(frameType, data); err != nil {
				c.log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
