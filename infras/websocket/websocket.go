package websocket

//go:generate go run go.uber.org/mock/mockgen -source=./websocket.go -destination=./mocks/websocket_mock.go -package=mocks

import (
	"fmt"
	"net/http"
	"reception/infras/metrics"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/rs/zerolog/log"
)

// Topics pushed to dashboards.
const (
	TopicBillingSync  = "billing.sync"
	TopicNotification = "notification"
	TopicRoomStatus   = "room.status"
	TopicClock        = "clock"
)

const sessionKeyUserID = "user_id"

// Message is the frame written to every dashboard socket.
type Message struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

type Hub interface {
	HandleRequest(w http.ResponseWriter, r *http.Request, userID string) error
	Broadcast(topic string, payload any) error
	SendToUser(userID, topic string, payload any) error
	Sessions() int
	Close() error
}

type hubImpl struct {
	melody *melody.Melody
}

func New() Hub {
	m := melody.New()

	m.HandleConnect(func(session *melody.Session) {
		userID, _ := session.Get(sessionKeyUserID)
		log.Debug().Interface("user_id", userID).Msg("dashboard socket connected")
		metrics.SetWebsocketSessions(m.Len())
	})

	m.HandleDisconnect(func(session *melody.Session) {
		userID, _ := session.Get(sessionKeyUserID)
		log.Debug().Interface("user_id", userID).Msg("dashboard socket disconnected")
		metrics.SetWebsocketSessions(m.Len())
	})

	m.HandleError(func(_ *melody.Session, err error) {
		log.Warn().Err(err).Msg("dashboard socket error")
	})

	return &hubImpl{melody: m}
}

func (h *hubImpl) HandleRequest(w http.ResponseWriter, r *http.Request, userID string) error {
	if err := h.melody.HandleRequestWithKeys(w, r, map[string]any{sessionKeyUserID: userID}); err != nil {
		return fmt.Errorf("failed to upgrade websocket: %w", err)
	}

	return nil
}

func encode(topic string, payload any) ([]byte, error) {
	data, err := json.Marshal(Message{Topic: topic, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s message: %w", topic, err)
	}

	return data, nil
}

func (h *hubImpl) Broadcast(topic string, payload any) error {
	data, err := encode(topic, payload)
	if err != nil {
		return err
	}

	if err = h.melody.Broadcast(data); err != nil && !h.melody.IsClosed() {
		return fmt.Errorf("failed to broadcast %s: %w", topic, err)
	}

	return nil
}

func (h *hubImpl) SendToUser(userID, topic string, payload any) error {
	data, err := encode(topic, payload)
	if err != nil {
		return err
	}

	err = h.melody.BroadcastFilter(data, func(session *melody.Session) bool {
		id, ok := session.Get(sessionKeyUserID)

		return ok && id == userID
	})
	if err != nil && !h.melody.IsClosed() {
		return fmt.Errorf("failed to send %s to %s: %w", topic, userID, err)
	}

	return nil
}

func (h *hubImpl) Sessions() int {
	return h.melody.Len()
}

func (h *hubImpl) Close() error {
	if h.melody.IsClosed() {
		return nil
	}

	return h.melody.Close() //nolint:wrapcheck
}
