package handler

import (
	"net/http"
	"sync"

	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/realtime"
	"psicoclinica-server/pkg/response"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// staffOnlyTopics can only be subscribed by psychologists.
var staffOnlyTopics = map[string]bool{
	realtime.TopicContactMessages:     true,
	realtime.TopicPsychologistActions: true,
}

// subscribeMessage is what clients send to pick their tables.
type subscribeMessage struct {
	Subscribe []string `json:"subscribe"`
}

type RealtimeHandler struct {
	hub      *realtime.Hub
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(hub *realtime.Hub, log *logrus.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin browser clients are expected; auth happens
			// via the bearer token, not the Origin header.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and streams change events for the
// tables the client subscribes to. Clients send {"subscribe": [...]}
// and re-fetch their lists when an event arrives. Staff-only tables are
// silently skipped for patients; appointment events reach a patient
// only when the record is their own.
func (h *RealtimeHandler) Serve(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())
	isStaff := role == entity.RolePsychologist

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("Failed to upgrade realtime connection: %+v", err)
		return
	}
	defer conn.Close()

	// Events are handed off to a buffered channel so hub dispatch never
	// blocks on a slow websocket. A full buffer drops the event; the
	// client re-fetches on the next one.
	events := make(chan realtime.Event, 32)
	done := make(chan struct{})

	var mu sync.Mutex
	subs := map[string]*realtime.Subscription{}
	defer func() {
		mu.Lock()
		for _, sub := range subs {
			h.hub.Unsubscribe(sub)
		}
		mu.Unlock()
	}()

	go func() {
		defer close(done)
		for {
			var msg subscribeMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			for _, topic := range msg.Subscribe {
				h.subscribe(topic, email, isStaff, subs, &mu, events)
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case event := <-events:
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}

func (h *RealtimeHandler) subscribe(topic, email string, isStaff bool, subs map[string]*realtime.Subscription, mu *sync.Mutex, events chan realtime.Event) {
	if staffOnlyTopics[topic] && !isStaff {
		return
	}
	if topic != realtime.TopicAppointments && !staffOnlyTopics[topic] {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := subs[topic]; exists {
		return
	}

	subs[topic] = h.hub.Subscribe(topic, func(event realtime.Event) {
		if !isStaff && event.Table == realtime.TopicAppointments && event.Owner != email {
			return
		}
		select {
		case events <- event:
		default:
		}
	})
}
