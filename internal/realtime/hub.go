package realtime

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Change actions
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Topics are table names.
const (
	TopicAppointments        = "appointments"
	TopicContactMessages     = "contact_messages"
	TopicPsychologistActions = "psychologist_actions"
)

const channelPrefix = "realtime:"

// Event is a change notification for one record. Views re-fetch their
// lists on receipt rather than patching incrementally.
type Event struct {
	Table    string `json:"table"`
	Action   string `json:"action"`
	RecordID string `json:"record_id"`
	// Owner is the requester email on appointment events; it lets the
	// websocket layer scope patient subscriptions to their own rows.
	Owner string `json:"owner,omitempty"`
}

// Handler receives events for one subscription.
type Handler func(Event)

// Subscription is the handle returned by Subscribe. Release it with
// Unsubscribe when the consumer goes away.
type Subscription struct {
	topic string
	id    uint64
}

// Hub fans change events out to in-process subscribers. With a redis
// client attached, publishes go through redis pub/sub so every instance
// sees every event; without one (tests), dispatch is purely local.
type Hub struct {
	log         *logrus.Logger
	redisClient *redis.Client

	mu     sync.RWMutex
	subs   map[string]map[uint64]Handler
	nextID uint64
}

func NewHub(redisClient *redis.Client, log *logrus.Logger) *Hub {
	return &Hub{
		log:         log,
		redisClient: redisClient,
		subs:        map[string]map[uint64]Handler{},
	}
}

// Subscribe registers a handler for one topic. Handlers run on the
// dispatching goroutine and must not block.
func (h *Hub) Subscribe(topic string, handler Handler) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	if h.subs[topic] == nil {
		h.subs[topic] = map[uint64]Handler{}
	}
	h.subs[topic][h.nextID] = handler

	return &Subscription{topic: topic, id: h.nextID}
}

// Unsubscribe releases a subscription. Safe with a nil handle.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if handlers, ok := h.subs[sub.topic]; ok {
		delete(handlers, sub.id)
		if len(handlers) == 0 {
			delete(h.subs, sub.topic)
		}
	}
}

// Publish emits one change event. Failures are logged and swallowed:
// a missed notification only delays a re-fetch, it never fails the
// mutation that caused it.
func (h *Hub) Publish(ctx context.Context, event Event) {
	if h.redisClient == nil {
		h.dispatch(event)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Warnf("Failed to marshal realtime event: %+v", err)
		return
	}

	if err := h.redisClient.Publish(ctx, channelPrefix+event.Table, payload).Err(); err != nil {
		h.log.Warnf("Failed to publish realtime event for %s: %+v", event.Table, err)
		// Degrade to local delivery so this instance's views still refresh.
		h.dispatch(event)
	}
}

// Run pumps redis pub/sub messages into local subscribers until ctx is
// cancelled. It is a no-op without a redis client. Reconnection is the
// client library's job.
func (h *Hub) Run(ctx context.Context) {
	if h.redisClient == nil {
		return
	}

	pubsub := h.redisClient.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	h.log.Info("Realtime hub subscribed to change channels")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				h.log.Warnf("Failed to decode realtime event on %s: %+v", msg.Channel, err)
				continue
			}
			if event.Table == "" {
				event.Table = strings.TrimPrefix(msg.Channel, channelPrefix)
			}
			h.dispatch(event)
		}
	}
}

func (h *Hub) dispatch(event Event) {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[event.Table]))
	for _, handler := range h.subs[event.Table] {
		handlers = append(handlers, handler)
	}
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
