package client

import (
	"encoding/json"
	"log"
	"sync"

	"friidrett/metrics"
	"friidrett/repository"

	"github.com/gorilla/websocket"
)

// LiveHub fans newly ingested results out to websocket subscribers, keyed by
// meet id. Writes happen under the hub lock; a failed write drops the
// connection rather than blocking the ingestion loop.
type LiveHub struct {
	mu          sync.Mutex
	subscribers map[int]map[*websocket.Conn]bool
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		subscribers: make(map[int]map[*websocket.Conn]bool),
	}
}

func (h *LiveHub) Subscribe(meetId int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[meetId] == nil {
		h.subscribers[meetId] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[meetId][conn] = true
	metrics.LiveClientsGauge.Inc()
}

func (h *LiveHub) Unsubscribe(meetId int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.subscribers[meetId]; ok {
		if conns[conn] {
			delete(conns, conn)
			metrics.LiveClientsGauge.Dec()
		}
		if len(conns) == 0 {
			delete(h.subscribers, meetId)
		}
	}
}

func (h *LiveHub) Broadcast(results []*repository.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, result := range results {
		conns, ok := h.subscribers[result.MeetId]
		if !ok {
			continue
		}
		message, err := json.Marshal(result)
		if err != nil {
			log.Printf("failed to marshal live result: %v", err)
			continue
		}
		for conn := range conns {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				_ = conn.Close()
				delete(conns, conn)
				metrics.LiveClientsGauge.Dec()
			}
		}
	}
}
