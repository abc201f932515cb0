package event

import (
	"sync"

	"github.com/robgonnella/netscope/internal/logger"
)

type listener struct {
	id        int
	eventType EventType
	channel   chan Event
}

// EventManager implements the Manager interface
type EventManager struct {
	listeners []*listener
	nextID    int
	mux       sync.Mutex
	log       logger.Logger
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners: []*listener{},
		nextID:    1,
		log:       logger.With("event"),
	}
}

// RegisterListener registers a channel to receive events of eventType and
// returns the listener id. Channels should be buffered, see Send.
func (m *EventManager) RegisterListener(eventType EventType, channel chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:        m.nextID,
		eventType: eventType,
		channel:   channel,
	}

	m.listeners = append(m.listeners, l)
	m.nextID++

	return l.id
}

// RemoveListener stops delivering events to the listener with id
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	listeners := []*listener{}

	for _, l := range m.listeners {
		if l.id != id {
			listeners = append(listeners, l)
		}
	}

	m.listeners = listeners

	return id
}

// Send delivers evt to every listener registered for its type. Delivery
// never blocks: a listener whose buffer is full misses the event.
func (m *EventManager) Send(evt Event) {
	m.mux.Lock()
	defer m.mux.Unlock()

	for _, l := range m.listeners {
		if l.eventType != evt.Type {
			continue
		}

		select {
		case l.channel <- evt:
		default:
			m.log.Debug().
				Int("listener", l.id).
				Str("type", string(evt.Type)).
				Msg("listener not ready, dropping event")
		}
	}
}

// ReportFatalError sends a FatalErrorEventType event
func (m *EventManager) ReportFatalError(err error) {
	m.log.Error().Err(err).Msg("fatal error")

	m.Send(Event{
		Type:    FatalErrorEventType,
		Payload: err,
	})
}

// ReportError sends an ErrorEventType event
func (m *EventManager) ReportError(err error) {
	m.log.Warn().Err(err).Msg("error")

	m.Send(Event{
		Type:    ErrorEventType,
		Payload: err,
	})
}
