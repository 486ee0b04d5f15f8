package events

import (
	"sync"

	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// InMemoryEventStore keeps every stream in memory. When maxStreams is set the
// oldest streams are evicted first.
type InMemoryEventStore struct {
	streams    map[string][]Event
	order      []string
	mutex      sync.RWMutex
	maxStreams int
	log        logger.Logger
}

// NewInMemoryEventStore creates a store retaining at most maxStreams runs; zero
// means unbounded. A nil logger disables eviction logging.
func NewInMemoryEventStore(maxStreams int, log logger.Logger) *InMemoryEventStore {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &InMemoryEventStore{
		streams:    make(map[string][]Event),
		maxStreams: maxStreams,
		log:        log,
	}
}

// AppendEvents versions and stores events under a single write lock. A new
// stream may evict the oldest one, never the stream being written.
func (s *InMemoryEventStore) AppendEvents(streamID string, events ...Event) error {
	if len(events) == 0 {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	stream, ok := s.streams[streamID]
	if !ok {
		s.order = append(s.order, streamID)
		s.evict()
	}

	for _, event := range events {
		stream = append(stream, BaseEvent{
			EventType:    event.Type(),
			Stream:       streamID,
			EventData:    event.Data(),
			EventTime:    event.Timestamp(),
			EventVersion: len(stream) + 1,
		})
	}
	s.streams[streamID] = stream
	return nil
}

// evict drops the oldest streams beyond maxStreams. Callers hold the write lock.
func (s *InMemoryEventStore) evict() {
	if s.maxStreams <= 0 {
		return
	}
	for len(s.order) > s.maxStreams {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.streams, oldest)
		s.log.Debugf("evicted event stream %s", oldest)
	}
}

func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.streams[streamID]
	if !exists {
		return []Event{}, nil
	}

	if fromVersion < 1 {
		fromVersion = 1
	}

	if fromVersion > len(events) {
		return []Event{}, nil
	}

	out := make([]Event, len(events)-fromVersion+1)
	copy(out, events[fromVersion-1:])
	return out, nil
}
