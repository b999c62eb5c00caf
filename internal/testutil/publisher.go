package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
)

// PublishedEvent is one envelope captured by MockPublisher.
type PublishedEvent struct {
	RoutingKey string
	EventData  interface{}
	RawJSON    []byte
}

// Decode unmarshals the captured envelope into target.
func (e PublishedEvent) Decode(t *testing.T, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(e.RawJSON, target); err != nil {
		t.Fatalf("Failed to decode %s event: %v", e.RoutingKey, err)
	}
}

// MockPublisher records domain events in memory. Setting Err makes every
// Publish fail after recording the attempt.
type MockPublisher struct {
	Err error

	mu     sync.RWMutex
	events []PublishedEvent
	closed bool
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	raw, err := json.Marshal(eventData)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{RoutingKey: routingKey, EventData: eventData, RawJSON: raw})
	return m.Err
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockPublisher) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// GetAllEvents returns a copy of every captured event in publish order.
func (m *MockPublisher) GetAllEvents() []PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockPublisher) GetEventsByKey(routingKey string) []PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []PublishedEvent
	for _, e := range m.events {
		if e.RoutingKey == routingKey {
			out = append(out, e)
		}
	}
	return out
}

func (m *MockPublisher) GetEventCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

func (m *MockPublisher) GetEventCountByKey(routingKey string) int {
	return len(m.GetEventsByKey(routingKey))
}

// GetLastEventByKey returns the newest event for routingKey, or nil.
func (m *MockPublisher) GetLastEventByKey(routingKey string) *PublishedEvent {
	events := m.GetEventsByKey(routingKey)
	if len(events) == 0 {
		return nil
	}
	last := events[len(events)-1]
	return &last
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}

func (m *MockPublisher) AssertEventPublished(t *testing.T, routingKey string) {
	t.Helper()
	if m.GetEventCountByKey(routingKey) == 0 {
		t.Errorf("Expected event '%s' to be published, but found none", routingKey)
	}
}

func (m *MockPublisher) AssertEventNotPublished(t *testing.T, routingKey string) {
	t.Helper()
	if n := m.GetEventCountByKey(routingKey); n > 0 {
		t.Errorf("Expected no '%s' events, but found %d", routingKey, n)
	}
}

func (m *MockPublisher) AssertEventCount(t *testing.T, routingKey string, expected int) {
	t.Helper()
	if n := m.GetEventCountByKey(routingKey); n != expected {
		t.Errorf("Expected %d '%s' events, got %d", expected, routingKey, n)
	}
}
